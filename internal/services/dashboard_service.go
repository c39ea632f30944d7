package services

import (
	"sort"
	"time"

	"glowmart/internal/models"
	"glowmart/internal/repositories"
)

// DashboardService aggregates cross-aggregate figures for the admin
// dashboard.
type DashboardService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// DashboardSummary is the headline figures card.
type DashboardSummary struct {
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	Revenue       float64 `json:"revenue"`
	TotalProducts int64   `json:"totalProducts"`
	OutOfStock    int64   `json:"outOfStock"`
	TotalUsers    int     `json:"totalUsers"`
}

// TopProduct is one row of the best-sellers widget.
type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

// Summary composes order, catalog and user figures.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	orderStats, err := s.orderRepo.Stats()
	if err != nil {
		return nil, err
	}
	productStats, err := s.productRepo.Stats()
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalOrders:   orderStats.TotalOrders,
		PendingOrders: orderStats.PendingOrders,
		Revenue:       orderStats.Revenue,
		TotalProducts: productStats.TotalProducts,
		OutOfStock:    productStats.OutOfStock,
		TotalUsers:    len(users),
	}, nil
}

// RecentOrders returns the latest orders for the dashboard feed.
func (s *DashboardService) RecentOrders(limit int) ([]models.Order, error) {
	if limit < 1 {
		limit = 5
	}
	return s.orderRepo.GetRecent(limit)
}

// ChartPoint is one point of a dashboard chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Revenue returns monthly revenue across all non-cancelled orders, oldest
// month first.
func (s *DashboardService) Revenue() ([]ChartPoint, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]float64)
	for _, order := range orders {
		if order.Status == models.OrderStatusCancelled {
			continue
		}
		byMonth[order.CreatedAt.Format("2006-01")] += order.Total
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	series := make([]ChartPoint, 0, len(months))
	for _, month := range months {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, err
		}
		series = append(series, ChartPoint{
			Name:  parsed.Format("Jan 2006"),
			Value: byMonth[month],
		})
	}
	return series, nil
}

// CategorySales returns revenue per category across all non-cancelled
// orders. Lines whose product no longer maps to a category are grouped
// under "Uncategorized".
func (s *DashboardService) CategorySales() ([]ChartPoint, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	categoryByProduct := make(map[string]string)
	for _, product := range products {
		if product.Category != nil {
			categoryByProduct[product.ID] = product.Category.Name
		}
	}

	byCategory := make(map[string]float64)
	for _, order := range orders {
		if order.Status == models.OrderStatusCancelled {
			continue
		}
		for _, item := range order.Items {
			name, ok := categoryByProduct[item.ProductID]
			if !ok {
				name = "Uncategorized"
			}
			byCategory[name] += item.Price * float64(item.Quantity)
		}
	}

	series := make([]ChartPoint, 0, len(byCategory))
	for name, value := range byCategory {
		series = append(series, ChartPoint{Name: name, Value: value})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Value != series[j].Value {
			return series[i].Value > series[j].Value
		}
		return series[i].Name < series[j].Name
	})
	return series, nil
}

// TopProducts ranks products by units sold across all non-cancelled orders.
func (s *DashboardService) TopProducts(limit int) ([]TopProduct, error) {
	if limit < 1 {
		limit = 5
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*TopProduct)
	for _, order := range orders {
		if order.Status == models.OrderStatusCancelled {
			continue
		}
		for _, item := range order.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &TopProduct{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = entry
			}
			entry.UnitsSold += item.Quantity
			entry.Revenue += item.Price * float64(item.Quantity)
		}
	}

	ranked := make([]TopProduct, 0, len(byProduct))
	for _, entry := range byProduct {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].UnitsSold != ranked[j].UnitsSold {
			return ranked[i].UnitsSold > ranked[j].UnitsSold
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
