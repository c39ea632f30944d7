package handlers

import (
	"log"
	"strconv"

	"glowmart/internal/middleware"
	"glowmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin dashboard widgets.
type DashboardHandler struct {
	service     *services.DashboardService
	authService *services.AuthService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService, authService *services.AuthService) *DashboardHandler {
	return &DashboardHandler{
		service:     service,
		authService: authService,
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashRoutes := router.Group("/admin/dashboard", middleware.AuthRequired(h.authService), middleware.AdminRequired())
	dashRoutes.Get("/summary", h.HandleSummary)
	dashRoutes.Get("/revenue", h.HandleRevenue)
	dashRoutes.Get("/category-sales", h.HandleCategorySales)
	dashRoutes.Get("/recent-orders", h.HandleRecentOrders)
	dashRoutes.Get("/top-products", h.HandleTopProducts)
}

func limitQuery(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil {
		return 5
	}
	return limit
}

// HandleSummary returns the headline figures.
func (h *DashboardHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, summary)
}

// HandleRevenue returns the monthly revenue series for the line chart.
func (h *DashboardHandler) HandleRevenue(c *fiber.Ctx) error {
	series, err := h.service.Revenue()
	if err != nil {
		log.Printf("Error building revenue series: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, series)
}

// HandleCategorySales returns revenue per category for the bar chart.
func (h *DashboardHandler) HandleCategorySales(c *fiber.Ctx) error {
	series, err := h.service.CategorySales()
	if err != nil {
		log.Printf("Error building category sales series: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, series)
}

// HandleRecentOrders returns the latest orders.
func (h *DashboardHandler) HandleRecentOrders(c *fiber.Ctx) error {
	orders, err := h.service.RecentOrders(limitQuery(c))
	if err != nil {
		log.Printf("Error getting recent orders: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, orders)
}

// HandleTopProducts returns the best-sellers ranking.
func (h *DashboardHandler) HandleTopProducts(c *fiber.Ctx) error {
	products, err := h.service.TopProducts(limitQuery(c))
	if err != nil {
		log.Printf("Error ranking top products: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, products)
}
