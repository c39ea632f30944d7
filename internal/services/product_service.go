package services

import (
	"strings"

	"glowmart/internal/models"
	"glowmart/internal/repositories"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves the catalog, optionally narrowed by a
// case-insensitive substring search over product name and category name.
func (s *ProductService) GetAllProducts(search string) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if search == "" {
		return products, nil
	}

	needle := strings.ToLower(search)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
			continue
		}
		if p.Category != nil && strings.Contains(strings.ToLower(p.Category.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetProductByID retrieves a single product with its reviews and Q&A, and
// fills in the derived average rating and review count.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Rating, product.ReviewCount = RatingSummary(product.Reviews)
	return product, nil
}

// RatingSummary averages review ratings. An unreviewed product has a zero
// rating.
func RatingSummary(reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// Stats summarizes the catalog for the admin dashboard.
func (s *ProductService) Stats() (*models.ProductStats, error) {
	return s.repo.Stats()
}
