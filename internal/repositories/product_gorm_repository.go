package repositories

import (
	"errors"

	"glowmart/internal/apperr"
	"glowmart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products with their category and images.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Preload("Images").Order("created_at").Find(&products).Error; err != nil {
		return nil, apperr.Internal(err, "failed to get all products")
	}
	return products, nil
}

// GetByID retrieves a single product with its reviews and Q&A attached.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").Preload("Images").Preload("Reviews").Preload("QnA").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product with ID %s not found", id)
		}
		return nil, apperr.Internal(err, "failed to get product by ID %s", id)
	}
	return &product, nil
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range product.Images {
		if product.Images[i].ID == "" {
			product.Images[i].ID = uuid.New().String()
		}
	}
	if err := r.db.Create(product).Error; err != nil {
		return apperr.Internal(err, "failed to create product")
	}
	return nil
}

// Update replaces an existing product record, images included.
func (r *GORMProductRepository) Update(product *models.Product) error {
	for i := range product.Images {
		if product.Images[i].ID == "" {
			product.Images[i].ID = uuid.New().String()
			product.Images[i].ProductID = product.ID
		}
	}
	res := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(product)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update product")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("product with ID %s not found for update", product.ID)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to delete product")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("product with ID %s not found for deletion", id)
	}
	return nil
}

// Stats counts catalog totals for the dashboard.
func (r *GORMProductRepository) Stats() (*models.ProductStats, error) {
	var stats models.ProductStats
	if err := r.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, apperr.Internal(err, "failed to count products")
	}
	if err := r.db.Model(&models.Product{}).Where("stock = 0").Count(&stats.OutOfStock).Error; err != nil {
		return nil, apperr.Internal(err, "failed to count out-of-stock products")
	}
	if err := r.db.Model(&models.Product{}).Where("stock > 0 AND stock < 5").Count(&stats.LowStock).Error; err != nil {
		return nil, apperr.Internal(err, "failed to count low-stock products")
	}
	return &stats, nil
}
