package repo

import (
	"errors"
	"strings"

	"stocklist/backend/app/models"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) List() ([]models.Product, error) {
	var products []models.Product
	return products, r.db.Order("product_id asc").Find(&products).Error
}

func (r *ProductRepository) FindByProductID(productID int) (*models.Product, error) {
	var p models.Product
	if err := r.db.Where("product_id = ?", productID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Search matches a case-insensitive substring against name or description,
// ascending by product_id. LIKE metacharacters in the query are escaped so
// user input always matches literally.
func (r *ProductRepository) Search(query string) ([]models.Product, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	var products []models.Product
	err := r.db.
		Where(`LOWER(product_name) LIKE ? ESCAPE '\' OR LOWER(product_description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("product_id asc").
		Find(&products).Error
	return products, err
}

// CreateAssigningID fills p.ProductID with max+1 inside a transaction.
// Deleted ids are never reused: the max is taken over live rows, so it only
// ever grows. The unique index backstops a concurrent assignment and we
// recompute once on a duplicate-key error.
func (r *ProductRepository) CreateAssigningID(p *models.Product) error {
	for attempt := 0; ; attempt++ {
		err := r.db.Transaction(func(tx *gorm.DB) error {
			var maxID int64
			if err := tx.Model(&models.Product{}).Select("COALESCE(MAX(product_id), 0)").Scan(&maxID).Error; err != nil {
				return err
			}
			p.ID = 0
			p.ProductID = int(maxID) + 1
			return tx.Create(p).Error
		})
		if err == nil || attempt > 0 || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
}

// UpdateFields applies the given column values to the product and returns
// the updated record. Columns not present in fields keep their values.
func (r *ProductRepository) UpdateFields(productID int, fields map[string]any) (*models.Product, error) {
	var p models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).First(&p).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&p).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteByProductID removes the product keyed by its public id (never the
// surrogate key) and returns the deleted record.
func (r *ProductRepository) DeleteByProductID(productID int) (*models.Product, error) {
	var p models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).First(&p).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Product{}).Error
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
