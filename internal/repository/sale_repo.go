package repository

import (
	"go-sales-network/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	// FindAll returns all sale nodes, optionally filtered by a search term
	// matched against the contact's city or country.
	FindAll(search string) ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	Update(sale *model.Sale) error
	Delete(id uuid.UUID) error
	CountByTier() (map[model.Tier]int64, error)
	TotalDebt() (decimal.Decimal, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) FindAll(search string) ([]model.Sale, error) {
	var sales []model.Sale
	query := r.db.
		Preload("Owner").
		Preload("Contact.Owner").
		Preload("Product.Owner")
	if search != "" {
		query = query.
			Joins("JOIN contacts ON contacts.id = sales.contact_id").
			Where("contacts.city ILIKE ? OR contacts.country ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	err := query.Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.
		Preload("Owner").
		Preload("Contact.Owner").
		Preload("Product.Owner").
		First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepo) CountByTier() (map[model.Tier]int64, error) {
	type tierCount struct {
		Tier  model.Tier
		Count int64
	}
	var rows []tierCount
	err := r.db.Model(&model.Sale{}).
		Select("tier, count(*) as count").
		Group("tier").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.Tier]int64, len(rows))
	for _, row := range rows {
		counts[row.Tier] = row.Count
	}
	return counts, nil
}

func (r *saleRepo) TotalDebt() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(debt), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
