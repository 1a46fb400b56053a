package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by exactly one user.
type Product struct {
	BaseModel
	Title       string    `gorm:"type:varchar(150);not null" json:"title" validate:"required"`
	Model       string    `gorm:"type:varchar(150);not null" json:"model" validate:"required"`
	ReleaseDate time.Time `gorm:"type:date;index" json:"release_date"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
}

// ProductResponse is the detail projection returned on create/retrieve/update.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Model       string    `json:"model"`
	ReleaseDate string    `json:"release_date"`
	Owner       string    `json:"owner"`
}

// ProductListItem is the reduced projection used when listing all products.
type ProductListItem struct {
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func (p *Product) ownerEmail() string {
	if p.Owner != nil {
		return p.Owner.Email
	}
	return ""
}

// ToResponse converts Product to its detail projection
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Model:       p.Model,
		ReleaseDate: p.ReleaseDate.Format("2006-01-02"),
		Owner:       p.ownerEmail(),
	}
}

// ToListItem converts Product to its list projection
func (p *Product) ToListItem() ProductListItem {
	return ProductListItem{
		Title: p.Title,
		Owner: p.ownerEmail(),
	}
}
