package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier is the position of a sale node in the distribution hierarchy.
type Tier string

const (
	TierFactory     Tier = "factory"
	TierRetail      Tier = "retail"
	TierBusinessman Tier = "businessman"
)

// Sale is a node in the trade network. A node may reference another node as
// its supplier; factories sit at the top of the chain and have none. The debt
// owed to the supplier is server-controlled and never taken from input.
type Sale struct {
	BaseModel
	Title string `gorm:"type:varchar(150);not null" json:"title" validate:"required"`
	Tier  Tier   `gorm:"type:varchar(30);not null" json:"tier" validate:"required,oneof=factory retail businessman"`

	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id"`
	Supplier   *Sale      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`

	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`

	ContactID uuid.UUID `gorm:"type:uuid;not null" json:"contact_id"`
	Contact   *Contact  `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"contact,omitempty"`

	Debt decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"debt"`
}

// SaleResponse is the detail projection. The supplier chain is embedded
// recursively, together with the full product and contact records.
type SaleResponse struct {
	ID       uuid.UUID        `json:"id"`
	Title    string           `json:"title"`
	Tier     Tier             `json:"tier"`
	Supplier *SaleResponse    `json:"supplier"`
	Created  time.Time        `json:"created"`
	Product  *ProductResponse `json:"product"`
	Contact  *ContactResponse `json:"contact"`
	Owner    string           `json:"owner"`
	Debt     decimal.Decimal  `json:"debt"`
}

// SaleListItem is the reduced projection used when listing all sale nodes.
// The supplier is embedded recursively in the same minimal shape; the contact
// stays full so lists remain searchable by location.
type SaleListItem struct {
	ID       uuid.UUID        `json:"id"`
	Title    string           `json:"title"`
	Tier     Tier             `json:"tier"`
	Supplier *SaleListItem    `json:"supplier"`
	Owner    string           `json:"owner"`
	Contact  *ContactResponse `json:"contact"`
}

func (s *Sale) ownerEmail() string {
	if s.Owner != nil {
		return s.Owner.Email
	}
	return ""
}

// ToResponse converts Sale to its detail projection, following the in-memory
// supplier chain. Callers are expected to have resolved the chain first.
func (s *Sale) ToResponse() SaleResponse {
	resp := SaleResponse{
		ID:      s.ID,
		Title:   s.Title,
		Tier:    s.Tier,
		Created: s.CreatedAt,
		Owner:   s.ownerEmail(),
		Debt:    s.Debt,
	}
	if s.Supplier != nil {
		supplier := s.Supplier.ToResponse()
		resp.Supplier = &supplier
	}
	if s.Product != nil {
		product := s.Product.ToResponse()
		resp.Product = &product
	}
	if s.Contact != nil {
		contact := s.Contact.ToResponse()
		resp.Contact = &contact
	}
	return resp
}

// ToListItem converts Sale to its list projection
func (s *Sale) ToListItem() SaleListItem {
	item := SaleListItem{
		ID:    s.ID,
		Title: s.Title,
		Tier:  s.Tier,
		Owner: s.ownerEmail(),
	}
	if s.Supplier != nil {
		supplier := s.Supplier.ToListItem()
		item.Supplier = &supplier
	}
	if s.Contact != nil {
		contact := s.Contact.ToResponse()
		item.Contact = &contact
	}
	return item
}
