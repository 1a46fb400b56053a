package model

import "github.com/google/uuid"

// Contact is an address-book entry owned by exactly one user.
type Contact struct {
	BaseModel
	Email       string `gorm:"type:varchar(150);not null" json:"email" validate:"required,email"`
	Country     string `gorm:"type:varchar(150);not null" json:"country" validate:"required"`
	City        string `gorm:"type:varchar(150)" json:"city"`
	Street      string `gorm:"type:varchar(150)" json:"street"`
	HouseNumber uint   `json:"house_number"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
}

// ContactResponse is the detail projection returned on create/retrieve/update.
// The owner is surfaced by email only.
type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Street      string    `json:"street"`
	HouseNumber uint      `json:"house_number"`
	Owner       string    `json:"owner"`
}

// ContactListItem is the reduced projection used when listing all contacts.
type ContactListItem struct {
	Email   string `json:"email"`
	Country string `json:"country"`
	Owner   string `json:"owner"`
}

func (c *Contact) ownerEmail() string {
	if c.Owner != nil {
		return c.Owner.Email
	}
	return ""
}

// ToResponse converts Contact to its detail projection
func (c *Contact) ToResponse() ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		Email:       c.Email,
		Country:     c.Country,
		City:        c.City,
		Street:      c.Street,
		HouseNumber: c.HouseNumber,
		Owner:       c.ownerEmail(),
	}
}

// ToListItem converts Contact to its list projection
func (c *Contact) ToListItem() ContactListItem {
	return ContactListItem{
		Email:   c.Email,
		Country: c.Country,
		Owner:   c.ownerEmail(),
	}
}
