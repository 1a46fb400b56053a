package repository

import (
	"go-sales-network/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *model.Contact) error
	FindAll() ([]model.Contact, error)
	FindByID(id uuid.UUID) (*model.Contact, error)
	Update(contact *model.Contact) error
	Delete(id uuid.UUID) error
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db}
}

func (r *contactRepo) Create(contact *model.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepo) FindAll() ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.Preload("Owner").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo) FindByID(id uuid.UUID) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.Preload("Owner").First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepo) Update(contact *model.Contact) error {
	return r.db.Save(contact).Error
}

func (r *contactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Contact{}, "id = ?", id).Error
}
