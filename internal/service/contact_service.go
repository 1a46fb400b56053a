package service

import (
	"go-sales-network/internal/model"
	"go-sales-network/internal/permission"
	"go-sales-network/internal/repository"

	"github.com/google/uuid"
)

// EventPublisher receives a change event after each successful mutation.
// Satisfied by *ws.Hub.
type EventPublisher interface {
	Publish(action string, data interface{})
}

// ContactRequest is the inbound payload for creating a contact. The owner is
// identified by email; non-staff users always become the owner themselves.
type ContactRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber uint   `json:"house_number"`
	Owner       string `json:"owner" validate:"required,email"`
}

// ContactUpdateRequest is the inbound payload for a partial update. The owner
// is deliberately absent: ownership is fixed at creation time.
type ContactUpdateRequest struct {
	Email       *string `json:"email"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Street      *string `json:"street"`
	HouseNumber *uint   `json:"house_number"`
}

type ContactService interface {
	Create(actor *model.User, req *ContactRequest) (*model.ContactResponse, error)
	Update(actor *model.User, id uuid.UUID, req *ContactUpdateRequest) (*model.ContactResponse, error)
	GetByID(actor *model.User, id uuid.UUID) (*model.ContactResponse, error)
	List(actor *model.User) ([]model.ContactListItem, error)
	Delete(actor *model.User, id uuid.UUID) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
	events      EventPublisher
}

func NewContactService(contactRepo repository.ContactRepository, userRepo repository.UserRepository, events EventPublisher) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		userRepo:    userRepo,
		events:      events,
	}
}

func (s *contactService) Create(actor *model.User, req *ContactRequest) (*model.ContactResponse, error) {
	if verrs := validateStruct(req); verrs != nil {
		return nil, verrs
	}

	owner, err := s.userRepo.FindByEmail(req.Owner)
	if err != nil {
		return nil, ValidationError{"owner": {"no such user"}}
	}
	// Only staff may create a contact on behalf of another user.
	if !actor.IsStaff {
		owner = actor
	}

	contact := &model.Contact{
		Email:       req.Email,
		Country:     req.Country,
		City:        req.City,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		OwnerID:     owner.ID,
	}
	contact.CreatedBy = actor.ID.String()
	contact.UpdatedBy = actor.ID.String()

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	contact.Owner = owner

	s.events.Publish("contact_created", contact.ToResponse())

	resp := contact.ToResponse()
	return &resp, nil
}

func (s *contactService) Update(actor *model.User, id uuid.UUID, req *ContactUpdateRequest) (*model.ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !permission.CanAccessContact(actor, permission.OpWrite, contact) {
		return nil, ErrForbidden
	}

	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Country != nil {
		contact.Country = *req.Country
	}
	if req.City != nil {
		contact.City = *req.City
	}
	if req.Street != nil {
		contact.Street = *req.Street
	}
	if req.HouseNumber != nil {
		contact.HouseNumber = *req.HouseNumber
	}
	contact.UpdatedBy = actor.ID.String()

	if verrs := validateStruct(contact); verrs != nil {
		return nil, verrs
	}
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}

	s.events.Publish("contact_updated", contact.ToResponse())

	resp := contact.ToResponse()
	return &resp, nil
}

func (s *contactService) GetByID(actor *model.User, id uuid.UUID) (*model.ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !permission.CanAccessContact(actor, permission.OpRead, contact) {
		return nil, ErrForbidden
	}
	resp := contact.ToResponse()
	return &resp, nil
}

func (s *contactService) List(actor *model.User) ([]model.ContactListItem, error) {
	if !permission.CanList(actor) {
		return nil, ErrForbidden
	}
	contacts, err := s.contactRepo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]model.ContactListItem, len(contacts))
	for i := range contacts {
		items[i] = contacts[i].ToListItem()
	}
	return items, nil
}

func (s *contactService) Delete(actor *model.User, id uuid.UUID) error {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		return err
	}
	if !permission.CanAccessContact(actor, permission.OpDelete, contact) {
		return ErrForbidden
	}
	if err := s.contactRepo.Delete(id); err != nil {
		return err
	}

	s.events.Publish("contact_deleted", map[string]interface{}{"id": id})
	return nil
}
