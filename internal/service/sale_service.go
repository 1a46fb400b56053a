package service

import (
	"bytes"
	"encoding/json"

	"go-sales-network/internal/model"
	"go-sales-network/internal/permission"
	"go-sales-network/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRequest is the inbound payload for creating a sale node. The owner is
// identified by email. Debt is deliberately absent: it is server-controlled.
type SaleRequest struct {
	Title    string     `json:"title" validate:"required"`
	Tier     model.Tier `json:"tier" validate:"required,oneof=factory retail businessman"`
	Supplier *uuid.UUID `json:"supplier"`
	Product  uuid.UUID  `json:"product" validate:"uuid_required"`
	Contact  uuid.UUID  `json:"contact" validate:"uuid_required"`
	Owner    string     `json:"owner" validate:"required,email"`
}

// OptionalUUID distinguishes a field that was omitted from one sent as an
// explicit JSON null, so a patch can clear a nullable link.
type OptionalUUID struct {
	Set bool
	ID  *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.ID = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	o.ID = &id
	return nil
}

// SaleUpdateRequest is the inbound payload for a partial update. Omitted
// fields keep their stored value; supplier accepts an explicit null to detach
// the node from its supplier, which is how a node becomes a factory.
type SaleUpdateRequest struct {
	Title    *string      `json:"title"`
	Tier     *model.Tier  `json:"tier"`
	Supplier OptionalUUID `json:"supplier"`
	Product  *uuid.UUID   `json:"product"`
	Contact  *uuid.UUID   `json:"contact"`
	Owner    *string      `json:"owner"`
}

type SaleService interface {
	Create(actor *model.User, req *SaleRequest) (*model.SaleResponse, error)
	Update(actor *model.User, id uuid.UUID, req *SaleUpdateRequest) (*model.SaleResponse, error)
	GetByID(actor *model.User, id uuid.UUID) (*model.SaleResponse, error)
	List(actor *model.User, search string) ([]model.SaleListItem, error)
	Delete(actor *model.User, id uuid.UUID) error
}

type saleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
	events      EventPublisher
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
	events EventPublisher,
) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		contactRepo: contactRepo,
		userRepo:    userRepo,
		events:      events,
	}
}

func (s *saleService) Create(actor *model.User, req *SaleRequest) (*model.SaleResponse, error) {
	if verrs := validateStruct(req); verrs != nil {
		return nil, verrs
	}

	owner, err := s.userRepo.FindByEmail(req.Owner)
	if err != nil {
		return nil, ValidationError{"owner": {"no such user"}}
	}

	// Resolve references before any rule runs; unresolved ids are reported
	// together, like any other field error.
	verrs := ValidationError{}
	product, err := s.productRepo.FindByID(req.Product)
	if err != nil {
		verrs.Add("product", "no such product")
	}
	contact, err := s.contactRepo.FindByID(req.Contact)
	if err != nil {
		verrs.Add("contact", "no such contact")
	}
	var supplier *model.Sale
	if req.Supplier != nil {
		supplier, err = s.saleRepo.FindByID(*req.Supplier)
		if err != nil {
			verrs.Add("supplier", "no such sale node")
		}
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	// All hierarchy and cross-ownership rules are evaluated against the
	// proposed state and reported together.
	verrs = ValidationError{}
	verrs.Merge(checkSupplierChain(uuid.Nil, req.Tier, supplier, s.saleRepo.FindByID))
	if product.OwnerID != owner.ID {
		verrs.Add("product", "cannot reference another user's product")
	}
	if contact.OwnerID != owner.ID {
		verrs.Add("contact", "cannot reference another user's contact")
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	// A non-staff user cannot create a node on behalf of someone else.
	if owner.ID != actor.ID && !actor.IsStaff {
		return nil, ValidationError{"owner": {"you specified another user"}}
	}

	sale := &model.Sale{
		Title:     req.Title,
		Tier:      req.Tier,
		OwnerID:   owner.ID,
		ProductID: product.ID,
		ContactID: contact.ID,
		Debt:      decimal.Zero,
	}
	if supplier != nil {
		sale.SupplierID = &supplier.ID
	}
	sale.CreatedBy = actor.ID.String()
	sale.UpdatedBy = actor.ID.String()

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	sale.Owner = owner
	sale.Product = product
	sale.Contact = contact
	s.resolveChain(sale)

	resp := sale.ToResponse()
	s.events.Publish("sale_created", resp)
	return &resp, nil
}

func (s *saleService) Update(actor *model.User, id uuid.UUID, req *SaleUpdateRequest) (*model.SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !permission.CanAccessSale(actor, permission.OpWrite, sale) {
		return nil, ErrForbidden
	}

	// Merge the patch onto the stored state. Debt is never merged: it stays
	// whatever the server last assigned.
	if req.Title != nil {
		sale.Title = *req.Title
	}
	if req.Tier != nil {
		sale.Tier = *req.Tier
	}

	owner := sale.Owner
	if req.Owner != nil {
		submitted, err := s.userRepo.FindByEmail(*req.Owner)
		if err != nil {
			return nil, ValidationError{"owner": {"no such user"}}
		}
		if submitted.ID != actor.ID && !actor.IsStaff {
			return nil, ValidationError{"owner": {"you specified another user"}}
		}
		owner = submitted
	}

	verrs := ValidationError{}
	product := sale.Product
	if req.Product != nil {
		product, err = s.productRepo.FindByID(*req.Product)
		if err != nil {
			verrs.Add("product", "no such product")
		}
	}
	contact := sale.Contact
	if req.Contact != nil {
		contact, err = s.contactRepo.FindByID(*req.Contact)
		if err != nil {
			verrs.Add("contact", "no such contact")
		}
	}
	var supplier *model.Sale
	clearSupplier := req.Supplier.Set && req.Supplier.ID == nil
	switch {
	case clearSupplier:
		// Explicit null detaches the node from its supplier.
	case req.Supplier.Set:
		supplier, err = s.saleRepo.FindByID(*req.Supplier.ID)
		if err != nil {
			verrs.Add("supplier", "no such sale node")
		}
	case sale.SupplierID != nil:
		supplier, _ = s.saleRepo.FindByID(*sale.SupplierID)
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	// Re-run the full validator pipeline against the merged state; the
	// cross-ownership rules apply on update exactly as on create.
	verrs = ValidationError{}
	verrs.Merge(checkSupplierChain(sale.ID, sale.Tier, supplier, s.saleRepo.FindByID))
	if product != nil && product.OwnerID != owner.ID {
		verrs.Add("product", "cannot reference another user's product")
	}
	if contact != nil && contact.OwnerID != owner.ID {
		verrs.Add("contact", "cannot reference another user's contact")
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	sale.OwnerID = owner.ID
	sale.Owner = owner
	if product != nil {
		sale.ProductID = product.ID
		sale.Product = product
	}
	if contact != nil {
		sale.ContactID = contact.ID
		sale.Contact = contact
	}
	if supplier != nil {
		sale.SupplierID = &supplier.ID
	} else if clearSupplier {
		sale.SupplierID = nil
	}
	sale.Supplier = nil
	sale.UpdatedBy = actor.ID.String()

	if verrs := validateStruct(sale); verrs != nil {
		return nil, verrs
	}
	if err := s.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	s.resolveChain(sale)

	resp := sale.ToResponse()
	s.events.Publish("sale_updated", resp)
	return &resp, nil
}

func (s *saleService) GetByID(actor *model.User, id uuid.UUID) (*model.SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !permission.CanAccessSale(actor, permission.OpRead, sale) {
		return nil, ErrForbidden
	}
	s.resolveChain(sale)
	resp := sale.ToResponse()
	return &resp, nil
}

func (s *saleService) List(actor *model.User, search string) ([]model.SaleListItem, error) {
	if !permission.CanList(actor) {
		return nil, ErrForbidden
	}
	sales, err := s.saleRepo.FindAll(search)
	if err != nil {
		return nil, err
	}
	items := make([]model.SaleListItem, len(sales))
	for i := range sales {
		s.resolveChain(&sales[i])
		items[i] = sales[i].ToListItem()
	}
	return items, nil
}

func (s *saleService) Delete(actor *model.User, id uuid.UUID) error {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return err
	}
	if !permission.CanAccessSale(actor, permission.OpDelete, sale) {
		return ErrForbidden
	}
	// Children keep their supplier reference; the store does not cascade
	// sale deletion down the chain.
	if err := s.saleRepo.Delete(id); err != nil {
		return err
	}

	s.events.Publish("sale_deleted", map[string]interface{}{"id": id})
	return nil
}

// resolveChain attaches the persisted supplier chain to the node so the
// projections can embed it recursively. The walk follows ids through the
// store and is bounded, so a dangling reference simply ends the chain.
func (s *saleService) resolveChain(sale *model.Sale) {
	current := sale
	for depth := 0; depth < maxChainDepth; depth++ {
		current.Supplier = nil
		if current.SupplierID == nil {
			return
		}
		supplier, err := s.saleRepo.FindByID(*current.SupplierID)
		if err != nil {
			return
		}
		current.Supplier = supplier
		current = supplier
	}
	// Guard against a chain longer than the validator ever accepts.
	current.Supplier = nil
}
