package service

import (
	"time"

	"go-sales-network/internal/model"
	"go-sales-network/internal/permission"
	"go-sales-network/internal/repository"

	"github.com/google/uuid"
)

const releaseDateLayout = "2006-01-02"

// ProductRequest is the inbound payload for creating a product.
type ProductRequest struct {
	Title       string `json:"title" validate:"required"`
	Model       string `json:"model" validate:"required"`
	ReleaseDate string `json:"release_date" validate:"required"`
	Owner       string `json:"owner" validate:"required,email"`
}

// ProductUpdateRequest is the inbound payload for a partial update.
type ProductUpdateRequest struct {
	Title       *string `json:"title"`
	Model       *string `json:"model"`
	ReleaseDate *string `json:"release_date"`
}

type ProductService interface {
	Create(actor *model.User, req *ProductRequest) (*model.ProductResponse, error)
	Update(actor *model.User, id uuid.UUID, req *ProductUpdateRequest) (*model.ProductResponse, error)
	GetByID(actor *model.User, id uuid.UUID) (*model.ProductResponse, error)
	List(actor *model.User) ([]model.ProductListItem, error)
	Delete(actor *model.User, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	events      EventPublisher
}

func NewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository, events EventPublisher) ProductService {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
		events:      events,
	}
}

func (s *productService) Create(actor *model.User, req *ProductRequest) (*model.ProductResponse, error) {
	if verrs := validateStruct(req); verrs != nil {
		return nil, verrs
	}

	release, err := time.Parse(releaseDateLayout, req.ReleaseDate)
	if err != nil {
		return nil, ValidationError{"release_date": {"must be a date in YYYY-MM-DD format"}}
	}

	owner, err := s.userRepo.FindByEmail(req.Owner)
	if err != nil {
		return nil, ValidationError{"owner": {"no such user"}}
	}
	// Only staff may create a product on behalf of another user.
	if !actor.IsStaff {
		owner = actor
	}

	product := &model.Product{
		Title:       req.Title,
		Model:       req.Model,
		ReleaseDate: release,
		OwnerID:     owner.ID,
	}
	product.CreatedBy = actor.ID.String()
	product.UpdatedBy = actor.ID.String()

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.Owner = owner

	s.events.Publish("product_created", product.ToResponse())

	resp := product.ToResponse()
	return &resp, nil
}

func (s *productService) Update(actor *model.User, id uuid.UUID, req *ProductUpdateRequest) (*model.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !permission.CanAccessProduct(actor, permission.OpWrite, product) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Model != nil {
		product.Model = *req.Model
	}
	if req.ReleaseDate != nil {
		release, err := time.Parse(releaseDateLayout, *req.ReleaseDate)
		if err != nil {
			return nil, ValidationError{"release_date": {"must be a date in YYYY-MM-DD format"}}
		}
		product.ReleaseDate = release
	}
	product.UpdatedBy = actor.ID.String()

	if verrs := validateStruct(product); verrs != nil {
		return nil, verrs
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.events.Publish("product_updated", product.ToResponse())

	resp := product.ToResponse()
	return &resp, nil
}

func (s *productService) GetByID(actor *model.User, id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !permission.CanAccessProduct(actor, permission.OpRead, product) {
		return nil, ErrForbidden
	}
	resp := product.ToResponse()
	return &resp, nil
}

func (s *productService) List(actor *model.User) ([]model.ProductListItem, error) {
	if !permission.CanList(actor) {
		return nil, ErrForbidden
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]model.ProductListItem, len(products))
	for i := range products {
		items[i] = products[i].ToListItem()
	}
	return items, nil
}

func (s *productService) Delete(actor *model.User, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return err
	}
	if !permission.CanAccessProduct(actor, permission.OpDelete, product) {
		return ErrForbidden
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.events.Publish("product_deleted", map[string]interface{}{"id": id})
	return nil
}
