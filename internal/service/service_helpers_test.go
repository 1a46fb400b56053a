package service

import (
	"go-sales-network/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces, so the service pipelines can
// be exercised without a database.

type noopEvents struct{}

func (noopEvents) Publish(action string, data interface{}) {}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	var users []model.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	if u, ok := r.users[userID]; ok {
		u.Password = hashedPassword
		return nil
	}
	return gorm.ErrRecordNotFound
}

type fakeContactRepo struct {
	contacts map[uuid.UUID]*model.Contact
}

func newFakeContactRepo(contacts ...*model.Contact) *fakeContactRepo {
	repo := &fakeContactRepo{contacts: make(map[uuid.UUID]*model.Contact)}
	for _, c := range contacts {
		repo.contacts[c.ID] = c
	}
	return repo
}

func (r *fakeContactRepo) Create(contact *model.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) FindAll() ([]model.Contact, error) {
	var contacts []model.Contact
	for _, c := range r.contacts {
		contacts = append(contacts, *c)
	}
	return contacts, nil
}

func (r *fakeContactRepo) FindByID(id uuid.UUID) (*model.Contact, error) {
	if c, ok := r.contacts[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContactRepo) Update(contact *model.Contact) error {
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) Delete(id uuid.UUID) error {
	delete(r.contacts, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	for _, p := range r.products {
		products = append(products, *p)
	}
	return products, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newFakeSaleRepo(sales ...*model.Sale) *fakeSaleRepo {
	repo := &fakeSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
	for _, s := range sales {
		repo.sales[s.ID] = s
	}
	return repo
}

func (r *fakeSaleRepo) Create(sale *model.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) FindAll(search string) ([]model.Sale, error) {
	var sales []model.Sale
	for _, s := range r.sales {
		sales = append(sales, *s)
	}
	return sales, nil
}

func (r *fakeSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	if s, ok := r.sales[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSaleRepo) Update(sale *model.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) Delete(id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) CountByTier() (map[model.Tier]int64, error) {
	counts := make(map[model.Tier]int64)
	for _, s := range r.sales {
		counts[s.Tier]++
	}
	return counts, nil
}

func (r *fakeSaleRepo) TotalDebt() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.Debt)
	}
	return total, nil
}

// newTestUser builds an active user with a fresh id.
func newTestUser(email string) *model.User {
	user := &model.User{
		Email:    email,
		IsActive: true,
	}
	user.ID = uuid.New()
	return user
}
