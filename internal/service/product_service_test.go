package service

import (
	"testing"

	"go-sales-network/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (ProductService, *fakeProductRepo, *model.User, *model.User) {
	t.Helper()
	owner := newTestUser("owner@example.com")
	other := newTestUser("other@example.com")
	users := newFakeUserRepo(owner, other)
	products := newFakeProductRepo()
	return NewProductService(products, users, noopEvents{}), products, owner, other
}

func TestProductService_CreateAndProjection(t *testing.T) {
	svc, _, owner, _ := newProductService(t)

	resp, err := svc.Create(owner, &ProductRequest{
		Title:       "Apples",
		Model:       "Granny",
		ReleaseDate: "2023-12-01",
		Owner:       owner.Email,
	})
	require.NoError(t, err)
	assert.Equal(t, "Apples", resp.Title)
	assert.Equal(t, "2023-12-01", resp.ReleaseDate)
	assert.Equal(t, owner.Email, resp.Owner)
}

func TestProductService_CreateRejectsBadDate(t *testing.T) {
	svc, _, owner, _ := newProductService(t)

	_, err := svc.Create(owner, &ProductRequest{
		Title:       "Apples",
		Model:       "Granny",
		ReleaseDate: "01/12/2023",
		Owner:       owner.Email,
	})
	var verrs ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "release_date")
}

func TestProductService_CreateForcesOwnerForNonStaff(t *testing.T) {
	svc, products, owner, other := newProductService(t)

	resp, err := svc.Create(owner, &ProductRequest{
		Title:       "Apples",
		Model:       "Granny",
		ReleaseDate: "2023-12-01",
		Owner:       other.Email,
	})
	require.NoError(t, err)

	stored, err := products.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.OwnerID)
}

func TestProductService_UpdateOwnerOnly(t *testing.T) {
	svc, _, owner, other := newProductService(t)

	resp, err := svc.Create(owner, &ProductRequest{
		Title:       "Apples",
		Model:       "Granny",
		ReleaseDate: "2023-12-01",
		Owner:       owner.Email,
	})
	require.NoError(t, err)

	title := "Pears"
	_, err = svc.Update(other, resp.ID, &ProductUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(owner, resp.ID, &ProductUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Pears", updated.Title)
	assert.Equal(t, "Granny", updated.Model)
}

func TestProductService_ListProjectionIsMinimal(t *testing.T) {
	svc, _, owner, other := newProductService(t)

	_, err := svc.Create(owner, &ProductRequest{
		Title:       "Apples",
		Model:       "Granny",
		ReleaseDate: "2023-12-01",
		Owner:       owner.Email,
	})
	require.NoError(t, err)

	items, err := svc.List(other)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Apples", items[0].Title)
	assert.Equal(t, owner.Email, items[0].Owner)
}
