package service

import (
	"testing"

	"go-sales-network/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContactService(t *testing.T) (ContactService, *fakeContactRepo, *fakeUserRepo, *model.User, *model.User) {
	t.Helper()
	owner := newTestUser("owner@example.com")
	other := newTestUser("other@example.com")
	users := newFakeUserRepo(owner, other)
	contacts := newFakeContactRepo()
	return NewContactService(contacts, users, noopEvents{}), contacts, users, owner, other
}

func TestContactService_CreateForcesOwnerForNonStaff(t *testing.T) {
	svc, contacts, _, owner, other := newContactService(t)

	// A non-staff user submitting someone else's email still becomes the
	// owner themselves.
	resp, err := svc.Create(owner, &ContactRequest{
		Email:   "shop@example.com",
		Country: "NL",
		City:    "Amsterdam",
		Owner:   other.Email,
	})
	require.NoError(t, err)
	assert.Equal(t, owner.Email, resp.Owner)

	stored, err := contacts.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.OwnerID)
}

func TestContactService_StaffMayAssignAnotherOwner(t *testing.T) {
	svc, _, users, owner, _ := newContactService(t)

	staff := newTestUser("staff@example.com")
	staff.IsStaff = true
	require.NoError(t, users.Create(staff))

	resp, err := svc.Create(staff, &ContactRequest{
		Email:   "shop@example.com",
		Country: "NL",
		Owner:   owner.Email,
	})
	require.NoError(t, err)
	assert.Equal(t, owner.Email, resp.Owner)
}

func TestContactService_CreateValidatesInput(t *testing.T) {
	svc, _, _, owner, _ := newContactService(t)

	_, err := svc.Create(owner, &ContactRequest{Email: "not-an-email", Owner: owner.Email})
	var verrs ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "country")
}

func TestContactService_CreateRejectsUnknownOwner(t *testing.T) {
	svc, _, _, owner, _ := newContactService(t)

	_, err := svc.Create(owner, &ContactRequest{
		Email:   "shop@example.com",
		Country: "NL",
		Owner:   "ghost@example.com",
	})
	var verrs ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "owner")
}

func TestContactService_UpdateMergesPatch(t *testing.T) {
	svc, _, _, owner, _ := newContactService(t)

	resp, err := svc.Create(owner, &ContactRequest{
		Email:   "shop@example.com",
		Country: "NL",
		City:    "Amsterdam",
		Owner:   owner.Email,
	})
	require.NoError(t, err)

	city := "Rotterdam"
	updated, err := svc.Update(owner, resp.ID, &ContactUpdateRequest{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Rotterdam", updated.City)
	// Untouched fields keep their values.
	assert.Equal(t, "shop@example.com", updated.Email)
	assert.Equal(t, "NL", updated.Country)
}

func TestContactService_AccessRules(t *testing.T) {
	svc, _, users, owner, other := newContactService(t)

	resp, err := svc.Create(owner, &ContactRequest{
		Email:   "shop@example.com",
		Country: "NL",
		Owner:   owner.Email,
	})
	require.NoError(t, err)

	_, err = svc.GetByID(other, resp.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	city := "Utrecht"
	_, err = svc.Update(other, resp.ID, &ContactUpdateRequest{City: &city})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(other, resp.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Every active user may list, in the reduced projection.
	items, err := svc.List(other)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, owner.Email, items[0].Owner)

	superuser := newTestUser("root@example.com")
	superuser.IsSuperuser = true
	require.NoError(t, users.Create(superuser))
	require.NoError(t, svc.Delete(superuser, resp.ID))
}

func TestContactService_NotFound(t *testing.T) {
	svc, _, _, owner, _ := newContactService(t)

	_, err := svc.GetByID(owner, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
