package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainNode(title string, tier Tier, owner *User, supplier *Sale) *Sale {
	sale := &Sale{
		Title: title,
		Tier:  tier,
		Owner: owner,
		Debt:  decimal.Zero,
	}
	sale.ID = uuid.New()
	if owner != nil {
		sale.OwnerID = owner.ID
	}
	if supplier != nil {
		sale.SupplierID = &supplier.ID
		sale.Supplier = supplier
	}
	return sale
}

func testOwner(email string) *User {
	user := &User{Email: email, IsActive: true}
	user.ID = uuid.New()
	return user
}

func TestSaleToResponseEmbedsChainRecursively(t *testing.T) {
	owner := testOwner("owner@example.com")
	factory := chainNode("Factory", TierFactory, owner, nil)
	retail := chainNode("Retail", TierRetail, owner, factory)
	leaf := chainNode("Leaf", TierBusinessman, owner, retail)
	leaf.Product = &Product{Title: "Apples", Model: "Granny", Owner: owner}
	leaf.Contact = &Contact{Email: "shop@example.com", Country: "NL", City: "Amsterdam", Owner: owner}

	resp := leaf.ToResponse()
	assert.Equal(t, "Leaf", resp.Title)
	assert.Equal(t, TierBusinessman, resp.Tier)
	assert.Equal(t, owner.Email, resp.Owner)
	assert.True(t, resp.Debt.IsZero())
	require.NotNil(t, resp.Product)
	assert.Equal(t, "Apples", resp.Product.Title)
	require.NotNil(t, resp.Contact)
	assert.Equal(t, "Amsterdam", resp.Contact.City)

	require.NotNil(t, resp.Supplier)
	assert.Equal(t, "Retail", resp.Supplier.Title)
	require.NotNil(t, resp.Supplier.Supplier)
	assert.Equal(t, "Factory", resp.Supplier.Supplier.Title)
	assert.Nil(t, resp.Supplier.Supplier.Supplier)
}

func TestSaleToListItemIsMinimal(t *testing.T) {
	owner := testOwner("owner@example.com")
	factory := chainNode("Factory", TierFactory, owner, nil)
	retail := chainNode("Retail", TierRetail, owner, factory)
	retail.Contact = &Contact{Email: "shop@example.com", Country: "NL", Owner: owner}

	item := retail.ToListItem()
	assert.Equal(t, "Retail", item.Title)
	assert.Equal(t, owner.Email, item.Owner)
	require.NotNil(t, item.Contact)
	assert.Equal(t, "NL", item.Contact.Country)
	require.NotNil(t, item.Supplier)
	assert.Equal(t, "Factory", item.Supplier.Title)

	// The list shape must not leak the debt or the full product record.
	raw, err := json.Marshal(item)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "debt")
	assert.NotContains(t, fields, "product")
}

func TestSaleProjectionsTolerateUnloadedRelations(t *testing.T) {
	sale := chainNode("Bare", TierFactory, nil, nil)

	resp := sale.ToResponse()
	assert.Empty(t, resp.Owner)
	assert.Nil(t, resp.Supplier)
	assert.Nil(t, resp.Product)
	assert.Nil(t, resp.Contact)

	item := sale.ToListItem()
	assert.Empty(t, item.Owner)
	assert.Nil(t, item.Supplier)
}
