package service

import (
	"go-sales-network/internal/model"

	"github.com/google/uuid"
)

// maxChainDepth bounds the supplier chain walked above a candidate node.
// A full chain is at most factory -> retail -> businessman, three nodes.
const maxChainDepth = 3

// SupplierLookup resolves a sale node by id. The depth walk follows ids
// through the store rather than in-memory pointers, so the chain inspected is
// always the persisted one.
type SupplierLookup func(id uuid.UUID) (*model.Sale, error)

// checkSupplierChain validates the tier/supplier relationship of a candidate
// sale node. All applicable rules are evaluated; the result carries one entry
// per broken rule and is empty when the candidate is valid.
//
// Rules:
//   - a node cannot reference a supplier of its own tier
//   - a factory node cannot have a supplier
//   - every non-factory node must have a supplier
//   - a node cannot supply itself
//   - the chain above the proposed supplier must stay under maxChainDepth
//
// candidateID is uuid.Nil on create, where the node is not yet persisted.
func checkSupplierChain(candidateID uuid.UUID, tier model.Tier, supplier *model.Sale, lookup SupplierLookup) ValidationError {
	errs := ValidationError{}

	if supplier != nil {
		if candidateID != uuid.Nil && supplier.ID == candidateID {
			errs.Add("supplier", "a node cannot be its own supplier")
		}
		if supplier.Tier == tier {
			errs.Add("supplier", "a node cannot reference a supplier of the same tier")
		}
	}
	if tier == model.TierFactory && supplier != nil {
		errs.Add("supplier_factory", "a factory node cannot reference other nodes")
	}
	if tier != model.TierFactory && supplier == nil {
		errs.Add("supplier_empty", "a supplier is required for this tier")
	}

	// Walk the existing chain above the proposed supplier, counting nodes.
	counter := 0
	current := supplier
	for current != nil {
		counter++
		if counter >= maxChainDepth {
			errs.Add("count_supplier", "the supplier chain must not exceed 3 levels")
			break
		}
		if current.SupplierID == nil {
			break
		}
		next, err := lookup(*current.SupplierID)
		if err != nil {
			// Dangling supplier reference; the chain ends here.
			break
		}
		current = next
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
