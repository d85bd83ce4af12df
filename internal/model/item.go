// Package model holds the domain entities and the request payloads
// that the handler layer binds and validates before calling services.
package model

import "github.com/deppfellow/items-api/internal/lib/nullable"

// Item is the only resource exposed by the API.
//
// ID is assigned by the store and never changes. Description is nil
// when the item has none and is serialised as JSON null.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Clone returns a copy that shares no memory with i.
func (i Item) Clone() Item {
	if i.Description != nil {
		d := *i.Description
		i.Description = &d
	}
	return i
}

// ItemPatch describes a partial update.
//
// A nil Name keeps the current name. Description follows nullable semantics:
// omitted keeps it, null clears it, a value replaces it.
type ItemPatch struct {
	Name        *string
	Description nullable.Nullable[string]
}
