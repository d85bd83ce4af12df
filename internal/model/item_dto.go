package model

import (
	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/lib/nullable"
	"github.com/deppfellow/items-api/internal/validation"
)

// Field limits shared by create and update payloads.
const (
	NameMinLength        = 1
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

// ListItemsRequest carries no input; it exists so listing goes through the
// same bind/validate pipeline as every other route.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// CreateItemRequest is the POST /api/items/ body.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateItemRequest) RequiresBody() bool {
	return true
}

// ItemIDRequest is used by routes that only take the path id.
type ItemIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"min=1"`
}

func (r *ItemIDRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateItemRequest is the PATCH /api/items/{id} body plus its path id.
type UpdateItemRequest struct {
	ID          int64                     `param:"id" json:"-" validate:"min=1"`
	Name        nullable.Nullable[string] `json:"name" validate:"omitnil,min=1,max=100"`
	Description nullable.Nullable[string] `json:"description" validate:"omitnil,max=500"`
}

func (r *UpdateItemRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	// Description may be cleared with null, name may not.
	if r.Name.Set && r.Name.Null {
		return validation.CustomValidationErrors{{
			Source:  errs.LocationBody,
			Field:   "name",
			Message: "must not be null",
			Type:    "not_null",
		}}
	}

	return nil
}

// RequiresBody is true: an update must send an object, even an empty one.
func (r *UpdateItemRequest) RequiresBody() bool {
	return true
}

// Patch converts the payload into a store patch.
func (r *UpdateItemRequest) Patch() ItemPatch {
	return ItemPatch{
		Name:        r.Name.Ptr(),
		Description: r.Description,
	}
}
