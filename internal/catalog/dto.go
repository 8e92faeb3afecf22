package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryInput carries the fields accepted when creating a category.
type CreateCategoryInput struct {
	Name        string
	Icon        *string
	Description *string
	SortOrder   int
	Active      *bool
}

// UpdateCategoryInput carries the patchable category fields. Nil fields are
// left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Icon        *string
	Description *string
	SortOrder   *int
	Active      *bool
}

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Name            string
	Description     *string
	Price           decimal.Decimal
	Image           *string
	CategoryID      *uuid.UUID
	Ingredients     []string
	PreparationTime *int
	Available       *bool
	HasAddons       *bool
}

// UpdateProductInput carries the patchable product fields. Nil fields are
// left untouched.
type UpdateProductInput struct {
	Name            *string
	Description     *string
	Price           *decimal.Decimal
	Image           *string
	CategoryID      *uuid.UUID
	Ingredients     []string
	PreparationTime *int
	Available       *bool
	HasAddons       *bool
}

// ProductFilters describe the inputs supported by the product list.
type ProductFilters struct {
	CategoryID    *uuid.UUID
	AvailableOnly bool
	Query         string
}

// CategoryFilters describe the inputs supported by the category list.
type CategoryFilters struct {
	ActiveOnly bool
}
