package dto

import (
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name   string              `json:"name" binding:"required"`
	Type   domain.CategoryType `json:"type" binding:"required,oneof=expense income"`
	Budget *decimal.Decimal    `json:"budget"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name   *string              `json:"name"`
	Type   *domain.CategoryType `json:"type" binding:"omitempty,oneof=expense income"`
	Budget *decimal.Decimal     `json:"budget"`
}

// CategoryResponse mirrors domain.Category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
	Budget     *decimal.Decimal    `json:"budget,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       c.Type,
		Budget:     c.Budget,
		CreatedAt:  c.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
