package category

// CreateCategoryRequest - DTO for creating a new category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// UpdateCategoryRequest - DTO for updating a category; nil fields are left untouched.
// jobCount is intentionally absent: the counter is never client-writable.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ListFilter narrows a category listing. A nil IsActive returns all rows.
type ListFilter struct {
	IsActive *bool
}

// WithJobCount pairs a category with its exact job count recomputed from the
// live jobs collection, bypassing the denormalized counter.
type WithJobCount struct {
	Category
	ActualJobCount int `json:"actualJobCount"`
}
