package country

// CreateCountryRequest - DTO for creating a new country
type CreateCountryRequest struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Code     string   `json:"code" validate:"required,min=2,max=3"`
	Flag     string   `json:"flag,omitempty"`
	Currency Currency `json:"currency,omitempty"`
	Timezone string   `json:"timezone,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// UpdateCountryRequest - DTO for updating a country; nil fields are left untouched.
// jobCount is intentionally absent: the counter is never client-writable.
type UpdateCountryRequest struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Code     *string   `json:"code,omitempty" validate:"omitempty,min=2,max=3"`
	Flag     *string   `json:"flag,omitempty"`
	Currency *Currency `json:"currency,omitempty"`
	Timezone *string   `json:"timezone,omitempty"`
	IsActive *bool     `json:"isActive,omitempty"`
}

// ListFilter narrows a country listing. A nil IsActive returns all rows.
type ListFilter struct {
	IsActive *bool
}

// WithJobCount pairs a country with its exact job count recomputed from the
// live jobs collection, bypassing the denormalized counter.
type WithJobCount struct {
	Country
	ActualJobCount int `json:"actualJobCount"`
}
