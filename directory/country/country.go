package country

import (
	"time"

	"github.com/job360/directory/pkg/kernel"
)

// Currency is the nested currency sub-document of a country.
type Currency struct {
	Code   string `json:"code,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

type Country struct {
	ID        kernel.CountryID `json:"id"`
	Name      string           `json:"name"`
	Code      string           `json:"code"`
	Flag      string           `json:"flag,omitempty"`
	Currency  Currency         `json:"currency"`
	Timezone  string           `json:"timezone,omitempty"`
	IsActive  bool             `json:"isActive"`
	JobCount  int              `json:"jobCount"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Clone returns a copy safe to hand across store boundaries.
func (c *Country) Clone() *Country {
	clone := *c
	return &clone
}
