package category

import (
	"strings"
	"time"

	"github.com/job360/directory/pkg/kernel"
)

// DefaultColor is applied when a category is created without one.
const DefaultColor = "#667eea"

type Category struct {
	ID          kernel.CategoryID `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Color       string            `json:"color"`
	IsActive    bool              `json:"isActive"`
	JobCount    int               `json:"jobCount"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Slugify derives the URL slug from a category name: lowercased, every run of
// non-alphanumeric characters collapsed to a single hyphen. It is a pure
// function of the name; the slug is recomputed whenever the name changes.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	prevHyphen := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return b.String()
}

// Rename updates the name and recomputes the slug.
func (c *Category) Rename(name string) {
	c.Name = name
	c.Slug = Slugify(name)
	c.UpdatedAt = time.Now()
}

// Clone returns a copy safe to hand across store boundaries.
func (c *Category) Clone() *Category {
	clone := *c
	return &clone
}
