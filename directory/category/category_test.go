package category

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Technology", "technology"},
		{"Human Resources", "human-resources"},
		{"Sales & Marketing", "sales-marketing"},
		{"IT/Networking", "it-networking"},
		{"  Finance  ", "-finance-"},
		{"C++", "c-"},
		{"Éducation", "-ducation"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.name); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenameRecomputesSlug(t *testing.T) {
	c := &Category{Name: "Technology", Slug: Slugify("Technology")}

	c.Rename("Data Science")

	if c.Slug != "data-science" {
		t.Errorf("expected slug %q, got %q", "data-science", c.Slug)
	}
	if c.Name != "Data Science" {
		t.Errorf("expected name %q, got %q", "Data Science", c.Name)
	}
}
