package kernel

import "testing"

func TestNewPage(t *testing.T) {
	tests := []struct {
		name    string
		opts    PaginationOptions
		total   int
		pages   int
		hasNext bool
		hasPrev bool
	}{
		{"first of two", PaginationOptions{Page: 1, PageSize: 20}, 25, 2, true, false},
		{"last of two", PaginationOptions{Page: 2, PageSize: 20}, 25, 2, false, true},
		{"exact fit", PaginationOptions{Page: 1, PageSize: 20}, 20, 1, false, false},
		{"empty", PaginationOptions{Page: 1, PageSize: 20}, 0, 0, false, false},
		{"middle", PaginationOptions{Page: 2, PageSize: 10}, 35, 4, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.opts, tt.total)
			if p.Pages != tt.pages {
				t.Errorf("expected %d pages, got %d", tt.pages, p.Pages)
			}
			if p.HasNext != tt.hasNext {
				t.Errorf("expected HasNext=%v, got %v", tt.hasNext, p.HasNext)
			}
			if p.HasPrev != tt.hasPrev {
				t.Errorf("expected HasPrev=%v, got %v", tt.hasPrev, p.HasPrev)
			}
			if p.Total != tt.total {
				t.Errorf("expected total %d, got %d", tt.total, p.Total)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	if got := (PaginationOptions{Page: 1, PageSize: 20}).Offset(); got != 0 {
		t.Errorf("expected offset 0, got %d", got)
	}
	if got := (PaginationOptions{Page: 3, PageSize: 20}).Offset(); got != 40 {
		t.Errorf("expected offset 40, got %d", got)
	}
}
