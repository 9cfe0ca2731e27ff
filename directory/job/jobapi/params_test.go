package jobapi

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsed struct {
	filter     job.ListFilter
	sort       job.Sort
	pagination kernel.PaginationOptions
	err        error
}

// parseQuery runs the query parsers against a real request, capturing the
// outcome of the first parser that fails.
func parseQuery(t *testing.T, rawQuery string) parsed {
	t.Helper()

	var out parsed
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		out.filter, out.err = parseListFilter(c)
		if out.err != nil {
			return nil
		}
		out.sort, out.err = parseSort(c)
		if out.err != nil {
			return nil
		}
		out.pagination, out.err = parsePagination(c)
		return nil
	})

	req, err := http.NewRequest(http.MethodGet, "/probe?"+rawQuery, nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	return out
}

func TestParseListFilterDefaultsToActive(t *testing.T) {
	out := parseQuery(t, "")
	require.NoError(t, out.err)
	require.NotNil(t, out.filter.IsActive)
	assert.True(t, *out.filter.IsActive)
}

func TestParseListFilterIsActive(t *testing.T) {
	tests := []struct {
		value   string
		want    *bool
		wantErr bool
	}{
		{value: "true", want: boolPtr(true)},
		{value: "false", want: boolPtr(false)},
		{value: "all", want: nil},
		{value: "yes", wantErr: true},
		{value: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			out := parseQuery(t, "isActive="+tt.value)
			if tt.wantErr {
				require.Error(t, out.err)
				return
			}
			require.NoError(t, out.err)
			if tt.want == nil {
				assert.Nil(t, out.filter.IsActive)
			} else {
				require.NotNil(t, out.filter.IsActive)
				assert.Equal(t, *tt.want, *out.filter.IsActive)
			}
		})
	}
}

func TestParseListFilterFields(t *testing.T) {
	out := parseQuery(t, "category=cat-1&country=cty-1&jobType=contract&experienceLevel=senior&search=golang")
	require.NoError(t, out.err)

	assert.Equal(t, kernel.CategoryID("cat-1"), out.filter.Category)
	assert.Equal(t, kernel.CountryID("cty-1"), out.filter.Country)
	assert.Equal(t, job.JobTypeContract, out.filter.JobType)
	assert.Equal(t, job.ExperienceSenior, out.filter.ExperienceLevel)
	assert.Equal(t, "golang", out.filter.Search)
}

func TestParseSortDefaults(t *testing.T) {
	out := parseQuery(t, "")
	require.NoError(t, out.err)
	assert.Equal(t, "createdAt", out.sort.Field)
	assert.True(t, out.sort.Desc)
}

func TestParseSortAscending(t *testing.T) {
	out := parseQuery(t, "sortBy=title&sortOrder=asc")
	require.NoError(t, out.err)
	assert.Equal(t, "title", out.sort.Field)
	assert.False(t, out.sort.Desc)
}

func TestParseSortRejectsNonIdentifier(t *testing.T) {
	out := parseQuery(t, "sortBy=created-at%20DESC")
	require.Error(t, out.err)

	out = parseQuery(t, "sortOrder=sideways")
	require.Error(t, out.err)
}

func TestParsePaginationDefaults(t *testing.T) {
	out := parseQuery(t, "")
	require.NoError(t, out.err)
	assert.Equal(t, 1, out.pagination.Page)
	assert.Equal(t, 20, out.pagination.PageSize)
}

func TestParsePaginationCoercion(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
		wantErr  bool
	}{
		{name: "explicit", query: "page=3&limit=50", page: 3, pageSize: 50},
		{name: "below one falls back", query: "page=0&limit=-5", page: 1, pageSize: 20},
		{name: "limit capped", query: "limit=500", page: 1, pageSize: 100},
		{name: "non-integer page", query: "page=abc", wantErr: true},
		{name: "non-integer limit", query: "limit=ten", wantErr: true},
		{name: "fractional page", query: "page=1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parseQuery(t, tt.query)
			if tt.wantErr {
				require.Error(t, out.err)
				return
			}
			require.NoError(t, out.err)
			assert.Equal(t, tt.page, out.pagination.Page)
			assert.Equal(t, tt.pageSize, out.pagination.PageSize)
		})
	}
}

func boolPtr(v bool) *bool { return &v }
