package jobinfra

import (
	"testing"

	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/kernel"
	"github.com/stretchr/testify/assert"
)

func TestBuildPredicateEmptyFilter(t *testing.T) {
	where, args := buildPredicate(job.ListFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildPredicateCombinesConditions(t *testing.T) {
	active := true
	where, args := buildPredicate(job.ListFilter{
		IsActive: &active,
		Category: kernel.CategoryID("cat-1"),
		JobType:  job.JobTypeContract,
		Search:   "golang",
	})

	assert.Equal(t,
		"WHERE j.is_active = $1 AND j.category_id = $2 AND j.job_type = $3 "+
			"AND (j.title ILIKE $4 OR j.company ILIKE $4 OR j.description ILIKE $4)",
		where)
	assert.Equal(t, []interface{}{true, "cat-1", "contract", "%golang%"}, args)
}

func TestBuildPredicateOmitsAbsentFields(t *testing.T) {
	where, args := buildPredicate(job.ListFilter{
		Country: kernel.CountryID("cty-1"),
	})

	assert.Equal(t, "WHERE j.country_id = $1", where)
	assert.Equal(t, []interface{}{"cty-1"}, args)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name string
		sort job.Sort
		want string
	}{
		{name: "default", sort: job.DefaultSort(), want: "ORDER BY j.created_at DESC"},
		{name: "camel case mapped", sort: job.Sort{Field: "jobType"}, want: "ORDER BY j.job_type ASC"},
		{name: "plain field", sort: job.Sort{Field: "title", Desc: true}, want: "ORDER BY j.title DESC"},
		{name: "injection falls back", sort: job.Sort{Field: "title; DROP TABLE jobs"}, want: "ORDER BY j.created_at ASC"},
		{name: "empty falls back", sort: job.Sort{Field: ""}, want: "ORDER BY j.created_at ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sort))
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "created_at", camelToSnake("createdAt"))
	assert.Equal(t, "experience_level", camelToSnake("experienceLevel"))
	assert.Equal(t, "views", camelToSnake("views"))
}
