package jobapi

import (
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/kernel"
)

const maxPageSize = 100

var sortFieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// parseListFilter builds the filter from query parameters. isActive defaults
// to true; the literal "all" bypasses the active filter entirely.
func parseListFilter(c *fiber.Ctx) (job.ListFilter, error) {
	filter := job.ListFilter{
		Category:        kernel.CategoryID(c.Query("category")),
		Country:         kernel.CountryID(c.Query("country")),
		JobType:         job.JobType(c.Query("jobType")),
		ExperienceLevel: job.ExperienceLevel(c.Query("experienceLevel")),
		Search:          c.Query("search"),
	}

	switch c.Query("isActive") {
	case "", "true":
		active := true
		filter.IsActive = &active
	case "false":
		inactive := false
		filter.IsActive = &inactive
	case "all":
		// no active predicate
	default:
		return filter, job.ErrInvalidQuery().
			WithDetail("isActive", "must be true, false or all")
	}

	return filter, nil
}

// parseSort builds the sort order from sortBy/sortOrder. The field must be a
// bare identifier; the order defaults to descending.
func parseSort(c *fiber.Ctx) (job.Sort, error) {
	sort := job.DefaultSort()

	if field := c.Query("sortBy"); field != "" {
		if !sortFieldPattern.MatchString(field) {
			return sort, job.ErrInvalidQuery().
				WithDetail("sortBy", "must be a plain field name")
		}
		sort.Field = field
	}

	switch c.Query("sortOrder") {
	case "", "desc":
		sort.Desc = true
	case "asc":
		sort.Desc = false
	default:
		return sort, job.ErrInvalidQuery().
			WithDetail("sortOrder", "must be asc or desc")
	}

	return sort, nil
}

// parsePagination coerces page/limit. Non-integer values are rejected; values
// below one fall back to the defaults and limit is capped.
func parsePagination(c *fiber.Ctx) (kernel.PaginationOptions, error) {
	pagination := kernel.DefaultPagination()

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, job.ErrInvalidQuery().
				WithDetail("page", "must be an integer")
		}
		if page >= 1 {
			pagination.Page = page
		}
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, job.ErrInvalidQuery().
				WithDetail("limit", "must be an integer")
		}
		if limit >= 1 {
			pagination.PageSize = limit
		}
		if pagination.PageSize > maxPageSize {
			pagination.PageSize = maxPageSize
		}
	}

	return pagination, nil
}
