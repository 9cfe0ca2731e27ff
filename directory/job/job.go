package job

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/job360/directory/pkg/kernel"
)

// JobType represents the employment kind of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship:
		return true
	}
	return false
}

// ExperienceLevel represents the seniority of a posting.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

type ExperienceUnit string

const (
	ExperienceUnitYears  ExperienceUnit = "years"
	ExperienceUnitMonths ExperienceUnit = "months"
)

type SalaryPeriod string

const (
	SalaryPeriodHourly  SalaryPeriod = "hourly"
	SalaryPeriodMonthly SalaryPeriod = "monthly"
	SalaryPeriodYearly  SalaryPeriod = "yearly"
)

// Location is the nested place-of-work document.
type Location struct {
	City    string `json:"city" validate:"required"`
	State   string `json:"state,omitempty"`
	Address string `json:"address,omitempty"`
}

// ExperienceRange is the nested required-experience document.
type ExperienceRange struct {
	Min  int            `json:"min"`
	Max  int            `json:"max"`
	Unit ExperienceUnit `json:"unit"`
}

// Salary is the nested compensation document. Min and Max are pointers so a
// missing bound can be told apart from zero.
type Salary struct {
	Min      *float64     `json:"min,omitempty"`
	Max      *float64     `json:"max,omitempty"`
	Currency string       `json:"currency"`
	Period   SalaryPeriod `json:"period"`
}

// Currency mirrors the country currency sub-document carried by wide projections.
type Currency struct {
	Code   string `json:"code,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// CategorySummary is the restricted category projection attached to listed jobs.
// Icon is only present on the wider single-job projection.
type CategorySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// CountrySummary is the restricted country projection attached to listed jobs.
// Currency is only present on the wider single-job projection.
type CountrySummary struct {
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	Flag     string    `json:"flag,omitempty"`
	Currency *Currency `json:"currency,omitempty"`
}

type Job struct {
	ID           kernel.JobID      `json:"id"`
	Title        string            `json:"title"`
	Company      string            `json:"company"`
	Description  string            `json:"description"`
	Requirements string            `json:"requirements,omitempty"`
	CategoryID   kernel.CategoryID `json:"categoryId"`
	CountryID    kernel.CountryID  `json:"countryId"`

	// Populated projections, present only on reads that request them.
	Category *CategorySummary `json:"category,omitempty"`
	Country  *CountrySummary  `json:"country,omitempty"`

	Location            Location        `json:"location"`
	JobType             JobType         `json:"jobType"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel"`
	ExperienceRange     ExperienceRange `json:"experienceRange"`
	Salary              Salary          `json:"salary"`
	Vacancies           int             `json:"vacancies"`
	Qualifications      []string        `json:"qualifications"`
	Skills              []string        `json:"skills"`
	Benefits            []string        `json:"benefits"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty"`
	ContactEmail        string          `json:"contactEmail,omitempty"`
	ContactPhone        string          `json:"contactPhone,omitempty"`
	IsActive            bool            `json:"isActive"`
	IsFeatured          bool            `json:"isFeatured"`
	Views               int             `json:"views"`
	Applications        int             `json:"applications"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// ============================================================================
// Derived Display Fields
// ============================================================================

// ExperienceDisplay renders the experience range as a human-readable string.
// Computed on read, never persisted.
func (j *Job) ExperienceDisplay() string {
	r := j.ExperienceRange
	if r.Min == r.Max {
		return fmt.Sprintf("%d %s", r.Min, r.Unit)
	}
	return fmt.Sprintf("%d-%d %s", r.Min, r.Max, r.Unit)
}

// SalaryDisplay renders the salary range as a human-readable string.
// Computed on read, never persisted.
func (j *Job) SalaryDisplay() string {
	s := j.Salary
	if s.Min == nil && s.Max == nil {
		return "Negotiable"
	}
	if s.Min != nil && s.Max != nil {
		return fmt.Sprintf("%s %s - %s %s", s.Currency, formatAmount(*s.Min), formatAmount(*s.Max), s.Period)
	}
	if s.Min != nil {
		return fmt.Sprintf("%s %s+ %s", s.Currency, formatAmount(*s.Min), s.Period)
	}
	return fmt.Sprintf("Up to %s %s %s", s.Currency, formatAmount(*s.Max), s.Period)
}

// formatAmount renders an amount with thousands separators, dropping a zero
// fraction ("45000" -> "45,000", "1250.5" -> "1,250.5").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Clone returns a deep copy safe to hand across store boundaries.
func (j *Job) Clone() *Job {
	clone := *j
	if j.Category != nil {
		cat := *j.Category
		clone.Category = &cat
	}
	if j.Country != nil {
		cty := *j.Country
		clone.Country = &cty
	}
	if j.Salary.Min != nil {
		v := *j.Salary.Min
		clone.Salary.Min = &v
	}
	if j.Salary.Max != nil {
		v := *j.Salary.Max
		clone.Salary.Max = &v
	}
	if j.ApplicationDeadline != nil {
		d := *j.ApplicationDeadline
		clone.ApplicationDeadline = &d
	}
	clone.Qualifications = append([]string(nil), j.Qualifications...)
	clone.Skills = append([]string(nil), j.Skills...)
	clone.Benefits = append([]string(nil), j.Benefits...)
	return &clone
}
