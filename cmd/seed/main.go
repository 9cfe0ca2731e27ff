package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/directory/category/categoryinfra"
	"github.com/job360/directory/directory/category/categorysrv"
	"github.com/job360/directory/directory/counter"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/directory/country/countryinfra"
	"github.com/job360/directory/directory/country/countrysrv"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/directory/job/jobinfra"
	"github.com/job360/directory/directory/job/jobsrv"
	"github.com/job360/directory/pkg/config"
	"github.com/job360/directory/pkg/kernel"
	"github.com/job360/directory/pkg/logx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Seeds the database with the starter categories, countries and a few sample
// jobs. Jobs go through the service so the counters are produced by the
// normal write path instead of being set by hand.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logx.Fatalf("Failed to load config: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	jobRepo := jobinfra.NewPostgresJobRepository(db)
	categoryRepo := categoryinfra.NewPostgresCategoryRepository(db)
	countryRepo := countryinfra.NewPostgresCountryRepository(db)

	maintainer := counter.NewMaintainer(categoryRepo, countryRepo, nil)
	jobService := jobsrv.NewJobService(jobRepo, categoryRepo, countryRepo, maintainer)
	categoryService := categorysrv.NewCategoryService(categoryRepo, jobRepo)
	countryService := countrysrv.NewCountryService(countryRepo, jobRepo)

	logx.Info("Seeding categories...")
	categoryIDs := make(map[string]kernel.CategoryID)
	for _, req := range seedCategories {
		created, err := categoryService.CreateCategory(ctx, req)
		if err != nil {
			logx.Fatalf("Failed to seed category %q: %v", req.Name, err)
		}
		categoryIDs[created.Name] = created.ID
	}

	logx.Info("Seeding countries...")
	countryIDs := make(map[string]kernel.CountryID)
	for _, req := range seedCountries {
		created, err := countryService.CreateCountry(ctx, req)
		if err != nil {
			logx.Fatalf("Failed to seed country %q: %v", req.Name, err)
		}
		countryIDs[created.Name] = created.ID
	}

	logx.Info("Seeding jobs...")
	for _, build := range seedJobs {
		req := build(categoryIDs, countryIDs)
		if _, err := jobService.CreateJob(ctx, req); err != nil {
			logx.Fatalf("Failed to seed job %q: %v", req.Title, err)
		}
	}

	logx.Infof("Seeding complete: %d categories, %d countries, %d jobs",
		len(seedCategories), len(seedCountries), len(seedJobs))
}

var seedCategories = []category.CreateCategoryRequest{
	{Name: "Healthcare", Description: "Medical and healthcare related positions", Icon: "\U0001F3E5", Color: "#10B981"},
	{Name: "Technology", Description: "Software development and IT positions", Icon: "\U0001F4BB", Color: "#3B82F6"},
	{Name: "Finance", Description: "Banking, accounting and financial services", Icon: "\U0001F4B0", Color: "#F59E0B"},
	{Name: "Education", Description: "Teaching and educational positions", Icon: "\U0001F4DA", Color: "#8B5CF6"},
	{Name: "Marketing", Description: "Marketing and advertising roles", Icon: "\U0001F4C8", Color: "#EF4444"},
	{Name: "Engineering", Description: "Engineering and technical positions", Icon: "⚙️", Color: "#6B7280"},
}

var seedCountries = []country.CreateCountryRequest{
	{Name: "Saudi Arabia", Code: "SA", Flag: "\U0001F1F8\U0001F1E6", Currency: country.Currency{Code: "SAR", Symbol: "ر.س"}, Timezone: "Asia/Riyadh"},
	{Name: "United States", Code: "US", Flag: "\U0001F1FA\U0001F1F8", Currency: country.Currency{Code: "USD", Symbol: "$"}, Timezone: "America/New_York"},
	{Name: "United Kingdom", Code: "GB", Flag: "\U0001F1EC\U0001F1E7", Currency: country.Currency{Code: "GBP", Symbol: "£"}, Timezone: "Europe/London"},
	{Name: "Canada", Code: "CA", Flag: "\U0001F1E8\U0001F1E6", Currency: country.Currency{Code: "CAD", Symbol: "C$"}, Timezone: "America/Toronto"},
	{Name: "Australia", Code: "AU", Flag: "\U0001F1E6\U0001F1FA", Currency: country.Currency{Code: "AUD", Symbol: "A$"}, Timezone: "Australia/Sydney"},
	{Name: "Germany", Code: "DE", Flag: "\U0001F1E9\U0001F1EA", Currency: country.Currency{Code: "EUR", Symbol: "€"}, Timezone: "Europe/Berlin"},
}

type jobBuilder func(categories map[string]kernel.CategoryID, countries map[string]kernel.CountryID) job.CreateJobRequest

var seedJobs = []jobBuilder{
	func(categories map[string]kernel.CategoryID, countries map[string]kernel.CountryID) job.CreateJobRequest {
		featured := true
		return job.CreateJobRequest{
			Title:           "Ward Boys Needed for King Fahd Medical City",
			Company:         "Saudi Arabia Hospitals",
			Description:     "We are looking for dedicated ward boys to join our team at King Fahd Medical City. The ideal candidate will assist nursing staff and ensure patient comfort.",
			Requirements:    "High school diploma or equivalent, previous hospital experience preferred, good communication skills, physical fitness required.",
			Category:        categories["Healthcare"],
			Country:         countries["Saudi Arabia"],
			Location:        job.Location{City: "Riyadh", State: "Riyadh Province", Address: "King Fahd Medical City, Riyadh"},
			JobType:         job.JobTypeFullTime,
			ExperienceLevel: job.ExperienceEntry,
			ExperienceRange: &job.ExperienceRange{Min: 1, Max: 3, Unit: job.ExperienceUnitYears},
			Salary:          &job.Salary{Min: floatPtr(25000), Max: floatPtr(35000), Currency: "SAR", Period: job.SalaryPeriodYearly},
			Vacancies:       20,
			Qualifications:  []string{"10th Pass / Experience Preferred", "Physical fitness required"},
			Skills:          []string{"Patient care", "Communication", "Teamwork"},
			Benefits:        []string{"Health insurance", "Annual leave", "Training provided"},
			ContactEmail:    "hr@saudihospitals.com",
			ContactPhone:    "+966-11-123-4567",
			IsFeatured:      &featured,
		}
	},
	func(categories map[string]kernel.CategoryID, countries map[string]kernel.CountryID) job.CreateJobRequest {
		return job.CreateJobRequest{
			Title:           "Senior Software Engineer",
			Company:         "Tech Solutions Inc",
			Description:     "Join our dynamic team as a Senior Software Engineer. You will be responsible for developing scalable web applications and mentoring junior developers.",
			Requirements:    "Bachelor's degree in Computer Science, 5+ years of experience in software development.",
			Category:        categories["Technology"],
			Country:         countries["United States"],
			Location:        job.Location{City: "San Francisco", State: "California", Address: "Tech Hub, San Francisco"},
			JobType:         job.JobTypeFullTime,
			ExperienceLevel: job.ExperienceSenior,
			ExperienceRange: &job.ExperienceRange{Min: 5, Max: 8, Unit: job.ExperienceUnitYears},
			Salary:          &job.Salary{Min: floatPtr(120000), Max: floatPtr(150000), Currency: "USD", Period: job.SalaryPeriodYearly},
			Vacancies:       3,
			Qualifications:  []string{"Bachelor's degree in Computer Science", "5+ years experience"},
			Skills:          []string{"Go", "PostgreSQL", "Redis", "Docker"},
			Benefits:        []string{"Health insurance", "Stock options", "Remote work", "401k"},
			ContactEmail:    "careers@techsolutions.com",
			ContactPhone:    "+1-555-123-4567",
		}
	},
	func(categories map[string]kernel.CategoryID, countries map[string]kernel.CountryID) job.CreateJobRequest {
		return job.CreateJobRequest{
			Title:           "Marketing Manager",
			Company:         "Global Marketing Agency",
			Description:     "We are seeking an experienced Marketing Manager to lead our digital marketing campaigns and drive brand growth.",
			Requirements:    "MBA in Marketing preferred, 3+ years of marketing experience, expertise in digital marketing strategies.",
			Category:        categories["Marketing"],
			Country:         countries["United Kingdom"],
			Location:        job.Location{City: "London", State: "England", Address: "Marketing District, London"},
			JobType:         job.JobTypeFullTime,
			ExperienceLevel: job.ExperienceMid,
			ExperienceRange: &job.ExperienceRange{Min: 3, Max: 5, Unit: job.ExperienceUnitYears},
			Salary:          &job.Salary{Min: floatPtr(45000), Max: floatPtr(60000), Currency: "GBP", Period: job.SalaryPeriodYearly},
			Vacancies:       2,
			Qualifications:  []string{"MBA in Marketing preferred", "3+ years experience"},
			Skills:          []string{"Digital Marketing", "SEO", "Social Media", "Analytics"},
			Benefits:        []string{"Health insurance", "Pension scheme", "Flexible hours"},
			ContactEmail:    "hr@globalmarketing.co.uk",
			ContactPhone:    "+44-20-1234-5678",
		}
	},
}

func floatPtr(v float64) *float64 { return &v }
