package main

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/job360/directory/directory/category/categoryapi"
	"github.com/job360/directory/directory/category/categoryinfra"
	"github.com/job360/directory/directory/category/categorysrv"
	"github.com/job360/directory/directory/contact/contactapi"
	"github.com/job360/directory/directory/contact/contactinfra"
	"github.com/job360/directory/directory/contact/contactsrv"
	"github.com/job360/directory/directory/counter"
	"github.com/job360/directory/directory/counter/counterinfra"
	"github.com/job360/directory/directory/counter/worker"
	"github.com/job360/directory/directory/country/countryapi"
	"github.com/job360/directory/directory/country/countryinfra"
	"github.com/job360/directory/directory/country/countrysrv"
	"github.com/job360/directory/directory/job/jobapi"
	"github.com/job360/directory/directory/job/jobinfra"
	"github.com/job360/directory/directory/job/jobsrv"
	"github.com/job360/directory/pkg/config"
	"github.com/job360/directory/pkg/logx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Counter subsystem
	Maintainer *counter.Maintainer
	Reconciler *worker.Reconciler
	Queue      *counterinfra.RedisQueue

	// Domain Services
	JobService      *jobsrv.JobService
	CategoryService *categorysrv.CategoryService
	CountryService  *countrysrv.CountryService
	ContactService  *contactsrv.ContactService

	// API Handlers
	JobHandlers      *jobapi.Handlers
	CategoryHandlers *categoryapi.Handlers
	CountryHandlers  *countryapi.Handlers
	ContactHandlers  *contactapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPass,
		DB:       0,
	})
	if err := c.Redis.Ping(context.Background()).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	categoryRepo := categoryinfra.NewPostgresCategoryRepository(c.DB)
	countryRepo := countryinfra.NewPostgresCountryRepository(c.DB)
	contactRepo := contactinfra.NewPostgresContactRepository(c.DB)

	// --- Counter Subsystem ---
	c.Queue = counterinfra.NewRedisQueue(c.Redis, "counter:reconcile")
	c.Maintainer = counter.NewMaintainer(categoryRepo, countryRepo, c.Queue)
	c.Reconciler = worker.NewReconciler(c.Queue, categoryRepo, countryRepo, c.Config.ReconcileWorkers, c.Config.ReconcileInterval)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo, categoryRepo, countryRepo, c.Maintainer)
	c.CategoryService = categorysrv.NewCategoryService(categoryRepo, jobRepo)
	c.CountryService = countrysrv.NewCountryService(countryRepo, jobRepo)
	c.ContactService = contactsrv.NewContactService(contactRepo, contactinfra.NewConsoleNotifier())

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.CategoryHandlers = categoryapi.NewHandlers(c.CategoryService)
	c.CountryHandlers = countryapi.NewHandlers(c.CountryService)
	c.ContactHandlers = contactapi.NewHandlers(c.ContactService)
}
