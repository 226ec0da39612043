package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Rate limit config (fixed window per client IP)
const RATE_LIMIT_WINDOW_MS = 10 * 60 * 1000
const RATE_LIMIT_MAX = 5

// Sanity content lake config
const SANITY_API_VERSION = "2024-01-01"
const SANITY_QUERY_BASE_FORMAT = "https://%s.apicdn.sanity.io/v%s/data/query/%s"
const SANITY_BOOKED_DATES_QUERY = `*[_type == "availability"]|order(_updatedAt desc)[0].bookedDates`
const SANITY_DEFAULT_DATASET = "production"

// Resend email API config
const RESEND_ENDPOINT_BASE = "https://api.resend.com"
const DEFAULT_SMTP_FROM = "Loft 442 <onboarding@resend.dev>"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const BOOKED_DATES_RESOURCE = "booked_dates.json"

const DEFAULT_HTTP_ADDR = ":8080"

// Sanity project ids only ever contain lowercase letters, digits, and dashes.
// Anything else means the deployment is not pointed at a real project.
var sanityProjectIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Config aggregates the environment-derived settings. Missing collaborator
// credentials are not an error here: the affected feature degrades at
// request time instead of preventing startup.
type Config struct {
	Env             string
	HTTPAddr        string
	SanityProjectID string
	SanityDataset   string
	ResendAPIKey    string
	LeadsToEmail    string
	SMTPFrom        string
	RedisAddr       string
}

// Load reads the configuration from the current environment.
func Load() Config {
	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPAddr:        getEnv("HTTP_ADDR", DEFAULT_HTTP_ADDR),
		SanityProjectID: os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:   getEnv("SANITY_DATASET", SANITY_DEFAULT_DATASET),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		LeadsToEmail:    os.Getenv("LEADS_TO_EMAIL"),
		SMTPFrom:        getEnv("SMTP_FROM", DEFAULT_SMTP_FROM),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
	}
}

// Validate checks the settings the server cannot run without. Collaborator
// credentials are deliberately not required here.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Env, validation.Required, validation.In("dev", "test", "prod")),
		validation.Field(&c.HTTPAddr, validation.Required),
		validation.Field(&c.SanityDataset, validation.Required),
		validation.Field(&c.SMTPFrom, validation.Required),
	)
}

// SanityConfigured reports whether availability reads can be served from a
// real project. When false, all reads degrade to an empty booked-day set.
func (c *Config) SanityConfigured() bool {
	return c.SanityProjectID != "" && sanityProjectIDPattern.MatchString(c.SanityProjectID)
}

// EmailConfigured reports whether inquiry submissions can be forwarded.
func (c *Config) EmailConfigured() bool {
	return c.ResendAPIKey != "" && c.LeadsToEmail != ""
}

// SanityQueryBaseURL builds the query endpoint for one project and dataset.
func SanityQueryBaseURL(projectID, dataset string) string {
	return fmt.Sprintf(SANITY_QUERY_BASE_FORMAT, projectID, SANITY_API_VERSION, dataset)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
