package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SANITY_PROJECT_ID", "")
	t.Setenv("SANITY_DATASET", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("LEADS_TO_EMAIL", "")
	t.Setenv("SMTP_FROM", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DEFAULT_HTTP_ADDR, cfg.HTTPAddr)
	assert.Equal(t, SANITY_DEFAULT_DATASET, cfg.SanityDataset)
	assert.Equal(t, DEFAULT_SMTP_FROM, cfg.SMTPFrom)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_DATASET", "staging")
	t.Setenv("RESEND_API_KEY", "re_key")
	t.Setenv("LEADS_TO_EMAIL", "leads@loft442.com")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "abc123", cfg.SanityProjectID)
	assert.Equal(t, "staging", cfg.SanityDataset)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.SanityConfigured())
	assert.True(t, cfg.EmailConfigured())
}

func TestValidate_RejectsUnknownEnv(t *testing.T) {
	cfg := Config{Env: "staging", HTTPAddr: ":8080", SanityDataset: "production", SMTPFrom: DEFAULT_SMTP_FROM}

	assert.Error(t, cfg.Validate())
}

func TestSanityConfigured(t *testing.T) {
	tests := []struct {
		name      string
		projectID string
		want      bool
	}{
		{"Empty", "", false},
		{"Valid", "abc123", true},
		{"Valid With Dash", "my-project-1", true},
		{"Uppercase Rejected", "ABC123", false},
		{"Path Traversal Rejected", "../evil", false},
		{"Whitespace Rejected", "abc 123", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Config{SanityProjectID: test.projectID}
			assert.Equal(t, test.want, cfg.SanityConfigured())
		})
	}
}

func TestEmailConfigured(t *testing.T) {
	assert.False(t, (&Config{}).EmailConfigured())
	assert.False(t, (&Config{ResendAPIKey: "re_key"}).EmailConfigured())
	assert.False(t, (&Config{LeadsToEmail: "leads@loft442.com"}).EmailConfigured())
	assert.True(t, (&Config{ResendAPIKey: "re_key", LeadsToEmail: "leads@loft442.com"}).EmailConfigured())
}

func TestSanityQueryBaseURL(t *testing.T) {
	got := SanityQueryBaseURL("abc123", "production")

	assert.Equal(t, "https://abc123.apicdn.sanity.io/v2024-01-01/data/query/production", got)
}
