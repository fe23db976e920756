package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("EMAIL_SECRET", "")
	c := Load()

	assert.Equal(t, "development", c.Env)
	assert.Equal(t, devEmailSecret, c.EmailSecret)
	assert.Equal(t, 24*time.Hour, c.ConfirmTokenTTL)
	assert.Equal(t, "domain_events", c.RabbitMQEventsQueue)
	assert.True(t, c.RateLimitEnabled)
	assert.NoError(t, c.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONFIRM_TOKEN_TTL", "2h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("MAIL_SEND_ENABLED", "false")
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	c := Load()

	assert.Equal(t, 2*time.Hour, c.ConfirmTokenTTL)
	assert.Equal(t, 12, c.BcryptCost)
	assert.False(t, c.MailSendEnabled)
	assert.Equal(t, int32(10), c.DBMaxConns)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.CORSOrigins())
}

func TestValidate(t *testing.T) {
	c := &Config{Env: "production", EmailSecret: devEmailSecret}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_SECRET")
	assert.Contains(t, err.Error(), "CONFIRM_TOKEN_TTL")

	c = &Config{Env: "production", EmailSecret: "s3cr3t", ConfirmTokenTTL: time.Hour, MailSendEnabled: true}
	assert.NoError(t, c.Validate())
}

func TestValidateRejectsDisabledMailOutsideDevelopment(t *testing.T) {
	c := &Config{Env: "staging", EmailSecret: "s3cr3t", ConfirmTokenTTL: time.Hour, MailSendEnabled: false}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAIL_SEND_ENABLED")

	c.Env = "development"
	assert.NoError(t, c.Validate())
}

func TestPostgresDSNEscapesCredentials(t *testing.T) {
	c := &Config{DBUser: "app", DBPassword: "p@ss:w/rd", DBHost: "db", DBPort: "5432", DBName: "marketplace", DBSSLMode: "disable"}
	u, err := url.Parse(c.PostgresDSN())
	require.NoError(t, err)

	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss:w/rd", pw)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/marketplace", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}

func TestMailgunConfigured(t *testing.T) {
	assert.False(t, (&Config{MailgunDomain: "mg.example.com"}).MailgunConfigured())
	assert.True(t, (&Config{MailgunDomain: "mg.example.com", MailgunAPIKey: "key", MailgunSender: "no-reply@example.com"}).MailgunConfigured())
}
