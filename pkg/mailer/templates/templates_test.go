package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmAccount(t *testing.T) {
	data := NewConfirmAccountData(Brand{CompanyName: "Acme"}, "  Bob  ", "bob@example.com",
		"https://app.example.com/confirm/t?x=<y>",
		WithExpiresAt(time.Date(2025, 1, 2, 3, 4, 0, 0, time.FixedZone("WIB", 7*3600))))

	subject, text, html, err := Render(ConfirmAccount, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Mini Udemy - Confirm your account", subject)
	assert.Contains(t, text, "Hi Bob,")
	assert.Contains(t, text, "https://app.example.com/confirm/t?x=<y>")
	assert.Contains(t, text, "01 January 2025, 20:04 UTC")
	assert.Contains(t, text, "Acme")
	assert.NotContains(t, html, "<y>")
	assert.NotContains(t, html, "Need help?")
}

func TestRenderFallbacks(t *testing.T) {
	_, text, _, err := Render(ConfirmAccount, NewConfirmAccountData(Brand{}, "", "x@example.com", "https://x"))
	require.NoError(t, err)
	assert.Contains(t, text, "Hi there,")
	assert.Contains(t, text, "Mini Udemy")
	assert.NotContains(t, text, "expires")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", EmailData{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "x", defaultFn("x", ""))
	assert.Equal(t, "x", defaultFn("x", nil))
	assert.Equal(t, "x", defaultFn("x", 0))
	assert.Equal(t, 5, defaultFn("x", 5))
	assert.Equal(t, "v", defaultFn("x", "v"))
}
