package templates

import (
	"strings"
	"time"
)

// Brand is the company information stamped on every email.
type Brand struct {
	CompanyName string
	AppName     string
	LogoURL     string
	SupportURL  string
}

type Option func(*EmailData)

func WithConfirmURL(url string) Option { return func(d *EmailData) { d.ConfirmURL = url } }

func WithExpiresAt(t time.Time) Option {
	return func(d *EmailData) {
		if t.IsZero() {
			return
		}
		utc := t.UTC()
		d.ExpiresAt = utc
		d.ExpiresAtText = utc.Format("02 January 2006, 15:04 MST")
	}
}

// NewBaseEmailData fills the brand fields, then applies opts.
func NewBaseEmailData(b Brand, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:        strings.TrimSpace(name),
		Email:       email,
		CompanyName: b.CompanyName,
		AppName:     b.AppName,
		LogoURL:     b.LogoURL,
		SupportURL:  b.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewConfirmAccountData(b Brand, name, email, confirmURL string, opts ...Option) EmailData {
	opts = append([]Option{WithConfirmURL(confirmURL)}, opts...)
	return NewBaseEmailData(b, name, email, opts...)
}
