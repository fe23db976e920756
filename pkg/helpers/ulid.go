package helpers

import "github.com/oklog/ulid/v2"

// NewULID returns a new 26-character Crockford base32 ULID.
func NewULID() string {
	return ulid.Make().String()
}

// ULIDGenerator adapts NewULID to the id generator port.
type ULIDGenerator struct{}

func (ULIDGenerator) NewID() string { return NewULID() }
