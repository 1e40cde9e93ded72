package domain

import "github.com/lithammer/shortuuid/v3"

// NewPublicKey returns a short, URL-safe key suitable for the domain id.
func NewPublicKey() string {
	return shortuuid.New()
}
