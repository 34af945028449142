// internal/core/ports/lookup.go
package ports

import (
	"context"

	"huntx/internal/core/domain"
)

// LookupService is the port for the remote email-intelligence API.
// Each call wraps one blocking network round trip with a fixed timeout.
type LookupService interface {
	// DomainSearch returns the addresses known for a domain.
	DomainSearch(ctx context.Context, domain string) (*domain.DomainRecord, error)

	// EmailFinder discovers a person's address from a domain plus name details.
	EmailFinder(ctx context.Context, query FinderQuery) (*domain.PersonEmailRecord, error)

	// EmailVerifier checks the deliverability of an address.
	EmailVerifier(ctx context.Context, email string) (*domain.VerificationRecord, error)
}

// FinderQuery carries the name details for an email finder lookup.
// A non-empty FullName replaces FirstName/LastName: its first and last
// whitespace-separated tokens become the name pair, and a FullName
// that does not split sends no name details at all.
type FinderQuery struct {
	Domain    string
	FirstName string
	LastName  string
	FullName  string
}
