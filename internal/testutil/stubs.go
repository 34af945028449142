// internal/testutil/stubs.go
package testutil

import (
	"context"
	"sync"
	"time"

	"huntx/internal/core/domain"
	"huntx/internal/core/ports"
	"huntx/internal/platform/errors"
)

// StubLookupService is a deterministic LookupService for tests. It
// returns a fixed record per item, fails the items listed in FailItems,
// optionally sleeps per call, and tracks the in-flight high-water mark
// so tests can verify the pool bound.
type StubLookupService struct {
	// Delay is slept inside every call.
	Delay time.Duration

	// FailItems lists items whose lookups return an error.
	FailItems map[string]bool

	mu          sync.Mutex
	calls       int
	inFlight    int
	maxInFlight int
}

var _ ports.LookupService = (*StubLookupService)(nil)

// NewStubLookupService creates a stub that succeeds for every item.
func NewStubLookupService() *StubLookupService {
	return &StubLookupService{FailItems: map[string]bool{}}
}

func (s *StubLookupService) DomainSearch(ctx context.Context, dom string) (*domain.DomainRecord, error) {
	if err := s.call(ctx, dom); err != nil {
		return nil, err
	}
	return &domain.DomainRecord{
		Domain:  dom,
		Pattern: "{first}.{last}",
		Emails: []domain.DomainEmail{
			{Value: "contact@" + dom, Type: "generic", Confidence: 90},
		},
		EmailCount: 1,
	}, nil
}

func (s *StubLookupService) EmailFinder(ctx context.Context, query ports.FinderQuery) (*domain.PersonEmailRecord, error) {
	if err := s.call(ctx, query.Domain); err != nil {
		return nil, err
	}
	return &domain.PersonEmailRecord{
		Email:      "person@" + query.Domain,
		Confidence: 80,
		FirstName:  query.FirstName,
		LastName:   query.LastName,
	}, nil
}

func (s *StubLookupService) EmailVerifier(ctx context.Context, email string) (*domain.VerificationRecord, error) {
	if err := s.call(ctx, email); err != nil {
		return nil, err
	}
	return &domain.VerificationRecord{
		Email:     email,
		Result:    "deliverable",
		Score:     95,
		Regexp:    true,
		MXRecords: true,
	}, nil
}

// call records call accounting and decides the outcome for an item.
func (s *StubLookupService) call(ctx context.Context, item string) error {
	s.mu.Lock()
	s.calls++
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	fail := s.FailItems[item]
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.Delay):
		}
	}

	if fail {
		return errors.Wrapf(errors.ErrServiceUnavailable, "stubbed failure for %s", item)
	}
	return nil
}

// Calls returns the total number of lookups performed.
func (s *StubLookupService) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// MaxInFlight returns the in-flight high-water mark.
func (s *StubLookupService) MaxInFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}
