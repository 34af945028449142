// internal/core/domain/enums.go
package domain

import "strings"

// Operation identifies one of the three remote lookup operations.
type Operation string

const (
	OperationDomainSearch  Operation = "domain-search"
	OperationEmailFinder   Operation = "email-finder"
	OperationEmailVerifier Operation = "email-verifier"
)

// ParseOperation parses a user-supplied operation name.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "domain-search", "domain", "search":
		return OperationDomainSearch, nil
	case "email-finder", "finder", "find":
		return OperationEmailFinder, nil
	case "email-verifier", "verifier", "verify":
		return OperationEmailVerifier, nil
	default:
		return "", ErrUnknownOperation
	}
}

// String returns the canonical operation name.
func (o Operation) String() string {
	return string(o)
}

// ItemKind returns the kind of input item the operation consumes.
func (o Operation) ItemKind() ItemKind {
	if o == OperationEmailVerifier {
		return ItemKindEmail
	}
	return ItemKindDomain
}

// ItemKind distinguishes the two kinds of raw input items.
type ItemKind string

const (
	ItemKindDomain ItemKind = "domain"
	ItemKindEmail  ItemKind = "email"
)

// Mode selects how a batch dispatches its lookups.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeConcurrent Mode = "concurrent"
)

// ParseMode parses a user-supplied dispatch mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "seq", "":
		return ModeSequential, nil
	case "concurrent", "parallel", "pool":
		return ModeConcurrent, nil
	default:
		return "", ErrUnknownMode
	}
}

// String returns the canonical mode name.
func (m Mode) String() string {
	return string(m)
}
