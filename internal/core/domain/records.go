// internal/core/domain/records.go
package domain

// Record is the typed payload of a successful lookup. The concrete type
// depends on the operation that produced it.
type Record interface {
	// Operation returns the lookup operation that produces this record.
	Operation() Operation
}

// DomainEmail is one email address discovered by a domain search.
type DomainEmail struct {
	Value      string `json:"value"`
	Type       string `json:"type"`
	Confidence int    `json:"confidence"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	Seniority  string `json:"seniority,omitempty"`
	Role       string `json:"role,omitempty"`
}

// DomainRecord is the outcome of a domain search: the addresses known
// for a domain plus its email pattern and organization.
type DomainRecord struct {
	Domain       string        `json:"domain"`
	Pattern      string        `json:"pattern,omitempty"`
	Organization string        `json:"organization,omitempty"`
	Emails       []DomainEmail `json:"emails"`
	EmailCount   int           `json:"email_count"`
}

func (DomainRecord) Operation() Operation { return OperationDomainSearch }

// RecordSource describes where an address was seen.
type RecordSource struct {
	Domain      string `json:"domain,omitempty"`
	URI         string `json:"uri,omitempty"`
	ExtractedOn string `json:"extracted_on,omitempty"`
	LastSeenOn  string `json:"last_seen_on,omitempty"`
	StillOnPage bool   `json:"still_on_page,omitempty"`
}

// PersonEmailRecord is the outcome of an email finder lookup.
type PersonEmailRecord struct {
	Email       string         `json:"email"`
	Confidence  int            `json:"confidence"`
	FirstName   string         `json:"first_name,omitempty"`
	LastName    string         `json:"last_name,omitempty"`
	Position    string         `json:"position,omitempty"`
	Twitter     string         `json:"twitter,omitempty"`
	LinkedinURL string         `json:"linkedin_url,omitempty"`
	Role        string         `json:"role,omitempty"`
	Sources     []RecordSource `json:"sources,omitempty"`
}

func (PersonEmailRecord) Operation() Operation { return OperationEmailFinder }

// VerificationRecord is the outcome of an email verification lookup.
// Absent optional fields keep their zero values.
type VerificationRecord struct {
	Email      string         `json:"email"`
	Result     string         `json:"result,omitempty"`
	Score      int            `json:"score"`
	Regexp     bool           `json:"regexp"`
	Gibberish  bool           `json:"gibberish"`
	Disposable bool           `json:"disposable"`
	Webmail    bool           `json:"webmail"`
	MXRecords  bool           `json:"mx_records"`
	SMTPServer bool           `json:"smtp_server"`
	SMTPCheck  bool           `json:"smtp_check"`
	AcceptAll  bool           `json:"accept_all"`
	Block      bool           `json:"block"`
	Sources    []RecordSource `json:"sources,omitempty"`
}

func (VerificationRecord) Operation() Operation { return OperationEmailVerifier }
