// internal/sources/hunter/responses.go
package hunter

import "huntx/internal/core/domain"

// domainSearchData is the wire shape of /domain-search data.
type domainSearchData struct {
	Domain       string            `json:"domain"`
	Pattern      string            `json:"pattern"`
	Organization string            `json:"organization"`
	Emails       []domainEmailData `json:"emails"`
}

type domainEmailData struct {
	Value      string           `json:"value"`
	Type       string           `json:"type"`
	Confidence int              `json:"confidence"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Position   string           `json:"position"`
	Department string           `json:"department"`
	Seniority  string           `json:"seniority"`
	Role       string           `json:"role"`
	Sources    []sourceData     `json:"sources"`
}

// finderData is the wire shape of /email-finder data.
type finderData struct {
	Email       string       `json:"email"`
	Confidence  int          `json:"confidence"`
	Score       int          `json:"score"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Position    string       `json:"position"`
	Twitter     string       `json:"twitter"`
	LinkedinURL string       `json:"linkedin_url"`
	Role        string       `json:"role"`
	Sources     []sourceData `json:"sources"`
}

// verifierData is the wire shape of /email-verifier data.
type verifierData struct {
	Email      string       `json:"email"`
	Result     string       `json:"result"`
	Score      int          `json:"score"`
	Regexp     bool         `json:"regexp"`
	Gibberish  bool         `json:"gibberish"`
	Disposable bool         `json:"disposable"`
	Webmail    bool         `json:"webmail"`
	MXRecords  bool         `json:"mx_records"`
	SMTPServer bool         `json:"smtp_server"`
	SMTPCheck  bool         `json:"smtp_check"`
	AcceptAll  bool         `json:"accept_all"`
	Block      bool         `json:"block"`
	Sources    []sourceData `json:"sources"`
}

type sourceData struct {
	Domain      string `json:"domain"`
	URI         string `json:"uri"`
	ExtractedOn string `json:"extracted_on"`
	LastSeenOn  string `json:"last_seen_on"`
	StillOnPage bool   `json:"still_on_page"`
}

// toDomain maps a domain search payload to the typed record. The email
// count comes from the list length, not the API's own counter, which
// can be zero or missing.
func (d domainSearchData) toDomain(requested string) *domain.DomainRecord {
	rec := &domain.DomainRecord{
		Domain:       d.Domain,
		Pattern:      d.Pattern,
		Organization: d.Organization,
		Emails:       make([]domain.DomainEmail, 0, len(d.Emails)),
		EmailCount:   len(d.Emails),
	}
	if rec.Domain == "" {
		rec.Domain = requested
	}
	for _, e := range d.Emails {
		rec.Emails = append(rec.Emails, domain.DomainEmail{
			Value:      e.Value,
			Type:       e.Type,
			Confidence: e.Confidence,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Position:   e.Position,
			Department: e.Department,
			Seniority:  e.Seniority,
			Role:       e.Role,
		})
	}
	return rec
}

func (d finderData) toDomain() *domain.PersonEmailRecord {
	confidence := d.Confidence
	if confidence == 0 {
		// newer API versions report "score" instead
		confidence = d.Score
	}
	return &domain.PersonEmailRecord{
		Email:       d.Email,
		Confidence:  confidence,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Position:    d.Position,
		Twitter:     d.Twitter,
		LinkedinURL: d.LinkedinURL,
		Role:        d.Role,
		Sources:     mapSources(d.Sources),
	}
}

func (d verifierData) toDomain(requested string) *domain.VerificationRecord {
	rec := &domain.VerificationRecord{
		Email:      d.Email,
		Result:     d.Result,
		Score:      d.Score,
		Regexp:     d.Regexp,
		Gibberish:  d.Gibberish,
		Disposable: d.Disposable,
		Webmail:    d.Webmail,
		MXRecords:  d.MXRecords,
		SMTPServer: d.SMTPServer,
		SMTPCheck:  d.SMTPCheck,
		AcceptAll:  d.AcceptAll,
		Block:      d.Block,
		Sources:    mapSources(d.Sources),
	}
	if rec.Email == "" {
		rec.Email = requested
	}
	return rec
}

func mapSources(in []sourceData) []domain.RecordSource {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.RecordSource, 0, len(in))
	for _, s := range in {
		out = append(out, domain.RecordSource{
			Domain:      s.Domain,
			URI:         s.URI,
			ExtractedOn: s.ExtractedOn,
			LastSeenOn:  s.LastSeenOn,
			StillOnPage: s.StillOnPage,
		})
	}
	return out
}
