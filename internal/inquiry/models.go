// Package inquiry implements the lead capture pipeline: the multi-step
// form state machine, the submission service, and the persisted document
// shape.
package inquiry

import (
	"strings"
	"time"
)

// DocType is the content store discriminant for persisted inquiries.
const DocType = "inquiry"

// Draft is the in-progress, unsubmitted state of the lead form. Only
// name and email are required; everything else is optional.
type Draft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company,omitempty"`
	Phone           string `json:"phone,omitempty"`
	ServiceInterest string `json:"serviceInterest,omitempty"`
	Budget          string `json:"budget,omitempty"`
	Timeline        string `json:"timeline,omitempty"`
	Message         string `json:"message,omitempty"`
	SourcePage      string `json:"sourcePage,omitempty"`
}

// HasRequired reports whether name and email are non-empty after
// trimming. The server enforces this regardless of what the client
// checked.
func (d Draft) HasRequired() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Email) != ""
}

// BuildDocument converts a draft into the persisted inquiry document.
// Values are trimmed and empty optionals are omitted entirely so the
// stored shape carries no empty-string keys. The submission timestamp is
// server-generated.
func BuildDocument(d Draft, submittedAt time.Time) map[string]interface{} {
	doc := map[string]interface{}{
		"_type":       DocType,
		"name":        strings.TrimSpace(d.Name),
		"email":       strings.TrimSpace(d.Email),
		"submittedAt": submittedAt.UTC().Format(time.RFC3339),
	}

	setIfPresent(doc, "company", d.Company)
	setIfPresent(doc, "phone", d.Phone)
	setIfPresent(doc, "serviceInterest", d.ServiceInterest)
	setIfPresent(doc, "budget", d.Budget)
	setIfPresent(doc, "timeline", d.Timeline)
	setIfPresent(doc, "message", d.Message)
	setIfPresent(doc, "sourcePage", d.SourcePage)

	return doc
}

func setIfPresent(doc map[string]interface{}, key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		doc[key] = trimmed
	}
}
