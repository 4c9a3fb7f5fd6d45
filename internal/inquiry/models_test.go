package inquiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_HasRequired(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  bool
	}{
		{"both present", Draft{Name: "Ada", Email: "ada@example.com"}, true},
		{"missing name", Draft{Email: "ada@example.com"}, false},
		{"missing email", Draft{Name: "Ada"}, false},
		{"whitespace only name", Draft{Name: "   ", Email: "ada@example.com"}, false},
		{"whitespace only email", Draft{Name: "Ada", Email: "\t\n"}, false},
		{"padded values pass", Draft{Name: "  Ada  ", Email: " ada@example.com "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.HasRequired())
		})
	}
}

func TestBuildDocument_MinimalDraft(t *testing.T) {
	submittedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	doc := BuildDocument(Draft{Name: "  Ada Lovelace ", Email: " ada@example.com "}, submittedAt)

	assert.Equal(t, "inquiry", doc["_type"])
	assert.Equal(t, "Ada Lovelace", doc["name"])
	assert.Equal(t, "ada@example.com", doc["email"])
	assert.Equal(t, "2026-03-14T09:26:53Z", doc["submittedAt"])

	// Empty optionals are omitted entirely, not stored as "".
	for _, key := range []string{"company", "phone", "serviceInterest", "budget", "timeline", "message", "sourcePage"} {
		_, exists := doc[key]
		assert.False(t, exists, "unexpected key %q in document", key)
	}
}

func TestBuildDocument_FullDraft(t *testing.T) {
	draft := Draft{
		Name:            "Ada",
		Email:           "ada@example.com",
		Company:         " Analytical Engines ",
		Phone:           "+1 555 0100",
		ServiceInterest: "ad-creatives",
		Budget:          "5k-10k",
		Timeline:        "asap",
		Message:         "Need motion ads.",
		SourcePage:      "/ad-creatives",
	}

	doc := BuildDocument(draft, time.Now())

	assert.Equal(t, "Analytical Engines", doc["company"])
	assert.Equal(t, "+1 555 0100", doc["phone"])
	assert.Equal(t, "ad-creatives", doc["serviceInterest"])
	assert.Equal(t, "5k-10k", doc["budget"])
	assert.Equal(t, "asap", doc["timeline"])
	assert.Equal(t, "Need motion ads.", doc["message"])
	assert.Equal(t, "/ad-creatives", doc["sourcePage"])
}

func TestBuildDocument_WhitespaceOptionalIsOmitted(t *testing.T) {
	doc := BuildDocument(Draft{Name: "Ada", Email: "a@b.co", Company: "   "}, time.Now())

	_, exists := doc["company"]
	require.False(t, exists)
}

func TestBuildDocument_TimestampIsUTC(t *testing.T) {
	local := time.Date(2026, 6, 1, 20, 0, 0, 0, time.FixedZone("EDT", -4*3600))
	doc := BuildDocument(Draft{Name: "Ada", Email: "a@b.co"}, local)

	assert.Equal(t, "2026-06-02T00:00:00Z", doc["submittedAt"])
}
