package inquiry

import (
	"strings"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/validation"
)

func maxLen(n int) *int { return &n }

// InputSchema describes the accepted inquiry payload shape. Only name
// and email are required; everything else is free-form text from the
// site form. Extra fields are tolerated so older embeds keep working.
func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"name":            {Type: "string", MaxLength: maxLen(200)},
			"email":           {Type: "string", MaxLength: maxLen(320)},
			"company":         {Type: "string", MaxLength: maxLen(200)},
			"phone":           {Type: "string", MaxLength: maxLen(50)},
			"serviceInterest": {Type: "string", MaxLength: maxLen(100)},
			"budget":          {Type: "string", MaxLength: maxLen(100)},
			"timeline":        {Type: "string", MaxLength: maxLen(100)},
			"message":         {Type: "string", MaxLength: maxLen(5000)},
			"sourcePage":      {Type: "string", MaxLength: maxLen(500)},
		},
		Required:             []string{"name", "email"},
		AdditionalProperties: true,
	}
}

// ValidatePayload checks the raw decoded body against the schema.
func ValidatePayload(input map[string]interface{}) error {
	result := validation.ValidateInput(input, InputSchema())
	if !result.Valid {
		return apperrors.NewValidationFailedError(
			strings.Join(result.GetErrorMessages(), "; "))
	}
	return nil
}
