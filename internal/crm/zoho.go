// Package crm forwards accepted leads into Zoho CRM.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/validation"
	"github.com/FaizBuildsStuff/matera-media/internal/inquiry"
)

// ZohoClient talks to the Zoho CRM v3 Leads module.
type ZohoClient struct {
	oauthToken string
	baseURL    string
	httpClient *http.Client
}

// Lead is the Zoho Leads record shape. Last_Name and Company are
// mandatory on the Zoho side.
type Lead struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"First_Name,omitempty"`
	LastName  string `json:"Last_Name"`
	Email     string `json:"Email"`
	Phone     string `json:"Phone,omitempty"`
	Company   string `json:"Company"`
	Source    string `json:"Lead_Source,omitempty"`
	Notes     string `json:"Description,omitempty"`
}

type createLeadResponse struct {
	Data []struct {
		Code    string `json:"code"`
		Details struct {
			ID string `json:"id"`
		} `json:"details"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"data"`
}

func NewZohoClient(oauthToken string) *ZohoClient {
	return &ZohoClient{
		oauthToken: oauthToken,
		baseURL:    "https://www.zohoapis.com/crm/v3",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithBaseURL overrides the API endpoint, for tests.
func (c *ZohoClient) WithBaseURL(url string) *ZohoClient {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// PushLead creates a Leads record from an inquiry draft and returns the
// Zoho record id.
func (c *ZohoClient) PushLead(ctx context.Context, draft inquiry.Draft) (string, error) {
	id, err := c.createLead(ctx, leadFromDraft(draft))
	if err != nil {
		return "", apperrors.NewCRMSyncFailedError(err)
	}
	return id, nil
}

func leadFromDraft(draft inquiry.Draft) *Lead {
	first, last := splitName(draft.Name)

	company := strings.TrimSpace(draft.Company)
	if company == "" {
		// Zoho rejects leads without a company.
		company = "Unknown"
	}

	source := strings.TrimSpace(draft.SourcePage)
	if source == "" {
		source = "Website"
	}

	// Zoho rejects records with malformed phone or email values; the site
	// form does not constrain either field, so drop anything implausible
	// rather than lose the whole lead.
	phone := strings.TrimSpace(draft.Phone)
	if phone != "" && !validation.ValidatePhone(phone) {
		phone = ""
	}
	email := strings.TrimSpace(draft.Email)
	if email != "" && !validation.ValidateEmail(email) {
		email = ""
	}

	return &Lead{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
		Company:   company,
		Source:    source,
		Notes:     leadNotes(draft),
	}
}

// splitName breaks a full name into first/last. Single-word names become
// the last name, which is the field Zoho requires.
func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return "", parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

func leadNotes(draft inquiry.Draft) string {
	var lines []string
	if v := strings.TrimSpace(draft.ServiceInterest); v != "" {
		lines = append(lines, "Service: "+v)
	}
	if v := strings.TrimSpace(draft.Budget); v != "" {
		lines = append(lines, "Budget: "+v)
	}
	if v := strings.TrimSpace(draft.Timeline); v != "" {
		lines = append(lines, "Timeline: "+v)
	}
	if v := strings.TrimSpace(draft.Message); v != "" {
		lines = append(lines, v)
	}
	return strings.Join(lines, "\n")
}

func (c *ZohoClient) createLead(ctx context.Context, lead *Lead) (string, error) {
	url := fmt.Sprintf("%s/Leads", c.baseURL)

	payload := map[string]interface{}{
		"data": []Lead{*lead},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.oauthToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to create lead (status %d): %s", resp.StatusCode, string(body))
	}

	var createResp createLeadResponse
	if err := json.Unmarshal(body, &createResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(createResp.Data) == 0 {
		return "", fmt.Errorf("no data in response")
	}

	if createResp.Data[0].Status != "success" {
		return "", fmt.Errorf("lead creation failed: %s", createResp.Data[0].Message)
	}

	return createResp.Data[0].Details.ID, nil
}
