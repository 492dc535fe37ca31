// Package guide consumes the LLM text-generation boundary: it asks Gemini
// for a short personalized explanation and checklist, parses the two fixed
// markdown sections out of the reply, and substitutes static per-type advice
// whenever anything fails.
package guide

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Arshya-tech/ClearAlert/internal/profile"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Advice is the parsed guidance shown to the user. Generated is false when
// the static fallback was used.
type Advice struct {
	Explanation string   `json:"explanation"`
	Checklist   []string `json:"checklist"`
	Generated   bool     `json:"generated"`
}

// Request describes the situation to generate guidance for.
type Request struct {
	AlertType string
	Severity  string
	Location  string
	Profile   profile.Profile
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a guide client. baseURL may be empty to use the public
// endpoint. An empty apiKey makes Generate always fall back.
func NewClient(client *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{client: client, baseURL: baseURL, apiKey: apiKey}
}

// Generate returns personalized advice for the request, degrading to the
// static fallback table on any failure. It never returns an error to the
// caller; guidance is always available.
func (c *Client) Generate(ctx context.Context, req Request) Advice {
	if c.apiKey == "" {
		return Fallback(req.AlertType)
	}

	content, err := c.generateContent(ctx, req)
	if err != nil {
		return Fallback(req.AlertType)
	}

	advice := Parse(content)
	if advice.Explanation == "" && len(advice.Checklist) == 0 {
		return Fallback(req.AlertType)
	}
	advice.Generated = true
	return advice
}

func (c *Client) generateContent(ctx context.Context, req Request) (string, error) {
	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": buildPrompt(req)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.7,
			"maxOutputTokens": 500,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s?key=%s", c.baseURL, c.apiKey), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: status %d", resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// buildPrompt renders the guidance prompt, describing the user's profile in
// plain words.
func buildPrompt(req Request) string {
	severityText := map[string]string{
		"low":      "Green (Low)",
		"moderate": "Yellow (Moderate)",
		"severe":   "Orange (Severe)",
		"extreme":  "Red (Extreme)",
	}[req.Severity]
	if severityText == "" {
		severityText = req.Severity
	}

	location := req.Location
	if location == "" {
		location = "Not specified"
	}

	return fmt.Sprintf(`You are a calm, supportive emergency preparedness assistant. Generate personalized emergency guidance for the following situation:

**Alert Type:** %s
**Severity Level:** %s
**Location:** %s
**User Profile:** %s

Please provide:

1. **Brief Explanation** (2-3 sentences): Explain what this alert means in simple, non-alarmist language. Be reassuring but informative.

2. **Personalized Preparedness Checklist** (4-6 items): Provide specific, actionable steps tailored to the user's profile. Use bullet points.

Format your response EXACTLY as follows (use these exact headers):

## What This Means
[Your brief explanation here]

## Your Personalized Checklist
- [Action item 1]
- [Action item 2]
- [Action item 3]
- [Action item 4]

Keep the tone calm, supportive, and empowering. Avoid causing panic.`,
		req.AlertType, severityText, location, describeProfile(req.Profile))
}

func describeProfile(p profile.Profile) string {
	var parts []string

	switch p.AgeGroup {
	case profile.AgeStudent:
		parts = append(parts, "college student")
	case profile.AgeSenior:
		parts = append(parts, "senior citizen")
	case profile.AgeAdult:
		parts = append(parts, "working professional")
	}

	if p.HasFamily() {
		parts = append(parts, "with a family")
	}
	if p.Gender == "female" {
		parts = append(parts, "woman")
	}
	if p.HasCondition(profile.ConditionMedicalNeeds) {
		parts = append(parts, "with medical needs")
	}
	if p.HasCondition(profile.ConditionMobilityIssues) {
		parts = append(parts, "with mobility concerns")
	}
	if p.HasCondition(profile.ConditionYoungChildren) {
		parts = append(parts, "with young children")
	}
	if p.HasCondition(profile.ConditionPets) {
		parts = append(parts, "with pets")
	}
	if p.HasCondition(profile.ConditionElderlyCare) {
		parts = append(parts, "caring for elderly family members")
	}

	if len(parts) == 0 {
		return "general public"
	}
	return strings.Join(parts, ", ")
}
