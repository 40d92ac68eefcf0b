package insight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel  = "gemini-1.5-flash"
	apiTimeout    = 30 * time.Second
)

// Fallback is shown in place of a generated insight whenever the service
// call fails. A failed insight call is never surfaced as a fatal error.
const Fallback = "Sorry, couldn't generate insights right now."

// systemPrompt frames the model as a productivity coach working only from
// the aggregated numbers in the payload.
const systemPrompt = `You are a productivity coach reviewing one user's time-tracking summary. You receive aggregated numbers only: today's planned vs actual minutes, a 7-day productivity series, per-month productivity, and actual minutes per category.

Write a short, encouraging insight (3-5 sentences) that:
- names the strongest and weakest signal in the data
- suggests one concrete adjustment for tomorrow
- avoids generic advice not grounded in the numbers

Respond with plain text only, no markdown.`

// Generate builds a prompt from the payload, calls the Gemini API, and
// returns the generated insight text. Model defaults to gemini-1.5-flash.
func Generate(p Payload, apiKey, model string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("API key is required for insight generation")
	}
	if model == "" {
		model = defaultModel
	}

	text, err := callGeminiAPI(apiKey, model, systemPrompt, BuildPrompt(p))
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty insight from API")
	}
	return text, nil
}

// BuildPrompt renders the payload as the user message sent to the model.
func BuildPrompt(p Payload) string {
	var sb strings.Builder

	sb.WriteString("## Today\n\n")
	sb.WriteString(fmt.Sprintf("- Planned: %d minutes\n", p.Daily.Planned))
	sb.WriteString(fmt.Sprintf("- Actual: %d minutes\n", p.Daily.Actual))
	sb.WriteString("\n")

	if len(p.Weekly) > 0 {
		sb.WriteString("## Last 7 Days (productivity %)\n\n")
		for _, pt := range p.Weekly {
			sb.WriteString(fmt.Sprintf("- %s: %d%%\n", pt.Date, pt.Productivity))
		}
		sb.WriteString("\n")
	}

	if len(p.Monthly) > 0 {
		sb.WriteString("## Monthly Productivity\n\n")
		for _, pt := range p.Monthly {
			sb.WriteString(fmt.Sprintf("- %s: %d%%\n", pt.Month, pt.Productivity))
		}
		sb.WriteString("\n")
	}

	if len(p.Category) > 0 {
		sb.WriteString("## Time by Category (actual minutes)\n\n")
		for _, c := range p.Category {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", c.Name, c.Value))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// geminiRequest is the request body for the Gemini generateContent API.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

// geminiContent is one content block of parts.
type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

// geminiPart is a single text part.
type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the response body from the Gemini API.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *geminiError `json:"error,omitempty"`
}

// geminiError represents an error response from the Gemini API.
type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// callGeminiAPI sends a generateContent request and returns the text of the
// first candidate.
func callGeminiAPI(apiKey, model, system, user string) (string, error) {
	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: user}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiAPIBase, model, apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	client := &http.Client{Timeout: apiTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error %d: %s", apiResp.Error.Code, apiResp.Error.Message)
	}

	return extractText(apiResp)
}

// extractText joins the text parts of the first candidate.
func extractText(resp geminiResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in API response")
	}

	var parts []string
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text content in API response")
	}
	return strings.Join(parts, ""), nil
}
