package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// GeminiInterface defines the AI gateway surface consumed by the handlers.
// Both operations absorb every failure into a user-facing fallback string;
// they never return an error.
type GeminiInterface interface {
	GenerateText(ctx context.Context, prompt string) string
	AnalyzeImage(ctx context.Context, base64Image, mimeType string) string
}

// ============================================================================
// Request/Response Models (generateContent wire format)
// ============================================================================

// Content is one conversation turn sent to or received from Gemini.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a tagged variant: either a text fragment or an inline binary
// payload, never both.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded binary content plus its MIME type.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateContentRequest struct {
	Contents []Content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content *Content `json:"content"`
	} `json:"candidates"`
}

// ============================================================================
// Fallback strings, one per failure class and variant
// ============================================================================

const (
	textUnreachableFallback = "Sorry, I couldn't connect to the AI service. Please try again later."
	textBadShapeFallback    = "Sorry, I received an unexpected response from the AI. Please try again."
	textInternalFallback    = "An internal error occurred. Please try again."

	visionUnreachableFallback = "Sorry, I couldn't process the image with the AI service. Please try again later."
	visionBadShapeFallback    = "Sorry, I received an unexpected response from the AI Vision service. Please try again."
	visionInternalFallback    = "An internal error occurred during image analysis. Please try again."
)

var (
	errUnreachable = errors.New("ai service unreachable")
	errBadResponse = errors.New("unexpected ai response shape")
)

// GeminiService talks to the Gemini generateContent endpoint. One POST per
// operation, no retries; the API key goes into the request URL and is fixed
// for the process lifetime.
type GeminiService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewGeminiService creates a gateway bound to an explicit API key — no
// ambient environment lookups happen after construction.
func NewGeminiService(baseURL, apiKey, model string, logger zerolog.Logger) *GeminiService {
	return &GeminiService{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // LLMs can be slow
		},
		logger: logger.With().Str("component", "gemini").Logger(),
	}
}

// GenerateText sends a single user-role prompt and returns the first
// candidate's first text part, or a fallback string on failure.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) string {
	s.logger.Debug().Int("prompt_len", len(prompt)).Str("model", s.model).Msg("calling Gemini text generation")

	req := generateContentRequest{
		Contents: []Content{{
			Role:  "user",
			Parts: []Part{{Text: prompt}},
		}},
	}

	answer, err := s.generateContent(ctx, req)
	switch {
	case err == nil:
		return answer
	case errors.Is(err, errUnreachable):
		return textUnreachableFallback
	case errors.Is(err, errBadResponse):
		return textBadShapeFallback
	default:
		return textInternalFallback
	}
}

// AnalyzeImage sends the fixed image-analysis instructions plus one inline
// binary part carrying the original base64 payload and its MIME type.
func (s *GeminiService) AnalyzeImage(ctx context.Context, base64Image, mimeType string) string {
	s.logger.Debug().Str("mime_type", mimeType).Int("image_len", len(base64Image)).Msg("calling Gemini image analysis")

	req := generateContentRequest{
		Contents: []Content{{
			Parts: []Part{
				{Text: "Analyze this medical image and provide:"},
				{Text: "1. **Description**: What the image shows"},
				{Text: "2. **Findings**: Notable observations"},
				{Text: "3. **Concerns**: Any potential issues"},
				{Text: "4. **Recommendations**: Suggested next steps"},
				{InlineData: &InlineData{MimeType: mimeType, Data: base64Image}},
			},
		}},
	}

	answer, err := s.generateContent(ctx, req)
	switch {
	case err == nil:
		return answer
	case errors.Is(err, errUnreachable):
		return visionUnreachableFallback
	case errors.Is(err, errBadResponse):
		return visionBadShapeFallback
	default:
		return visionInternalFallback
	}
}

// generateContent performs the single outbound call and classifies every
// failure as unreachable, bad response shape, or internal. Diagnostics are
// logged here so callers only map the class to a fallback string.
func (s *GeminiService) generateContent(ctx context.Context, payload generateContentRequest) (string, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal Gemini request")
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to build Gemini request")
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Msg("Gemini request failed")
		return "", fmt.Errorf("%w: %v", errUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read Gemini response")
		return "", fmt.Errorf("%w: read body: %v", errUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Gemini returned non-2xx status")
		return "", fmt.Errorf("%w: status %d", errUnreachable, resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		s.logger.Error().Err(err).Str("body", string(body)).Msg("Gemini response is not valid JSON")
		return "", fmt.Errorf("%w: %v", errBadResponse, err)
	}

	if len(parsed.Candidates) == 0 || parsed.Candidates[0].Content == nil || len(parsed.Candidates[0].Content.Parts) == 0 {
		s.logger.Error().Str("body", string(body)).Msg("Gemini response has unexpected structure")
		return "", errBadResponse
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
