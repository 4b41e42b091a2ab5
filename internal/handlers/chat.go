package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"health-assistant/internal/models"
	"health-assistant/internal/parser"
	"health-assistant/internal/services"

	"github.com/rs/zerolog"
)

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	pdfExtractionFallback  = "Could not extract text from PDF '%s'. Please ensure it's a readable PDF or describe its content in text."
	docxExtractionFallback = "Could not extract text from DOCX '%s'. Please ensure it's a valid DOCX file or describe its content in text."
	unsupportedFileType    = "Unsupported file type for analysis: %s. Please upload a PDF, DOCX, image, or plain text file."
)

// ChatHandler handles chat messages and file uploads.
type ChatHandler struct {
	ai     services.GeminiInterface
	logger zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(ai services.GeminiInterface, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		ai:     ai,
		logger: logger.With().Str("component", "chat").Logger(),
	}
}

// Chat processes a chat message or an uploaded file
// @Summary Chat with the health assistant
// @Description Send a text message or an uploaded file (base64) for AI analysis
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat request with optional message or file"
// @Success 200 {object} models.ChatResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	// Outermost boundary: nothing below may crash the process or leak a
	// raw stack trace to the client.
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error().Interface("panic", rec).Bytes("stack", debug.Stack()).Msg("chat request panicked")
			h.sendError(w, fmt.Sprintf("An internal server error occurred: %v", rec))
		}
	}()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("failed to decode chat request body")
		h.sendError(w, "An internal server error occurred: "+err.Error())
		return
	}

	h.logger.Info().
		Bool("has_message", req.Message != "").
		Bool("has_file", req.FileData != "").
		Str("file_type", req.FileType).
		Msg("received chat request")

	response, err := h.respond(r.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Str("file_name", req.FileName).Msg("chat request failed")
		h.sendError(w, "An internal server error occurred: "+err.Error())
		return
	}

	h.sendJSON(w, models.ChatResponse{Response: response})
}

// respond runs the single-pass dispatch: uploaded file first (by declared
// MIME type), then bare message, then the empty response. The returned
// error covers only unclassified failures (bad base64); every other
// failure path yields a fallback string inside a normal response.
func (h *ChatHandler) respond(ctx context.Context, req models.ChatRequest) (string, error) {
	if req.FileData != "" && req.FileType != "" {
		raw, err := base64.StdEncoding.DecodeString(req.FileData)
		if err != nil {
			return "", fmt.Errorf("decode file data: %w", err)
		}

		switch {
		case strings.HasPrefix(req.FileType, "image/"):
			// Gemini wants the base64 payload as-is, so the original
			// string is forwarded rather than re-encoded.
			return h.ai.AnalyzeImage(ctx, req.FileData, req.FileType), nil

		case req.FileType == "application/pdf":
			text, err := parser.PDF(raw)
			if err != nil || text == "" {
				h.logger.Warn().Err(err).Str("file_name", req.FileName).Msg("pdf extraction failed")
				return fmt.Sprintf(pdfExtractionFallback, req.FileName), nil
			}
			return h.ai.GenerateText(ctx, services.ReportAnalysisPrompt(req.FileName, text)), nil

		case req.FileType == mimeDOCX:
			text, err := parser.DOCX(raw)
			if err != nil || text == "" {
				h.logger.Warn().Err(err).Str("file_name", req.FileName).Msg("docx extraction failed")
				return fmt.Sprintf(docxExtractionFallback, req.FileName), nil
			}
			return h.ai.GenerateText(ctx, services.ReportAnalysisPrompt(req.FileName, text)), nil

		case req.FileType == "text/plain":
			return h.ai.GenerateText(ctx, services.ReportAnalysisPrompt(req.FileName, parser.PlainText(raw))), nil

		default:
			return fmt.Sprintf(unsupportedFileType, req.FileType), nil
		}
	}

	if req.Message != "" {
		return h.ai.GenerateText(ctx, services.SymptomAdvicePrompt(req.Message)), nil
	}

	// No message, no file: an empty response with HTTP 200.
	return "", nil
}

func (h *ChatHandler) sendJSON(w http.ResponseWriter, payload models.ChatResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode chat response")
	}
}

func (h *ChatHandler) sendError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode error response")
	}
}
