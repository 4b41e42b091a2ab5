package models

// ChatRequest represents the incoming chat request from the frontend.
// A request carries either a plain message, an uploaded file (base64
// payload plus its declared MIME type), or nothing at all.
type ChatRequest struct {
	Message  string `json:"message,omitempty"`  // The user's typed message
	FileData string `json:"fileData,omitempty"` // Base64-encoded file content
	FileType string `json:"fileType,omitempty"` // Declared MIME type of the file
	FileName string `json:"fileName,omitempty"` // Original file name, used in fallback messages
}

// ChatResponse represents the response sent back to the frontend.
// Every handled request path produces one of these with HTTP 200,
// including the fallback-string paths.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is returned with HTTP 500 when the handler hits an
// unclassified failure (bad base64, panic, unreadable body).
type ErrorResponse struct {
	Error string `json:"error"`
}

// BasicResponse is used by simple status endpoints like /health.
type BasicResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
