package models

// Error codes returned in the uniform error envelope.
const (
	CodeValidationError    = "validation_error"
	CodeUnreadableDocument = "unreadable_document"
	CodeProviderError      = "provider_error"
	CodeInternalError      = "internal_error"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
