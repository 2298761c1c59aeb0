package utils

// Application Constants
const (
	// Sorting
	DefaultSortField = "price"
	DefaultSortOrder = "asc"

	// Request handling
	RequestIDHeader     = "X-Request-ID"
	RequestIDContextKey = "request_id"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInternalServer = "internal server error"
	ErrCarNotFound    = "Car not found"
)

// Page titles
const (
	TitleIndex = "Showroom Inventory Home"
	TitleError = "Error"
)
