package dto

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Envelope wraps successful responses in a message plus payload
type Envelope struct {
	Message string `json:"message"`
	Payload any    `json:"payload"`
}

// PaginationInfo describes the position of a list response
type PaginationInfo struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}
