package domain

// ErrorResponse is the uniform error envelope returned by every endpoint.
// Validation failures carry the offending field in the message; unexpected
// faults carry a generic message only.
type ErrorResponse struct {
	Error string `json:"error"`
}
