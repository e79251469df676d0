package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central error handler).
type errorResponse struct {
	Error string `json:"error"`
}
