package http

// ErrorResponse represents the error envelope returned on non-2xx statuses.
type ErrorResponse struct {
	Status  int         `json:"status" example:"500"`
	Message string      `json:"message" example:"Internal Server Error"`
	Errors  interface{} `json:"errors,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"ticker"`
	Message string                 `json:"message,omitempty" example:"Ticker is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
