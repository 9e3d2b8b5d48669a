package dto

// PingResponse defines model for PingResponse.
type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
