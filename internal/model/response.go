package model

// Response is the uniform JSON envelope returned by every endpoint.
// Warning is set when the payload was served from the in-process
// fallback store instead of the database.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Warning string      `json:"_warning,omitempty"`
}
