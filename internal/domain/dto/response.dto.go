package dto

// Response wraps every façade result, mirroring an HTTP client's {data} shape.
type Response[T any] struct {
	Data T `json:"data"`
}

// DeleteResult is returned by deletes; deleting a missing id still reports success.
type DeleteResult struct {
	Success bool `json:"success"`
}

// ErrorResponse is the JSON body of backend error replies.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
