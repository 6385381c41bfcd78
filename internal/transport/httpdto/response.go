package httpdto

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func NewErrorResponse(message string, code string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Message: message,
		Code:    code,
	}
}

// StatusResponse is used by the service probes.
type StatusResponse[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data,omitempty"`
}

func NewStatusResponse[T any](status string, data T) StatusResponse[T] {
	return StatusResponse[T]{
		Status: status,
		Data:   data,
	}
}
