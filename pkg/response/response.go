package response

// Every endpoint answers with an explicit success boolean plus a safe
// message string. HTTP status codes only distinguish client from server
// faults (400/404/500); clients key off the success field.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// OK returns a successful response carrying data.
func OK[T any](message string, data T) *APIResponse[T] {
	return &APIResponse[T]{Success: true, Message: message, Data: data}
}

// Fail returns a failed response with a client-safe message. Internal error
// detail never travels through here.
func Fail(message string) *APIResponse[any] {
	return &APIResponse[any]{Success: false, Message: message}
}
