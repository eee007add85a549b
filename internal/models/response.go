package models

// APIResponse is the uniform envelope returned by every endpoint.
// swagger:model APIResponse
type APIResponse struct {
	// HTTP-style status code of the outcome
	// example: 200
	StatusCode int `json:"statusCode"`

	// Whether the operation succeeded
	// example: true
	IsSuccess bool `json:"isSuccess"`

	// Human-readable error messages, present only on failure
	ErrorMessages []string `json:"errorMessages,omitempty"`

	// Operation result, present only on success
	Result any `json:"result,omitempty"`
}

// OK builds a success envelope. The envelope is a value constructed once
// per outcome and never mutated afterwards.
func OK(statusCode int, result any) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		IsSuccess:  true,
		Result:     result,
	}
}

// Fail builds a failure envelope carrying at least one error message.
// Result stays unset; callers must not read it when IsSuccess is false.
func Fail(statusCode int, messages ...string) APIResponse {
	return APIResponse{
		StatusCode:    statusCode,
		IsSuccess:     false,
		ErrorMessages: messages,
	}
}
