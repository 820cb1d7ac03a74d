package serverutils

// ApiResponse is the uniform envelope returned by every HTTP endpoint.
type ApiResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}
