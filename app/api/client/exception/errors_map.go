package exception

import "errors"

type ErrorCode int

const (
	ErrCodeNoError             ErrorCode = iota // 0
	ErrorCodeEntityNotFound                     // 1
	ErrorCodeFailedBindingData                  // 2
	ErrorCodeValidationFailed                   // 3
	ErrorCodeInvalidParameter                   // 4
	ErrorCodeConflict                           // 5
	ErrorCodeRateLimitExceeded                  // 6
	ErrorCodeInternalServer                     // 7
)

var (
	ErrEntityNotFound    = errors.New("entity not found")
	ErrFailedBindingData = errors.New("failed to bind data")
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrConflict          = errors.New("resource already exists")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrInternalServer    = errors.New("internal server error")
)

var errorsMap = map[ErrorCode]error{
	ErrorCodeEntityNotFound:    ErrEntityNotFound,
	ErrorCodeFailedBindingData: ErrFailedBindingData,
	ErrorCodeValidationFailed:  ErrValidationFailed,
	ErrorCodeInvalidParameter:  ErrInvalidParameter,
	ErrorCodeConflict:          ErrConflict,
	ErrorCodeRateLimitExceeded: ErrRateLimitExceeded,
	ErrorCodeInternalServer:    ErrInternalServer,
}

func GetErrorByCode(code ErrorCode) error {
	return errorsMap[code]
}
