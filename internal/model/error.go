package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeSaveDeclined       = "SAVE_DECLINED"
	ErrCodePostingFailed      = "POSTING_FAILED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "خطأ في اسم المستخدم أو كلمة المرور")
	ErrSaveDeclined       = NewDomainError(ErrCodeSaveDeclined, "Save aborted by operator after posting failure")
)
