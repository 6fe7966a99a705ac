package errors

import (
	"net/http"

	"comanda/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Remote service errors. Background refreshes absorb these and keep the
	// last known good state; they surface as warnings, not failures.
	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_FAILURE",
		"Não foi possível contatar o servidor de pedidos",
		"",
	)

	ErrParse = NewBaseError(
		http.StatusBadGateway,
		"PARSE_FAILURE",
		"Resposta inesperada do servidor de pedidos",
		"",
	)

	// Authentication errors block progression and are shown at field level.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuário ou senha incorretos",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Faça login para continuar",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Sessão expirada, faça login novamente",
		"",
	)

	// Order stream errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido não encontrado",
		"",
	)

	ErrStatusUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"STATUS_UPDATE_FAILED",
		"Não foi possível atualizar o status do pedido",
		"",
	)

	ErrUnknownCategory = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_CATEGORY",
		"Fila de pedidos desconhecida",
		"",
	)

	// Checkout errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"O carrinho está vazio",
		"",
	)

	ErrOrderSubmitFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_SUBMIT_FAILED",
		"Não foi possível enviar o pedido",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)
)
