package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is an *AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Ledger business rules (LED) ----

func ErrInsufficientBalance() *AppError {
	return New("LED_001", "Insufficient balance", http.StatusBadRequest)
}

// Validation returns a LED_002 validation error.
func Validation(message string) *AppError {
	return New("LED_002", message, http.StatusBadRequest)
}

func ErrUnsupportedCurrency() *AppError {
	return New("LED_003", "Currency not supported", http.StatusBadRequest)
}

// ErrNotFound covers quotes, wallets, deposits, cards and journal entries.
func ErrNotFound(entity string) *AppError {
	return New("LED_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrWalletExists() *AppError {
	return New("LED_005", "Wallet already exists for specified currency", http.StatusBadRequest)
}

// ---- Webhook trust boundary & authentication (SEC / AUTH) ----

func ErrUntrustedSource() *AppError {
	return New("SEC_001", "Unauthorized request", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Insufficient permissions", http.StatusForbidden)
}

// ---- External provider outcomes (EXT) ----

// ErrGatewayRejected means the provider answered and refused the operation.
func ErrGatewayRejected(err error) *AppError {
	return Wrap("EXT_001", "Payment provider rejected the request", http.StatusBadGateway, err)
}

// ErrUnknownOutcome means the provider may or may not have executed the
// operation. Callers must not retry; operators reconcile it manually.
func ErrUnknownOutcome(err error) *AppError {
	return Wrap("EXT_002", "Provider outcome unknown, pending manual reconciliation", http.StatusGatewayTimeout, err)
}

func ErrPaymentUnverified() *AppError {
	return New("EXT_003", "Payment could not be verified with provider", http.StatusBadGateway)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

func ErrFeeNotConverged(err error) *AppError {
	return Wrap("SYS_004", "Unable to compute payable amount", http.StatusInternalServerError, err)
}

// ErrSettlementPending is returned when the provider executed an operation
// but the local ledger apply did not commit. The journal sweeper retries it.
func ErrSettlementPending(err error) *AppError {
	return Wrap("SYS_005", "Settlement pending reconciliation", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
