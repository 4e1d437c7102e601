package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. Every failure a client can
// observe is constructed from the catalog below so that its name, numeric
// code and HTTP status stay stable across releases.
type DomainError struct {
	Name       string
	Message    string
	Code       int
	StatusCode int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Well-known error names.
const (
	NameNotFoundRoute              = "NotFoundRoute"
	NameNotFoundDocument           = "NotFoundDocument"
	NameValidationFailed           = "ValidationFailed"
	NameDuplicateSlugProduct       = "DuplicateSlugProduct"
	NameDuplicateSlugProductType   = "DuplicateSlugProductType"
	NameDuplicateSlugSmell         = "DuplicateSlugSmell"
	NameDuplicateSlugGift          = "DuplicateSlugGift"
	NameDuplicateSlugAccount       = "DuplicateSlugAccount"
	NameDuplicateEmailRegister     = "DuplicateEmailRegister"
	NameVerifiedPasswordRegister   = "VerifiedPasswordRegister"
	NameEmailNotFound              = "EmailNotFound"
	NameInValidPassword            = "InValidPassword"
	NameInvalidCurrentPassword     = "InvalidCurrentPassword"
	NameInvalidVerifiedNewPassword = "InvalidVerifiedNewPassword"
	NameTokenMissing               = "TokenMissing"
	NameTokenExpired               = "TokenExpired"
	NameInvalidRefreshToken        = "InvalidRefreshToken"
	NameStoreFailure               = "StoreFailure"
	NameInternalError              = "InternalError"
)

type catalogEntry struct {
	message    string
	code       int
	statusCode int
}

var catalog = map[string]catalogEntry{
	NameNotFoundRoute:              {"No route matches the request", 1001, http.StatusNotFound},
	NameNotFoundDocument:           {"Document not found", 1002, http.StatusNotFound},
	NameValidationFailed:           {"Request validation failed", 2001, http.StatusBadRequest},
	NameDuplicateSlugProduct:       {"Name of product is duplicated", 3001, http.StatusBadRequest},
	NameDuplicateSlugProductType:   {"Name of product type is duplicated", 3002, http.StatusBadRequest},
	NameDuplicateSlugSmell:         {"Name of smell is duplicated", 3003, http.StatusBadRequest},
	NameDuplicateSlugGift:          {"Name of gift is duplicated", 3004, http.StatusBadRequest},
	NameDuplicateSlugAccount:       {"Name of account is duplicated", 3005, http.StatusBadRequest},
	NameDuplicateEmailRegister:     {"Email is already registered", 3006, http.StatusBadRequest},
	NameEmailNotFound:              {"Email not found", 4001, http.StatusBadRequest},
	NameInValidPassword:            {"Password is incorrect", 4002, http.StatusBadRequest},
	NameVerifiedPasswordRegister:   {"Password confirmation does not match", 4003, http.StatusBadRequest},
	NameInvalidCurrentPassword:     {"Current password is incorrect", 4004, http.StatusBadRequest},
	NameInvalidVerifiedNewPassword: {"New password confirmation does not match", 4005, http.StatusBadRequest},
	NameTokenMissing:               {"No token found in the request", 5001, http.StatusForbidden},
	NameTokenExpired:               {"Token is invalid or expired", 5002, http.StatusUnauthorized},
	NameInvalidRefreshToken:        {"Invalid refresh token", 5003, http.StatusForbidden},
	NameStoreFailure:               {"Persistence operation failed", 9001, http.StatusInternalServerError},
	NameInternalError:              {"Internal server error", 9000, http.StatusInternalServerError},
}

// New builds the catalog error for name. Unknown names degrade to an
// internal error rather than panicking in a request path.
func New(name string) *DomainError {
	entry, ok := catalog[name]
	if !ok {
		entry = catalog[NameInternalError]
		name = NameInternalError
	}
	return &DomainError{
		Name:       name,
		Message:    entry.message,
		Code:       entry.code,
		StatusCode: entry.statusCode,
	}
}

// Wrap builds the catalog error for name while keeping the cause available
// for logging via Unwrap.
func Wrap(name string, err error) *DomainError {
	de := New(name)
	de.Err = err
	return de
}

// NewValidation builds a validation failure with a request-specific message.
func NewValidation(message string) *DomainError {
	de := New(NameValidationFailed)
	de.Message = message
	return de
}

// ToDomainError converts an arbitrary error to a DomainError. Unknown errors
// are reported as internal so clients never see a bare Go error string.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return Wrap(NameInternalError, err)
}
