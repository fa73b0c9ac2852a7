package models

import "errors"

// Sentinel errors returned by the service layer. Handlers classify them
// with errors.Is to pick the HTTP status.
var (
	ErrInvalidOption = errors.New("option must be between 1 and 4")
	ErrInvalidLevel  = errors.New("invalid question level")
	ErrInvalidSort   = errors.New("sort must be asc or desc")

	ErrUserNotFound     = errors.New("user not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrTagNotFound      = errors.New("tag not found")

	ErrQuestionAlreadyAnswered = errors.New("question already answered")
	ErrNameTaken               = errors.New("name already taken")
	ErrEmailTaken              = errors.New("email already registered")
	ErrTagExists               = errors.New("tag already exists")
	ErrAlreadyRelated          = errors.New("questions already related")
	ErrSelfRelation            = errors.New("question cannot be related to itself")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsValidationError reports whether err is a malformed-input error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidOption) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrInvalidSort) ||
		errors.Is(err, ErrSelfRelation)
}

// IsNotFoundError reports whether err refers to an absent entity.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrTagNotFound)
}

// IsConflictError reports whether err is a uniqueness conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrQuestionAlreadyAnswered) ||
		errors.Is(err, ErrNameTaken) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrTagExists) ||
		errors.Is(err, ErrAlreadyRelated)
}
