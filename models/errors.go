package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Case workflow related errors
var (
	ErrCaseAlreadyAssigned = errors.Wrap(ConflictError, "case is already assigned to a lawyer")
	ErrCaseNotAssigned     = errors.Wrap(BadParameterError, "case has no assigned lawyer")
	ErrCaseTerminal        = errors.Wrap(BadParameterError, "case is in a terminal status")
)
