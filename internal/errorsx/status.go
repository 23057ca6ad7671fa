// Package errorsx maps the sentinel errors defined across formula/,
// molecule/, and generator/ to HTTP status codes, so internal/server can
// translate a returned error into a response without those packages
// importing net/http themselves.
package errorsx

import (
	"errors"
	"net/http"

	"github.com/gopherchem/isospec/formula"
	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/molecule"
)

// HTTPStatus returns the status code that best matches err's sentinel
// class. Unrecognized errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, formula.ErrMalformedFormula),
		errors.Is(err, formula.ErrUnknownElement),
		errors.Is(err, molecule.ErrNoElements),
		errors.Is(err, molecule.ErrDimMismatch),
		errors.Is(err, molecule.ErrInvalidDescriptor),
		errors.Is(err, generator.ErrNonPositiveThreshold):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
