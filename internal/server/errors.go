package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jparkk0517/NLP-team-project/internal/engine"
	"github.com/jparkk0517/NLP-team-project/internal/ranking"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		turnNotFound    *engine.ErrTurnNotFound
		personaNotFound *engine.ErrPersonaNotFound
		noModelAnswer   *engine.ErrNoModelAnswer
		parseErr        *ranking.ComparisonParseError
		validationErrs  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &turnNotFound), errors.As(err, &personaNotFound), errors.As(err, &noModelAnswer):
		return http.StatusNotFound
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		// The upstream comparison produced garbage; the client request
		// itself was fine.
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
