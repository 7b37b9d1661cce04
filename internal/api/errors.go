package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperror"
)

const (
	msgServerError = "Server error"
	msgInvalidPath = "Invalid path"
)

// respondError writes the JSON error body for err. Only unclassified errors
// are logged; their detail never reaches the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var (
		validationErr *apperror.ValidationError
		notFoundErr   *apperror.NotFoundError
		fieldErrs     validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Error()})
	case errors.Is(err, apperror.ErrConstraint), errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": apperror.MsgBadRequest})
	default:
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgServerError})
	}
}

// bindError turns a failed body bind into a 400. Missing required fields
// come back from the validator, mistyped fields from encoding/json.
func bindError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperror.BadRequest(fieldErrs[0].Field())
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperror.BadRequest(typeErr.Field)
	}
	return apperror.BadRequest("body")
}

func invalidPath(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": msgInvalidPath})
}
