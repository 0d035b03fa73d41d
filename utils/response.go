package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// FieldError is one entry in a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// SendServerError answers with an opaque message; internals are logged,
// never leaked.
func SendServerError(c *gin.Context) {
	SendError(c, http.StatusInternalServerError, "Server Error")
}

// SendValidationError converts a binding error into the structured field
// error list, falling back to a single generic entry for non-validator
// errors (malformed JSON and the like).
func SendValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	fields := []FieldError{}
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	} else {
		fields = append(fields, FieldError{Field: "body", Message: err.Error()})
	}

	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
