package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hrms-backend/internal/platform/apperr"
)

// ErrorBody is the envelope every error response uses.
type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      apperr.Code       `json:"code"`
	Message   string            `json:"message"`
	Status    int               `json:"status"`
	Fields    map[string]string `json:"fields,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

// WriteError renders err using the shared error envelope.
func WriteError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	pub := apperr.Public(err)
	c.JSON(status, ErrorBody{Error: ErrorPayload{
		Code:      pub.Code,
		Message:   pub.Message,
		Status:    status,
		Fields:    pub.Fields,
		Retryable: pub.Retryable,
	}})
}

// BindJSON decodes the request body into dst and converts decoding failures
// into validation errors with field detail where the decoder provides it.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return BindError(err)
	}
	return nil
}

func BindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperr.ErrFields(map[string]string{field: "must be a " + typeErr.Type.String()})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.ErrValidation("request body is not valid JSON")
	case errors.Is(err, io.EOF):
		return apperr.ErrValidation("request body is required")
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		return apperr.ErrFields(fields)
	}
	return apperr.ErrValidation("invalid request body")
}
