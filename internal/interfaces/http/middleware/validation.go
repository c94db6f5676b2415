package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stockledger/backend/internal/infrastructure/logger"
	"github.com/stockledger/backend/internal/interfaces/http/dto"
)

// RequestIDKey is the header carrying the request ID
const RequestIDKey = "X-Request-ID"

// SetupValidator makes binding errors report the JSON (or query) name of a
// field instead of its Go name.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			switch name {
			case "-":
				return ""
			case "":
				continue
			default:
				return name
			}
		}
		return ""
	})
}

// HandleValidationError writes a 400 VALIDATION_ERROR. Field details are only
// present when err came from the validator; malformed bodies get none.
func HandleValidationError(c *gin.Context, err error) {
	var details []dto.ValidationDetail
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details = make([]dto.ValidationDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, dto.ValidationDetail{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	}
	c.JSON(http.StatusBadRequest,
		dto.NewValidationErrorResponse("Request validation failed", getRequestIDFromContext(c), details))
}

func getRequestIDFromContext(c *gin.Context) string {
	return c.GetString(logger.GinRequestIDKey)
}

var fixedMessages = map[string]string{
	"required": "This field is required",
	"email":    "Invalid email format",
	"uuid":     "Invalid UUID format",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "gte", "min":
		return fmt.Sprintf("Must be at least %s%s", fe.Param(), unit)
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s%s", fe.Param(), unit)
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "datetime":
		return "Must be a date in the format " + fe.Param()
	}
	return "Invalid value"
}
