package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/radianceacademy/radiance-backend/internal/response"
)

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// Setup registers the validator with English translations on Gin's binding engine.
// Call once during application startup.
func Setup() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Register English translations.
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		en_translations.RegisterDefaultTranslations(v, trans)

		// maxyear caps an integer year at the next calendar year.
		_ = v.RegisterValidation("maxyear", func(fl govalidator.FieldLevel) bool {
			return fl.Field().Int() <= int64(time.Now().Year()+1)
		})
		_ = v.RegisterTranslation("maxyear", trans,
			func(ut ut.Translator) error {
				return ut.Add("maxyear", "{0} cannot be in the future", true)
			},
			func(ut ut.Translator, fe govalidator.FieldError) string {
				t, _ := ut.T("maxyear", fe.Field())
				return t
			})
	}
}

// TranslateErrors takes a binding/validation error and returns field-level
// errors suitable for the response envelope. If the error is not a
// validation error (e.g. a JSON syntax error), it returns a single entry
// under the "detail" field.
func TranslateErrors(err error) []response.FieldError {
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]response.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, response.FieldError{
				Field:   fe.Field(),
				Message: fe.Translate(trans),
			})
		}
		return fields
	}

	return []response.FieldError{{Field: "detail", Message: err.Error()}}
}

// Bind binds and validates the request body into dst. JSON bodies bind via
// the JSON decoder; multipart and urlencoded bodies bind via form tags.
// Returns nil on success or translated field errors on failure.
func Bind(c *gin.Context, dst interface{}) []response.FieldError {
	if err := c.ShouldBind(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
