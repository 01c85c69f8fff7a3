package httpapi

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/studyhub/internal/session"
)

var registerOnce sync.Once

// registerValidators adds the custom tags to gin's shared validator.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("page", validatePage)

		// Report JSON field names rather than Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func validatePage(fl validator.FieldLevel) bool {
	return session.Page(fl.Field().String()).Valid()
}
