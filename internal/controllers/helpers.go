package controllers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"starwars-api/internal/apperror"
	"starwars-api/internal/models"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName makes validation errors name the JSON key, not the Go field
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// bindJSON decodes the request body into req. A body missing a required key
// fails with missingMsg; an empty or malformed body fails with a generic
// message. Missing keys are listed under "fields".
// It reports whether the handler may continue.
func bindJSON(c *gin.Context, req interface{}, missingMsg string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fieldErr.Field())
		}
		apperror.Abort(c, apperror.BadRequest(missingMsg).WithPayload(map[string]any{"fields": fields}))
	} else {
		apperror.Abort(c, apperror.BadRequest("Invalid request body"))
	}
	return false
}

// pathID reads a positive integer path parameter. Anything else answers 404
// because no route matches a non-numeric id.
func pathID(c *gin.Context, name, notFoundMsg string) (uint, bool) {
	id, err := models.ParseID(c.Param(name))
	if err != nil {
		apperror.Abort(c, apperror.NotFound(notFoundMsg))
		return 0, false
	}
	return id, true
}
