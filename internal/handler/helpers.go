package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validar(c, req)
}

// bindFormAndValidate binds a form-encoded body (the login endpoint).
func bindFormAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulário inválido: "+err.Error()))
		return false
	}
	return validar(c, req)
}

// bindQueryAndValidate binds query-string filters, applying the form tag
// defaults before validation.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetros inválidos: "+err.Error()))
		return false
	}
	return validar(c, req)
}

func validar(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// uintParam parses a numeric path parameter. A non-numeric id answers 422
// before any service code runs.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Parâmetro "+name+" inválido"))
		return 0, false
	}
	return uint(id), true
}

// intQuery reads an integer query parameter with a default.
func intQuery(c *gin.Context, name string, padrao int) int {
	raw := c.Query(name)
	if raw == "" {
		return padrao
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return padrao
	}
	return n
}

// writeError maps a service error onto its HTTP status. Typed errors carry
// their own user-facing detail; anything untyped is recorded on the context
// for the error-handler middleware and answered as a plain 500.
func writeError(c *gin.Context, err error) {
	status := apierror.StatusOf(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, apierror.New("Erro interno do servidor"))
		return
	}
	c.JSON(status, apierror.New(err.Error()))
}
