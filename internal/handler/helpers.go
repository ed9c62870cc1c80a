package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/apierror"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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

// statusFor maps service sentinel errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrCorreoRegistrado),
		errors.Is(err, service.ErrPlacaRegistrada):
		return http.StatusConflict
	case errors.Is(err, service.ErrCredenciales),
		errors.Is(err, service.ErrCuentaDesactivada),
		errors.Is(err, service.ErrSinAccesoTrabajador),
		errors.Is(err, service.ErrSinAccesoCliente),
		errors.Is(err, service.ErrTrabajadorSinRol),
		errors.Is(err, service.ErrUsuarioNoEncontrado),
		errors.Is(err, service.ErrRefreshInvalido),
		errors.Is(err, service.ErrPasswordActual):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrSinLoteActivo),
		errors.Is(err, service.ErrSinSupervisor),
		errors.Is(err, service.ErrHorarioNoDisponible),
		errors.Is(err, service.ErrSinServicioPreventivo),
		errors.Is(err, service.ErrServicioNoEncontrado),
		errors.Is(err, service.ErrClienteNoEncontrado),
		errors.Is(err, service.ErrEmpleadoNoEncontrado):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a sentinel error as its mapped status; anything
// unknown goes to the ErrorHandler middleware as a 500.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(status, apierror.New(err.Error()))
}
