package dto

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/activos-consola/internal/domain"
)

// ErrorResponse cuerpo de error del backend ({code, message}).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate instancia compartida del validador; usa los nombres JSON en los errores.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como número (gte/lte).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ValidationError errores de validación por campo; envuelve domain.ErrInvalidInput.
type ValidationError struct {
	Campos map[string]string
}

func (e *ValidationError) Error() string {
	claves := make([]string, 0, len(e.Campos))
	for k := range e.Campos {
		claves = append(claves, k)
	}
	sort.Strings(claves)
	partes := make([]string, 0, len(claves))
	for _, k := range claves {
		partes = append(partes, k+": "+e.Campos[k])
	}
	return fmt.Sprintf("%s (%s)", domain.ErrInvalidInput.Error(), strings.Join(partes, "; "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// ValidarStruct valida s y traduce los errores a mensajes por campo.
func ValidarStruct(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	campos := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		campos[fe.Field()] = mensaje(fe)
	}
	return &ValidationError{Campos: campos}
}

// CamposInvalidos extrae los mensajes por campo de un error de validación (nil si no lo es).
func CamposInvalidos(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Campos
	}
	return nil
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "max":
		return "máximo " + fe.Param() + " caracteres"
	case "min":
		return "mínimo " + fe.Param() + " caracteres"
	case "email":
		return "correo inválido"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "datetime":
		return "fecha inválida (AAAA-MM-DD)"
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "lte":
		return "debe ser menor o igual a " + fe.Param()
	case "latitude", "longitude":
		return "coordenada inválida"
	default:
		return "valor inválido"
	}
}
