package entity

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos de campo del formulario de edificios.
const (
	CampoTexto    = "text"
	CampoFecha    = "date"
	CampoNumero   = "number"
	CampoDecimal  = "decimal"
	CampoBooleano = "checkbox"
	CampoOpciones = "select"
)

// Campo describe un campo de una sección: nombre en el cable, etiqueta, tipo de control y
// valor actual como texto (enteros en cero quedan vacíos).
type Campo struct {
	Clave     string
	Etiqueta  string
	Tipo      string
	Valor     string
	Requerido bool
	Opciones  []string
}

var tipoDecimal = reflect.TypeOf(decimal.Decimal{})

// Campos lista los campos de una sección en orden de declaración.
// seccion debe ser un puntero a struct o un struct.
func Campos(seccion any) []Campo {
	v := reflect.Indirect(reflect.ValueOf(seccion))
	t := v.Type()
	out := make([]Campo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		etiqueta := f.Tag.Get("etiqueta")
		if etiqueta == "" {
			continue
		}
		reglas := strings.Split(f.Tag.Get("validate"), ",")
		c := Campo{
			Clave:    strings.SplitN(f.Tag.Get("json"), ",", 2)[0],
			Etiqueta: etiqueta,
			Tipo:     CampoTexto,
		}
		for _, r := range reglas {
			switch {
			case r == "required":
				c.Requerido = true
			case strings.HasPrefix(r, "datetime="):
				c.Tipo = CampoFecha
			case strings.HasPrefix(r, "oneof="):
				c.Tipo = CampoOpciones
				c.Opciones = strings.Fields(strings.TrimPrefix(r, "oneof="))
			}
		}
		fv := v.Field(i)
		switch {
		case f.Type == tipoDecimal:
			c.Tipo = CampoDecimal
			c.Valor = fv.Interface().(decimal.Decimal).String()
		case f.Type.Kind() == reflect.Bool:
			c.Tipo = CampoBooleano
			c.Valor = strconv.FormatBool(fv.Bool())
		case f.Type.Kind() == reflect.Int || f.Type.Kind() == reflect.Int64:
			c.Tipo = CampoNumero
			if fv.Int() != 0 {
				c.Valor = strconv.FormatInt(fv.Int(), 10)
			}
		default:
			c.Valor = fv.String()
		}
		out = append(out, c)
	}
	return out
}
