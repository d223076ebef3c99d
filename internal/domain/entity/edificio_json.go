package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// edificioPlano evita la recursión de los métodos JSON de Edificio.
type edificioPlano Edificio

// MarshalJSON envía la bolsa plana que espera el backend: los números y decimales de las
// secciones viajan como cadenas; los enteros en cero se omiten.
func (e Edificio) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(edificioPlano(e))
	if err != nil {
		return nil, err
	}
	bolsa := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &bolsa); err != nil {
		return nil, err
	}
	err = recorrerCampos(&e, func(clave string, v reflect.Value) error {
		switch {
		case v.Type() == tipoDecimal:
			bolsa[clave], _ = json.Marshal(v.Interface().(decimal.Decimal).String())
		case v.Kind() == reflect.Int || v.Kind() == reflect.Int64:
			if v.Int() == 0 {
				delete(bolsa, clave)
				return nil
			}
			bolsa[clave], _ = json.Marshal(strconv.FormatInt(v.Int(), 10))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(bolsa)
}

// UnmarshalJSON acepta la bolsa del backend tal como llega: números como número o cadena,
// cadenas vacías y null como cero, booleanos como booleano o cadena.
func (e *Edificio) UnmarshalJSON(b []byte) error {
	bolsa := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &bolsa); err != nil {
		return err
	}
	secciones := map[string]json.RawMessage{}
	_ = recorrerCampos(e, func(clave string, _ reflect.Value) error {
		if raw, ok := bolsa[clave]; ok {
			secciones[clave] = raw
			delete(bolsa, clave)
		}
		return nil
	})

	resto, err := json.Marshal(bolsa)
	if err != nil {
		return err
	}
	*e = Edificio{}
	if err := json.Unmarshal(resto, (*edificioPlano)(e)); err != nil {
		return err
	}
	return recorrerCampos(e, func(clave string, v reflect.Value) error {
		raw, ok := secciones[clave]
		if !ok {
			return nil
		}
		if err := asignar(v, raw); err != nil {
			return fmt.Errorf("edificio: campo %s: %w", clave, err)
		}
		return nil
	})
}

// recorrerCampos visita cada campo con nombre JSON de las ocho secciones.
func recorrerCampos(e *Edificio, fn func(clave string, v reflect.Value) error) error {
	for _, s := range e.Secciones() {
		v := reflect.ValueOf(s.Datos).Elem()
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			clave := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
			if clave == "" || clave == "-" {
				continue
			}
			if err := fn(clave, v.Field(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// asignar escribe en v el valor crudo, aceptando la forma texto de números y booleanos.
func asignar(v reflect.Value, raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	texto := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &texto); err != nil {
			return err
		}
	}
	if v.Kind() == reflect.String {
		v.SetString(texto)
		return nil
	}
	texto = strings.TrimSpace(texto)

	switch {
	case v.Type() == tipoDecimal:
		if texto == "" {
			v.Set(reflect.ValueOf(decimal.Zero))
			return nil
		}
		d, err := decimal.NewFromString(texto)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(d))
	case v.Kind() == reflect.Bool:
		if texto == "" {
			v.SetBool(false)
			return nil
		}
		b, err := strconv.ParseBool(texto)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case v.Kind() == reflect.Int || v.Kind() == reflect.Int64:
		if texto == "" {
			v.SetInt(0)
			return nil
		}
		n, err := strconv.ParseInt(texto, 10, 64)
		if err != nil {
			// "3.0" y similares
			f, ferr := strconv.ParseFloat(texto, 64)
			if ferr != nil || f != float64(int64(f)) {
				return err
			}
			n = int64(f)
		}
		v.SetInt(n)
	default:
		return fmt.Errorf("tipo %s no soportado", v.Type())
	}
	return nil
}
