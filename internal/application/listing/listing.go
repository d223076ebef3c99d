// Package listing implementa la vista derivada de las páginas de listado: filtro de estado,
// filtros de texto por columna y orden por código.
package listing

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// Columna filtrable de una tabla. Valor devuelve presente=false cuando el campo es un
// anidado ausente (p. ej. creado_por nulo).
type Columna[T any] struct {
	Clave    string
	Etiqueta string
	Valor    func(T) (valor string, presente bool)
}

// Definicion describe cómo filtrar y ordenar un tipo de registro.
// Estado nil desactiva el filtro de estado (recursos sin estado, como roles).
type Definicion[T any] struct {
	Estado   func(T) entity.Estado
	Orden    func(T) string
	Columnas []Columna[T]
}

// Criterios son los valores que el operador eligió en la cabecera de la tabla.
type Criterios struct {
	Estado  entity.EstadoFiltro
	Filtros map[string]string
}

// NuevosCriterios criterios por defecto: solo activos, sin filtros.
func NuevosCriterios() Criterios {
	return Criterios{Estado: entity.FiltroActivos, Filtros: map[string]string{}}
}

// Filtro valor del filtro de la columna clave ("" si no hay).
func (c Criterios) Filtro(clave string) string {
	if c.Filtros == nil {
		return ""
	}
	return c.Filtros[clave]
}

// Con devuelve una copia con el filtro de la columna establecido.
func (c Criterios) Con(clave, valor string) Criterios {
	filtros := make(map[string]string, len(c.Filtros)+1)
	for k, v := range c.Filtros {
		filtros[k] = v
	}
	filtros[clave] = valor
	c.Filtros = filtros
	return c
}

// Aplicar devuelve, sin modificar la entrada, los registros que pasan el filtro de estado y
// todos los filtros de columna no vacíos (subcadena sin distinguir mayúsculas), ordenados de
// forma estable y ascendente por Orden.
func Aplicar[T any](registros []T, c Criterios, d Definicion[T]) []T {
	estado := c.Estado
	if estado == "" {
		estado = entity.FiltroActivos
	}
	fold := cases.Fold()

	type activo struct {
		col    Columna[T]
		filtro string
	}
	activos := make([]activo, 0, len(d.Columnas))
	for _, col := range d.Columnas {
		if f := c.Filtro(col.Clave); f != "" {
			activos = append(activos, activo{col: col, filtro: fold.String(f)})
		}
	}

	out := make([]T, 0, len(registros))
	for _, r := range registros {
		if d.Estado != nil && !estado.Admite(d.Estado(r)) {
			continue
		}
		ok := true
		for _, a := range activos {
			valor, presente := a.col.Valor(r)
			if !presente || !strings.Contains(fold.String(valor), a.filtro) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}

	if d.Orden != nil {
		slices.SortStableFunc(out, func(a, b T) int {
			return strings.Compare(d.Orden(a), d.Orden(b))
		})
	}
	return out
}

// Texto adapta un getter de cadena a Columna.Valor (siempre presente).
func Texto[T any](f func(T) string) func(T) (string, bool) {
	return func(r T) (string, bool) { return f(r), true }
}

// Ref adapta un getter de referencia anidada: nil ⇒ ausente.
func Ref[T any](f func(T) *entity.UsuarioRef) func(T) (string, bool) {
	return func(r T) (string, bool) {
		ref := f(r)
		if ref == nil {
			return "", false
		}
		return ref.Nombre, true
	}
}
