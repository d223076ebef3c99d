package listing

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Placeholder fila de relleno que ocupa todas las columnas.
type Placeholder string

const (
	SinPlaceholder          Placeholder = ""
	PlaceholderCargando     Placeholder = "cargando"
	PlaceholderSinRegistros Placeholder = "sin_registros"
)

// Vista es el estado de una página de listado.
type Vista[T any] struct {
	Cargando  bool
	Total     int // registros recibidos del backend antes de filtrar
	Filas     []T
	Criterios Criterios
}

// NuevaVista arma la vista filtrada a partir de los registros recibidos.
func NuevaVista[T any](registros []T, c Criterios, d Definicion[T]) *Vista[T] {
	return &Vista[T]{
		Total:     len(registros),
		Filas:     Aplicar(registros, c, d),
		Criterios: c,
	}
}

// Placeholder decide qué fila de relleno mostrar.
func (v *Vista[T]) Placeholder() Placeholder {
	switch {
	case v == nil || v.Cargando:
		return PlaceholderCargando
	case len(v.Filas) == 0:
		return PlaceholderSinRegistros
	default:
		return SinPlaceholder
	}
}

// Buscar filtra por la caja de búsqueda rápida: coincidencia difusa sin distinguir
// mayúsculas ni acentos, ordenada por cercanía. Una consulta vacía devuelve la entrada.
func Buscar[T any](registros []T, q string, texto func(T) string) []T {
	if q == "" {
		return registros
	}
	textos := make([]string, len(registros))
	for i, r := range registros {
		textos[i] = texto(r)
	}
	ranks := fuzzy.RankFindNormalizedFold(q, textos)
	sort.Stable(ranks)

	out := make([]T, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, registros[rank.OriginalIndex])
	}
	return out
}

// Tabular convierte filas en encabezados y celdas según las columnas de la definición
// (tabla HTML, salida de la CLI y exportación a hoja de cálculo).
func Tabular[T any](d Definicion[T], filas []T) ([]string, [][]string) {
	encabezados := make([]string, len(d.Columnas))
	for i, col := range d.Columnas {
		encabezados[i] = col.Etiqueta
	}
	celdas := make([][]string, len(filas))
	for i, f := range filas {
		fila := make([]string, len(d.Columnas))
		for j, col := range d.Columnas {
			if v, ok := col.Valor(f); ok {
				fila[j] = v
			}
		}
		celdas[i] = fila
	}
	return encabezados, celdas
}
