package entity

import "strings"

// Estado de un registro administrado por el backend. Solo se cambia con el endpoint de cambio de estado.
type Estado string

const (
	EstadoActivo   Estado = "ACTIVO"
	EstadoInactivo Estado = "INACTIVO"
)

// Valido indica si e es uno de los dos valores admitidos.
func (e Estado) Valido() bool {
	return e == EstadoActivo || e == EstadoInactivo
}

// Alterno devuelve el estado que resultaría de un cambio de estado.
func (e Estado) Alterno() Estado {
	if e == EstadoActivo {
		return EstadoInactivo
	}
	return EstadoActivo
}

// EstadoFiltro es el valor del parámetro de consulta "estado" en listados y exportaciones.
type EstadoFiltro string

const (
	FiltroActivos   EstadoFiltro = "ACTIVO"
	FiltroInactivos EstadoFiltro = "INACTIVO"
	FiltroTodos     EstadoFiltro = "todos"
)

// ParseEstadoFiltro interpreta el valor del selector; vacío o desconocido equivale a "solo activos".
func ParseEstadoFiltro(s string) EstadoFiltro {
	switch strings.TrimSpace(s) {
	case string(FiltroInactivos):
		return FiltroInactivos
	case string(FiltroTodos), "TODOS":
		return FiltroTodos
	default:
		return FiltroActivos
	}
}

// Admite indica si un registro con estado e pasa el filtro.
func (f EstadoFiltro) Admite(e Estado) bool {
	switch f {
	case FiltroTodos:
		return true
	case FiltroInactivos:
		return e == EstadoInactivo
	default:
		return e == EstadoActivo
	}
}
