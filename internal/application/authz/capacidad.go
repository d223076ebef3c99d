// Package authz centraliza las verificaciones de permisos de la consola. Toda vista o acción
// protegida pregunta aquí en lugar de buscar cadenas de permiso por su cuenta.
package authz

import (
	"context"

	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// Accion sobre un recurso.
type Accion string

const (
	Ver           Accion = "ver"
	Crear         Accion = "crear"
	Editar        Accion = "editar"
	CambiarEstado Accion = "cambiar_estado"
	Exportar      Accion = "exportar"
	Eliminar      Accion = "eliminar"
)

// Capacidad es el nombre de un permiso tal como viaja en el token: "<modulo>.<accion>".
type Capacidad string

// Para construye la capacidad de una acción sobre un recurso.
func Para(r entity.Recurso, a Accion) Capacidad {
	return Capacidad(r.Modulo + "." + string(a))
}

// Permisos es el conjunto de permisos de una sesión.
type Permisos struct {
	set map[string]struct{}
}

// NuevosPermisos construye el conjunto a partir de la lista decodificada del token.
func NuevosPermisos(lista []string) Permisos {
	set := make(map[string]struct{}, len(lista))
	for _, p := range lista {
		set[p] = struct{}{}
	}
	return Permisos{set: set}
}

// DeSesion devuelve los permisos de la sesión; sin sesión el conjunto es vacío.
func DeSesion(s *entity.Sesion) Permisos {
	if s == nil {
		return NuevosPermisos(nil)
	}
	return NuevosPermisos(s.Permisos)
}

// DeContexto devuelve los permisos de la sesión adjunta al contexto.
func DeContexto(ctx context.Context) Permisos {
	return DeSesion(entity.SesionFromContext(ctx))
}

// Puede es una prueba de pertenencia.
func (p Permisos) Puede(c Capacidad) bool {
	_, ok := p.set[string(c)]
	return ok
}

// Len cantidad de permisos.
func (p Permisos) Len() int { return len(p.set) }

// Acciones indica qué controles mostrar para un recurso. Un control sin permiso se oculta.
type Acciones struct {
	Ver           bool
	Crear         bool
	Editar        bool
	CambiarEstado bool
	Exportar      bool
	Eliminar      bool
}

// AccionesPara resuelve todas las acciones de un recurso de una sola vez.
func (p Permisos) AccionesPara(r entity.Recurso) Acciones {
	return Acciones{
		Ver:           p.Puede(Para(r, Ver)),
		Crear:         p.Puede(Para(r, Crear)),
		Editar:        p.Puede(Para(r, Editar)),
		CambiarEstado: p.Puede(Para(r, CambiarEstado)),
		Exportar:      p.Puede(Para(r, Exportar)),
		Eliminar:      p.Puede(Para(r, Eliminar)),
	}
}

// Exigir devuelve domain.ErrForbidden si la sesión del contexto no tiene la capacidad.
func Exigir(ctx context.Context, c Capacidad) error {
	if !DeContexto(ctx).Puede(c) {
		return domain.ErrForbidden
	}
	return nil
}
