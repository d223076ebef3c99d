package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// recursoResolver obtiene el recurso protegido a partir de la petición.
type recursoResolver func(c *fiber.Ctx) (entity.Recurso, bool)

func fijo(r entity.Recurso) recursoResolver {
	return func(*fiber.Ctx) (entity.Recurso, bool) { return r, true }
}

// parametroDeRuta resuelve el recurso de parámetros del segmento :recurso.
func parametroDeRuta(c *fiber.Ctx) (entity.Recurso, bool) {
	return entity.ParametroPorClave(c.Params("recurso"))
}

// RequirePermiso devuelve un middleware que verifica la capacidad <modulo>.<accion> del
// recurso contra los permisos de la sesión. Debe usarse DESPUÉS de SesionMiddleware.
//
// Comportamiento:
//   - 404 → el recurso de la ruta no existe.
//   - 403 → página de acceso denegado si falta el permiso.
func (h *Handlers) RequirePermiso(resolver recursoResolver, accion authz.Accion) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, ok := resolver(c)
		if !ok {
			return h.vistas.render(c, fiber.StatusNotFound, vistaError, "No encontrado", "La sección solicitada no existe.")
		}
		capacidad := authz.Para(r, accion)
		if !authz.DeSesion(sesionDe(c)).Puede(capacidad) {
			h.log.Info().Str("permiso", string(capacidad)).Str("ruta", c.Path()).Msg("acceso denegado")
			return h.denegado(c, string(capacidad))
		}
		c.Locals(localRecurso, r)
		return c.Next()
	}
}

const localRecurso = "recurso"

func recursoDe(c *fiber.Ctx) entity.Recurso {
	r, _ := c.Locals(localRecurso).(entity.Recurso)
	return r
}

func (h *Handlers) denegado(c *fiber.Ctx, permiso string) error {
	return h.vistas.render(c, fiber.StatusForbidden, vistaDenegado, "Acceso denegado", permiso)
}

// menu entradas visibles según los permisos de ver de la sesión.
func menu(s *entity.Sesion) []itemMenu {
	p := authz.DeSesion(s)
	var out []itemMenu
	add := func(r entity.Recurso, url string) {
		if p.Puede(authz.Para(r, authz.Ver)) {
			out = append(out, itemMenu{Nombre: r.Nombre, URL: url})
		}
	}
	add(entity.RecursoEdificios, "/edificios")
	for _, r := range entity.Parametros() {
		add(r, "/parametros/"+r.Clave)
	}
	add(entity.RecursoUsuarios, "/usuarios")
	add(entity.RecursoRoles, "/roles")
	out = append(out, itemMenu{Nombre: "Mi perfil", URL: "/perfil"})
	return out
}
