package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

type permisosVista struct {
	Rol       *entity.Rol
	Grupos    []authz.GrupoPermisos
	Refrescar bool
	Volver    string
}

// Inicio menú de secciones visibles con los permisos de la sesión.
func (h *Handlers) Inicio(c *fiber.Ctx) error {
	items := menu(sesionDe(c))
	return h.vistas.render(c, fiber.StatusOK, vistaInicio, "Inicio", items[:len(items)-1])
}

// Perfil permisos del operador agrupados por módulo.
func (h *Handlers) Perfil(c *fiber.Ctx) error {
	s := sesionDe(c)
	return h.vistas.render(c, fiber.StatusOK, vistaPermisos, "Mi perfil", permisosVista{
		Grupos:    h.sesion.PermisosAgrupados(s),
		Refrescar: true,
	})
}

// RefrescarPermisos vuelve a consultar /auth/permisos y guarda el resultado en la sesión.
// Un 403 deja la sesión sin permisos; otro fallo la deja como estaba.
func (h *Handlers) RefrescarPermisos(c *fiber.Ctx) error {
	s := sesionDe(c)
	antes := len(s.Permisos)
	h.sesion.RefrescarPermisos(c.UserContext(), s)

	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	if err := guardarSesion(sess, s); err != nil {
		return err
	}
	h.log.Debug().Int("antes", antes).Int("despues", len(s.Permisos)).Msg("permisos refrescados")
	return c.Redirect("/perfil", fiber.StatusSeeOther)
}
