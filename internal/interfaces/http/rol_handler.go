package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

const baseRoles = "/roles"

// ListarRoles tabla de roles; no tiene filtro de estado ni exportación.
func (h *Handlers) ListarRoles(c *fiber.Ctx) error {
	v, err := h.rol.Listar(c.UserContext(), criteriosDe(c))
	if err != nil {
		return h.manejarError(c, err)
	}
	t := nuevaTabla(baseRoles, usecase.DefinicionRol, v, accionesDe(c, entity.RecursoRoles), func(r entity.Rol) identidad {
		return identidad{ID: r.ID, Nombre: r.Nombre}
	})
	t.Detalle = true
	t.Acciones.Exportar = false
	return h.vistas.render(c, fiber.StatusOK, vistaTabla, entity.RecursoRoles.Nombre, t)
}

// DetalleRol permisos del rol agrupados por módulo.
func (h *Handlers) DetalleRol(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	d, err := h.rol.Detalle(c.UserContext(), id)
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.vistas.render(c, fiber.StatusOK, vistaPermisos, "Rol: "+d.Rol.Nombre, permisosVista{
		Rol:    d.Rol,
		Grupos: d.Grupos,
		Volver: baseRoles,
	})
}

// NuevoRol formulario de alta con el catálogo de permisos.
func (h *Handlers) NuevoRol(c *fiber.Ctx) error {
	return h.formRol(c, baseRoles, "Roles: nuevo", dto.RolRequest{}, nil, fiber.StatusOK)
}

// CrearRol procesa el alta.
func (h *Handlers) CrearRol(c *fiber.Ctx) error {
	var in dto.RolRequest
	if err := h.forms.Decode(&in, formValues(c)); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.rol.Crear(c.UserContext(), in); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			return h.formRol(c, baseRoles, "Roles: nuevo", in, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, baseRoles, "Rol creado.")
}

// EditarRol formulario de edición con los permisos actuales marcados.
func (h *Handlers) EditarRol(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	d, err := h.rol.Detalle(c.UserContext(), id)
	if err != nil {
		return h.manejarError(c, err)
	}
	in := dto.RolRequest{Nombre: d.Rol.Nombre, Slug: d.Rol.Slug, Descripcion: d.Rol.Descripcion, PermisoIDs: d.Rol.PermisoIDs()}
	return h.formRol(c, baseRoles+"/"+c.Params("id"), "Roles: "+d.Rol.Nombre, in, nil, fiber.StatusOK)
}

// ActualizarRol procesa la edición; los permisos marcados reemplazan a los anteriores.
func (h *Handlers) ActualizarRol(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	var in dto.RolRequest
	if err := h.forms.Decode(&in, formValues(c)); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.rol.Actualizar(c.UserContext(), id, in); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			return h.formRol(c, baseRoles+"/"+c.Params("id"), "Roles: "+in.Nombre, in, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, baseRoles, "Rol actualizado.")
}

func (h *Handlers) formRol(c *fiber.Ctx, accion, titulo string, in dto.RolRequest, errores map[string]string, status int) error {
	grupos, err := h.rol.CatalogoPermisos(c.UserContext())
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.vistas.render(c, status, vistaFormulario, titulo, formularioVista{
		Accion:    accion,
		Volver:    baseRoles,
		Secciones: seccionRol(in),
		Errores:   noNilMap(errores),
		Grupos:    grupos,
		Marcados:  marcados(in.PermisoIDs),
	})
}
