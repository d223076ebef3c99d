package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

const baseUsuarios = "/usuarios"

func identidadUsuario(u entity.Usuario) identidad {
	return identidad{ID: u.ID, Nombre: u.Correo, Estado: u.Estado}
}

func (h *Handlers) renderUsuarios(c *fiber.Ctx, v *listing.Vista[entity.Usuario]) error {
	t := nuevaTabla(baseUsuarios, usecase.DefinicionUsuario, v, accionesDe(c, entity.RecursoUsuarios), identidadUsuario)
	// el backend no publica reporte PDF de usuarios; la exportación es solo XLSX
	t.Exportable = false
	t.Acciones.Exportar = false
	return h.vistas.render(c, fiber.StatusOK, vistaTabla, entity.RecursoUsuarios.Nombre, t)
}

// ListarUsuarios tabla de usuarios.
func (h *Handlers) ListarUsuarios(c *fiber.Ctx) error {
	v, err := h.usuario.Listar(c.UserContext(), criteriosDe(c))
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.renderUsuarios(c, v)
}

// CambiarEstadoUsuario activa o desactiva la cuenta y muestra la tabla recargada.
func (h *Handlers) CambiarEstadoUsuario(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	cr := criteriosDe(c)
	v, err := h.usuario.CambiarEstado(c.UserContext(), id, cr)
	if err != nil {
		return h.volverConError(c, baseUsuarios+"?"+nuevaConsulta(cr), err)
	}
	c.Locals(localFlash, &Flash{Tipo: "ok", Mensaje: "Estado actualizado."})
	return h.renderUsuarios(c, v)
}

// EliminarUsuario borra la cuenta (confirmado en el navegador).
func (h *Handlers) EliminarUsuario(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	cr := criteriosDe(c)
	v, err := h.usuario.Eliminar(c.UserContext(), id, cr)
	if err != nil {
		return h.volverConError(c, baseUsuarios+"?"+nuevaConsulta(cr), err)
	}
	c.Locals(localFlash, &Flash{Tipo: "ok", Mensaje: "Usuario eliminado."})
	return h.renderUsuarios(c, v)
}

// NuevoUsuario formulario de alta.
func (h *Handlers) NuevoUsuario(c *fiber.Ctx) error {
	return h.formUsuario(c, baseUsuarios, "Usuarios: nuevo", dto.UsuarioRequest{}, true, nil, fiber.StatusOK)
}

// CrearUsuario procesa el alta.
func (h *Handlers) CrearUsuario(c *fiber.Ctx) error {
	var in dto.UsuarioRequest
	if err := h.forms.Decode(&in, formValues(c)); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.usuario.Crear(c.UserContext(), in); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			in.Password = ""
			return h.formUsuario(c, baseUsuarios, "Usuarios: nuevo", in, true, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, baseUsuarios, "Usuario creado.")
}

// EditarUsuario formulario de edición; la contraseña nunca se muestra.
func (h *Handlers) EditarUsuario(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	u, err := h.usuario.Obtener(c.UserContext(), id)
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.formUsuario(c, baseUsuarios+"/"+c.Params("id"), "Usuarios: "+u.Correo, requestDeUsuario(u), false, nil, fiber.StatusOK)
}

// ActualizarUsuario procesa la edición.
func (h *Handlers) ActualizarUsuario(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	var in dto.UsuarioRequest
	if err := h.forms.Decode(&in, formValues(c)); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.usuario.Actualizar(c.UserContext(), id, in); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			in.Password = ""
			return h.formUsuario(c, baseUsuarios+"/"+c.Params("id"), "Usuarios: "+in.Correo, in, false, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, baseUsuarios, "Usuario actualizado.")
}

// formUsuario muestra el selector de rol solo si el operador puede ver roles;
// si no, el rol se ingresa por id.
func (h *Handlers) formUsuario(c *fiber.Ctx, accion, titulo string, in dto.UsuarioRequest, alta bool, errores map[string]string, status int) error {
	var roles []entity.Rol
	if authz.DeSesion(sesionDe(c)).Puede(authz.Para(entity.RecursoRoles, authz.Ver)) {
		if v, err := h.rol.Listar(c.UserContext(), listing.NuevosCriterios()); err == nil {
			roles = v.Filas
		} else {
			h.log.Warn().Err(err).Msg("roles para el formulario de usuario")
		}
	}
	return h.vistas.render(c, status, vistaFormulario, titulo, formularioVista{
		Accion:    accion,
		Volver:    baseUsuarios,
		Secciones: seccionUsuario(in, roles, alta),
		Errores:   noNilMap(errores),
	})
}

func requestDeUsuario(u *entity.Usuario) dto.UsuarioRequest {
	in := dto.UsuarioRequest{Correo: u.Correo, Nombre: u.Nombre}
	if u.Rol != nil {
		in.RolID = u.Rol.ID
	}
	if u.VigenciaDesde != nil {
		in.VigenciaDesde = u.VigenciaDesde.Format(time.DateOnly)
	}
	if u.VigenciaHasta != nil {
		in.VigenciaHasta = u.VigenciaHasta.Format(time.DateOnly)
	}
	return in
}
