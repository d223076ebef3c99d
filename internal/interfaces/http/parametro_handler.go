package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

func identidadParametro(p entity.Parametro) identidad {
	return identidad{ID: p.ID, Nombre: p.Codigo, Estado: p.Estado}
}

func (h *Handlers) renderParametros(c *fiber.Ctx, r entity.Recurso, v *listing.Vista[entity.Parametro]) error {
	t := nuevaTabla("/parametros/"+r.Clave, usecase.DefinicionParametro, v, accionesDe(c, r), identidadParametro)
	return h.vistas.render(c, fiber.StatusOK, vistaTabla, r.Nombre, t)
}

// ListarParametros tabla con filtros por columna y selector de estado.
func (h *Handlers) ListarParametros(c *fiber.Ctx) error {
	r := recursoDe(c)
	v, err := h.parametro.Listar(c.UserContext(), r, criteriosDe(c))
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.renderParametros(c, r, v)
}

// CambiarEstadoParametro alterna el estado (confirmado en el navegador) y muestra la tabla
// recargada con los mismos filtros.
func (h *Handlers) CambiarEstadoParametro(c *fiber.Ctx) error {
	r := recursoDe(c)
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	cr := criteriosDe(c)
	v, err := h.parametro.CambiarEstado(c.UserContext(), r, id, cr)
	if err != nil {
		return h.volverConError(c, "/parametros/"+r.Clave+"?"+nuevaConsulta(cr), err)
	}
	c.Locals(localFlash, &Flash{Tipo: "ok", Mensaje: "Estado actualizado."})
	return h.renderParametros(c, r, v)
}

// ExportarParametrosPDF reporte del backend para el filtro de estado, abierto en otra pestaña.
func (h *Handlers) ExportarParametrosPDF(c *fiber.Ctx) error {
	r := recursoDe(c)
	pdf, err := h.parametro.ExportarPDF(c.UserContext(), r, entity.ParseEstadoFiltro(c.Query("estado")))
	if err != nil {
		return h.errorDeReporte(c, err)
	}
	return enviarPDF(c, r.Clave, pdf)
}

// ExportarParametrosXLSX hoja de cálculo con la vista filtrada.
func (h *Handlers) ExportarParametrosXLSX(c *fiber.Ctx) error {
	r := recursoDe(c)
	out, err := h.parametro.ExportarXLSX(c.UserContext(), r, criteriosDe(c))
	if err != nil {
		return h.manejarError(c, err)
	}
	return enviarXLSX(c, r.Clave, out)
}

// NuevoParametro formulario de alta.
func (h *Handlers) NuevoParametro(c *fiber.Ctx) error {
	r := recursoDe(c)
	return h.formParametro(c, r, "/parametros/"+r.Clave, &entity.Parametro{}, nil, fiber.StatusOK)
}

// CrearParametro procesa el alta.
func (h *Handlers) CrearParametro(c *fiber.Ctx) error {
	r := recursoDe(c)
	var in dto.ParametroRequest
	if err := h.forms.Decode(&in, formValues(c)); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.parametro.Crear(c.UserContext(), r, in); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			p := &entity.Parametro{Codigo: in.Codigo, Descripcion: in.Descripcion}
			return h.formParametro(c, r, "/parametros/"+r.Clave, p, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, "/parametros/"+r.Clave, r.Nombre+": registro creado.")
}

// EditarParametro formulario de edición.
func (h *Handlers) EditarParametro(c *fiber.Ctx) error {
	r := recursoDe(c)
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	p, err := h.parametro.Obtener(c.UserContext(), r, id)
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.formParametro(c, r, "/parametros/"+r.Clave+"/"+c.Params("id"), p, nil, fiber.StatusOK)
}

// ActualizarParametro procesa la edición.
func (h *Handlers) ActualizarParametro(c *fiber.Ctx) error {
	r := recursoDe(c)
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	var in dto.ParametroRequest
	if err := h.forms.Decode(&in, formValues(c)); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.parametro.Actualizar(c.UserContext(), r, id, in); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			p := &entity.Parametro{ID: id, Codigo: in.Codigo, Descripcion: in.Descripcion}
			return h.formParametro(c, r, "/parametros/"+r.Clave+"/"+c.Params("id"), p, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, "/parametros/"+r.Clave, r.Nombre+": registro actualizado.")
}

func (h *Handlers) formParametro(c *fiber.Ctx, r entity.Recurso, accion string, p *entity.Parametro, errores map[string]string, status int) error {
	titulo := r.Nombre + ": nuevo"
	if p.ID != 0 {
		titulo = r.Nombre + ": " + p.Codigo
	}
	return h.vistas.render(c, status, vistaFormulario, titulo, formularioVista{
		Accion:    accion,
		Volver:    "/parametros/" + r.Clave,
		Secciones: seccionParametro(p),
		Errores:   noNilMap(errores),
	})
}

// listoYVolver redirige a la tabla con un banner de confirmación.
func (h *Handlers) listoYVolver(c *fiber.Ctx, url, mensaje string) error {
	if err := flash(h.store, c, "ok", mensaje); err != nil {
		return err
	}
	return c.Redirect(url, fiber.StatusSeeOther)
}

// nuevaConsulta query string que reproduce los criterios de la tabla.
func nuevaConsulta(cr listing.Criterios) string {
	q := url.Values{}
	q.Set("estado", string(cr.Estado))
	for k, v := range cr.Filtros {
		q.Set(prefijoFiltro+k, v)
	}
	return q.Encode()
}

func noNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
