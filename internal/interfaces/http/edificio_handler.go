package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

const baseEdificios = "/edificios"

func identidadEdificio(e entity.Edificio) identidad {
	return identidad{ID: e.ID, Nombre: e.Codigo, Estado: e.Estado}
}

func (h *Handlers) renderEdificios(c *fiber.Ctx, v *listing.Vista[entity.Edificio], q string) error {
	t := nuevaTabla(baseEdificios, usecase.DefinicionEdificio, v, accionesDe(c, entity.RecursoEdificios), identidadEdificio).conBusqueda(q)
	t.Ficha = true
	return h.vistas.render(c, fiber.StatusOK, vistaTabla, entity.RecursoEdificios.Nombre, t)
}

// ListarEdificios tabla con filtros por columna y búsqueda rápida.
func (h *Handlers) ListarEdificios(c *fiber.Ctx) error {
	q := busquedaDe(c)
	v, err := h.edificio.Listar(c.UserContext(), criteriosDe(c), q)
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.renderEdificios(c, v, q)
}

// CambiarEstadoEdificio alterna el estado y muestra la tabla recargada.
// La búsqueda rápida no se conserva tras el cambio.
func (h *Handlers) CambiarEstadoEdificio(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	cr := criteriosDe(c)
	v, err := h.edificio.CambiarEstado(c.UserContext(), id, cr)
	if err != nil {
		return h.volverConError(c, baseEdificios+"?"+nuevaConsulta(cr), err)
	}
	c.Locals(localFlash, &Flash{Tipo: "ok", Mensaje: "Estado actualizado."})
	return h.renderEdificios(c, v, "")
}

// ExportarEdificiosPDF reporte del backend para el filtro de estado.
func (h *Handlers) ExportarEdificiosPDF(c *fiber.Ctx) error {
	pdf, err := h.edificio.ExportarPDF(c.UserContext(), entity.ParseEstadoFiltro(c.Query("estado")))
	if err != nil {
		return h.errorDeReporte(c, err)
	}
	return enviarPDF(c, "edificios", pdf)
}

// ExportarEdificiosXLSX hoja de cálculo de la vista filtrada (incluida la búsqueda).
func (h *Handlers) ExportarEdificiosXLSX(c *fiber.Ctx) error {
	out, err := h.edificio.ExportarXLSX(c.UserContext(), criteriosDe(c), busquedaDe(c))
	if err != nil {
		return h.manejarError(c, err)
	}
	return enviarXLSX(c, "edificios", out)
}

// FichaEdificio ficha PDF del inmueble generada localmente.
func (h *Handlers) FichaEdificio(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	pdf, err := h.edificio.Ficha(c.UserContext(), id)
	if err != nil {
		return h.manejarError(c, err)
	}
	return enviarPDF(c, "ficha-"+c.Params("id"), pdf)
}

// NuevoEdificio formulario de alta por secciones.
func (h *Handlers) NuevoEdificio(c *fiber.Ctx) error {
	return h.formEdificio(c, baseEdificios, "Edificios: nuevo", &entity.Edificio{}, nil, fiber.StatusOK)
}

// CrearEdificio procesa el alta; los errores de todas las secciones se muestran juntos.
func (h *Handlers) CrearEdificio(c *fiber.Ctx) error {
	e, err := h.decodificarEdificio(c)
	if err != nil {
		return h.formEdificio(c, baseEdificios, "Edificios: nuevo", e, map[string]string{"": err.Error()}, fiber.StatusBadRequest)
	}
	if _, err := h.edificio.Crear(c.UserContext(), e); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			return h.formEdificio(c, baseEdificios, "Edificios: nuevo", e, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, baseEdificios, "Edificio creado.")
}

// EditarEdificio formulario de edición.
func (h *Handlers) EditarEdificio(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	e, err := h.edificio.Obtener(c.UserContext(), id)
	if err != nil {
		return h.manejarError(c, err)
	}
	return h.formEdificio(c, baseEdificios+"/"+c.Params("id"), "Edificios: "+e.Codigo, e, nil, fiber.StatusOK)
}

// ActualizarEdificio procesa la edición.
func (h *Handlers) ActualizarEdificio(c *fiber.Ctx) error {
	id, ok := idDe(c)
	if !ok {
		return fiber.ErrBadRequest
	}
	accion := baseEdificios + "/" + c.Params("id")
	e, err := h.decodificarEdificio(c)
	if err != nil {
		return h.formEdificio(c, accion, "Edificios: editar", e, map[string]string{"": err.Error()}, fiber.StatusBadRequest)
	}
	if _, err := h.edificio.Actualizar(c.UserContext(), id, e); err != nil {
		if campos := dto.CamposInvalidos(err); campos != nil {
			return h.formEdificio(c, accion, "Edificios: "+e.Codigo, e, campos, fiber.StatusBadRequest)
		}
		return h.manejarError(c, err)
	}
	return h.listoYVolver(c, baseEdificios, "Edificio actualizado.")
}

// decodificarEdificio vuelca el formulario plano sobre las secciones. Los checkbox sin marcar
// no llegan en el formulario y quedan en false.
func (h *Handlers) decodificarEdificio(c *fiber.Ctx) (*entity.Edificio, error) {
	e := &entity.Edificio{}
	if err := h.edificios.Decode(e, formValues(c)); err != nil {
		return e, errors.New("hay valores con formato inválido (números o decimales)")
	}
	return e, nil
}

func (h *Handlers) formEdificio(c *fiber.Ctx, accion, titulo string, e *entity.Edificio, errores map[string]string, status int) error {
	return h.vistas.render(c, status, vistaFormulario, titulo, formularioVista{
		Accion:    accion,
		Volver:    baseEdificios,
		Secciones: seccionesEdificio(e),
		Errores:   noNilMap(errores),
	})
}
