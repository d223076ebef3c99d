package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// manejarError traduce errores de los casos de uso a respuestas de la consola:
// 403 → acceso denegado, 401 → sesión vencida y vuelta al login, resto → página de error.
func (h *Handlers) manejarError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return h.denegado(c, "")
	case errors.Is(err, domain.ErrUnauthorized):
		if sess, serr := h.store.Get(c); serr == nil {
			_ = borrarSesion(sess)
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	case errors.Is(err, domain.ErrNotFound):
		return h.vistas.render(c, fiber.StatusNotFound, vistaError, "No encontrado", "El registro no existe o fue eliminado.")
	case errors.Is(err, domain.ErrConflict):
		return h.vistas.render(c, fiber.StatusConflict, vistaError, "Operación rechazada", mensajeUsuario(err))
	case errors.Is(err, domain.ErrInvalidInput):
		return h.vistas.render(c, fiber.StatusBadRequest, vistaError, "Datos inválidos", mensajeUsuario(err))
	default:
		h.log.Error().Err(err).Str("ruta", c.Path()).Msg("error de la consola")
		return h.vistas.render(c, fiber.StatusBadGateway, vistaError, "Error", "No se pudo completar la operación. Intente nuevamente.")
	}
}

// volverConError redirige a url con un banner de error (acciones de fila fallidas).
func (h *Handlers) volverConError(c *fiber.Ctx, url string, err error) error {
	if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUnauthorized) {
		return h.manejarError(c, err)
	}
	h.log.Error().Err(err).Str("ruta", c.Path()).Msg("acción fallida")
	if ferr := flash(h.store, c, "error", "No se pudo completar la operación: "+mensajeUsuario(err)); ferr != nil {
		return ferr
	}
	return c.Redirect(url, fiber.StatusSeeOther)
}

// errorDeReporte fallo de una exportación PDF del backend: permisos y sesión como el resto
// de la consola, cualquier otro error con la página genérica de reporte fallido.
func (h *Handlers) errorDeReporte(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUnauthorized) {
		return h.manejarError(c, err)
	}
	h.log.Error().Err(err).Str("ruta", c.Path()).Msg("exportar pdf")
	return h.vistas.render(c, fiber.StatusBadGateway, vistaError, "Error", "No se pudo generar el reporte.")
}

func mensajeUsuario(err error) string {
	for _, sentinel := range []error{domain.ErrConflict, domain.ErrInvalidInput, domain.ErrNotFound, domain.ErrForbidden} {
		if errors.Is(err, sentinel) {
			return err.Error()
		}
	}
	return "error del servidor"
}

// ErrorHandler handler de errores de fiber para lo que escapa a los handlers (404 de rutas,
// pánicos recuperados, fallos de plantilla).
func ErrorHandler(log *logger.Logger, vistas *Vistas) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("ruta", c.Path()).Msg("error no controlado")
		}
		msg := "Ocurrió un error inesperado."
		if code == fiber.StatusNotFound {
			msg = "La página solicitada no existe."
		}
		if rerr := vistas.render(c, code, vistaError, "Error", msg); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}

