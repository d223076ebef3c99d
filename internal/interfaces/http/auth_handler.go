package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/domain"
)

type loginVista struct {
	Correo  string
	Volver  string
	Errores map[string]string
}

// LoginForm muestra el formulario de ingreso; con sesión activa va directo al inicio.
func (h *Handlers) LoginForm(c *fiber.Ctx) error {
	if sess, err := h.store.Get(c); err == nil && leerSesion(sess).Autenticada() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return h.vistas.render(c, fiber.StatusOK, vistaLogin, "Ingresar", loginVista{Volver: c.Query("volver"), Errores: map[string]string{}})
}

// Login valida credenciales contra el backend y guarda token, usuario y permisos en la sesión.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := h.forms.Decode(&in, formValues(c)); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("formulario inválido")
	}
	in.Correo = strings.TrimSpace(in.Correo)

	s, err := h.sesion.Login(c.UserContext(), in)
	if err != nil {
		vista := loginVista{Correo: in.Correo, Volver: c.Query("volver"), Errores: dto.CamposInvalidos(err)}
		if vista.Errores == nil {
			vista.Errores = map[string]string{}
		}
		switch {
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotFound):
			vista.Errores["password"] = "correo o contraseña incorrectos"
			return h.vistas.render(c, fiber.StatusUnauthorized, vistaLogin, "Ingresar", vista)
		case errors.Is(err, domain.ErrInvalidInput):
			return h.vistas.render(c, fiber.StatusBadRequest, vistaLogin, "Ingresar", vista)
		default:
			h.log.Error().Err(err).Msg("login")
			vista.Errores["password"] = "no se pudo contactar al servidor, intente nuevamente"
			return h.vistas.render(c, fiber.StatusBadGateway, vistaLogin, "Ingresar", vista)
		}
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	if err := guardarSesion(sess, s); err != nil {
		return err
	}
	return c.Redirect(destino(c.Query("volver")), fiber.StatusSeeOther)
}

// Logout borra token, usuario, permisos y auth de la sesión.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	h.sesion.Logout(sesionDe(c))
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	if err := borrarSesion(sess); err != nil {
		return err
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// destino solo acepta rutas locales para evitar redirecciones abiertas. Los navegadores
// tratan "/\host" igual que "//host".
func destino(volver string) string {
	if !strings.HasPrefix(volver, "/") || volver == "/login" {
		return "/"
	}
	if len(volver) > 1 && (volver[1] == '/' || volver[1] == '\\') {
		return "/"
	}
	return volver
}

// formValues cuerpo urlencoded como url.Values para go-playground/form.
func formValues(c *fiber.Ctx) url.Values {
	out := url.Values{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		out[string(k)] = append(out[string(k)], string(v))
	})
	return out
}
