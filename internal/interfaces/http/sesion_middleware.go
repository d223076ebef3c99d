package http

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/infrastructure/rest"
)

// Locals de fiber usados por la consola.
const (
	localSesion = "sesion"
	localFlash  = "flash"
)

// Claves de la sesión web; son las mismas que persiste la CLI.
const (
	claveToken    = "token"
	claveUsuario  = "usuario"
	clavePermisos = "permisos"
	claveAuth     = "auth"
	claveFlash    = "flash"
)

// SesionMiddleware carga la sesión del operador y la deja en el contexto de la petición
// (c.UserContext) para los casos de uso y el cliente REST. Sin sesión redirige a /login.
func SesionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		s := leerSesion(sess)
		if !s.Autenticada() {
			return c.Redirect("/login?volver="+url.QueryEscape(c.OriginalURL()), fiber.StatusSeeOther)
		}
		if f := leerFlash(sess); f != nil {
			c.Locals(localFlash, f)
			if err := sess.Save(); err != nil {
				return err
			}
		}
		adjuntarSesion(c, s)
		return c.Next()
	}
}

func adjuntarSesion(c *fiber.Ctx, s *entity.Sesion) {
	c.Locals(localSesion, s)
	ctx := entity.ContextWithSesion(c.UserContext(), s)
	if id := c.GetRespHeader(fiber.HeaderXRequestID); id != "" {
		ctx = rest.ContextWithRequestID(ctx, id)
	}
	c.SetUserContext(ctx)
}

// sesionDe devuelve la sesión cargada por el middleware (nunca nil).
func sesionDe(c *fiber.Ctx) *entity.Sesion {
	if s, ok := c.Locals(localSesion).(*entity.Sesion); ok && s != nil {
		return s
	}
	return &entity.Sesion{Permisos: []string{}}
}

func leerSesion(sess *session.Session) *entity.Sesion {
	s := &entity.Sesion{Permisos: []string{}}
	s.Token, _ = sess.Get(claveToken).(string)
	s.Auth, _ = sess.Get(claveAuth).(bool)
	if raw, ok := sess.Get(claveUsuario).(string); ok && raw != "" {
		var u entity.Usuario
		if json.Unmarshal([]byte(raw), &u) == nil {
			s.Usuario = &u
		}
	}
	if raw, ok := sess.Get(clavePermisos).(string); ok && raw != "" {
		_ = json.Unmarshal([]byte(raw), &s.Permisos)
	}
	return s
}

// guardarSesion escribe las cuatro claves. Usuario y permisos viajan como JSON.
func guardarSesion(sess *session.Session, s *entity.Sesion) error {
	usuario, err := json.Marshal(s.Usuario)
	if err != nil {
		return err
	}
	permisos, err := json.Marshal(s.Permisos)
	if err != nil {
		return err
	}
	sess.Set(claveToken, s.Token)
	sess.Set(claveUsuario, string(usuario))
	sess.Set(clavePermisos, string(permisos))
	sess.Set(claveAuth, s.Auth)
	return sess.Save()
}

// borrarSesion elimina las cuatro claves y destruye la sesión.
func borrarSesion(sess *session.Session) error {
	for _, k := range []string{claveToken, claveUsuario, clavePermisos, claveAuth} {
		sess.Delete(k)
	}
	return sess.Destroy()
}

func leerFlash(sess *session.Session) *Flash {
	raw, ok := sess.Get(claveFlash).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(claveFlash)
	tipo, msg, _ := strings.Cut(raw, "|")
	return &Flash{Tipo: tipo, Mensaje: msg}
}

// flash guarda un mensaje para la próxima página.
func flash(store *session.Store, c *fiber.Ctx, tipo, mensaje string) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(claveFlash, tipo+"|"+mensaje)
	return sess.Save()
}
