package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

//go:embed views/*.html
var vistasFS embed.FS

// Nombres de las páginas; cada una se parsea junto con views/layout.html.
const (
	vistaLogin      = "login"
	vistaInicio     = "inicio"
	vistaDenegado   = "denegado"
	vistaError      = "error"
	vistaTabla      = "tabla"
	vistaFormulario = "formulario"
	vistaPermisos   = "permisos"
)

// Vistas plantillas compiladas de la consola.
type Vistas struct {
	app   string
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"tipoInput": func(tipo string) string {
		switch tipo {
		case entity.CampoDecimal:
			return "number"
		case entity.CampoNumero, entity.CampoFecha, "email", "password":
			return tipo
		default:
			return "text"
		}
	},
}

// NewVistas compila todas las páginas embebidas.
func NewVistas(app string) (*Vistas, error) {
	v := &Vistas{app: app, pages: map[string]*template.Template{}}
	for _, nombre := range []string{vistaLogin, vistaInicio, vistaDenegado, vistaError, vistaTabla, vistaFormulario, vistaPermisos} {
		t, err := template.New("layout").Funcs(funcs).ParseFS(vistasFS, "views/layout.html", "views/"+nombre+".html")
		if err != nil {
			return nil, fmt.Errorf("plantilla %s: %w", nombre, err)
		}
		v.pages[nombre] = t
	}
	return v, nil
}

// Flash mensaje de una sola vez mostrado arriba del contenido.
type Flash struct {
	Tipo    string // "error" | "ok"
	Mensaje string
}

type itemMenu struct {
	Nombre string
	URL    string
}

type pagina struct {
	App       string
	Titulo    string
	Usuario   *entity.Usuario
	Menu      []itemMenu
	Flash     *Flash
	Contenido any
}

// render ejecuta la plantilla en un buffer para no dejar respuestas a medias si falla.
func (v *Vistas) render(c *fiber.Ctx, status int, nombre, titulo string, contenido any) error {
	t, ok := v.pages[nombre]
	if !ok {
		return fmt.Errorf("plantilla %q no registrada", nombre)
	}
	p := pagina{App: v.app, Titulo: titulo, Contenido: contenido}
	if s := sesionDe(c); s.Autenticada() {
		p.Usuario = s.Usuario
		p.Menu = menu(s)
	}
	if f, ok := c.Locals(localFlash).(*Flash); ok {
		p.Flash = f
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render %s: %w", nombre, err)
	}
	c.Status(status)
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
