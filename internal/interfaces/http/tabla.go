package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// prefijoFiltro prefijo de los inputs de filtro por columna en la cabecera de la tabla.
const prefijoFiltro = "f_"

type columnaVista struct {
	Clave    string
	Etiqueta string
	Filtro   string
}

type filaVista struct {
	ID       int64
	Nombre   string
	Celdas   []string
	Inactivo bool
}

type tablaVista struct {
	Base        string
	Columnas    []columnaVista
	Filas       []filaVista
	Span        int
	Total       int
	Placeholder listing.Placeholder
	Estado      string
	ConEstado   bool
	Acciones    authz.Acciones
	Exportable  bool
	Query       string
	Ocultos     map[string]string
	ConBusqueda bool
	Busqueda    string
	Detalle     bool
	Ficha       bool
}

// identidad datos de una fila que no salen de las columnas.
type identidad struct {
	ID     int64
	Nombre string
	Estado entity.Estado
}

func nuevaTabla[T any](base string, d listing.Definicion[T], v *listing.Vista[T], acc authz.Acciones, ident func(T) identidad) tablaVista {
	t := tablaVista{
		Base:        base,
		Span:        len(d.Columnas) + 1,
		Total:       v.Total,
		Placeholder: v.Placeholder(),
		Estado:      string(v.Criterios.Estado),
		ConEstado:   d.Estado != nil,
		Acciones:    acc,
		Exportable:  d.Estado != nil,
		Ocultos:     map[string]string{},
	}
	for _, col := range d.Columnas {
		if col.Clave == "estado" && d.Estado == nil {
			continue
		}
		t.Columnas = append(t.Columnas, columnaVista{Clave: col.Clave, Etiqueta: col.Etiqueta, Filtro: v.Criterios.Filtro(col.Clave)})
	}
	_, celdas := listing.Tabular(d, v.Filas)
	for i, r := range v.Filas {
		id := ident(r)
		t.Filas = append(t.Filas, filaVista{
			ID:       id.ID,
			Nombre:   id.Nombre,
			Celdas:   celdas[i],
			Inactivo: id.Estado == entity.EstadoInactivo,
		})
	}

	q := url.Values{}
	if d.Estado != nil {
		q.Set("estado", t.Estado)
	}
	for clave, valor := range v.Criterios.Filtros {
		if valor != "" {
			q.Set(prefijoFiltro+clave, valor)
		}
	}
	for k := range q {
		t.Ocultos[k] = q.Get(k)
	}
	t.Query = q.Encode()
	return t
}

// conBusqueda agrega la caja de búsqueda rápida y la conserva en exportación y acciones.
func (t tablaVista) conBusqueda(q string) tablaVista {
	t.ConBusqueda = true
	t.Busqueda = q
	if q != "" {
		t.Ocultos["q"] = q
		vals, _ := url.ParseQuery(t.Query)
		vals.Set("q", q)
		t.Query = vals.Encode()
	}
	return t
}

// criteriosDe lee estado y filtros de columna desde la query (GET) o el formulario (POST).
func criteriosDe(c *fiber.Ctx) listing.Criterios {
	leer := c.Query
	if c.Method() == fiber.MethodPost {
		leer = func(k string, def ...string) string { return c.FormValue(k, def...) }
	}
	cr := listing.NuevosCriterios()
	cr.Estado = entity.ParseEstadoFiltro(leer("estado"))
	agregar := func(k, v string) {
		if clave, ok := strings.CutPrefix(k, prefijoFiltro); ok && strings.TrimSpace(v) != "" {
			cr = cr.Con(clave, strings.TrimSpace(v))
		}
	}
	if c.Method() == fiber.MethodPost {
		c.Request().PostArgs().VisitAll(func(k, v []byte) { agregar(string(k), string(v)) })
	} else {
		c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) { agregar(string(k), string(v)) })
	}
	return cr
}

// busquedaDe texto de la búsqueda rápida.
func busquedaDe(c *fiber.Ctx) string {
	if c.Method() == fiber.MethodPost {
		return strings.TrimSpace(c.FormValue("q"))
	}
	return strings.TrimSpace(c.Query("q"))
}

func idDe(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func accionesDe(c *fiber.Ctx, r entity.Recurso) authz.Acciones {
	return authz.DeSesion(sesionDe(c)).AccionesPara(r)
}

func enviarPDF(c *fiber.Ctx, nombre string, pdf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+nombre+`.pdf"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(pdf)
}

func enviarXLSX(c *fiber.Ctx, nombre string, xlsx []byte) error {
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`.xlsx"`)
	return c.Send(xlsx)
}
