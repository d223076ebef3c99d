package usecase

import (
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// DefinicionParametro columnas filtrables de las páginas de parámetros.
var DefinicionParametro = listing.Definicion[entity.Parametro]{
	Estado: func(p entity.Parametro) entity.Estado { return p.Estado },
	Orden:  func(p entity.Parametro) string { return p.Codigo },
	Columnas: []listing.Columna[entity.Parametro]{
		{Clave: "codigo", Etiqueta: "Código", Valor: listing.Texto(func(p entity.Parametro) string { return p.Codigo })},
		{Clave: "descripcion", Etiqueta: "Descripción", Valor: listing.Texto(func(p entity.Parametro) string { return p.Descripcion })},
		{Clave: "estado", Etiqueta: "Estado", Valor: listing.Texto(func(p entity.Parametro) string { return string(p.Estado) })},
		{Clave: "creado_por", Etiqueta: "Creado por", Valor: listing.Ref(func(p entity.Parametro) *entity.UsuarioRef { return p.CreadoPor })},
		{Clave: "actualizado_por", Etiqueta: "Actualizado por", Valor: listing.Ref(func(p entity.Parametro) *entity.UsuarioRef { return p.ActualizadoPor })},
	},
}

// DefinicionUsuario columnas de la página de usuarios.
var DefinicionUsuario = listing.Definicion[entity.Usuario]{
	Estado: func(u entity.Usuario) entity.Estado { return u.Estado },
	Orden:  func(u entity.Usuario) string { return u.Correo },
	Columnas: []listing.Columna[entity.Usuario]{
		{Clave: "correo", Etiqueta: "Correo", Valor: listing.Texto(func(u entity.Usuario) string { return u.Correo })},
		{Clave: "nombre", Etiqueta: "Nombre", Valor: listing.Texto(func(u entity.Usuario) string { return u.Nombre })},
		{Clave: "rol", Etiqueta: "Rol", Valor: func(u entity.Usuario) (string, bool) {
			if u.Rol == nil {
				return "", false
			}
			return u.Rol.Nombre, true
		}},
		{Clave: "estado", Etiqueta: "Estado", Valor: listing.Texto(func(u entity.Usuario) string { return string(u.Estado) })},
		{Clave: "creado_por", Etiqueta: "Creado por", Valor: listing.Ref(func(u entity.Usuario) *entity.UsuarioRef { return u.CreadoPor })},
	},
}

// DefinicionRol columnas de la página de roles. Los roles no tienen estado.
var DefinicionRol = listing.Definicion[entity.Rol]{
	Orden: func(r entity.Rol) string { return r.Nombre },
	Columnas: []listing.Columna[entity.Rol]{
		{Clave: "nombre", Etiqueta: "Nombre", Valor: listing.Texto(func(r entity.Rol) string { return r.Nombre })},
		{Clave: "slug", Etiqueta: "Slug", Valor: listing.Texto(func(r entity.Rol) string { return r.Slug })},
		{Clave: "descripcion", Etiqueta: "Descripción", Valor: listing.Texto(func(r entity.Rol) string { return r.Descripcion })},
	},
}

// DefinicionEdificio columnas de la página de edificios.
var DefinicionEdificio = listing.Definicion[entity.Edificio]{
	Estado: func(e entity.Edificio) entity.Estado { return e.Estado },
	Orden:  func(e entity.Edificio) string { return e.Codigo },
	Columnas: []listing.Columna[entity.Edificio]{
		{Clave: "codigo", Etiqueta: "Código", Valor: listing.Texto(func(e entity.Edificio) string { return e.Codigo })},
		{Clave: "nombre_edificio", Etiqueta: "Nombre", Valor: listing.Texto(func(e entity.Edificio) string { return e.NombreEdificio })},
		{Clave: "descripcion", Etiqueta: "Descripción", Valor: listing.Texto(func(e entity.Edificio) string { return e.Descripcion })},
		{Clave: "direccion", Etiqueta: "Dirección", Valor: listing.Texto(func(e entity.Edificio) string { return e.Direccion })},
		{Clave: "responsable", Etiqueta: "Responsable", Valor: listing.Texto(func(e entity.Edificio) string { return e.ResponsableNombre })},
		{Clave: "estado", Etiqueta: "Estado", Valor: listing.Texto(func(e entity.Edificio) string { return string(e.Estado) })},
	},
}

func normalizar(c listing.Criterios) listing.Criterios {
	if c.Estado == "" {
		c.Estado = entity.FiltroActivos
	}
	if c.Filtros == nil {
		c.Filtros = map[string]string{}
	}
	return c
}
