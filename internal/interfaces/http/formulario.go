package http

import (
	"strconv"

	"github.com/go-playground/form"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

type opcion struct {
	Valor string
	Texto string
}

// campoForm campo del formulario; Opciones reemplaza a las de entity.Campo con texto visible.
type campoForm struct {
	entity.Campo
	Opciones []opcion
}

type seccionForm struct {
	Titulo string
	Campos []campoForm
}

type formularioVista struct {
	Accion    string
	Volver    string
	Secciones []seccionForm
	Errores   map[string]string
	Grupos    []authz.GrupoPermisos
	Marcados  map[int64]bool
}

func aCampos(campos []entity.Campo) []campoForm {
	out := make([]campoForm, len(campos))
	for i, c := range campos {
		out[i] = campoForm{Campo: c}
		for _, o := range c.Opciones {
			out[i].Opciones = append(out[i].Opciones, opcion{Valor: o, Texto: o})
		}
	}
	return out
}

func texto(clave, etiqueta, valor string, requerido bool) campoForm {
	return campoForm{Campo: entity.Campo{Clave: clave, Etiqueta: etiqueta, Tipo: entity.CampoTexto, Valor: valor, Requerido: requerido}}
}

// seccionesEdificio arma el formulario de edificio a partir de las secciones del registro.
func seccionesEdificio(e *entity.Edificio) []seccionForm {
	secs := e.Secciones()
	out := make([]seccionForm, len(secs))
	for i, s := range secs {
		out[i] = seccionForm{Titulo: s.Titulo, Campos: aCampos(entity.Campos(s.Datos))}
	}
	return out
}

func seccionParametro(p *entity.Parametro) []seccionForm {
	return []seccionForm{{Campos: []campoForm{
		texto("codigo", "Código", p.Codigo, true),
		texto("descripcion", "Descripción", p.Descripcion, true),
	}}}
}

func seccionUsuario(in dto.UsuarioRequest, roles []entity.Rol, alta bool) []seccionForm {
	rol := campoForm{Campo: entity.Campo{Clave: "rolId", Etiqueta: "Rol", Tipo: entity.CampoNumero, Requerido: true}}
	if in.RolID > 0 {
		rol.Valor = strconv.FormatInt(in.RolID, 10)
	}
	if len(roles) > 0 {
		rol.Tipo = entity.CampoOpciones
		for _, r := range roles {
			rol.Opciones = append(rol.Opciones, opcion{Valor: strconv.FormatInt(r.ID, 10), Texto: r.Nombre})
		}
	}
	clave := campoForm{Campo: entity.Campo{Clave: "password", Etiqueta: "Contraseña", Tipo: "password", Requerido: alta}}
	if !alta {
		clave.Etiqueta = "Nueva contraseña (vacío conserva la actual)"
	}
	return []seccionForm{{Campos: []campoForm{
		{Campo: entity.Campo{Clave: "correo", Etiqueta: "Correo", Tipo: "email", Valor: in.Correo, Requerido: true}},
		texto("nombre", "Nombre", in.Nombre, true),
		rol,
		clave,
		{Campo: entity.Campo{Clave: "vigenciaDesde", Etiqueta: "Vigente desde", Tipo: entity.CampoFecha, Valor: in.VigenciaDesde}},
		{Campo: entity.Campo{Clave: "vigenciaHasta", Etiqueta: "Vigente hasta", Tipo: entity.CampoFecha, Valor: in.VigenciaHasta}},
	}}}
}

func seccionRol(in dto.RolRequest) []seccionForm {
	return []seccionForm{{Campos: []campoForm{
		texto("nombre", "Nombre", in.Nombre, true),
		texto("slug", "Slug", in.Slug, true),
		texto("descripcion", "Descripción", in.Descripcion, false),
	}}}
}

func marcados(ids []int64) map[int64]bool {
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// newEdificioDecoder decodifica el formulario plano de edificio sobre las secciones embebidas,
// usando los nombres JSON de los campos.
func newEdificioDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("json")
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if len(vals) == 0 || vals[0] == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(vals[0])
	}, decimal.Decimal{})
	return d
}
