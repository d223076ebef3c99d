package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Edificio es el registro de un bien inmueble municipal. Cada sección es un struct cerrado y
// validable por separado; al estar embebidas, en JSON viajan como la bolsa plana de campos
// que espera el backend. Las fechas son cadenas YYYY-MM-DD.
type Edificio struct {
	ID     int64  `json:"id,omitempty"`
	Estado Estado `json:"estado,omitempty"`

	Identificacion
	DatosLegales
	Condicion
	Responsable
	Clasificacion
	FuncionarioAsignado
	Ubicacion
	Agrupacion

	CreadoPor      *UsuarioRef `json:"creado_por,omitempty"`
	ActualizadoPor *UsuarioRef `json:"actualizado_por,omitempty"`
	CreatedAt      *time.Time  `json:"created_at,omitempty"`
	UpdatedAt      *time.Time  `json:"updated_at,omitempty"`
}

// Identificacion del bien.
type Identificacion struct {
	Codigo         string `json:"codigo" validate:"required,max=50" etiqueta:"Código"`
	CodigoAnterior string `json:"codigo_anterior,omitempty" validate:"max=50" etiqueta:"Código anterior"`
	NombreEdificio string `json:"nombre_edificio" validate:"required,max=200" etiqueta:"Nombre del edificio"`
	Descripcion    string `json:"descripcion,omitempty" validate:"max=500" etiqueta:"Descripción"`
	TipoInmueble   string `json:"tipo_inmueble,omitempty" validate:"omitempty,oneof=EDIFICIO TERRENO CASA OFICINA GALPON OTRO" etiqueta:"Tipo de inmueble"`
}

// DatosLegales documentación legal y de compra.
type DatosLegales struct {
	NumeroFolioReal  string          `json:"numero_folio_real,omitempty" validate:"max=50" etiqueta:"N° folio real"`
	NumeroTestimonio string          `json:"numero_testimonio,omitempty" validate:"max=50" etiqueta:"N° testimonio"`
	FechaTestimonio  string          `json:"fecha_testimonio,omitempty" validate:"omitempty,datetime=2006-01-02" etiqueta:"Fecha del testimonio"`
	Notaria          string          `json:"notaria,omitempty" validate:"max=200" etiqueta:"Notaría"`
	FormaAdquisicion string          `json:"forma_adquisicion,omitempty" validate:"omitempty,oneof=COMPRA DONACION TRANSFERENCIA EXPROPIACION OTRO" etiqueta:"Forma de adquisición"`
	FechaAdquisicion string          `json:"fecha_adquisicion,omitempty" validate:"omitempty,datetime=2006-01-02" etiqueta:"Fecha de adquisición"`
	ValorCompra      decimal.Decimal `json:"valor_compra" validate:"gte=0" etiqueta:"Valor de compra"`
	Moneda           string          `json:"moneda,omitempty" validate:"omitempty,oneof=BOB USD" etiqueta:"Moneda"`
	Proveedor        string          `json:"proveedor,omitempty" validate:"max=200" etiqueta:"Proveedor / vendedor"`
	NumeroFactura    string          `json:"numero_factura,omitempty" validate:"max=50" etiqueta:"N° factura"`
	ConDocumentacion bool            `json:"con_documentacion" etiqueta:"Cuenta con documentación"`
	Saneado          bool            `json:"saneado" etiqueta:"Derecho propietario saneado"`
}

// Condicion estado físico y servicios.
type Condicion struct {
	EstadoConservacion   string          `json:"estado_conservacion,omitempty" validate:"omitempty,oneof=BUENO REGULAR MALO" etiqueta:"Estado de conservación"`
	ObservacionesEstado  string          `json:"observaciones_estado,omitempty" validate:"max=500" etiqueta:"Observaciones"`
	SuperficieTerreno    decimal.Decimal `json:"superficie_terreno" validate:"gte=0" etiqueta:"Superficie del terreno (m²)"`
	SuperficieConstruida decimal.Decimal `json:"superficie_construida" validate:"gte=0" etiqueta:"Superficie construida (m²)"`
	NumeroPisos          int             `json:"numero_pisos,omitempty" validate:"gte=0,lte=200" etiqueta:"N° de pisos"`
	AnioConstruccion     int             `json:"anio_construccion,omitempty" validate:"omitempty,gte=1800,lte=2100" etiqueta:"Año de construcción"`
	TieneAgua            bool            `json:"tiene_agua" etiqueta:"Agua potable"`
	TieneLuz             bool            `json:"tiene_luz" etiqueta:"Energía eléctrica"`
	TieneAlcantarillado  bool            `json:"tiene_alcantarillado" etiqueta:"Alcantarillado"`
	TieneGas             bool            `json:"tiene_gas" etiqueta:"Gas domiciliario"`
	TieneInternet        bool            `json:"tiene_internet" etiqueta:"Internet"`
}

// Responsable persona responsable del bien.
type Responsable struct {
	ResponsableNombre   string `json:"responsable_nombre,omitempty" validate:"max=200" etiqueta:"Responsable"`
	ResponsableCI       string `json:"responsable_ci,omitempty" validate:"max=20" etiqueta:"CI del responsable"`
	ResponsableCargo    string `json:"responsable_cargo,omitempty" validate:"max=200" etiqueta:"Cargo del responsable"`
	ResponsableTelefono string `json:"responsable_telefono,omitempty" validate:"max=30" etiqueta:"Teléfono del responsable"`
}

// Clasificacion contable.
type Clasificacion struct {
	GrupoContable    string `json:"grupo_contable,omitempty" validate:"max=100" etiqueta:"Grupo contable"`
	SubgrupoContable string `json:"subgrupo_contable,omitempty" validate:"max=100" etiqueta:"Subgrupo contable"`
	AuxiliarID       int64  `json:"auxiliar_id,omitempty" validate:"gte=0" etiqueta:"Auxiliar (id)"`
	VidaUtil         int    `json:"vida_util,omitempty" validate:"gte=0,lte=200" etiqueta:"Vida útil (años)"`
	Depreciable      bool   `json:"depreciable" etiqueta:"Depreciable"`
}

// FuncionarioAsignado funcionario y unidad a cargo.
type FuncionarioAsignado struct {
	PersonalID             int64  `json:"personal_id,omitempty" validate:"gte=0" etiqueta:"Funcionario (id personal)"`
	FuncionarioNombre      string `json:"funcionario_nombre,omitempty" validate:"max=200" etiqueta:"Nombre del funcionario"`
	CargoID                int64  `json:"cargo_id,omitempty" validate:"gte=0" etiqueta:"Cargo (id)"`
	UnidadOrganizacionalID int64  `json:"unidad_organizacional_id,omitempty" validate:"gte=0" etiqueta:"Unidad organizacional (id)"`
	AreaID                 int64  `json:"area_id,omitempty" validate:"gte=0" etiqueta:"Área (id)"`
	FechaAsignacion        string `json:"fecha_asignacion,omitempty" validate:"omitempty,datetime=2006-01-02" etiqueta:"Fecha de asignación"`
}

// Ubicacion geográfica.
type Ubicacion struct {
	CiudadID   int64  `json:"ciudad_id,omitempty" validate:"gte=0" etiqueta:"Ciudad (id)"`
	DistritoID int64  `json:"distrito_id,omitempty" validate:"gte=0" etiqueta:"Distrito (id)"`
	AmbienteID int64  `json:"ambiente_id,omitempty" validate:"gte=0" etiqueta:"Ambiente (id)"`
	Zona       string `json:"zona,omitempty" validate:"max=200" etiqueta:"Zona / barrio"`
	Direccion  string `json:"direccion" validate:"required,max=300" etiqueta:"Dirección"`
	Latitud    string `json:"latitud,omitempty" validate:"omitempty,latitude" etiqueta:"Latitud"`
	Longitud   string `json:"longitud,omitempty" validate:"omitempty,longitude" etiqueta:"Longitud"`
}

// Agrupacion física del bien.
type Agrupacion struct {
	Bloque           string `json:"bloque,omitempty" validate:"max=50" etiqueta:"Bloque"`
	Piso             string `json:"piso,omitempty" validate:"max=20" etiqueta:"Piso"`
	NumeroAmbientes  int    `json:"numero_ambientes,omitempty" validate:"gte=0" etiqueta:"N° de ambientes"`
	NumeroBanos      int    `json:"numero_banos,omitempty" validate:"gte=0" etiqueta:"N° de baños"`
	AgrupacionFisica string `json:"agrupacion_fisica,omitempty" validate:"max=200" etiqueta:"Agrupación física"`
}

// Seccion asocia un título de formulario con el struct de la sección.
type Seccion struct {
	Titulo string
	Datos  any // puntero a la sección dentro del Edificio
}

// Secciones devuelve las secciones del formulario en orden de presentación.
func (e *Edificio) Secciones() []Seccion {
	return []Seccion{
		{Titulo: "Identificación", Datos: &e.Identificacion},
		{Titulo: "Datos legales y de compra", Datos: &e.DatosLegales},
		{Titulo: "Condición", Datos: &e.Condicion},
		{Titulo: "Responsable", Datos: &e.Responsable},
		{Titulo: "Clasificación", Datos: &e.Clasificacion},
		{Titulo: "Funcionario asignado", Datos: &e.FuncionarioAsignado},
		{Titulo: "Ubicación", Datos: &e.Ubicacion},
		{Titulo: "Agrupación física", Datos: &e.Agrupacion},
	}
}
