package entity

// Recurso describe un tipo de registro expuesto por el backend: su ruta REST y el módulo
// de permisos que lo protege.
type Recurso struct {
	Clave  string // identificador corto usado en rutas de la consola y en la CLI
	Ruta   string // ruta REST en el backend
	Nombre string // título para mostrar
	Modulo string // prefijo de los permisos ("areas" → "areas.ver")
}

var (
	RecursoUsuarios  = Recurso{Clave: "usuarios", Ruta: "/usuarios", Nombre: "Usuarios", Modulo: "usuarios"}
	RecursoRoles     = Recurso{Clave: "roles", Ruta: "/roles", Nombre: "Roles", Modulo: "roles"}
	RecursoPermisos  = Recurso{Clave: "permisos", Ruta: "/permisos", Nombre: "Permisos", Modulo: "roles"}
	RecursoEdificios = Recurso{Clave: "edificios", Ruta: "/edificios", Nombre: "Edificios", Modulo: "edificios"}

	RecursoAreas      = parametro("areas", "areas", "Áreas")
	RecursoUnidades   = parametro("unidades", "unidades-organizacionales", "Unidades organizacionales")
	RecursoAmbientes  = parametro("ambientes", "ambientes", "Ambientes")
	RecursoCargos     = parametro("cargos", "cargos", "Cargos")
	RecursoCiudades   = parametro("ciudades", "ciudades", "Ciudades")
	RecursoDistritos  = parametro("distritos", "distritos", "Distritos")
	RecursoAuxiliares = parametro("auxiliares", "auxiliares", "Auxiliares")
	RecursoPersonal   = parametro("personal", "personal", "Personal")
)

func parametro(clave, ruta, nombre string) Recurso {
	return Recurso{Clave: clave, Ruta: "/parametros/" + ruta, Nombre: nombre, Modulo: clave}
}

// Parametros devuelve los recursos de la familia de parámetros organizacionales, en orden de menú.
func Parametros() []Recurso {
	return []Recurso{
		RecursoAreas, RecursoUnidades, RecursoAmbientes, RecursoCargos,
		RecursoCiudades, RecursoDistritos, RecursoAuxiliares, RecursoPersonal,
	}
}

// ParametroPorClave busca un recurso de parámetros por su clave.
func ParametroPorClave(clave string) (Recurso, bool) {
	for _, r := range Parametros() {
		if r.Clave == clave {
			return r, true
		}
	}
	return Recurso{}, false
}
