package authz

import (
	"strings"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// ModuloOtros agrupa los permisos sin módulo.
const ModuloOtros = "Otros"

// GrupoPermisos permisos de un mismo módulo, en el orden en que aparecieron.
type GrupoPermisos struct {
	Modulo   string
	Permisos []entity.Permiso
}

// AgruparPorModulo particiona la lista por módulo. Los grupos siguen el orden de la primera
// aparición de cada módulo y cada permiso cae exactamente en un grupo.
func AgruparPorModulo(permisos []entity.Permiso) []GrupoPermisos {
	grupos := make([]GrupoPermisos, 0)
	indice := make(map[string]int)
	for _, p := range permisos {
		modulo := strings.TrimSpace(p.Modulo)
		if modulo == "" {
			modulo = ModuloOtros
		}
		i, ok := indice[modulo]
		if !ok {
			i = len(grupos)
			indice[modulo] = i
			grupos = append(grupos, GrupoPermisos{Modulo: modulo})
		}
		grupos[i].Permisos = append(grupos[i].Permisos, p)
	}
	return grupos
}

// PermisosDesdeNombres arma permisos a partir de nombres "<modulo>.<accion>" del token, para
// poder agruparlos sin consultar el catálogo.
func PermisosDesdeNombres(nombres []string) []entity.Permiso {
	out := make([]entity.Permiso, 0, len(nombres))
	for _, n := range nombres {
		modulo := ""
		if i := strings.LastIndex(n, "."); i > 0 {
			modulo = n[:i]
		}
		out = append(out, entity.Permiso{Nombre: n, Modulo: modulo})
	}
	return out
}
