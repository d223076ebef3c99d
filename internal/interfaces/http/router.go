package http

import (
	"github.com/go-playground/form"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/activos-consola/internal/application/auth"
	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Vistas      *Vistas
	Store       *session.Store
	Log         *logger.Logger
	SesionUC    *auth.SessionUseCase
	ParametroUC *usecase.ParametroUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	RolUC       *usecase.RolUseCase
	EdificioUC  *usecase.EdificioUseCase
}

// Handlers agrupa los handlers de la consola; comparten vistas, store de sesiones y decodificadores.
type Handlers struct {
	vistas    *Vistas
	store     *session.Store
	log       *logger.Logger
	sesion    *auth.SessionUseCase
	parametro *usecase.ParametroUseCase
	usuario   *usecase.UsuarioUseCase
	rol       *usecase.RolUseCase
	edificio  *usecase.EdificioUseCase
	forms     *form.Decoder
	edificios *form.Decoder
}

// Router registra las rutas de la consola web.
func Router(app *fiber.App, deps RouterDeps) {
	h := &Handlers{
		vistas:    deps.Vistas,
		store:     deps.Store,
		log:       deps.Log,
		sesion:    deps.SesionUC,
		parametro: deps.ParametroUC,
		usuario:   deps.UsuarioUC,
		rol:       deps.RolUC,
		edificio:  deps.EdificioUC,
		forms:     form.NewDecoder(),
		edificios: newEdificioDecoder(),
	}

	// Auth (público)
	app.Get("/login", h.LoginForm)
	app.Post("/login", h.Login)

	// Rutas protegidas (requieren sesión)
	protected := app.Group("/", SesionMiddleware(deps.Store))
	protected.Post("/logout", h.Logout)
	protected.Get("/", h.Inicio)
	protected.Get("/perfil", h.Perfil)
	protected.Post("/perfil/refrescar", h.RefrescarPermisos)

	// Parámetros organizacionales: /parametros/areas, /parametros/cargos, ...
	parametros := protected.Group("/parametros/:recurso")
	ver := h.RequirePermiso(parametroDeRuta, authz.Ver)
	parametros.Get("/", ver, h.ListarParametros)
	parametros.Get("/exportar/pdf", h.RequirePermiso(parametroDeRuta, authz.Exportar), h.ExportarParametrosPDF)
	parametros.Get("/exportar/xlsx", ver, h.RequirePermiso(parametroDeRuta, authz.Exportar), h.ExportarParametrosXLSX)
	parametros.Get("/nuevo", h.RequirePermiso(parametroDeRuta, authz.Crear), h.NuevoParametro)
	parametros.Post("/", h.RequirePermiso(parametroDeRuta, authz.Crear), h.CrearParametro)
	parametros.Get("/:id/editar", h.RequirePermiso(parametroDeRuta, authz.Editar), h.EditarParametro)
	parametros.Post("/:id", h.RequirePermiso(parametroDeRuta, authz.Editar), h.ActualizarParametro)
	parametros.Post("/:id/estado", h.RequirePermiso(parametroDeRuta, authz.CambiarEstado), h.CambiarEstadoParametro)

	// Usuarios
	usuarios := protected.Group("/usuarios")
	usuarios.Get("/", h.RequirePermiso(fijo(entity.RecursoUsuarios), authz.Ver), h.ListarUsuarios)
	usuarios.Get("/nuevo", h.RequirePermiso(fijo(entity.RecursoUsuarios), authz.Crear), h.NuevoUsuario)
	usuarios.Post("/", h.RequirePermiso(fijo(entity.RecursoUsuarios), authz.Crear), h.CrearUsuario)
	usuarios.Get("/:id/editar", h.RequirePermiso(fijo(entity.RecursoUsuarios), authz.Editar), h.EditarUsuario)
	usuarios.Post("/:id", h.RequirePermiso(fijo(entity.RecursoUsuarios), authz.Editar), h.ActualizarUsuario)
	usuarios.Post("/:id/estado", h.RequirePermiso(fijo(entity.RecursoUsuarios), authz.CambiarEstado), h.CambiarEstadoUsuario)
	usuarios.Post("/:id/eliminar", h.RequirePermiso(fijo(entity.RecursoUsuarios), authz.Eliminar), h.EliminarUsuario)

	// Roles
	roles := protected.Group("/roles")
	roles.Get("/", h.RequirePermiso(fijo(entity.RecursoRoles), authz.Ver), h.ListarRoles)
	roles.Get("/nuevo", h.RequirePermiso(fijo(entity.RecursoRoles), authz.Crear), h.NuevoRol)
	roles.Post("/", h.RequirePermiso(fijo(entity.RecursoRoles), authz.Crear), h.CrearRol)
	roles.Get("/:id", h.RequirePermiso(fijo(entity.RecursoRoles), authz.Ver), h.DetalleRol)
	roles.Get("/:id/editar", h.RequirePermiso(fijo(entity.RecursoRoles), authz.Editar), h.EditarRol)
	roles.Post("/:id", h.RequirePermiso(fijo(entity.RecursoRoles), authz.Editar), h.ActualizarRol)

	// Edificios
	edificios := protected.Group("/edificios")
	edificios.Get("/", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Ver), h.ListarEdificios)
	edificios.Get("/exportar/pdf", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Exportar), h.ExportarEdificiosPDF)
	edificios.Get("/exportar/xlsx", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Exportar), h.ExportarEdificiosXLSX)
	edificios.Get("/nuevo", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Crear), h.NuevoEdificio)
	edificios.Post("/", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Crear), h.CrearEdificio)
	edificios.Get("/:id/editar", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Editar), h.EditarEdificio)
	edificios.Get("/:id/ficha", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Ver), h.FichaEdificio)
	edificios.Post("/:id", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.Editar), h.ActualizarEdificio)
	edificios.Post("/:id/estado", h.RequirePermiso(fijo(entity.RecursoEdificios), authz.CambiarEstado), h.CambiarEstadoEdificio)
}
