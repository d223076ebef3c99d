package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/activos-consola/internal/application/auth"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
	infrapdf "github.com/jhoicas/activos-consola/internal/infrastructure/pdf"
	"github.com/jhoicas/activos-consola/internal/infrastructure/rest"
	"github.com/jhoicas/activos-consola/internal/infrastructure/sessionstore"
	"github.com/jhoicas/activos-consola/internal/infrastructure/xlsx"
	"github.com/jhoicas/activos-consola/pkg/config"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// app estado compartido por los comandos: sesión cargada del archivo y casos de uso.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// flags globales
	apiURL     string
	sesionPath string
	logLevel   string
	json       bool
	si         bool

	log       *logger.Logger
	store     repository.SesionRepository
	sesion    *entity.Sesion
	sesionUC  *auth.SessionUseCase
	parametro *usecase.ParametroUseCase
	usuario   *usecase.UsuarioUseCase
	rol       *usecase.RolUseCase
	edificio  *usecase.EdificioUseCase
}

// ejecutar corre la CLI y devuelve el código de salida.
func ejecutar(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	if errors.Is(err, domain.ErrUnauthorized) && a.store != nil {
		// token vencido o revocado: la sesión guardada ya no sirve
		_ = a.store.Clear(context.Background())
		err = fmt.Errorf("%w. Ejecute 'activos login'", err)
	}
	fmt.Fprintln(errOut, "error:", err.Error())
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "activos",
		Short:         "Consola del sistema de activos fijos municipales",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.iniciar(cmd.Context())
		},
	}
	cmd.PersistentFlags().StringVar(&a.apiURL, "api", "", "URL del backend (por defecto API_BASE_URL)")
	cmd.PersistentFlags().StringVar(&a.sesionPath, "sesion", "", "Archivo de sesión (por defecto SESSION_FILE o ~/.activos/sesion.json)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Nivel de log (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.json, "json", false, "Salida JSON en lugar de tabla")

	cmd.AddCommand(newLoginCmd(a))
	cmd.AddCommand(newLogoutCmd(a))
	cmd.AddCommand(newPermisosCmd(a))
	cmd.AddCommand(newParametrosCmd(a))
	cmd.AddCommand(newUsuariosCmd(a))
	cmd.AddCommand(newRolesCmd(a))
	cmd.AddCommand(newEdificiosCmd(a))
	return cmd
}

// iniciar lee la configuración, la sesión guardada y arma cliente REST y casos de uso.
func (a *app) iniciar(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return withCode(exitValidacion, err)
	}
	if a.apiURL != "" {
		cfg.API.BaseURL = strings.TrimRight(a.apiURL, "/")
	}
	if a.logLevel == "" {
		a.logLevel = "warn"
	}
	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: a.logLevel, Output: a.errOut})

	path := a.sesionPath
	if path == "" {
		path = cfg.Session.File
	}
	a.store = sessionstore.NewFileStore(path)
	if a.sesion, err = a.store.Load(ctx); err != nil {
		return err
	}

	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), rest.SesionToken)
	tabla := xlsx.NewExcelizeExporter()
	a.sesionUC = auth.NewSessionUseCase(rest.NewAuthGateway(client), a.log)
	a.parametro = usecase.NewParametroUseCase(rest.NewParametroRepository(client), tabla, a.log)
	a.usuario = usecase.NewUsuarioUseCase(rest.NewUsuarioRepository(client), a.log)
	a.rol = usecase.NewRolUseCase(rest.NewRolRepository(client))
	a.edificio = usecase.NewEdificioUseCase(rest.NewEdificioRepository(client), infrapdf.NewMarotoFichaGenerator(cfg.App.Name), tabla, a.log)
	return nil
}

// contexto exige sesión iniciada y la deja en el contexto para casos de uso y cliente REST.
func (a *app) contexto(cmd *cobra.Command) (context.Context, error) {
	if !a.sesion.Autenticada() {
		return nil, withCode(exitSesion, fmt.Errorf("%w. Ejecute 'activos login'", domain.ErrNoSession))
	}
	return entity.ContextWithSesion(cmd.Context(), a.sesion), nil
}

// criteriosFlags flags comunes de listado: --estado y --filtro clave=valor.
type criteriosFlags struct {
	estado  string
	filtros []string
}

func (f *criteriosFlags) registrar(cmd *cobra.Command, conEstado bool) {
	if conEstado {
		cmd.Flags().StringVar(&f.estado, "estado", string(entity.FiltroActivos), "Filtro de estado: ACTIVO, INACTIVO o todos")
	}
	cmd.Flags().StringArrayVar(&f.filtros, "filtro", nil, "Filtro por columna clave=valor (repetible)")
}

func (f *criteriosFlags) criterios() (listing.Criterios, error) {
	c := listing.NuevosCriterios()
	if f.estado != "" {
		c.Estado = entity.ParseEstadoFiltro(f.estado)
	}
	for _, kv := range f.filtros {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return c, withCode(exitValidacion, fmt.Errorf("filtro inválido %q: use clave=valor", kv))
		}
		c = c.Con(strings.TrimSpace(k), strings.TrimSpace(v))
	}
	return c, nil
}
