package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-consola/internal/application/auth"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	apphttp "github.com/jhoicas/activos-consola/internal/interfaces/http"
	"github.com/jhoicas/activos-consola/internal/infrastructure/pdf"
	"github.com/jhoicas/activos-consola/internal/infrastructure/rest"
	"github.com/jhoicas/activos-consola/internal/infrastructure/xlsx"
	pkgjwt "github.com/jhoicas/activos-consola/pkg/jwt"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// backendFalso responde como el backend de activos y cuenta las llamadas por "MÉTODO ruta".
type backendFalso struct {
	*httptest.Server
	permisos []string
	llamadas map[string]int
	areas    []entity.Parametro

	pdfStatus int
	pdfQuery  string
}

func nuevoBackendFalso(t *testing.T, permisos ...string) *backendFalso {
	t.Helper()
	b := &backendFalso{
		permisos:  permisos,
		llamadas:  map[string]int{},
		pdfStatus: http.StatusOK,
		areas: []entity.Parametro{
			{ID: 1, Codigo: "A-01", Descripcion: "Secretaría General", Estado: entity.EstadoActivo},
			{ID: 2, Codigo: "A-02", Descripcion: "Dirección de Catastro", Estado: entity.EstadoActivo},
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Correo   string `json:"correo"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "clave-segura" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"credenciales inválidas"}`))
			return
		}
		tok, err := pkgjwt.Generate("secreto-backend", pkgjwt.Claims{Permisos: b.permisos}, 60)
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":   tok,
			"usuario": entity.Usuario{ID: 7, Correo: in.Correo, Nombre: "Operadora"},
		})
	})
	mux.HandleFunc("/parametros/areas", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": b.areas})
	})
	mux.HandleFunc("/parametros/areas/1/cambiar-estado", func(w http.ResponseWriter, r *http.Request) {
		b.areas[0].Estado = b.areas[0].Estado.Alterno()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/parametros/areas/exportar/pdf", func(w http.ResponseWriter, r *http.Request) {
		b.pdfQuery = r.URL.RawQuery
		if b.pdfStatus != http.StatusOK {
			w.WriteHeader(b.pdfStatus)
			_, _ = w.Write([]byte(`{"code":"ERROR","message":"fallo del reporte"}`))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 reporte de áreas"))
	})
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.llamadas[r.Method+" "+r.URL.Path]++
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.Close)
	return b
}

// nuevaConsola arma la app web completa contra el backend falso.
func nuevaConsola(t *testing.T, b *backendFalso) *fiber.App {
	t.Helper()
	log := logger.Nop()
	vistas, err := apphttp.NewVistas("Activos (test)")
	require.NoError(t, err)

	client := rest.NewClient(b.URL, 2*time.Second, nil)
	tabla := xlsx.NewExcelizeExporter()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log, vistas)})
	apphttp.Router(app, apphttp.RouterDeps{
		Vistas:      vistas,
		Store:       session.New(),
		Log:         log,
		SesionUC:    auth.NewSessionUseCase(rest.NewAuthGateway(client), log),
		ParametroUC: usecase.NewParametroUseCase(rest.NewParametroRepository(client), tabla, log),
		UsuarioUC:   usecase.NewUsuarioUseCase(rest.NewUsuarioRepository(client), log),
		RolUC:       usecase.NewRolUseCase(rest.NewRolRepository(client)),
		EdificioUC:  usecase.NewEdificioUseCase(rest.NewEdificioRepository(client), pdf.NewMarotoFichaGenerator("GAM"), tabla, log),
	})
	return app
}

func enviar(t *testing.T, app *fiber.App, req *http.Request, cookie *http.Cookie) *http.Response {
	t.Helper()
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postForm(ruta string, vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, ruta, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ingresar hace login y devuelve la cookie de sesión.
func ingresar(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp := enviar(t, app, postForm("/login", url.Values{"correo": {"ana@muni.gob.bo"}, "password": {"clave-segura"}}), nil)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("login sin cookie de sesión")
	return nil
}

func cuerpo(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSinSesion_RedirigeALogin(t *testing.T) {
	app := nuevaConsola(t, nuevoBackendFalso(t))

	resp := enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/areas?estado=todos", nil), nil)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	loc := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/login?volver="), loc)
	assert.Contains(t, loc, url.QueryEscape("/parametros/areas?estado=todos"))
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	b := nuevoBackendFalso(t)
	app := nuevaConsola(t, b)

	resp := enviar(t, app, postForm("/login", url.Values{"correo": {"ana@muni.gob.bo"}, "password": {"otra-clave"}}), nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, b.llamadas["POST /auth/login"])
}

func TestLogin_VuelveALaPaginaPedida(t *testing.T) {
	app := nuevaConsola(t, nuevoBackendFalso(t, "areas.ver"))

	req := postForm("/login?volver="+url.QueryEscape("/parametros/areas"), url.Values{"correo": {"ana@muni.gob.bo"}, "password": {"clave-segura"}})
	resp := enviar(t, app, req, nil)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/parametros/areas", resp.Header.Get("Location"))
}

func TestLogin_VolverExternoVaAlInicio(t *testing.T) {
	app := nuevaConsola(t, nuevoBackendFalso(t, "areas.ver"))

	for _, volver := range []string{"//evil.example", "/\\evil.example", "https://evil.example", "/login"} {
		req := postForm("/login?volver="+url.QueryEscape(volver), url.Values{"correo": {"ana@muni.gob.bo"}, "password": {"clave-segura"}})
		resp := enviar(t, app, req, nil)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, volver)
		assert.Equal(t, "/", resp.Header.Get("Location"), volver)
	}
}

func TestLogout_BorraLaSesion(t *testing.T) {
	app := nuevaConsola(t, nuevoBackendFalso(t, "areas.ver"))
	cookie := ingresar(t, app)

	resp := enviar(t, app, httptest.NewRequest(http.MethodGet, "/", nil), cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, cuerpo(t, resp), "Operadora")

	resp = enviar(t, app, httptest.NewRequest(http.MethodPost, "/logout", nil), cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	resp = enviar(t, app, httptest.NewRequest(http.MethodGet, "/", nil), cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/login"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestPagina_AccesoSegunPermisoVer(t *testing.T) {
	b := nuevoBackendFalso(t, "areas.ver")
	app := nuevaConsola(t, b)
	cookie := ingresar(t, app)

	resp := enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/areas", nil), cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html := cuerpo(t, resp)
	assert.Contains(t, html, "A-01")
	assert.Contains(t, html, "Secretaría General")
	assert.NotContains(t, html, "Desactivar", "sin areas.cambiar_estado no hay botón")
	assert.NotContains(t, html, "Exportar PDF", "sin areas.exportar no hay exportación")

	resp = enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/cargos", nil), cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, cuerpo(t, resp), "cargos.ver")
	assert.Zero(t, b.llamadas["GET /parametros/cargos"], "sin permiso no se llama al backend")
}

func TestPagina_RecursoDesconocido(t *testing.T) {
	app := nuevaConsola(t, nuevoBackendFalso(t, "areas.ver"))
	cookie := ingresar(t, app)

	resp := enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/planetas", nil), cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCambiarEstado_SinPermisoEsDenegado(t *testing.T) {
	b := nuevoBackendFalso(t, "areas.ver")
	app := nuevaConsola(t, b)
	cookie := ingresar(t, app)

	resp := enviar(t, app, postForm("/parametros/areas/1/estado", url.Values{"estado": {"ACTIVO"}}), cookie)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Zero(t, b.llamadas["PUT /parametros/areas/1/cambiar-estado"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarEstado_UnaSolaRecargaConLosMismosFiltros(t *testing.T) {
	b := nuevoBackendFalso(t, "areas.ver", "areas.cambiar_estado")
	app := nuevaConsola(t, b)
	cookie := ingresar(t, app)

	form := url.Values{"estado": {"todos"}, "f_codigo": {"A-0"}}
	resp := enviar(t, app, postForm("/parametros/areas/1/estado", form), cookie)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, b.llamadas["PUT /parametros/areas/1/cambiar-estado"])
	assert.Equal(t, 1, b.llamadas["GET /parametros/areas"], "una sola recarga tras el cambio")

	html := cuerpo(t, resp)
	assert.Contains(t, html, "Estado actualizado.")
	assert.Contains(t, html, "Activar", "la fila 1 quedó inactiva")
	assert.Contains(t, html, `value="A-0"`, "el filtro de columna se conserva")
}

func TestCambiarEstado_FalloMuestraBanner(t *testing.T) {
	b := nuevoBackendFalso(t, "areas.ver", "areas.cambiar_estado")
	app := nuevaConsola(t, b)
	cookie := ingresar(t, app)

	resp := enviar(t, app, postForm("/parametros/areas/99/estado", url.Values{"estado": {"ACTIVO"}}), cookie)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Zero(t, b.llamadas["GET /parametros/areas"], "sin recarga si el cambio falla")

	resp = enviar(t, app, httptest.NewRequest(http.MethodGet, resp.Header.Get("Location"), nil), cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, cuerpo(t, resp), "No se pudo completar la operación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestExportarPDF_SeAbreEnLineaConElFiltroDeEstado(t *testing.T) {
	b := nuevoBackendFalso(t, "areas.ver", "areas.exportar")
	app := nuevaConsola(t, b)
	cookie := ingresar(t, app)

	resp := enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/areas/exportar/pdf?estado=todos", nil), cookie)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), "inline"))
	assert.Equal(t, "%PDF-1.7 reporte de áreas", cuerpo(t, resp))
	assert.Equal(t, "estado=todos", b.pdfQuery)
	assert.Equal(t, 1, b.llamadas["GET /parametros/areas/exportar/pdf"])
}

func TestExportarPDF_FalloDelBackendMuestraError(t *testing.T) {
	b := nuevoBackendFalso(t, "areas.ver", "areas.exportar")
	b.pdfStatus = http.StatusInternalServerError
	app := nuevaConsola(t, b)
	cookie := ingresar(t, app)

	resp := enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/areas/exportar/pdf?estado=INACTIVO", nil), cookie)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, cuerpo(t, resp), "No se pudo generar el reporte.")
	assert.Equal(t, "estado=INACTIVO", b.pdfQuery)
}

func TestExportarPDF_SesionVencidaVuelveAlLogin(t *testing.T) {
	b := nuevoBackendFalso(t, "areas.ver", "areas.exportar")
	b.pdfStatus = http.StatusUnauthorized
	app := nuevaConsola(t, b)
	cookie := ingresar(t, app)

	resp := enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/areas/exportar/pdf", nil), cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = enviar(t, app, httptest.NewRequest(http.MethodGet, "/parametros/areas", nil), cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, "la sesión quedó borrada")
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/login?volver="))
}
