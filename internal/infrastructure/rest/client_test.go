package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/infrastructure/rest"
)

// backend servidor falso que registra la última petición.
type backend struct {
	*httptest.Server
	metodo   string
	ruta     string
	query    string
	auth     string
	reqID    string
	cuerpo   []byte
	llamadas int
}

func nuevoBackend(t *testing.T, status int, respuesta string) *backend {
	t.Helper()
	b := &backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.llamadas++
		b.metodo = r.Method
		b.ruta = r.URL.Path
		b.query = r.URL.RawQuery
		b.auth = r.Header.Get("Authorization")
		b.reqID = r.Header.Get(rest.HeaderRequestID)
		b.cuerpo, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respuesta))
	}))
	t.Cleanup(b.Close)
	return b
}

func ctxConToken(tok string) context.Context {
	return entity.ContextWithSesion(context.Background(), &entity.Sesion{Token: tok, Auth: true})
}

func TestClient_EnviaBearerYRequestID(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `[]`)
	repo := rest.NewParametroRepository(rest.NewClient(b.URL+"/", time.Second, nil))

	_, err := repo.List(ctxConToken("abc"), entity.RecursoCargos, entity.FiltroTodos)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, b.metodo)
	assert.Equal(t, "/parametros/cargos", b.ruta)
	assert.Equal(t, "estado=todos", b.query)
	assert.Equal(t, "Bearer abc", b.auth)
	assert.Len(t, b.reqID, 36)
}

func TestClient_SinSesionNoEnviaAuthorization(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `[]`)
	repo := rest.NewUsuarioRepository(rest.NewClient(b.URL, time.Second, nil))

	_, err := repo.List(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, b.auth)
	assert.Equal(t, "estado=ACTIVO", b.query, "sin filtro se piden los activos")
}

func TestClient_RequestIDPropagado(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `[]`)
	repo := rest.NewRolRepository(rest.NewClient(b.URL, time.Second, nil))

	_, err := repo.List(rest.ContextWithRequestID(context.Background(), "req-1"))
	require.NoError(t, err)
	assert.Equal(t, "req-1", b.reqID)
}

func TestClient_DesenvuelveData(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `{"data":[{"id":7,"codigo":"C-1","descripcion":"Chofer","estado":"ACTIVO","creado_por":{"id":1,"nombre":"Ana"}}]}`)
	repo := rest.NewParametroRepository(rest.NewClient(b.URL, time.Second, nil))

	items, err := repo.List(ctxConToken("t"), entity.RecursoCargos, entity.FiltroActivos)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, entity.EstadoActivo, items[0].Estado)
	require.NotNil(t, items[0].CreadoPor)
	assert.Equal(t, "Ana", items[0].CreadoPor.Nombre)
	assert.Nil(t, items[0].ActualizadoPor)
}

func TestClient_MapeaErroresDelBackend(t *testing.T) {
	casos := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusUnprocessableEntity, domain.ErrInvalidInput},
		{http.StatusInternalServerError, domain.ErrBackend},
	}
	for _, tc := range casos {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			b := nuevoBackend(t, tc.status, `{"code":"X","message":"detalle"}`)
			repo := rest.NewEdificioRepository(rest.NewClient(b.URL, time.Second, nil))

			_, err := repo.GetByID(ctxConToken("t"), 1)

			assert.ErrorIs(t, err, tc.want)
			var apiErr *rest.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "detalle", apiErr.Message)
			assert.True(t, rest.EsAPIError(err, tc.status))
		})
	}
}

func TestClient_BackendCaido(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `[]`)
	url := b.URL
	b.Close()

	_, err := rest.NewRolRepository(rest.NewClient(url, time.Second, nil)).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackend)
}

func TestCambiarEstado_PUTSinCuerpo(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `{"message":"ok"}`)
	repo := rest.NewParametroRepository(rest.NewClient(b.URL, time.Second, nil))

	require.NoError(t, repo.CambiarEstado(ctxConToken("t"), entity.RecursoUnidades, 12))

	assert.Equal(t, http.MethodPut, b.metodo)
	assert.Equal(t, "/parametros/unidades-organizacionales/12/cambiar-estado", b.ruta)
	assert.Empty(t, b.cuerpo)
}

func TestExportarPDF_DevuelveBytes(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, "%PDF-1.7 contenido")
	repo := rest.NewEdificioRepository(rest.NewClient(b.URL, time.Second, nil))

	pdf, err := repo.ExportarPDF(ctxConToken("t"), entity.FiltroInactivos)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-1.7 contenido", string(pdf))
	assert.Equal(t, "/edificios/exportar/pdf", b.ruta)
	assert.Equal(t, "estado=INACTIVO", b.query)
}

func TestExportarPDF_Error(t *testing.T) {
	b := nuevoBackend(t, http.StatusForbidden, `{"message":"sin permiso"}`)
	repo := rest.NewParametroRepository(rest.NewClient(b.URL, time.Second, nil))

	_, err := repo.ExportarPDF(ctxConToken("t"), entity.RecursoAreas, entity.FiltroActivos)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUsuarioCreate_Cuerpo(t *testing.T) {
	b := nuevoBackend(t, http.StatusCreated, `{"id":5,"correo":"luis@muni.gob.bo","rol":{"id":2,"nombre":"Operador"}}`)
	repo := rest.NewUsuarioRepository(rest.NewClient(b.URL, time.Second, nil))
	desde := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	u, err := repo.Create(ctxConToken("t"), &entity.Usuario{
		Correo: "luis@muni.gob.bo", Nombre: "Luis", Rol: &entity.RolRef{ID: 2}, VigenciaDesde: &desde,
	}, "clave-segura")
	require.NoError(t, err)
	assert.Equal(t, "Operador", u.NombreRol())

	var enviado map[string]any
	require.NoError(t, json.Unmarshal(b.cuerpo, &enviado))
	assert.Equal(t, "clave-segura", enviado["password"])
	assert.Equal(t, float64(2), enviado["rolId"])
	assert.Equal(t, "2026-01-15", enviado["vigenciaDesde"])
	assert.Nil(t, enviado["vigenciaHasta"])
}

func TestUsuarioUpdate_SinPasswordNoLoEnvia(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `{"id":5}`)
	repo := rest.NewUsuarioRepository(rest.NewClient(b.URL, time.Second, nil))

	_, err := repo.Update(ctxConToken("t"), &entity.Usuario{ID: 5, Correo: "x@y.bo"}, "")
	require.NoError(t, err)

	assert.Equal(t, "/usuarios/5", b.ruta)
	assert.NotContains(t, string(b.cuerpo), "password")
}

func TestUsuarioDelete(t *testing.T) {
	b := nuevoBackend(t, http.StatusNoContent, "")
	repo := rest.NewUsuarioRepository(rest.NewClient(b.URL, time.Second, nil))

	require.NoError(t, repo.Delete(ctxConToken("t"), 9))
	assert.Equal(t, http.MethodDelete, b.metodo)
	assert.Equal(t, "/usuarios/9", b.ruta)
}

func TestEdificioList_BolsaDeTextoDelBackend(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `{"data":[
		{"id":1,"estado":"ACTIVO","codigo":"E-1","nombre_edificio":"Alcaldía","direccion":"Plaza 1",
		 "numero_pisos":"3","valor_compra":"","superficie_terreno":"420.5","tiene_agua":"true","personal_id":""},
		{"id":2,"estado":"INACTIVO","codigo":"E-2","nombre_edificio":"Mercado","numero_pisos":null,"valor_compra":"1500"}
	]}`)
	repo := rest.NewEdificioRepository(rest.NewClient(b.URL, time.Second, nil))

	items, err := repo.List(ctxConToken("t"), entity.FiltroTodos)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].NumeroPisos)
	assert.True(t, items[0].ValorCompra.IsZero())
	assert.Equal(t, "420.5", items[0].SuperficieTerreno.String())
	assert.True(t, items[0].TieneAgua)
	assert.Equal(t, int64(0), items[0].PersonalID)
	assert.Equal(t, 0, items[1].NumeroPisos)
	assert.Equal(t, "1500", items[1].ValorCompra.String())
	assert.Equal(t, entity.EstadoInactivo, items[1].Estado)
}

func TestEdificioCreate_EnviaNumerosComoTexto(t *testing.T) {
	b := nuevoBackend(t, http.StatusCreated, `{"id":3,"codigo":"E-3","numero_pisos":"2"}`)
	repo := rest.NewEdificioRepository(rest.NewClient(b.URL, time.Second, nil))
	e := &entity.Edificio{}
	e.Codigo = "E-3"
	e.NumeroPisos = 2

	out, err := repo.Create(ctxConToken("t"), e)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)

	var enviado map[string]any
	require.NoError(t, json.Unmarshal(b.cuerpo, &enviado))
	assert.Equal(t, "2", enviado["numero_pisos"])
	assert.Equal(t, "0", enviado["valor_compra"])
}

func TestExportarPDF_DescargaDemasiadoGrande(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		bloque := make([]byte, 1<<20)
		for i := 0; i < 33; i++ {
			if _, err := w.Write(bloque); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	repo := rest.NewParametroRepository(rest.NewClient(srv.URL, 10*time.Second, nil))

	pdf, err := repo.ExportarPDF(ctxConToken("t"), entity.RecursoAreas, entity.FiltroActivos)

	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Nil(t, pdf, "no se entrega un PDF truncado")
}

func TestClient_RespuestaJSONDemasiadoGrande(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `["`+strings.Repeat("x", 5<<20)+`"]`)
	repo := rest.NewRolRepository(rest.NewClient(b.URL, 10*time.Second, nil))

	_, err := repo.List(ctxConToken("t"))
	require.ErrorIs(t, err, domain.ErrBackend)
	assert.Contains(t, err.Error(), "supera")
}

func TestAPIError_MensajeLargoNoParteRunas(t *testing.T) {
	b := nuevoBackend(t, http.StatusBadGateway, strings.Repeat("a", 199)+strings.Repeat("ñ", 50))
	repo := rest.NewRolRepository(rest.NewClient(b.URL, time.Second, nil))

	_, err := repo.List(ctxConToken("t"))

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, utf8.ValidString(apiErr.Message))
	assert.Equal(t, strings.Repeat("a", 199), apiErr.Message)
}
