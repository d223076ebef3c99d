package rest_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/infrastructure/rest"
)

func TestLogin(t *testing.T) {
	b := nuevoBackend(t, http.StatusOK, `{"token":"jwt","usuario":{"id":1,"correo":"ana@muni.gob.bo","nombre":"Ana"}}`)
	gw := rest.NewAuthGateway(rest.NewClient(b.URL, time.Second, nil))

	tok, u, err := gw.Login(context.Background(), "ana@muni.gob.bo", "clave")
	require.NoError(t, err)

	assert.Equal(t, "jwt", tok)
	assert.Equal(t, "Ana", u.Nombre)
	assert.Equal(t, "/auth/login", b.ruta)
	assert.JSONEq(t, `{"correo":"ana@muni.gob.bo","password":"clave"}`, string(b.cuerpo))
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	b := nuevoBackend(t, http.StatusUnauthorized, `{"message":"credenciales inválidas"}`)
	gw := rest.NewAuthGateway(rest.NewClient(b.URL, time.Second, nil))

	_, _, err := gw.Login(context.Background(), "ana@muni.gob.bo", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMisPermisos_Formatos(t *testing.T) {
	for nombre, respuesta := range map[string]string{
		"objeto":   `{"permisos":["areas.ver","roles.ver"]}`,
		"lista":    `["areas.ver","roles.ver"]`,
		"envuelto": `{"data":{"permisos":["areas.ver","roles.ver"]}}`,
	} {
		t.Run(nombre, func(t *testing.T) {
			b := nuevoBackend(t, http.StatusOK, respuesta)
			gw := rest.NewAuthGateway(rest.NewClient(b.URL, time.Second, nil))

			out, err := gw.MisPermisos(ctxConToken("jwt"))
			require.NoError(t, err)
			assert.Equal(t, []string{"areas.ver", "roles.ver"}, out)
			assert.Equal(t, "Bearer jwt", b.auth)
		})
	}
}

func TestMisPermisos_403(t *testing.T) {
	b := nuevoBackend(t, http.StatusForbidden, ``)
	gw := rest.NewAuthGateway(rest.NewClient(b.URL, time.Second, nil))

	_, err := gw.MisPermisos(ctxConToken("jwt"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
