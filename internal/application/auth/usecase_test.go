package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-consola/internal/application/auth"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	pkgjwt "github.com/jhoicas/activos-consola/pkg/jwt"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

type fakeGateway struct {
	token       string
	usuario     *entity.Usuario
	loginErr    error
	permisos    []string
	permisosErr error
	tokenVisto  string
}

func (g *fakeGateway) Login(_ context.Context, _, _ string) (string, *entity.Usuario, error) {
	return g.token, g.usuario, g.loginErr
}

func (g *fakeGateway) MisPermisos(ctx context.Context) ([]string, error) {
	if s := entity.SesionFromContext(ctx); s != nil {
		g.tokenVisto = s.Token
	}
	return g.permisos, g.permisosErr
}

func tokenCon(t *testing.T, permisos []string) string {
	t.Helper()
	tok, err := pkgjwt.Generate("secreto", pkgjwt.Claims{Permisos: permisos}, 60)
	require.NoError(t, err)
	return tok
}

func TestLogin_ArmaSesionConPermisosDelToken(t *testing.T) {
	gw := &fakeGateway{token: tokenCon(t, []string{"areas.ver"}), usuario: &entity.Usuario{ID: 1, Nombre: "Ana"}}
	uc := auth.NewSessionUseCase(gw, logger.Nop())

	s, err := uc.Login(context.Background(), dto.LoginRequest{Correo: "ana@muni.gob.bo", Password: "clave-segura"})
	require.NoError(t, err)

	assert.True(t, s.Autenticada())
	assert.Equal(t, []string{"areas.ver"}, s.Permisos)
	assert.Equal(t, "Ana", s.Usuario.Nombre)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewSessionUseCase(&fakeGateway{loginErr: domain.ErrUnauthorized}, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Correo: "ana@muni.gob.bo", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Correo: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPermisosUsuario(t *testing.T) {
	uc := auth.NewSessionUseCase(&fakeGateway{}, logger.Nop())

	assert.Equal(t, []string{}, uc.PermisosUsuario(nil), "sin sesión")
	assert.Equal(t, []string{}, uc.PermisosUsuario(&entity.Sesion{}), "sin token")
	assert.Equal(t, []string{}, uc.PermisosUsuario(&entity.Sesion{Token: "basura"}), "token mal formado")
	assert.Equal(t, []string{}, uc.PermisosUsuario(&entity.Sesion{Token: tokenCon(t, nil)}), "sin claim")
	assert.Equal(t, []string{"x", "y"}, uc.PermisosUsuario(&entity.Sesion{Token: tokenCon(t, []string{"x", "y"})}))
}

func TestRefrescarPermisos_403EsListaVaciaYSesionSigue(t *testing.T) {
	gw := &fakeGateway{permisosErr: domain.ErrForbidden}
	uc := auth.NewSessionUseCase(gw, logger.Nop())
	s := &entity.Sesion{Token: "tok", Auth: true, Permisos: []string{"areas.ver"}}

	out := uc.RefrescarPermisos(context.Background(), s)

	assert.Equal(t, []string{}, out)
	assert.Equal(t, []string{}, s.Permisos, "los permisos anteriores ya no valen")
	assert.True(t, s.Autenticada(), "la sesión no se invalida")
	assert.Equal(t, "tok", gw.tokenVisto, "usa el token de la sesión")
}

func TestRefrescarPermisos_OtroErrorEsListaVacia(t *testing.T) {
	uc := auth.NewSessionUseCase(&fakeGateway{permisosErr: errors.New("timeout")}, logger.Nop())
	s := &entity.Sesion{Token: "tok", Auth: true, Permisos: []string{"areas.ver"}}

	assert.Equal(t, []string{}, uc.RefrescarPermisos(context.Background(), s))
	assert.True(t, s.Autenticada())
	assert.Equal(t, []string{"areas.ver"}, s.Permisos, "un fallo transitorio conserva los permisos")
}

func TestRefrescarPermisos_ExitoActualizaSesion(t *testing.T) {
	uc := auth.NewSessionUseCase(&fakeGateway{permisos: []string{"roles.ver"}}, logger.Nop())
	s := &entity.Sesion{Token: "tok", Auth: true, Permisos: []string{"areas.ver"}}

	out := uc.RefrescarPermisos(context.Background(), s)

	assert.Equal(t, []string{"roles.ver"}, out)
	assert.Equal(t, []string{"roles.ver"}, s.Permisos)
}

func TestLogout_VaciaSesion(t *testing.T) {
	uc := auth.NewSessionUseCase(&fakeGateway{}, logger.Nop())
	s := &entity.Sesion{Token: "tok", Auth: true, Permisos: []string{"a"}}

	uc.Logout(s)
	assert.False(t, s.Autenticada())
	assert.Empty(t, s.Permisos)
}
