package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

var errBackend = errors.New("backend caído")

func ctxCon(permisos ...string) context.Context {
	return entity.ContextWithSesion(context.Background(), &entity.Sesion{
		Token: "tok", Auth: true, Permisos: permisos, Usuario: &entity.Usuario{ID: 99},
	})
}

// ── Parámetros ───────────────────────────────────────────────────────────────

type fakeParametroRepo struct {
	items         []entity.Parametro
	listCalls     int
	estadosVistos []entity.EstadoFiltro
	toggled       []int64
	toggleErr     error
	creados       []*entity.Parametro
	pdf           []byte
}

func (f *fakeParametroRepo) List(_ context.Context, _ entity.Recurso, estado entity.EstadoFiltro) ([]entity.Parametro, error) {
	f.listCalls++
	f.estadosVistos = append(f.estadosVistos, estado)
	return f.items, nil
}

func (f *fakeParametroRepo) GetByID(_ context.Context, _ entity.Recurso, id int64) (*entity.Parametro, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, errors.New("no existe")
}

func (f *fakeParametroRepo) Create(_ context.Context, _ entity.Recurso, p *entity.Parametro) (*entity.Parametro, error) {
	f.creados = append(f.creados, p)
	out := *p
	out.ID = 100
	out.Estado = entity.EstadoActivo
	return &out, nil
}

func (f *fakeParametroRepo) Update(_ context.Context, _ entity.Recurso, p *entity.Parametro) (*entity.Parametro, error) {
	return p, nil
}

func (f *fakeParametroRepo) CambiarEstado(_ context.Context, _ entity.Recurso, id int64) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	f.toggled = append(f.toggled, id)
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Estado = f.items[i].Estado.Alterno()
		}
	}
	return nil
}

func (f *fakeParametroRepo) ExportarPDF(_ context.Context, _ entity.Recurso, estado entity.EstadoFiltro) ([]byte, error) {
	f.estadosVistos = append(f.estadosVistos, estado)
	return f.pdf, nil
}

type fakeTabla struct {
	titulo      string
	encabezados []string
	filas       [][]string
}

func (f *fakeTabla) ExportarTabla(titulo string, encabezados []string, filas [][]string) ([]byte, error) {
	f.titulo, f.encabezados, f.filas = titulo, encabezados, filas
	return []byte("xlsx"), nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	items     []entity.Usuario
	listCalls int
	borrados  []int64
	passwords []string
	ultimo    *entity.Usuario
}

func (f *fakeUsuarioRepo) List(context.Context, entity.EstadoFiltro) ([]entity.Usuario, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	return &entity.Usuario{ID: id}, nil
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario, password string) (*entity.Usuario, error) {
	f.ultimo = u
	f.passwords = append(f.passwords, password)
	return u, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario, password string) (*entity.Usuario, error) {
	f.ultimo = u
	f.passwords = append(f.passwords, password)
	return u, nil
}

func (f *fakeUsuarioRepo) CambiarEstado(context.Context, int64) error { return nil }

func (f *fakeUsuarioRepo) Delete(_ context.Context, id int64) error {
	f.borrados = append(f.borrados, id)
	return nil
}

// ── Roles ────────────────────────────────────────────────────────────────────

type fakeRolRepo struct {
	rol       *entity.Rol
	permisos  []entity.Permiso
	asignados []int64
}

func (f *fakeRolRepo) List(context.Context) ([]entity.Rol, error) {
	return []entity.Rol{{ID: 2, Nombre: "Operador"}, {ID: 1, Nombre: "Administrador"}}, nil
}

func (f *fakeRolRepo) GetByID(context.Context, int64) (*entity.Rol, error) { return f.rol, nil }

func (f *fakeRolRepo) Create(_ context.Context, r *entity.Rol, ids []int64) (*entity.Rol, error) {
	f.asignados = ids
	return r, nil
}

func (f *fakeRolRepo) Update(_ context.Context, r *entity.Rol, ids []int64) (*entity.Rol, error) {
	f.asignados = ids
	return r, nil
}

func (f *fakeRolRepo) ListPermisos(context.Context) ([]entity.Permiso, error) { return f.permisos, nil }

// ── Edificios ────────────────────────────────────────────────────────────────

type fakeEdificioRepo struct {
	items     []entity.Edificio
	listCalls int
	creado    *entity.Edificio
}

func (f *fakeEdificioRepo) List(context.Context, entity.EstadoFiltro) ([]entity.Edificio, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeEdificioRepo) GetByID(_ context.Context, id int64) (*entity.Edificio, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, errors.New("no existe")
}

func (f *fakeEdificioRepo) Create(_ context.Context, e *entity.Edificio) (*entity.Edificio, error) {
	f.creado = e
	return e, nil
}

func (f *fakeEdificioRepo) Update(_ context.Context, e *entity.Edificio) (*entity.Edificio, error) {
	return e, nil
}

func (f *fakeEdificioRepo) CambiarEstado(context.Context, int64) error { return nil }

func (f *fakeEdificioRepo) ExportarPDF(context.Context, entity.EstadoFiltro) ([]byte, error) {
	return []byte("%PDF"), nil
}

type fakeFicha struct{ generadas int }

func (f *fakeFicha) GenerarFicha(context.Context, *entity.Edificio) ([]byte, error) {
	f.generadas++
	return []byte("%PDF-ficha"), nil
}
