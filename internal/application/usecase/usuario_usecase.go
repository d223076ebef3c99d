package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// UsuarioUseCase lógica de la página de usuarios.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
	log  *logger.Logger
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, log *logger.Logger) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, log: log}
}

// Listar usuarios con filtros por correo, nombre y rol.
func (uc *UsuarioUseCase) Listar(ctx context.Context, c listing.Criterios) (*listing.Vista[entity.Usuario], error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoUsuarios, authz.Ver)); err != nil {
		return nil, err
	}
	c = normalizar(c)
	items, err := uc.repo.List(ctx, c.Estado)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	return listing.NuevaVista(items, c, DefinicionUsuario), nil
}

// Obtener un usuario por id.
func (uc *UsuarioUseCase) Obtener(ctx context.Context, id int64) (*entity.Usuario, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoUsuarios, authz.Ver)); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario %d: %w", id, err)
	}
	return u, nil
}

// Crear un usuario; la contraseña es obligatoria en el alta.
func (uc *UsuarioUseCase) Crear(ctx context.Context, in dto.UsuarioRequest) (*entity.Usuario, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoUsuarios, authz.Crear)); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, &dto.ValidationError{Campos: map[string]string{"password": "es requerido"}}
	}
	u, err := usuarioDesde(0, in)
	if err != nil {
		return nil, err
	}
	out, err := uc.repo.Create(ctx, u, in.Password)
	if err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	return out, nil
}

// Actualizar datos del usuario; password vacío conserva la clave actual.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, id int64, in dto.UsuarioRequest) (*entity.Usuario, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoUsuarios, authz.Editar)); err != nil {
		return nil, err
	}
	u, err := usuarioDesde(id, in)
	if err != nil {
		return nil, err
	}
	out, err := uc.repo.Update(ctx, u, in.Password)
	if err != nil {
		return nil, fmt.Errorf("actualizar usuario %d: %w", id, err)
	}
	return out, nil
}

// CambiarEstado alterna el estado del usuario y vuelve a listar una vez.
func (uc *UsuarioUseCase) CambiarEstado(ctx context.Context, id int64, c listing.Criterios) (*listing.Vista[entity.Usuario], error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoUsuarios, authz.CambiarEstado)); err != nil {
		return nil, err
	}
	if err := uc.repo.CambiarEstado(ctx, id); err != nil {
		uc.log.Error().Err(err).Int64("id", id).Msg("cambiar estado de usuario")
		return nil, fmt.Errorf("cambiar estado de usuario %d: %w", id, err)
	}
	return uc.Listar(ctx, c)
}

// Eliminar borra físicamente al usuario y vuelve a listar una vez.
// Un operador no puede eliminar su propia cuenta.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, id int64, c listing.Criterios) (*listing.Vista[entity.Usuario], error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoUsuarios, authz.Eliminar)); err != nil {
		return nil, err
	}
	if s := entity.SesionFromContext(ctx); s != nil && s.Usuario != nil && s.Usuario.ID == id {
		return nil, fmt.Errorf("%w: no puede eliminar su propia cuenta", domain.ErrConflict)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Int64("id", id).Msg("eliminar usuario")
		return nil, fmt.Errorf("eliminar usuario %d: %w", id, err)
	}
	return uc.Listar(ctx, c)
}

func usuarioDesde(id int64, in dto.UsuarioRequest) (*entity.Usuario, error) {
	if err := dto.ValidarStruct(in); err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:     id,
		Correo: in.Correo,
		Nombre: in.Nombre,
		Rol:    &entity.RolRef{ID: in.RolID},
	}
	if in.VigenciaDesde != "" {
		t, _ := time.Parse(time.DateOnly, in.VigenciaDesde)
		u.VigenciaDesde = &t
	}
	if in.VigenciaHasta != "" {
		t, _ := time.Parse(time.DateOnly, in.VigenciaHasta)
		u.VigenciaHasta = &t
	}
	if u.VigenciaDesde != nil && u.VigenciaHasta != nil && u.VigenciaHasta.Before(*u.VigenciaDesde) {
		return nil, &dto.ValidationError{Campos: map[string]string{"vigenciaHasta": "debe ser posterior al inicio de vigencia"}}
	}
	return u, nil
}
