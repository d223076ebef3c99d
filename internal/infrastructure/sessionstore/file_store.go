// Package sessionstore persiste la sesión del operador: en un archivo local para la CLI y en
// redis (como fiber.Storage) para la consola web.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
)

var _ repository.SesionRepository = (*FileStore)(nil)

// FileStore guarda la sesión como JSON con las claves token, usuario, permisos y auth.
// El archivo se crea con permisos 0600 porque contiene el token.
type FileStore struct {
	path string
}

// NewFileStore construye el store. Un path vacío usa ~/.activos/sesion.json.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// DefaultPath ubicación por defecto del archivo de sesión.
func DefaultPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, ".activos", "sesion.json")
}

// Path ruta del archivo.
func (s *FileStore) Path() string { return s.path }

// Load lee la sesión; si no hay archivo devuelve una sesión vacía sin error.
func (s *FileStore) Load(_ context.Context) (*entity.Sesion, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &entity.Sesion{Permisos: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var ses entity.Sesion
	if err := json.Unmarshal(raw, &ses); err != nil {
		return nil, fmt.Errorf("sesión corrupta en %s: %w", s.path, err)
	}
	if ses.Permisos == nil {
		ses.Permisos = []string{}
	}
	return &ses, nil
}

// Save escribe la sesión de forma atómica (archivo temporal + rename).
func (s *FileStore) Save(_ context.Context, ses *entity.Sesion) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	raw, err := json.MarshalIndent(ses, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("escribir sesión: %w", err)
	}
	return nil
}

// Clear borra las cuatro claves eliminando el archivo.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
