package main

import (
	"errors"

	"github.com/jhoicas/activos-consola/internal/domain"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK         = 0
	exitFallo      = 1
	exitValidacion = 2
	exitDenegado   = 3
	exitSesion     = 4
	exitBackend    = 5
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

// exitCode código de salida según el error: primero el explícito, luego el de dominio.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return exitValidacion
	case errors.Is(err, domain.ErrForbidden):
		return exitDenegado
	case errors.Is(err, domain.ErrUnauthorized):
		return exitSesion
	case errors.Is(err, domain.ErrBackend):
		return exitBackend
	default:
		return exitFallo
	}
}
