package entity

import "context"

// Sesion es el estado de autenticación del operador: se crea en el login, se borra en el
// logout y se consulta en cada verificación de permisos. Sustituye a las claves
// token/usuario/permisos/auth que el cliente web guardaba en el navegador.
type Sesion struct {
	Token    string   `json:"token"`
	Usuario  *Usuario `json:"usuario,omitempty"`
	Permisos []string `json:"permisos"`
	Auth     bool     `json:"auth"`
}

// Autenticada indica si la sesión tiene un token utilizable.
func (s *Sesion) Autenticada() bool {
	return s != nil && s.Auth && s.Token != ""
}

type sesionKey struct{}

// ContextWithSesion adjunta la sesión al contexto de la petición.
func ContextWithSesion(ctx context.Context, s *Sesion) context.Context {
	return context.WithValue(ctx, sesionKey{}, s)
}

// SesionFromContext devuelve la sesión del contexto o nil.
func SesionFromContext(ctx context.Context) *Sesion {
	s, _ := ctx.Value(sesionKey{}).(*Sesion)
	return s
}
