// Package rest implementa los puertos de repositorio contra la API REST del backend de activos.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

const (
	// HeaderRequestID se envía en cada llamada saliente para correlacionar logs con el backend.
	HeaderRequestID = "X-Request-ID"

	maxRespuestaJSON = 4 << 20
	maxDescarga      = 32 << 20
	maxMensaje       = 200
)

// TokenSource obtiene el token bearer para una llamada.
type TokenSource func(ctx context.Context) string

// SesionToken lee el token de la sesión adjunta al contexto.
func SesionToken(ctx context.Context) string {
	if s := entity.SesionFromContext(ctx); s != nil {
		return s.Token
	}
	return ""
}

// Client envoltorio HTTP hacia el backend: origen fijo, token bearer y errores tipados.
// Usa net/http de la librería estándar; no hay SDK del backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient construye el cliente. tokens nil equivale a SesionToken.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if tokens == nil {
		tokens = SesionToken
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// APIError respuesta no exitosa del backend. Unwrap devuelve el error de dominio equivalente.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend HTTP %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrBackend
	}
}

// envelope algunas rutas responden {"data": ...}.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// do ejecuta una llamada JSON. in y out pueden ser nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	resp, err := c.send(ctx, method, path, query, body, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := leerHasta(resp.Body, maxRespuestaJSON)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return decodificar(raw, out)
}

// download descarga un binario (PDF) y devuelve sus bytes.
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil, "application/pdf, application/octet-stream")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := leerHasta(resp.Body, maxDescarga)
	if err != nil {
		return nil, fmt.Errorf("leer descarga: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, raw)
	}
	return raw, nil
}

// leerHasta lee el cuerpo completo; si supera limite devuelve ErrBackend en lugar de truncarlo.
func leerHasta(r io.Reader, limite int64) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, limite+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > limite {
		return nil, fmt.Errorf("%w: la respuesta supera %d bytes", domain.ErrBackend, limite)
	}
	return raw, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, accept string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("crear HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", accept)
	req.Header.Set(HeaderRequestID, requestID(ctx))
	if tok := c.tokens(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrBackend, ctx.Err())
		}
		return nil, fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrBackend, err)
	}
	return resp, nil
}

func decodificar(raw []byte, out any) error {
	if raw[0] == '{' {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
			raw = env.Data
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: respuesta inválida: %v", domain.ErrBackend, err)
	}
	return nil
}

// recortar corta s a lo sumo en n bytes sin partir una runa.
func recortar(s string, n int) string {
	if len(s) <= n {
		return s
	}
	corte := n
	for corte > 0 && !utf8.RuneStart(s[corte]) {
		corte--
	}
	return s[:corte]
}

func apiError(status int, raw []byte) error {
	e := &APIError{Status: status}
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		e.Code = body.Code
		e.Message = body.Message
	}
	if e.Message == "" {
		e.Message = recortar(strings.TrimSpace(string(raw)), maxMensaje)

	}
	return e
}

type requestIDKey struct{}

// ContextWithRequestID propaga el id de la petición entrante hacia el backend.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		return id
	}
	return uuid.NewString()
}

// EsAPIError indica si err viene de una respuesta del backend con el estado dado.
func EsAPIError(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func idPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}

func estadoQuery(estado entity.EstadoFiltro) url.Values {
	if estado == "" {
		estado = entity.FiltroActivos
	}
	return url.Values{"estado": {string(estado)}}
}
