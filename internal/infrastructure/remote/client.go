// Package remote implementa los repositorios contra el backend REST externo. Las
// respuestas pueden venir envueltas en {success, data, message} o crudas.
package remote

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
	"sync/atomic"
	"time"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/pkg/config"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Client cliente HTTP del backend.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *SessionStore
	log      *logger.Logger

	// writes cuenta escrituras exitosas; solo lo usa TxRunner.
	writes *atomic.Int32
}

// NewClient construye el cliente. Timeout cero usa 30s.
func NewClient(cfg config.BackendConfig, sessions *SessionStore, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if sessions == nil {
		sessions = NewSessionStore("")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log.Named("remote"),
	}
}

// tracked copia del cliente que cuenta escrituras en n.
func (c *Client) tracked(n *atomic.Int32) *Client {
	cp := *c
	cp.writes = n
	return &cp
}

// Sessions store de la cuenta de servicio.
func (c *Client) Sessions() *SessionStore {
	return c.sessions
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// request opciones de una llamada.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	anon   bool // sin Authorization (login, registro)
}

// do ejecuta la llamada y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	raw, err := c.fetch(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return decode(raw, out)
}

// fetch ejecuta la llamada y devuelve el cuerpo sin decodificar. Los códigos >= 300
// se traducen a errores de dominio.
func (c *Client) fetch(ctx context.Context, r request) ([]byte, error) {
	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("serializar %s %s: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(raw)
	}
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	authed := false
	if !r.anon {
		if sess, err := c.sessions.Current(); err == nil {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
			req.Header.Set("X-User-ID", sess.UserID)
			req.Header.Set("X-User-Role", sess.Role)
			authed = true
		}
		// La identidad de la consola, si hay, tiene prioridad para auditoría del backend.
		if id, ok := session.FromContext(ctx); ok {
			req.Header.Set("X-User-ID", id.UserID)
			req.Header.Set("X-User-Role", string(id.Role))
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, r.method, r.path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized && authed {
			c.log.Warn().Str("path", r.path).Msg("backend respondió 401, se descarta la sesión")
			c.sessions.Clear()
		}
		return nil, statusError(resp.StatusCode, r.method, r.path, raw)
	}

	if r.method != http.MethodGet && c.writes != nil {
		c.writes.Add(1)
	}
	return raw, nil
}

// decode desenvuelve {success, data} si está presente; si no, decodifica el cuerpo crudo.
func decode(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil {
		if !*env.Success {
			return fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, nonEmpty(env.Message, "respuesta sin éxito"))
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return nil
		}
		raw = env.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

// statusError traduce el código HTTP a los errores de dominio.
func statusError(status int, method, path string, raw []byte) error {
	msg := http.StatusText(status)
	var env envelope
	if json.Unmarshal(raw, &env) == nil && env.Message != "" {
		msg = env.Message
	}
	var base error
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		base = domain.ErrInvalidInput
	case status == http.StatusUnauthorized:
		base = domain.ErrUnauthorized
	case status == http.StatusForbidden:
		base = domain.ErrForbidden
	case status == http.StatusNotFound:
		base = domain.ErrNotFound
	case status == http.StatusConflict:
		base = domain.ErrDuplicate
	case status >= 500:
		base = domain.ErrBackendUnavailable
	default:
		return fmt.Errorf("%s %s: HTTP %d: %s", method, path, status, msg)
	}
	return fmt.Errorf("%w: %s", base, msg)
}

// Login autentica la cuenta de servicio y guarda la sesión.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var out loginWire
	err := c.do(ctx, request{
		method: http.MethodPost, path: "/auth/login", anon: true,
		body: map[string]string{"username": username, "password": password},
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: login sin token", domain.ErrUnauthorized)
	}
	sess := Session{Token: out.Token, UserID: out.UserID, Username: out.Username, Role: out.Role}
	if err := c.sessions.Save(sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// EnsureSession carga la sesión guardada o inicia una nueva con las credenciales dadas.
func (c *Client) EnsureSession(ctx context.Context, username, password string) error {
	if _, err := c.sessions.Load(); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNoSession) {
		return err
	}
	if username == "" {
		return domain.ErrNoSession
	}
	_, err := c.Login(ctx, username, password)
	return err
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
