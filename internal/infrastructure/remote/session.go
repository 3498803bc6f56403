package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
)

// Session credenciales de la cuenta de servicio frente al backend.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionStore guarda la sesión en memoria y, si path no está vacío, en un archivo JSON.
type SessionStore struct {
	path string

	mu      sync.RWMutex
	current *Session
}

// NewSessionStore construye el store; path vacío no persiste.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load lee la sesión del archivo. Un archivo corrupto se elimina y cuenta como sin sesión.
func (s *SessionStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		cp := *s.current
		return &cp, nil
	}
	if s.path == "" {
		return nil, domain.ErrNoSession
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		_ = os.Remove(s.path)
		return nil, domain.ErrNoSession
	}
	s.current = &sess
	cp := sess
	return &cp, nil
}

// Current la sesión cargada, o ErrNoSession.
func (s *SessionStore) Current() (*Session, error) {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur != nil {
		cp := *cur
		return &cp, nil
	}
	return s.Load()
}

// Save reemplaza la sesión y la escribe con permisos 0600.
func (s *SessionStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
	if s.path == "" {
		return nil
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("crear directorio de sesión: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	return nil
}

// Clear descarta la sesión en memoria y en disco.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}
