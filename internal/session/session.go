// Пакет session хранит сессию оператора (bearer-токен и профиль пользователя).
// Аналог ключей token/user в localStorage фронтенда: создаётся при логине,
// читается при каждом авторизованном запросе, удаляется при логауте или 401.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNoSession — сессии нет: оператор не залогинен.
var ErrNoSession = errors.New("сессия отсутствует, требуется вход")

type sessionData struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Store — файловое хранилище сессии. Потокобезопасно.
type Store struct {
	path string

	mu     sync.Mutex
	loaded bool
	data   *sessionData // nil — сессии нет
}

func New(path string) *Store {
	return &Store{path: path}
}

// Token возвращает bearer-токен текущей сессии.
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return "", err
	}
	if s.data == nil || s.data.Token == "" {
		return "", ErrNoSession
	}
	return s.data.Token, nil
}

// User возвращает сохранённый при логине профиль пользователя как есть.
func (s *Store) User() (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	if s.data == nil {
		return nil, ErrNoSession
	}
	return s.data.User, nil
}

// Save записывает токен и пользователя, перезаписывая прежнюю сессию.
func (s *Store) Save(token string, user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := &sessionData{Token: token, User: user}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session.Save: %w", err)
	}
	// 0600 — в файле лежит токен
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("session.Save: %w", err)
	}

	s.data = data
	s.loaded = true
	return nil
}

// Clear удаляет сессию. Повторный вызов — no-op: два параллельных 401
// безопасно проходят один и тот же путь очистки.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.loaded = true

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session.Clear: %w", err)
	}
	return nil
}

// load лениво читает файл сессии. Вызывается под mutex.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("session.load: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		// Битый файл сессии равносилен её отсутствию
		s.loaded = true
		return nil
	}

	s.data = &data
	s.loaded = true
	return nil
}
