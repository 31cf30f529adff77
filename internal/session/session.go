// Package session holds the two in-memory session stores shared by screens.
//
// The stores are explicit objects handed to each screen, constructed once at
// application start and mutated only through Login/Logout. Presence of an id
// is the sole "logged in" signal; the stores validate nothing themselves.
package session

import (
	"sync"

	"github.com/alugaaqui/aluga-cli/internal/model"
)

// ClienteStore holds the currently authenticated cliente, if any.
type ClienteStore struct {
	mu    sync.RWMutex
	atual model.Cliente
	obs   []func()
}

// NewClienteStore returns an empty store.
func NewClienteStore() *ClienteStore { return &ClienteStore{} }

// Atual returns the current cliente (zero value when logged out).
func (s *ClienteStore) Atual() model.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.atual
}

// Ativa reports whether a cliente session exists.
func (s *ClienteStore) Ativa() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.atual.ID != ""
}

// Login replaces the current record wholesale and notifies observers.
func (s *ClienteStore) Login(c model.Cliente) {
	s.mu.Lock()
	s.atual = c
	obs := append([]func(){}, s.obs...)
	s.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}

// Logout resets the store to empty and notifies observers.
func (s *ClienteStore) Logout() {
	s.Login(model.Cliente{})
}

// Observa registers a callback fired after every store mutation, so screens
// reading the session can refresh themselves.
func (s *ClienteStore) Observa(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.obs = append(s.obs, fn)
}

// AdminStore holds the currently authenticated administrator, token included.
// It is never persisted: the session dies with the process.
type AdminStore struct {
	mu    sync.RWMutex
	atual model.AdminLogado
	obs   []func()
}

// NewAdminStore returns an empty store.
func NewAdminStore() *AdminStore { return &AdminStore{} }

// Atual returns the current admin (zero value when logged out).
func (s *AdminStore) Atual() model.AdminLogado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.atual
}

// Ativa reports whether an admin session exists.
func (s *AdminStore) Ativa() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.atual.ID != ""
}

// Login replaces the current record wholesale and notifies observers.
func (s *AdminStore) Login(a model.AdminLogado) {
	s.mu.Lock()
	s.atual = a
	obs := append([]func(){}, s.obs...)
	s.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}

// Logout resets the store to empty and notifies observers.
func (s *AdminStore) Logout() {
	s.Login(model.AdminLogado{})
}

// Observa registers a callback fired after every store mutation.
func (s *AdminStore) Observa(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.obs = append(s.obs, fn)
}
