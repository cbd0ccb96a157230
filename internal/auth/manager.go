package auth

import (
	"context"
	"fmt"

	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Registrar creates a new agent account on the platform
type Registrar interface {
	Register(ctx context.Context, name, description string) (*types.Registration, error)
}

// Manager handles platform credentials
type Manager struct {
	store *CredentialStore
}

// NewManager creates a new auth manager
func NewManager(store *CredentialStore) *Manager {
	return &Manager{store: store}
}

// IsAuthenticated checks if we have a stored API key
func (m *Manager) IsAuthenticated() bool {
	return m.store.IsValid()
}

// Register creates the agent on the platform and stores the returned key
func (m *Manager) Register(ctx context.Context, r Registrar, name, description string) (*types.Registration, error) {
	reg, err := r.Register(ctx, name, description)
	if err != nil {
		return nil, fmt.Errorf("register agent: %w", err)
	}
	if err := m.store.Save(name, *reg); err != nil {
		return reg, fmt.Errorf("failed to save credentials: %w", err)
	}
	return reg, nil
}

// APIKey returns the stored key, or "" when none is stored
func (m *Manager) APIKey() string {
	stored, err := m.store.Load()
	if err != nil {
		return ""
	}
	return stored.APIKey
}

// ResolveAPIKey returns configured when set and the stored key otherwise
func (m *Manager) ResolveAPIKey(configured string) string {
	if configured != "" {
		return configured
	}
	return m.APIKey()
}

// Credentials returns everything stored about the registration
func (m *Manager) Credentials() (*StoredCredentials, error) {
	return m.store.Load()
}

// Logout clears stored credentials
func (m *Manager) Logout() error {
	return m.store.Clear()
}
