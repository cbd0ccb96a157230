package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// CredentialStore handles storage of the platform API key
type CredentialStore struct {
	path string
}

// StoredCredentials represents the persisted registration data
type StoredCredentials struct {
	AgentName        string    `json:"agent_name"`
	APIKey           string    `json:"api_key"`
	ClaimURL         string    `json:"claim_url,omitempty"`
	VerificationCode string    `json:"verification_code,omitempty"`
	SavedAt          time.Time `json:"saved_at"`
}

// NewCredentialStore creates a credential store at the given path
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// DefaultCredentialsPath returns the default path for credential storage
func DefaultCredentialsPath() (string, error) {
	configDir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "credentials.json"), nil
}

// Path returns the file the store reads and writes
func (cs *CredentialStore) Path() string {
	return cs.path
}

// Save persists a registration to disk, readable by the owner only
func (cs *CredentialStore) Save(agentName string, reg types.Registration) error {
	if reg.APIKey == "" {
		return errors.New("registration has no api key")
	}
	dir := filepath.Dir(cs.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	stored := StoredCredentials{
		AgentName:        agentName,
		APIKey:           reg.APIKey,
		ClaimURL:         reg.ClaimURL,
		VerificationCode: reg.VerificationCode,
		SavedAt:          time.Now(),
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cs.path, data, 0600)
}

// Load retrieves credentials from disk
func (cs *CredentialStore) Load() (*StoredCredentials, error) {
	data, err := os.ReadFile(cs.path)
	if err != nil {
		return nil, err
	}

	var stored StoredCredentials
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// IsValid checks that a credential file exists and carries a key
func (cs *CredentialStore) IsValid() bool {
	stored, err := cs.Load()
	if err != nil {
		return false
	}
	return stored.APIKey != ""
}

// Clear removes stored credentials. A missing file is not an error.
func (cs *CredentialStore) Clear() error {
	if err := os.Remove(cs.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
