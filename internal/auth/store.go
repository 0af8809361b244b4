package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// CredentialStore loads and saves the serialized OAuth credential.
type CredentialStore interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
}

// FileCredentialStore keeps the credential as a JSON blob at a fixed path.
// There is no locking; concurrent runs against the same file are unsupported.
type FileCredentialStore struct {
	Path string
}

// NewFileCredentialStore creates a FileCredentialStore for the given path.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{Path: path}
}

// Load returns the cached credential, or nil with no error if the file does
// not exist.
func (s *FileCredentialStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
	}
	return &token, nil
}

// Save writes the credential with owner-only permissions.
func (s *FileCredentialStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}
