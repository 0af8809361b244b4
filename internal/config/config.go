// Package config resolves the tool's settings from an optional JSON config
// file, environment variables, and command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults for the credential file locations, relative to the working
// directory.
const (
	DefaultClientSecretsPath = "client_secrets.json"
	DefaultCredentialsPath   = "credentials.json"
)

// Config holds the tool's settings. PrimaryCalendarID is threaded explicitly
// into calendar listing and selection; an empty value means no calendar is
// marked primary.
type Config struct {
	ClientSecretsPath string `json:"client_secrets_path,omitempty"`
	CredentialsPath   string `json:"credentials_path,omitempty"`
	PrimaryCalendarID string `json:"primary_calendar_id,omitempty"`
}

// Load resolves configuration with the following precedence (highest to
// lowest): command-line flags, environment variables (CLIENT_SECRETS_PATH,
// CREDENTIALS_PATH, PRIMARY_CALENDAR_ID), the config file, defaults.
func Load(configFile, clientSecretsFlag, credentialsFlag, primaryFlag string) (*Config, error) {
	var cfg Config

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("CLIENT_SECRETS_PATH"); v != "" {
		cfg.ClientSecretsPath = v
	}
	if v := os.Getenv("CREDENTIALS_PATH"); v != "" {
		cfg.CredentialsPath = v
	}
	if v := os.Getenv("PRIMARY_CALENDAR_ID"); v != "" {
		cfg.PrimaryCalendarID = v
	}

	if clientSecretsFlag != "" {
		cfg.ClientSecretsPath = clientSecretsFlag
	}
	if credentialsFlag != "" {
		cfg.CredentialsPath = credentialsFlag
	}
	if primaryFlag != "" {
		cfg.PrimaryCalendarID = primaryFlag
	}

	if cfg.ClientSecretsPath == "" {
		cfg.ClientSecretsPath = DefaultClientSecretsPath
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = DefaultCredentialsPath
	}

	return &cfg, nil
}

// ClientSecrets represents the Google OAuth client credentials JSON file as
// downloaded from the Google Cloud Console.
type ClientSecrets struct {
	Installed struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"installed"`
	Web struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"web"`
}

// LoadClientSecrets reads the OAuth client id and secret from the Google
// credentials JSON file. The "installed" section is tried first, then "web".
func LoadClientSecrets(path string) (clientID, clientSecret string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read client secrets file: %w", err)
	}

	var secrets ClientSecrets
	if err := json.Unmarshal(data, &secrets); err != nil {
		return "", "", fmt.Errorf("failed to parse client secrets file: %w", err)
	}

	if secrets.Installed.ClientID != "" {
		return secrets.Installed.ClientID, secrets.Installed.ClientSecret, nil
	}
	if secrets.Web.ClientID != "" {
		return secrets.Web.ClientID, secrets.Web.ClientSecret, nil
	}
	return "", "", fmt.Errorf("no client_id found in %s (expected 'installed' or 'web' section)", path)
}
