package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// memoryStore records saves so tests can observe persistence behavior.
type memoryStore struct {
	token *oauth2.Token
	saves int
}

func (m *memoryStore) Load() (*oauth2.Token, error) { return m.token, nil }

func (m *memoryStore) Save(token *oauth2.Token) error {
	m.token = token
	m.saves++
	return nil
}

func TestSavingTokenSourcePersistsRefreshedToken(t *testing.T) {
	store := &memoryStore{}
	old := &oauth2.Token{AccessToken: "old"}
	fresh := &oauth2.Token{AccessToken: "fresh"}

	source := &savingTokenSource{
		source: oauth2.StaticTokenSource(fresh),
		store:  store,
		last:   old,
	}

	got, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.AccessToken)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, "fresh", store.token.AccessToken)
}

func TestSavingTokenSourceSkipsUnchangedToken(t *testing.T) {
	store := &memoryStore{}
	token := &oauth2.Token{AccessToken: "same"}

	source := &savingTokenSource{
		source: oauth2.StaticTokenSource(token),
		store:  store,
		last:   token,
	}

	_, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, 0, store.saves)
}

func TestGoogleConfig(t *testing.T) {
	cfg := GoogleConfig("id", "secret")

	assert.Equal(t, "id", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, []string{CalendarScope}, cfg.Scopes)
	assert.NotEmpty(t, cfg.Endpoint.AuthURL)
	assert.NotEmpty(t, cfg.Endpoint.TokenURL)
}
