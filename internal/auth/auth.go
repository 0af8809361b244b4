// Package auth obtains an authenticated HTTP client for the Google Calendar
// API, caching the OAuth credential across runs through a CredentialStore.
package auth

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// CalendarScope grants read/write access to the user's calendars.
const CalendarScope = "https://www.googleapis.com/auth/calendar"

// GoogleConfig builds the OAuth config for an installed application. The
// redirect URL is filled in by the interactive flow.
func GoogleConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{CalendarScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}
}

// savingTokenSource wraps an oauth2.TokenSource and persists refreshed tokens
// to the store.
type savingTokenSource struct {
	source oauth2.TokenSource
	store  CredentialStore
	last   *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.source.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || s.last.AccessToken != token.AccessToken {
		if err := s.store.Save(token); err != nil {
			return nil, fmt.Errorf("failed to save refreshed credential: %w", err)
		}
		s.last = token
	}
	return token, nil
}

// Authenticate returns an HTTP client that attaches a valid bearer credential
// to every request. The cached credential is used when still valid; an
// expired credential with a refresh token is refreshed and rewritten;
// anything else falls back to the interactive authorization flow.
func Authenticate(ctx context.Context, oauthConfig *oauth2.Config, store CredentialStore) (*http.Client, error) {
	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	if token != nil && !token.Valid() {
		if token.RefreshToken != "" {
			refreshed, err := oauthConfig.TokenSource(ctx, token).Token()
			if err != nil {
				log.Printf("credential refresh failed, starting interactive authorization: %v", err)
				token = nil
			} else {
				token = refreshed
				if err := store.Save(token); err != nil {
					return nil, fmt.Errorf("failed to save refreshed credential: %w", err)
				}
			}
		} else {
			token = nil
		}
	}

	if token == nil {
		token, err = authorizeInteractively(ctx, oauthConfig)
		if err != nil {
			return nil, err
		}
		if err := store.Save(token); err != nil {
			return nil, fmt.Errorf("failed to save credential: %w", err)
		}
	}

	source := &savingTokenSource{
		source: oauth2.ReuseTokenSource(token, oauthConfig.TokenSource(ctx, token)),
		store:  store,
		last:   token,
	}
	return oauth2.NewClient(ctx, source), nil
}

// authorizeInteractively walks the user through the browser consent flow,
// receiving the authorization code on a local loopback server.
func authorizeInteractively(ctx context.Context, oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	redirectURL, codeChan, errorChan, err := startLocalServer()
	if err != nil {
		return nil, fmt.Errorf("failed to start local server: %w", err)
	}
	oauthConfig.RedirectURL = redirectURL

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Println("Please visit the following URL to authorize the application:")
	fmt.Println(authURL)
	fmt.Println("\nWaiting for authorization...")

	var code string
	select {
	case code = <-codeChan:
	case err := <-errorChan:
		return nil, fmt.Errorf("failed to receive authorization code: %w", err)
	case <-time.After(5 * time.Minute):
		return nil, fmt.Errorf("authorization timeout: no response received within 5 minutes")
	}
	if code == "" {
		return nil, fmt.Errorf("no authorization code received")
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	fmt.Println("Authorization successful!")
	return token, nil
}

// startLocalServer starts an HTTP server on the loopback interface to receive
// the OAuth callback. Port 8080 is tried first, then a random port.
func startLocalServer() (string, <-chan string, <-chan error, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:8080")
	if err != nil {
		listener, err = net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to listen on loopback: %w", err)
		}
	}

	port := listener.Addr().(*net.TCPAddr).Port
	redirectURL := fmt.Sprintf("http://127.0.0.1:%d", port)

	codeChan := make(chan string, 1)
	errorChan := make(chan error, 1)

	server := &http.Server{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  10 * time.Second,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		switch {
		case code != "":
			fmt.Fprintf(w, "<html><body><h1>Authorization successful!</h1><p>You can close this window.</p></body></html>")
			codeChan <- code
		case r.URL.Query().Get("error") != "":
			errMsg := r.URL.Query().Get("error")
			fmt.Fprintf(w, "<html><body><h1>Authorization failed</h1><p>Error: %s</p></body></html>", errMsg)
			errorChan <- fmt.Errorf("authorization error: %s", errMsg)
		default:
			fmt.Fprintf(w, "<html><body><h1>No authorization code received</h1></body></html>")
			errorChan <- fmt.Errorf("no authorization code received")
		}
		go func() {
			time.Sleep(1 * time.Second)
			server.Shutdown(context.Background())
		}()
	})
	server.Handler = mux

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errorChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	return redirectURL, codeChan, errorChan, nil
}
