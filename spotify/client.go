// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/models"
)

// ErrNotConfigured is returned when no Spotify credentials are set. The
// search endpoint maps it to 503 so the frontend can fall back to manual
// song entry.
var ErrNotConfigured = errors.New("spotify credentials not configured")

const (
	defaultTokenURL  = "https://accounts.spotify.com/api/token"
	defaultSearchURL = "https://api.spotify.com/v1/search"
)

// cachedToken is an app access token together with its expiry. It is a
// value owned by the Client, not process-global state, so tests can drive
// expiry with a fake clock.
type cachedToken struct {
	token     string
	expiresAt time.Time
}

// Client searches the Spotify catalog using the client-credentials flow.
// The app token is cached until shortly before expiry.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	clock        clockwork.Clock

	tokenURL  string // overridable for tests
	searchURL string

	mu    sync.Mutex
	token cachedToken
}

func NewClient(clientID, clientSecret string, clock clockwork.Clock) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		clock:        clock,
		tokenURL:     defaultTokenURL,
		searchURL:    defaultSearchURL,
	}
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// Search looks up tracks matching the query. Results carry only the fields
// the suggestion form prefills.
func (c *Client) Search(ctx context.Context, query string) ([]models.Track, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	u := c.searchURL + "?q=" + url.QueryEscape(query) + "&type=track&limit=10"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify search returned status %d", resp.StatusCode)
	}

	var body struct {
		Tracks struct {
			Items []struct {
				ID      string `json:"id"`
				Name    string `json:"name"`
				Artists []struct {
					Name string `json:"name"`
				} `json:"artists"`
				Album struct {
					Images []struct {
						URL string `json:"url"`
					} `json:"images"`
				} `json:"album"`
			} `json:"items"`
		} `json:"tracks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	tracks := make([]models.Track, 0, len(body.Tracks.Items))
	for _, item := range body.Tracks.Items {
		names := make([]string, 0, len(item.Artists))
		for _, a := range item.Artists {
			names = append(names, a.Name)
		}
		track := models.Track{
			ID:      item.ID,
			Title:   item.Name,
			Artists: strings.Join(names, ", "),
		}
		if len(item.Album.Images) > 0 {
			track.AlbumArt = item.Album.Images[0].URL
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// accessToken returns the cached app token, refreshing it when it expires
// in less than a minute.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.token != "" && c.clock.Now().Add(time.Minute).Before(c.token.expiresAt) {
		return c.token.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL,
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("spotify token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify token endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", errors.New("spotify token response missing access_token")
	}

	c.token = cachedToken{
		token:     body.AccessToken,
		expiresAt: c.clock.Now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}
	return c.token.token, nil
}
