package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"motoconnect-api/config"
)

// ErrNoGithubProfile is returned when GitHub does not answer 200 for the
// requested username.
var ErrNoGithubProfile = errors.New("no github profile found")

// GithubService proxies the public repo listing of a GitHub user. Calls
// are never retried; a failure is terminal for the request.
type GithubService struct {
	config *config.Config
	client *http.Client
}

func NewGithubService(cfg *config.Config) *GithubService {
	return &GithubService{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchUserRepos returns the five most recently created public repos of
// the given user, as raw JSON passed through to the client.
func (gs *GithubService) FetchUserRepos(username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf(
		"https://api.github.com/users/%s/repos?per_page=5&sort=created:asc&client_id=%s&client_secret=%s",
		url.PathEscape(username),
		url.QueryEscape(gs.config.GithubClientID),
		url.QueryEscape(gs.config.GithubClientSecret),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "motoconnect-api")

	resp, err := gs.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoGithubProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
