// Package github talks to the GitHub REST and GraphQL APIs. Both schemas are
// external contracts: field names and query text must match the live
// platform, not be invented here.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vukan322/gitstat/internal/core"
)

const (
	DefaultBaseURL    = "https://api.github.com"
	DefaultGraphQLURL = "https://api.github.com/graphql"

	userAgent = "gitstat-cli"
)

// Client issues the two requests the dashboard needs: an unauthenticated
// profile lookup and an authenticated contribution query. Single attempt
// each, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	graphqlURL string
	token      string
}

// Option adjusts a Client, mainly so tests can point it at a local server.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithGraphQLURL(u string) Option {
	return func(c *Client) { c.graphqlURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    DefaultBaseURL,
		graphqlURL: DefaultGraphQLURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type profileResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// FetchProfile looks up a user's public profile. No token is required; any
// non-success status is reported as the user not existing.
func (c *Client) FetchProfile(ctx context.Context, username string) (core.Profile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return core.Profile{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return core.Profile{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.Profile{}, fmt.Errorf("User '%s' not found", username)
	}

	var p profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return core.Profile{}, fmt.Errorf("decode user response: %w", err)
	}

	return core.Profile{
		Login:       p.Login,
		Name:        p.Name,
		PublicRepos: p.PublicRepos,
		Followers:   p.Followers,
		Following:   p.Following,
	}, nil
}

// contributionsQuery matches GitHub's GraphQL schema for the platform-defined
// "last year" contribution window.
const contributionsQuery = `
        query($username: String!) {
            user(login: $username) {
                login
                name
                contributionsCollection {
                    contributionCalendar {
                        totalContributions
                        weeks {
                            contributionDays {
                                date
                                contributionCount
                                color
                            }
                        }
                    }
                }
            }
        }
    `

type graphqlRequest struct {
	Query     string           `json:"query"`
	Variables graphqlVariables `json:"variables"`
}

type graphqlVariables struct {
	Username string `json:"username"`
}

type graphqlResponse struct {
	Data   *graphqlData   `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlData struct {
	User *graphqlUser `json:"user"`
}

type graphqlUser struct {
	Login                   string `json:"login"`
	Name                    string `json:"name"`
	ContributionsCollection struct {
		ContributionCalendar calendarResponse `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

type calendarResponse struct {
	TotalContributions int `json:"totalContributions"`
	Weeks              []struct {
		ContributionDays []struct {
			Date              string `json:"date"`
			ContributionCount int    `json:"contributionCount"`
			Color             string `json:"color"`
		} `json:"contributionDays"`
	} `json:"weeks"`
}

// FetchContributions queries the contribution calendar for a user. The token
// must carry the read:user scope.
func (c *Client) FetchContributions(ctx context.Context, username string) (core.ContributionCalendar, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     contributionsQuery,
		Variables: graphqlVariables{Username: username},
	})
	if err != nil {
		return core.ContributionCalendar{}, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return core.ContributionCalendar{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return core.ContributionCalendar{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.ContributionCalendar{}, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return core.ContributionCalendar{}, fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return core.ContributionCalendar{}, fmt.Errorf("GraphQL errors: %s", strings.Join(messages, ", "))
	}

	if envelope.Data == nil {
		return core.ContributionCalendar{}, errors.New("no data returned by API")
	}
	if envelope.Data.User == nil {
		return core.ContributionCalendar{}, fmt.Errorf("user '%s' missing from contribution data", username)
	}

	raw := envelope.Data.User.ContributionsCollection.ContributionCalendar

	cal := core.ContributionCalendar{
		TotalContributions: raw.TotalContributions,
		Weeks:              make([]core.Week, 0, len(raw.Weeks)),
	}
	for _, w := range raw.Weeks {
		week := core.Week{Days: make([]core.Day, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			week.Days = append(week.Days, core.Day{
				Date:  d.Date,
				Count: d.ContributionCount,
				Color: d.Color,
			})
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	return cal, nil
}
