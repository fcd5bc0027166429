// internal/app/store/livingapps/client.go
package livingapps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
)

// DefaultBaseURL is the public LivingApps REST endpoint.
const DefaultBaseURL = "https://my.living-apps.de/rest"

const userAgent = "kursverwaltung/1.0"

// ErrNoBaseURL is returned by New when no endpoint is configured.
var ErrNoBaseURL = errors.New("livingapps: base url is required")

// ErrStatus reports a non-200 answer from the data service.
type ErrStatus struct {
	Code int
}

func (e *ErrStatus) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Apps holds the app id of each collection.
type Apps struct {
	Kurse       string
	Dozenten    string
	Teilnehmer  string
	Raeume      string
	Anmeldungen string
}

// Missing returns the collection names whose app id is empty.
func (a Apps) Missing() []string {
	var out []string
	for _, p := range []struct{ name, id string }{
		{dataservice.CollKurse, a.Kurse},
		{dataservice.CollDozenten, a.Dozenten},
		{dataservice.CollTeilnehmer, a.Teilnehmer},
		{dataservice.CollRaeume, a.Raeume},
		{dataservice.CollAnmeldungen, a.Anmeldungen},
	} {
		if strings.TrimSpace(p.id) == "" {
			out = append(out, p.name)
		}
	}
	return out
}

// Client reads the five dashboard collections from LivingApps.
// It implements dataservice.Source and dataservice.Pinger.
type Client struct {
	baseURL    string
	apiKey     string
	apps       Apps
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithAPIKey sends key in the X-API-Key header.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a client for baseURL.
func New(baseURL string, apps Apps, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		apps:    apps,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

type envelope[F any] struct {
	Fields F `json:"fields"`
}

// fetchRecords GETs the records of one app. The response is an object keyed
// by record id; records come back in key order so results are stable.
func fetchRecords[F any, T any](ctx context.Context, c *Client, app string, build func(id string, f F) T) ([]T, error) {
	url := fmt.Sprintf("%s/apps/%s/records", c.baseURL, app)

	var raw map[string]envelope[F]
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, build(id, raw[id].Fields))
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode JSON response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &ErrStatus{Code: resp.StatusCode}
	}
	return resp, nil
}

func (c *Client) ListKurse(ctx context.Context) ([]models.Kurs, error) {
	return fetchRecords(ctx, c, c.apps.Kurse, func(id string, f models.KursFields) models.Kurs {
		return models.Kurs{RecordID: id, Fields: f}
	})
}

func (c *Client) ListDozenten(ctx context.Context) ([]models.Dozent, error) {
	return fetchRecords(ctx, c, c.apps.Dozenten, func(id string, f models.DozentFields) models.Dozent {
		return models.Dozent{RecordID: id, Fields: f}
	})
}

func (c *Client) ListTeilnehmer(ctx context.Context) ([]models.Teilnehmer, error) {
	return fetchRecords(ctx, c, c.apps.Teilnehmer, func(id string, f models.TeilnehmerFields) models.Teilnehmer {
		return models.Teilnehmer{RecordID: id, Fields: f}
	})
}

func (c *Client) ListRaeume(ctx context.Context) ([]models.Raum, error) {
	return fetchRecords(ctx, c, c.apps.Raeume, func(id string, f map[string]any) models.Raum {
		return models.Raum{RecordID: id, Fields: f}
	})
}

func (c *Client) ListAnmeldungen(ctx context.Context) ([]models.Anmeldung, error) {
	return fetchRecords(ctx, c, c.apps.Anmeldungen, func(id string, f models.AnmeldungFields) models.Anmeldung {
		return models.Anmeldung{RecordID: id, Fields: f}
	})
}

// Ping checks that the course app is reachable with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	return c.getJSON(ctx, fmt.Sprintf("%s/apps/%s", c.baseURL, c.apps.Kurse), nil)
}
