// Package mojang is a small blocking HTTP client used to resolve player
// names to their online-mode UUIDs. Every call is one request with no
// retry; failures surface to the caller.
package mojang

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/uuidgen"
	"github.com/tidwall/gjson"
)

const (
	// DefaultAPI is the public profile API
	DefaultAPI = "https://api.mojang.com"
	// DefaultTimeout bounds a single request
	DefaultTimeout = 10 * time.Second
	// bulkLimit is the maximum number of names the bulk endpoint accepts
	bulkLimit = 10
)

// Client talks to the profile API
type Client struct {
	api  string
	http *http.Client
}

// NewClient creates a client for api. Empty api and zero timeout use the defaults.
func NewClient(api string, timeout time.Duration) *Client {
	if api == "" {
		api = DefaultAPI
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		api:  strings.TrimRight(api, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch issues a GET and returns the body text
func (c *Client) Fetch(rawURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHTTPRequest, "invalid request").WithDetail("url", rawURL)
	}
	return c.do(req)
}

// FetchPost issues a POST with a JSON body and returns the body text
func (c *Client) FetchPost(rawURL, body string) (string, error) {
	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHTTPRequest, "invalid request").WithDetail("url", rawURL)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// do sends req; non-2xx responses are errors carrying the status code
func (c *Client) do(req *http.Request) (string, error) {
	logger := logging.GetLogger("mojang")
	logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHTTPRequest, "request failed").
			WithDetail("url", req.URL.String())
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHTTPRequest, "cannot read response body").
			WithDetail("url", req.URL.String())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return string(data), errors.Newf(errors.ErrHTTPStatus, "unexpected status %d", resp.StatusCode).
			WithDetail("url", req.URL.String()).
			WithDetail("status", resp.StatusCode)
	}
	return string(data), nil
}

// LookupUUID resolves one player name to its hyphenated online UUID
func (c *Client) LookupUUID(name string) (string, error) {
	endpoint := c.api + "/users/profiles/minecraft/" + url.PathEscape(name)

	body, err := c.Fetch(endpoint)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrHTTPStatus) {
			return "", errors.Wrapf(err, errors.ErrLookupFailed, "no profile for %q", name).
				WithDetail("name", name)
		}
		return "", err
	}

	// The API answers 204 with an empty body for unknown names
	id := gjson.Get(body, "id").String()
	if id == "" {
		return "", errors.Newf(errors.ErrLookupFailed, "no profile for %q", name).WithDetail("name", name)
	}
	return normalizeID(name, id)
}

// LookupUUIDs resolves many names through the bulk endpoint, ten at a time.
// Names the API does not know are absent from the result. Keys are the
// names as requested; matching is case-insensitive.
func (c *Client) LookupUUIDs(names []string) (map[string]string, error) {
	logger := logging.GetLogger("mojang")
	out := make(map[string]string, len(names))

	for start := 0; start < len(names); start += bulkLimit {
		end := start + bulkLimit
		if end > len(names) {
			end = len(names)
		}
		batch := names[start:end]

		payload, err := json.Marshal(batch)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode names")
		}

		body, err := c.FetchPost(c.api+"/profiles/minecraft", string(payload))
		if err != nil {
			return nil, err
		}

		requested := make(map[string]string, len(batch))
		for _, n := range batch {
			requested[strings.ToLower(n)] = n
		}

		parsed := gjson.Parse(body)
		if !parsed.IsArray() {
			return nil, errors.New(errors.ErrLookupFailed, "unexpected bulk lookup response").
				WithDetail("body", body)
		}

		var parseErr error
		parsed.ForEach(func(_, profile gjson.Result) bool {
			name := profile.Get("name").String()
			id, err := normalizeID(name, profile.Get("id").String())
			if err != nil {
				parseErr = err
				return false
			}
			if original, ok := requested[strings.ToLower(name)]; ok {
				out[original] = id
			}
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}

		logger.Debug().Int("requested", len(batch)).Int("resolved", len(out)).Msg("Bulk lookup batch")
	}
	return out, nil
}

func normalizeID(name, id string) (string, error) {
	normalized, err := uuidgen.Normalize(id)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLookupFailed, "malformed id for %q", name).
			WithDetail("name", name).
			WithDetail("id", id)
	}
	return normalized, nil
}
