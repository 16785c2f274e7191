package timezones

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"tzpick/internal/domain"
)

// DefaultURL lists every IANA zone name as a JSON array of strings
const DefaultURL = "https://timeapi.io/api/timezone/availabletimezones"

// maxBodySize bounds how much of the response is read
const maxBodySize = 4 << 20

var (
	// ErrUnexpectedStatus is returned for non-2xx responses
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedBody is returned when the body is not a JSON array of strings
	ErrMalformedBody = errors.New("malformed response body")
)

// Source yields the options offered to the user
type Source interface {
	Load(ctx context.Context) ([]domain.Option, error)
}

// Result describes a finished load
type Result struct {
	Options  []domain.Option
	Fallback bool
}

// HTTPSource reads the option list from a remote endpoint
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates a source for url using client (http.DefaultClient if nil)
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: url, Client: client}
}

// Load fetches and decodes the remote list
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Option, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timezones: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch timezones: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if names == nil {
		return nil, fmt.Errorf("%w: expected an array", ErrMalformedBody)
	}

	return domain.OptionsFromStrings(names), nil
}

// StaticSource serves a fixed list
type StaticSource struct {
	Options []domain.Option
}

// Load returns a copy of the fixed list
func (s StaticSource) Load(ctx context.Context) ([]domain.Option, error) {
	out := make([]domain.Option, len(s.Options))
	copy(out, s.Options)
	return out, nil
}

// Loader applies a failure policy on top of a Source
type Loader struct {
	source   Source
	policy   domain.FailurePolicy
	fallback []domain.Option
}

// WithPolicy wraps src. PolicyFallback substitutes the built-in list on failure.
func WithPolicy(src Source, policy domain.FailurePolicy) *Loader {
	return &Loader{
		source:   src,
		policy:   policy,
		fallback: Builtin(),
	}
}

// Load runs the wrapped source once. It never retries.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	options, err := l.source.Load(ctx)
	if err == nil {
		return Result{Options: options}, nil
	}

	if l.policy == domain.PolicyFallback {
		log.Printf("Timezone request failed, using built-in list instead: %v", err)
		out := make([]domain.Option, len(l.fallback))
		copy(out, l.fallback)
		return Result{Options: out, Fallback: true}, nil
	}

	log.Printf("Timezone request failed: %v", err)
	return Result{}, err
}
