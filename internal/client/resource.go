// Package client provides an HTTP-backed collaborator for the crud
// controllers. A Resource binds one REST collection and speaks the standard
// response envelope, so list and form controllers can drive a remote API
// the same way tests drive an in-memory fake.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
)

// Resource is a crud.Collaborator over one REST collection.
type Resource[T crud.Record] struct {
	baseURL  string
	resource string
	client   *http.Client
	token    string
}

// Option configures a Resource.
type Option func(*options)

type options struct {
	client *http.Client
	token  string
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.client = c }
}

// WithToken sets a bearer token attached to every request.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// NewResource creates a Resource for the collection at baseURL/resource.
func NewResource[T crud.Record](baseURL, resource string, opts ...Option) *Resource[T] {
	o := options{client: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[T]{
		baseURL:  strings.TrimRight(baseURL, "/"),
		resource: strings.Trim(resource, "/"),
		client:   o.client,
		token:    o.token,
	}
}

// envelope is the server's standard JSON response shape.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// List fetches one page of the collection.
func (r *Resource[T]) List(ctx context.Context, q crud.Query) (crud.Page[T], error) {
	var page crud.Page[T]

	u := r.collectionURL()
	if encoded := q.Normalize().Values().Encode(); encoded != "" {
		u += "?" + encoded
	}

	data, err := r.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return page, err
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return page, fmt.Errorf("decode %s page: %w", r.resource, err)
	}
	return page, nil
}

// Create inserts a new record built from the given field values.
func (r *Resource[T]) Create(ctx context.Context, values crud.Values) (T, error) {
	var record T

	data, err := r.do(ctx, http.MethodPost, r.collectionURL(), values)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("decode %s record: %w", r.resource, err)
	}
	return record, nil
}

// Update replaces the record with the given identity.
func (r *Resource[T]) Update(ctx context.Context, id string, values crud.Values) (T, error) {
	var record T

	data, err := r.do(ctx, http.MethodPut, r.recordURL(id), values)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("decode %s record: %w", r.resource, err)
	}
	return record, nil
}

// Remove deletes the record with the given identity.
func (r *Resource[T]) Remove(ctx context.Context, id string) error {
	_, err := r.do(ctx, http.MethodDelete, r.recordURL(id), nil)
	return err
}

func (r *Resource[T]) collectionURL() string {
	return r.baseURL + "/" + r.resource
}

func (r *Resource[T]) recordURL(id string) string {
	return r.collectionURL() + "/" + id
}

// do runs one request and returns the envelope's data payload. Non-2xx
// responses are mapped back to domain errors using the envelope message.
func (r *Resource[T]) do(ctx context.Context, method, url string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", r.resource, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", r.resource, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, env.Message)
	}
	return env.Data, nil
}

// statusError maps an HTTP status plus envelope message to a domain error.
func statusError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch status {
	case http.StatusNotFound:
		return domain.NewAppError(domain.CodeNotFound, message, nil)
	case http.StatusConflict:
		return domain.NewAppError(domain.CodeAlreadyExists, message, nil)
	case http.StatusBadRequest:
		return domain.NewAppError(domain.CodeValidation, message, nil)
	case http.StatusUnauthorized:
		return domain.NewAppError(domain.CodeUnauthorized, message, nil)
	case http.StatusForbidden:
		return domain.NewAppError(domain.CodeForbidden, message, nil)
	default:
		return domain.NewAppError(domain.CodeInternal, message, nil)
	}
}
