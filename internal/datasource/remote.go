package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cheerguru/connect/internal/board"
)

// Remote talks to the backend REST API. It never retries; a failed call is
// classified once and surfaced to the caller.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote builds a remote data source rooted at baseURL (e.g.
// "http://localhost:5001/api"). The client timeout is the only bounded-time
// guarantee any call has.
func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{baseURL: baseURL, client: client}
}

func (r *Remote) Mode() Mode { return ModeRemote }

// CheckAvailability probes GET /health. Only a 2xx response counts as
// available; a failed request or an error status means the session falls
// back to local mode.
func (r *Remote) CheckAvailability(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

func (r *Remote) ListJobs(ctx context.Context, q JobQuery) ([]board.Job, error) {
	params := url.Values{}
	setParam(params, "program", string(q.Program))
	setParam(params, "type", string(q.Type))
	setParam(params, "state", q.State)
	setParam(params, "search", q.Search)
	setParam(params, "status", string(q.Status))

	var jobs []board.Job
	if err := r.do(ctx, http.MethodGet, "/jobs", params, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Remote) GetJob(ctx context.Context, id string) (*board.Job, error) {
	var j board.Job
	if err := r.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *Remote) CreateJob(ctx context.Context, j *board.Job) (*board.Job, error) {
	var created board.Job
	if err := r.do(ctx, http.MethodPost, "/jobs", nil, j, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Remote) UpdateJob(ctx context.Context, j *board.Job) (*board.Job, error) {
	var updated board.Job
	err := r.do(ctx, http.MethodPut, "/jobs/"+url.PathEscape(j.ID), nil, j, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Remote) DeleteJob(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil, nil, nil)
}

func (r *Remote) ListProviders(ctx context.Context, q ProviderQuery) ([]board.ServiceProvider, error) {
	params := url.Values{}
	setParam(params, "services", q.Services)
	setParam(params, "experience", string(q.Experience))
	setParam(params, "state", q.State)
	setParam(params, "search", q.Search)
	setParam(params, "status", string(q.Status))

	var providers []board.ServiceProvider
	if err := r.do(ctx, http.MethodGet, "/providers", params, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *Remote) GetProvider(ctx context.Context, id string) (*board.ServiceProvider, error) {
	var p board.ServiceProvider
	if err := r.do(ctx, http.MethodGet, "/providers/"+url.PathEscape(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Remote) CreateProvider(ctx context.Context, p *board.ServiceProvider) (*board.ServiceProvider, error) {
	var created board.ServiceProvider
	if err := r.do(ctx, http.MethodPost, "/providers", nil, p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Remote) UpdateProvider(ctx context.Context, p *board.ServiceProvider) (*board.ServiceProvider, error) {
	var updated board.ServiceProvider
	err := r.do(ctx, http.MethodPut, "/providers/"+url.PathEscape(p.ID), nil, p, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Remote) DeleteProvider(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/providers/"+url.PathEscape(id), nil, nil, nil)
}

func (r *Remote) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := r.do(ctx, http.MethodGet, "/jobs/stats", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Remote) ScraperStatus(ctx context.Context) (*ScraperStatus, error) {
	var s ScraperStatus
	if err := r.do(ctx, http.MethodGet, "/scraper/status", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Remote) StartScraping(ctx context.Context, sources []string) error {
	body := map[string][]string{"sources": sources}
	return r.do(ctx, http.MethodPost, "/scraper/start", nil, body, nil)
}

func (r *Remote) TestScraping(ctx context.Context, source string) error {
	body := map[string]string{"source": source}
	return r.do(ctx, http.MethodPost, "/scraper/test", nil, body, nil)
}

// do performs one request and converts every failure into the transport
// error taxonomy. A 404 on a mutation surfaces as ErrNotFound so the store
// can treat it as a benign race.
func (r *Remote) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	u := r.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return unknownError(fmt.Sprintf("encode request: %v", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return unknownError(err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return networkError("unable to connect to server: " + err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError("read response: " + err.Error())
	}

	if resp.StatusCode == http.StatusNotFound && (method == http.MethodPut || method == http.MethodDelete) {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp.StatusCode, serverMessage(data, resp.Status))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return unknownError(fmt.Sprintf("decode response: %v", err))
		}
	}
	return nil
}

// serverMessage pulls a human-readable message out of an error response body,
// falling back to the HTTP status text.
func serverMessage(data []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

func setParam(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
