// Package upstream is the HTTP client for the GeoProfit analysis engine.
// It is a thin wrapper: no retries, no backoff, no caching. Anything
// smarter belongs in the service tier above it.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	analysisdomain "github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
	comparisondomain "github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
	projectsdomain "github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response from the engine.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("engine returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("engine returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the engine API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an engine client. timeout <= 0 falls back to the
// default 30s.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListProjects fetches the paginated project list.
func (c *Client) ListProjects(ctx context.Context) (*projectsdomain.ProjectList, error) {
	var list projectsdomain.ProjectList
	if err := c.doJSON(ctx, http.MethodGet, "/projects/", nil, &list); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return &list, nil
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, id int) (*projectsdomain.Project, error) {
	var p projectsdomain.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return &p, nil
}

// CreateProject creates a project from the given input.
func (c *Client) CreateProject(ctx context.Context, in *projectsdomain.ProjectInput) (*projectsdomain.Project, error) {
	var p projectsdomain.Project
	if err := c.doJSON(ctx, http.MethodPost, "/projects/", in, &p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

// UpdateProject replaces a project record in full.
func (c *Client) UpdateProject(ctx context.Context, id int, in *projectsdomain.ProjectInput) (*projectsdomain.Project, error) {
	var p projectsdomain.Project
	if err := c.doJSON(ctx, http.MethodPut, "/projects/"+strconv.Itoa(id), in, &p); err != nil {
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	return &p, nil
}

// DeleteProject deletes a project by id.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/projects/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}

// RunFinancial triggers a financial analysis for the project.
func (c *Client) RunFinancial(ctx context.Context, projectID int) (*analysisdomain.FinancialResult, error) {
	var res analysisdomain.FinancialResult
	path := fmt.Sprintf("/analysis/%d/financial", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, fmt.Errorf("financial analysis for project %d: %w", projectID, err)
	}
	res.Source = analysisdomain.SourceEngine
	return &res, nil
}

// RunGeospatial triggers a geospatial analysis for the project.
func (c *Client) RunGeospatial(ctx context.Context, projectID int) (*analysisdomain.GeospatialResult, error) {
	var res analysisdomain.GeospatialResult
	path := fmt.Sprintf("/analysis/%d/geospatial", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, fmt.Errorf("geospatial analysis for project %d: %w", projectID, err)
	}
	res.Source = analysisdomain.SourceEngine
	return &res, nil
}

// RunSustainability triggers a sustainability analysis for the project.
func (c *Client) RunSustainability(ctx context.Context, projectID int) (*analysisdomain.SustainabilityResult, error) {
	var res analysisdomain.SustainabilityResult
	path := fmt.Sprintf("/analysis/%d/sustainability", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, fmt.Errorf("sustainability analysis for project %d: %w", projectID, err)
	}
	res.Source = analysisdomain.SourceEngine
	return &res, nil
}

type compareRequest struct {
	ProjectIDs []int `json:"project_ids"`
}

type comparePayload struct {
	Projects []comparisondomain.Metrics `json:"projects"`
}

// CompareProjects asks the engine for comparison metric bundles.
func (c *Client) CompareProjects(ctx context.Context, projectIDs []int) ([]comparisondomain.Metrics, error) {
	var payload comparePayload
	if err := c.doJSON(ctx, http.MethodPost, "/projects/compare", compareRequest{ProjectIDs: projectIDs}, &payload); err != nil {
		return nil, fmt.Errorf("compare projects: %w", err)
	}
	return payload.Projects, nil
}

// Ranking fetches the engine-side ranked project list.
func (c *Client) Ranking(ctx context.Context, criteria string, limit int) ([]comparisondomain.Metrics, error) {
	q := url.Values{}
	if criteria != "" {
		q.Set("criteria", criteria)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var payload comparePayload
	if err := c.doJSON(ctx, http.MethodGet, "/projects/ranking?"+q.Encode(), nil, &payload); err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}
	return payload.Projects, nil
}

// Export is a binary comparison export streamed back from the engine.
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

type exportRequest struct {
	ProjectIDs []int  `json:"project_ids"`
	Format     string `json:"format"`
}

// ExportComparison fetches the comparison export blob (pdf/excel/json).
func (c *Client) ExportComparison(ctx context.Context, projectIDs []int, format string) (*Export, error) {
	body, err := json.Marshal(exportRequest{ProjectIDs: projectIDs, Format: format})
	if err != nil {
		return nil, fmt.Errorf("encode export request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/projects/compare/export", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export comparison: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.apiError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export body: %w", err)
	}

	exp := &Export{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			exp.Filename = params["filename"]
		}
	}
	return exp, nil
}

// Health probes the engine root health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

// doJSON issues one request and decodes the JSON response into out (when
// out is non-nil). Non-2xx responses become *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("engine request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("engine request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("engine request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError extracts a message from the engine's error body. The engine
// reports errors as {"detail": ...} (and occasionally {"error": ...}).
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Detail != "" {
			apiErr.Message = body.Detail
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}
