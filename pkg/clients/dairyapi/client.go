package dairyapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

// TokenSource supplies the bearer token for backend calls. The session
// store implements it; keeping a single choke point avoids the scattered
// per-call-site token reads of the old console.
type TokenSource interface {
	Token() (string, error)
}

// Client is a resty-backed client of the external dairy REST backend.
type Client struct {
	httpClient *resty.Client
	tokens     TokenSource
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, tokens TokenSource) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{
		httpClient: restyClient,
		tokens:     tokens,
	}
}

// apiError mirrors the backend's error payload.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e *apiError) text() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.httpClient.R().SetContext(ctx)
	if c.tokens != nil {
		if token, err := c.tokens.Token(); err == nil && token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	return req
}

func checkStatus(resp *resty.Response, apiErr *apiError) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}
	return fmt.Errorf("dairy api error: %s %s: status=%d message=%s",
		resp.Request.Method, resp.Request.URL, resp.StatusCode(), apiErr.text())
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var result []T
	apiErr := new(apiError)

	resp, err := c.request(ctx).
		SetResult(&result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if err := checkStatus(resp, apiErr); err != nil {
		return nil, err
	}

	return result, nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	result := new(T)
	apiErr := new(apiError)

	resp, err := c.request(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if err := checkStatus(resp, apiErr); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	apiErr := new(apiError)
	resp, err := c.request(ctx).SetBody(body).SetError(apiErr).Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return checkStatus(resp, apiErr)
}

func (c *Client) put(ctx context.Context, path string, body any) error {
	apiErr := new(apiError)
	resp, err := c.request(ctx).SetBody(body).SetError(apiErr).Put(path)
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	return checkStatus(resp, apiErr)
}

// Delete removes one record from the given resource.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	apiErr := new(apiError)
	path := fmt.Sprintf("/%s/%s", strings.Trim(resource, "/"), id)
	resp, err := c.request(ctx).SetError(apiErr).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return checkStatus(resp, apiErr)
}

// MilkCollections lists all milk collection records.
func (c *Client) MilkCollections(ctx context.Context) ([]models.MilkCollection, error) {
	return getList[models.MilkCollection](ctx, c, "/milk-collections")
}

// CreateMilkCollection records a new milk collection.
func (c *Client) CreateMilkCollection(ctx context.Context, rec models.MilkCollection) error {
	return c.post(ctx, "/milk-collections", rec)
}

// UpdateMilkCollection replaces an existing milk collection record.
func (c *Client) UpdateMilkCollection(ctx context.Context, id string, rec models.MilkCollection) error {
	return c.put(ctx, "/milk-collections/"+id, rec)
}

// Productions lists all production batches.
func (c *Client) Productions(ctx context.Context) ([]models.Production, error) {
	return getList[models.Production](ctx, c, "/productions")
}

// Production fetches one production batch with its product details.
func (c *Client) Production(ctx context.Context, id string) (*models.Production, error) {
	return getOne[models.Production](ctx, c, "/productions/"+id)
}

// CreateProduction records a new production batch.
func (c *Client) CreateProduction(ctx context.Context, rec models.Production) error {
	return c.post(ctx, "/productions", rec)
}

// UpdateProduction replaces an existing production batch.
func (c *Client) UpdateProduction(ctx context.Context, id string, rec models.Production) error {
	return c.put(ctx, "/productions/"+id, rec)
}

// Sales lists all sale records.
func (c *Client) Sales(ctx context.Context) ([]models.Sale, error) {
	return getList[models.Sale](ctx, c, "/sales")
}

// CreateSale records a new sale.
func (c *Client) CreateSale(ctx context.Context, rec models.Sale) error {
	return c.post(ctx, "/sales", rec)
}

// UpdateSale replaces an existing sale record.
func (c *Client) UpdateSale(ctx context.Context, id string, rec models.Sale) error {
	return c.put(ctx, "/sales/"+id, rec)
}

// Products lists the product catalog.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	return getList[models.Product](ctx, c, "/products")
}

// CreateProduct adds a catalog entry.
func (c *Client) CreateProduct(ctx context.Context, rec models.Product) error {
	return c.post(ctx, "/products", rec)
}

// UpdateProduct replaces a catalog entry.
func (c *Client) UpdateProduct(ctx context.Context, id string, rec models.Product) error {
	return c.put(ctx, "/products/"+id, rec)
}

// Stocks lists raw stock levels.
func (c *Client) Stocks(ctx context.Context) ([]models.Stock, error) {
	return getList[models.Stock](ctx, c, "/stocks")
}

// AddStock posts a manual stock adjustment.
func (c *Client) AddStock(ctx context.Context, rec models.Stock) error {
	return c.post(ctx, "/stocks/addstock", rec)
}

// SummaryReport proxies the backend's monthly summary. The payload shape is
// owned by the backend, so it is passed through undecoded.
func (c *Client) SummaryReport(ctx context.Context, month string) ([]byte, error) {
	return c.rawReport(ctx, "/reports/summary", "month", month)
}

// WeeklyReport proxies the backend's weekly breakdown.
func (c *Client) WeeklyReport(ctx context.Context, week string) ([]byte, error) {
	return c.rawReport(ctx, "/reports/weekly", "week", week)
}

func (c *Client) rawReport(ctx context.Context, path, param, value string) ([]byte, error) {
	apiErr := new(apiError)
	resp, err := c.request(ctx).
		SetQueryParam(param, value).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if err := checkStatus(resp, apiErr); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// ReportData fetches the record sets for a PDF report covering the period.
func (c *Client) ReportData(ctx context.Context, period models.Period) (*models.ReportData, error) {
	result := new(models.ReportData)
	apiErr := new(apiError)

	resp, err := c.request(ctx).
		SetBody(period).
		SetResult(result).
		SetError(apiErr).
		Post("/reports/pdfreport")
	if err != nil {
		return nil, fmt.Errorf("fetch report data: %w", err)
	}
	if err := checkStatus(resp, apiErr); err != nil {
		return nil, err
	}

	return result, nil
}

type agentRequest struct {
	Messages string `json:"messages"`
}

type agentResponse struct {
	Reply string `json:"reply"`
}

// SQLAgent sends the rendered chat history to the backend's SQL agent and
// returns its reply.
func (c *Client) SQLAgent(ctx context.Context, history string) (string, error) {
	result := new(agentResponse)
	apiErr := new(apiError)

	resp, err := c.request(ctx).
		SetBody(agentRequest{Messages: history}).
		SetResult(result).
		SetError(apiErr).
		Post("/sqlagent")
	if err != nil {
		return "", fmt.Errorf("query sql agent: %w", err)
	}
	if err := checkStatus(resp, apiErr); err != nil {
		return "", err
	}

	return result.Reply, nil
}
