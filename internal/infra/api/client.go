// Package api implements the OrderingAPI interface over the remote HTTP
// service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"comanda/config"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// Client talks to the order management backend. It is stateless: bearer
// tokens are supplied per call by the session owner.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Client from configuration. The request timeout guards
// against hung fetches blocking a screen's loading state forever.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.OrderingAPI, error) {
	if cfg.API == nil || cfg.API.BaseURL == "" {
		return nil, errors.New("api base URL must be configured")
	}
	if _, err := url.Parse(cfg.API.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid api base URL")
	}

	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// FetchProducts retrieves and normalizes the catalog.
func (c *Client) FetchProducts(ctx context.Context, token string) ([]entity.Product, error) {
	body, err := c.get(ctx, "/produtos", token)
	if err != nil {
		return nil, err
	}

	products, err := entity.DecodeCatalog(body)
	if err != nil {
		return nil, domainerrors.ErrParse.WrapMessage(err.Error())
	}

	return products, nil
}

// FetchOrders retrieves the full snapshot for one category stream.
func (c *Client) FetchOrders(ctx context.Context, category entity.Category, token string) ([]entity.Order, error) {
	body, err := c.get(ctx, category.SnapshotPath, token)
	if err != nil {
		return nil, err
	}

	var orders []entity.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, domainerrors.ErrParse.WrapMessage(err.Error())
	}

	return orders, nil
}

// CreateOrder submits a new order to the general stream endpoint.
func (c *Client) CreateOrder(ctx context.Context, req *service.CreateOrderRequest, token string) (*entity.Order, error) {
	body, err := c.send(ctx, http.MethodPost, "/pedidosGeral", req, token)
	if err != nil {
		return nil, err
	}

	// The backend answers either the bare order or {pedido: {...}}.
	var wrapper struct {
		Pedido *entity.Order `json:"pedido"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Pedido != nil {
		return wrapper.Pedido, nil
	}

	var order entity.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, domainerrors.ErrParse.WrapMessage(err.Error())
	}

	return &order, nil
}

// UpdateOrderStatus toggles the payment status of one order. The endpoint
// takes no body and answers {pedido: {...}} with the updated record.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, token string) (*entity.Order, error) {
	path := "/pedidosGeral/" + strconv.FormatInt(orderID, 10)
	body, err := c.send(ctx, http.MethodPut, path, nil, token)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Pedido *entity.Order `json:"pedido"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil || wrapper.Pedido == nil {
		return nil, domainerrors.ErrParse.WrapMessage("status update response missing pedido")
	}

	return wrapper.Pedido, nil
}

// loginResponse is the auth endpoint envelope.
type loginResponse struct {
	Success bool                `json:"success"`
	Token   string              `json:"token"`
	User    *entity.UserProfile `json:"user"`
	Error   string              `json:"error"`
}

// Login exchanges credentials for a session at the endpoint matching the
// account type.
func (c *Client) Login(ctx context.Context, req *service.LoginRequest) (*entity.Session, error) {
	if !req.AccountType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account type")
	}

	body, err := c.send(ctx, http.MethodPost, "/auth/"+string(req.AccountType), req, "")
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domainerrors.ErrParse.WrapMessage(err.Error())
	}

	if !resp.Success || resp.Token == "" || resp.User == nil {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails(resp.Error)
	}

	return &entity.Session{Token: resp.Token, User: resp.User}, nil
}

// FetchEmployees retrieves the staff roster.
func (c *Client) FetchEmployees(ctx context.Context, token string) ([]service.Employee, error) {
	body, err := c.get(ctx, "/funcionarios", token)
	if err != nil {
		return nil, err
	}

	var employees []service.Employee
	if err := json.Unmarshal(body, &employees); err != nil {
		return nil, domainerrors.ErrParse.WrapMessage(err.Error())
	}

	return employees, nil
}

func (c *Client) get(ctx context.Context, path, token string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, token)
}

func (c *Client) send(ctx context.Context, method, path string, payload any, token string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	return c.do(ctx, method, path, body, token)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrNetwork.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrNetwork.WrapMessage(err.Error())
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails(strings.TrimSpace(string(data)))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("Backend returned non-success status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrNetwork.WithDetails("HTTP " + strconv.Itoa(resp.StatusCode))
	}

	return data, nil
}
