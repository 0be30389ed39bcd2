package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stocklist/backend/app/dto"
	"stocklist/backend/app/models"
)

// ErrSessionExpired marks a 401 from the gateway: the stored token is gone
// or stale and the user has to log in again.
var ErrSessionExpired = errors.New("session expired")

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client is the console's gateway wrapper. It attaches the session's bearer
// token and decodes the gateway's {message} error bodies.
type Client struct {
	base    string
	http    *http.Client
	session *Session
}

func NewClient(base string, session *Session) *Client {
	return &Client{base: base, http: &http.Client{Timeout: 15 * time.Second}, session: session}
}

func (c *Client) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(http.MethodPost, "/api/auth/register", req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(userName, password string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	req := dto.LoginRequest{UserName: userName, Password: password}
	if err := c.do(http.MethodPost, "/api/auth/login", req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Products() ([]models.Product, error) {
	var products []models.Product
	err := c.do(http.MethodGet, "/api/products", nil, &products, true)
	return products, err
}

func (c *Client) SearchProducts(query string) ([]models.Product, error) {
	var products []models.Product
	path := "/api/products/search?query=" + url.QueryEscape(query)
	err := c.do(http.MethodGet, path, nil, &products, true)
	return products, err
}

func (c *Client) Product(productID int) (*models.Product, error) {
	var p models.Product
	if err := c.do(http.MethodGet, "/api/products/"+strconv.Itoa(productID), nil, &p, true); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(req dto.CreateProductRequest) (*models.Product, error) {
	var p models.Product
	if err := c.do(http.MethodPost, "/api/products", req, &p, true); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(productID int, req dto.UpdateProductRequest) (*models.Product, error) {
	var p models.Product
	if err := c.do(http.MethodPut, "/api/products/"+strconv.Itoa(productID), req, &p, true); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(productID int) (*models.Product, error) {
	var resp struct {
		DeletedProduct models.Product `json:"deletedProduct"`
	}
	if err := c.do(http.MethodDelete, "/api/products/"+strconv.Itoa(productID), nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp.DeletedProduct, nil
}

func (c *Client) do(method, path string, body any, out any, auth bool) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		var eb struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Message == "" {
			eb.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: eb.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
