// Package kinopoisk - клиент неофициального API КиноПоиска.
// Один Client создается при старте процесса и используется всеми обработчиками.
package kinopoisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/p4vook/kpoisk-bot/internal/models"
)

const (
	// DefaultBaseURL - адрес API по умолчанию
	DefaultBaseURL = "https://kinopoiskapiunofficial.tech"

	searchPath = "/api/v2.1/films/search-by-keyword"
	filmPath   = "/api/v2.2/films/"

	maxIdleConns        = 10
	maxIdleConnsPerHost = 4
	idleConnTimeout     = 90 * time.Second
	maxErrorBody        = 4096
)

// Client - авторизованный HTTP-клиент API. Безопасен для конкурентного использования.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
}

// NewClient создает клиент с общим пулом соединений
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
		},
	}
}

// BaseURL возвращает адрес API
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close закрывает простаивающие соединения
func (c *Client) Close() {
	if c == nil || c.hc == nil {
		return
	}
	c.hc.CloseIdleConnections()
}

// SearchByKeyword ищет фильмы по ключевому слову
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, page int) (*models.SearchResponse, error) {
	query := url.Values{}
	query.Set("keyword", keyword)
	query.Set("page", strconv.Itoa(page))

	var resp models.SearchResponse
	if err := c.get(ctx, "search", searchPath, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFilm возвращает полную карточку фильма по идентификатору
func (c *Client) GetFilm(ctx context.Context, id int) (*models.Film, error) {
	if id <= 0 {
		return nil, &APIError{Op: "film", Err: fmt.Errorf("invalid film id %d", id)}
	}

	var film models.Film
	if err := c.get(ctx, "film", filmPath+strconv.Itoa(id), nil, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	req.Header.Set("X-API-KEY", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
