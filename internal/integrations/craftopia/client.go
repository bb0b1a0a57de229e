package craftopia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с backend Craftopia.
// Единая точка выхода в сеть: добавляет bearer-токен, сериализует JSON
// и нормализует ошибки (сетевые против отвергнутых backend).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics
}

// NewClient создает новый экземпляр клиента Craftopia backend
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает сбор метрик запросов к backend
func (c *Client) WithMetrics(m *metrics.Metrics) *Client {
	c.metrics = m
	return c
}

// errorBody тело ошибки backend; сообщение приходит либо в message, либо в error
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do выполняет запрос к backend: сериализует body, добавляет заголовки
// (и Authorization, если передан токен), а ответ декодирует в out.
// Не-2xx ответ превращается в *APIError со статусом и сообщением backend.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, path, 0, start)
		// Сетевая ошибка, а не отказ backend
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	c.observe(method, path, resp.StatusCode, start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var parsed errorBody
		// Тело может быть и не JSON; тогда сообщение остается пустым
		_ = json.Unmarshal(respBody, &parsed)

		message := parsed.Message
		if message == "" {
			message = parsed.Error
		}

		c.log.Warn("craftopia: %s %s -> %d: %s", method, path, resp.StatusCode, message)
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}

// observe записывает метрики запроса; статус 0 означает сетевую ошибку
func (c *Client) observe(method, path string, status int, start time.Time) {
	if c.metrics == nil {
		return
	}

	endpoint := method + " " + normalizePath(path)
	statusLabel := "network_error"
	if status != 0 {
		statusLabel = strconv.Itoa(status)
	}

	c.metrics.BackendRequestsTotal.WithLabelValues(endpoint, statusLabel).Inc()
	c.metrics.BackendRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// normalizePath заменяет идентификаторы в пути на :id, чтобы не раздувать
// кардинальность метрик
func normalizePath(path string) string {
	statics := map[string]bool{
		"customers": true, "artisans": true, "admin": true, "login": true,
		"orders": true, "reviews": true, "availability": true,
		"reply": true, "customer-response": true, "status": true, "cancel": true,
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment != "" && !statics[segment] {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
