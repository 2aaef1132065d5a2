package identityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего сервиса идентификации
// Токен пересылается как есть, сервис отвечает владельцем и ролью
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса идентификации
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Resolve возвращает субъекта, которому принадлежит токен
func (c *Client) Resolve(ctx context.Context, token string) (domain.Actor, error) {
	url := fmt.Sprintf("%s/internal/identity/me", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("IdentityService: request failed: %v", err)
		return domain.Actor{}, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return domain.Actor{}, fmt.Errorf("%w: %s", ErrUnauthorized, errorMessage(resp))
	case resp.StatusCode >= http.StatusInternalServerError:
		c.log.Error("IdentityService: upstream error status=%d: %s", resp.StatusCode, errorMessage(resp))
		return domain.Actor{}, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		return domain.Actor{}, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp))
	}

	// Парсим ответ
	var subject Subject
	if err := json.NewDecoder(resp.Body).Decode(&subject); err != nil {
		return domain.Actor{}, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	role := domain.Role(subject.Role)
	if subject.UserID <= 0 || !role.IsValid() {
		c.log.Warn("IdentityService: unexpected subject userId=%d role=%q", subject.UserID, subject.Role)
		return domain.Actor{}, fmt.Errorf("%w: subject userId=%d role=%q", ErrInvalidResponse, subject.UserID, subject.Role)
	}

	return domain.Actor{UserID: subject.UserID, Role: role}, nil
}

// errorMessage достаёт message из тела ошибки, иначе возвращает тело как есть
func errorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
