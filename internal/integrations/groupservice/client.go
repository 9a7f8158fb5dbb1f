package groupservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с GroupService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента GroupService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetGroup получает группу по ID
func (c *Client) GetGroup(ctx context.Context, groupID int64) (*Group, error) {
	url := fmt.Sprintf("%s/internal/groups/%d", c.baseURL, groupID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrGroupNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid group ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var group Group
	if err := json.NewDecoder(resp.Body).Decode(&group); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &group, nil
}

// GetGroupWithGracefulDegradation получает группу с graceful degradation
// Несуществующая группа - бизнес-ошибка (ErrGroupNotFound).
// Любая другая ошибка (таймаут, 5xx, мусор в ответе) превращается в ErrServiceDegraded,
// вызывающий код подставляет FallbackName и продолжает бронирование
func (c *Client) GetGroupWithGracefulDegradation(ctx context.Context, groupID int64) (*Group, error) {
	group, err := c.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			c.log.Info("Group not found: group_id=%d", groupID)
			return nil, err
		}

		c.log.Error("GroupService unavailable, applying graceful degradation for group_id=%d: %v", groupID, err)
		return nil, fmt.Errorf("%w: group_id=%d, error=%v", ErrServiceDegraded, groupID, err)
	}

	return group, nil
}
