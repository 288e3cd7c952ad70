package tokenclass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client клиент HTTP-сервиса токен-классификации
type Client struct {
	baseURL     string
	model       string
	httpClient  *http.Client
	rateLimiter *rate.Limiter // защита сервиса инференса от перегрузки
}

// classifyRequest структура запроса к сервису
type classifyRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

// classifyResponse структура ответа сервиса
type classifyResponse struct {
	Entities []struct {
		Label string `json:"label"`
		Text  string `json:"text"`
	} `json:"entities"`
	Error string `json:"error,omitempty"`
}

// NewClient создает клиент сервиса токен-классификации.
// Инференс тяжелый, поэтому не более 5 запросов в секунду с burst=10.
func NewClient(baseURL, model string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 10),
	}
}

// ClassifyText отправляет текст на разметку и возвращает спаны по меткам.
// Несколько спанов с одной меткой схлопываются: побеждает первый.
func (c *Client) ClassifyText(text string) (LabeledSpans, error) {
	request := classifyRequest{
		Model: c.model,
		Text:  text,
	}
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	ctx := context.Background()
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, string(body))
	}

	var response classifyResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if response.Error != "" {
		return nil, fmt.Errorf("classifier error: %s", response.Error)
	}

	spans := make(LabeledSpans, len(response.Entities))
	for _, entity := range response.Entities {
		if _, ok := spans[entity.Label]; !ok {
			spans[entity.Label] = entity.Text
		}
	}
	return spans, nil
}
