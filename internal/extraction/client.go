package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/sos_intake_system/internal/apperrors"
	"github.com/shenikar/sos_intake_system/internal/config"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Client - клиент внешнего NLP flow-сервиса, извлекающего структурированные
// поля из свободного текста SOS-сообщения
type Client struct {
	httpClient *http.Client
	flowURL    string
	token      string
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) service.Extractor {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.ExternalTimeout},
		flowURL:    cfg.FlowURL,
		token:      cfg.FlowToken,
		logger:     logger,
	}
}

type flowRequest struct {
	InputValue string `json:"input_value"`
	InputType  string `json:"input_type"`
	OutputType string `json:"output_type"`
}

// flowEnvelope повторяет форму ответа flow-сервиса: полезная нагрузка
// лежит по пути outputs[0].outputs[0].results.text.data.text
type flowEnvelope struct {
	Outputs []struct {
		Outputs []struct {
			Results struct {
				Text struct {
					Data struct {
						Text string `json:"text"`
					} `json:"data"`
				} `json:"text"`
			} `json:"results"`
		} `json:"outputs"`
	} `json:"outputs"`
}

// Extract отправляет сообщение flow-сервису и разбирает вложенный JSON-ответ.
// Любой сбой (транспорт, не-2xx, битый конверт) - это отказ всего вызова.
func (c *Client) Extract(ctx context.Context, phone, body string) (*models.Extraction, error) {
	inner, err := json.Marshal(map[string]string{"from": phone, "body": body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flow input: %w", err)
	}
	payload, err := json.Marshal(flowRequest{
		InputValue: string(inner),
		InputType:  "text",
		OutputType: "text",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flow request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.flowURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create flow request: %w: %w", apperrors.ErrDependency, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flow request failed: %w: %w", apperrors.ErrDependency, err)
	}
	defer resp.Body.Close()

	c.logger.WithField("status", resp.StatusCode).Debug("Flow service responded")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("flow service returned status %d: %w", resp.StatusCode, apperrors.ErrDependency)
	}

	var env flowEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode flow envelope: %w: %w", apperrors.ErrDependency, err)
	}
	if len(env.Outputs) == 0 || len(env.Outputs[0].Outputs) == 0 {
		return nil, fmt.Errorf("flow envelope has no outputs: %w", apperrors.ErrDependency)
	}

	ext := &models.Extraction{}
	innerText := env.Outputs[0].Outputs[0].Results.Text.Data.Text
	if err := json.Unmarshal([]byte(innerText), ext); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flow result: %w: %w", apperrors.ErrDependency, err)
	}
	if ext.Reply == "" {
		return nil, fmt.Errorf("flow result has no reply: %w", apperrors.ErrDependency)
	}

	// Нормализация частично заполненного результата
	if ext.People < 1 {
		ext.People = 1
	}
	if ext.Needs == nil {
		ext.Needs = []string{}
	}
	return ext, nil
}
