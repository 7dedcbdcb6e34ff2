package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shenikar/sos_intake_system/internal/apperrors"
	"github.com/shenikar/sos_intake_system/internal/config"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/service"
	"github.com/sirupsen/logrus"
)

const userAgent = "sos-intake-system"

// Client - клиент nominatim-совместимого сервиса геокодирования почтовых индексов
type Client struct {
	httpClient *http.Client
	baseURL    string
	country    string
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) service.Geocoder {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.ExternalTimeout},
		baseURL:    cfg.GeocodeURL,
		country:    cfg.GeocodeCountry,
		logger:     logger,
	}
}

// Resolve переводит почтовый индекс в координаты.
// Пустой результат поиска - это (nil, nil), а не ошибка.
func (c *Client) Resolve(ctx context.Context, postcode string) (*models.Coordinates, error) {
	params := url.Values{}
	params.Set("postalcode", postcode)
	params.Set("country", c.country)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w: %w", apperrors.ErrDependency, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w: %w", apperrors.ErrDependency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geocode service returned status %d: %w", resp.StatusCode, apperrors.ErrDependency)
	}

	// nominatim отдает координаты строками
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w: %w", apperrors.ErrDependency, err)
	}

	if len(results) == 0 {
		c.logger.WithField("postcode", postcode).Info("Geocoder found no match for postcode")
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode response has malformed latitude: %w: %w", apperrors.ErrDependency, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode response has malformed longitude: %w: %w", apperrors.ErrDependency, err)
	}

	return &models.Coordinates{Lat: lat, Lng: lng}, nil
}
