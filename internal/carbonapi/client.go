// Package carbonapi fetches live carbon data from external HTTP APIs,
// falling back to the built-in reference constants whenever a call
// fails. Callers always get a usable value.
package carbonapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/greenops/ecocycle/internal/refdata"
)

// Source tells where a returned value came from.
type Source string

const (
	// SourceLive means the value was fetched from the external API.
	SourceLive Source = "live"

	// SourceFallback means the value is a built-in reference constant.
	SourceFallback Source = "fallback"
)

// DefaultTimeout bounds every external call. There are no retries;
// a slow or failing API must not stall an analysis.
const DefaultTimeout = 5 * time.Second

// Client queries external carbon data services.
type Client struct {
	// GridIntensityURL is the base URL of the grid intensity API.
	// Empty disables live lookups.
	GridIntensityURL string

	// DeviceFootprintURL is the base URL of the device footprint API.
	// Empty disables live lookups.
	DeviceFootprintURL string

	httpClient *http.Client
	logger     zerolog.Logger
}

// New builds a client. Empty URLs leave the corresponding lookup in
// fallback-only mode.
func New(gridURL, deviceURL string, logger zerolog.Logger) *Client {
	return &Client{
		GridIntensityURL:   gridURL,
		DeviceFootprintURL: deviceURL,
		httpClient:         &http.Client{Timeout: DefaultTimeout},
		logger:             logger.With().Str("component", "carbonapi").Logger(),
	}
}

type gridIntensityResponse struct {
	CountryCode string `json:"country_code"`
	// IntensityG is the grid intensity in gCO2e/kWh.
	IntensityG float64 `json:"carbon_intensity_g_per_kwh"`
}

type deviceFootprintResponse struct {
	Model           string  `json:"model"`
	ManufacturingKg float64 `json:"manufacturing_kgco2e"`
}

// GridFactor returns the emission factor for a country in kgCO2e/kWh.
// On any API failure it silently falls back to the reference table.
func (c *Client) GridFactor(ctx context.Context, countryCode string) (float64, Source) {
	fallback := refdata.GetGridFactor(countryCode)
	if c == nil || c.GridIntensityURL == "" {
		return fallback, SourceFallback
	}

	var out gridIntensityResponse
	if err := c.getJSON(ctx, c.GridIntensityURL, url.Values{"country": {countryCode}}, &out); err != nil {
		c.logger.Debug().Err(err).Str("country", countryCode).Msg("grid intensity lookup failed, using reference factor")
		return fallback, SourceFallback
	}
	if out.IntensityG <= 0 {
		c.logger.Debug().Str("country", countryCode).Msg("grid intensity response empty, using reference factor")
		return fallback, SourceFallback
	}
	return out.IntensityG / 1000, SourceLive
}

// DeviceFootprint returns the manufacturing footprint for a device
// model in kgCO2e. On any API failure it silently falls back to the
// device reference table.
func (c *Client) DeviceFootprint(ctx context.Context, model string) (float64, Source) {
	spec, _ := refdata.GetDeviceOrDefault(model)
	fallback := spec.ManufacturingCO2Kg
	if c == nil || c.DeviceFootprintURL == "" {
		return fallback, SourceFallback
	}

	var out deviceFootprintResponse
	if err := c.getJSON(ctx, c.DeviceFootprintURL, url.Values{"model": {model}}, &out); err != nil {
		c.logger.Debug().Err(err).Str("model", model).Msg("device footprint lookup failed, using reference value")
		return fallback, SourceFallback
	}
	if out.ManufacturingKg <= 0 {
		c.logger.Debug().Str("model", model).Msg("device footprint response empty, using reference value")
		return fallback, SourceFallback
	}
	return out.ManufacturingKg, SourceLive
}

func (c *Client) getJSON(ctx context.Context, baseURL string, query url.Values, out any) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed after %s: %w", time.Since(start).Round(time.Millisecond), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
