// Package exoarchive queries the NASA Exoplanet Archive TAP service to
// compare detected transit candidates against confirmed planets.
package exoarchive

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	httpClient "github.com/skywatch/cosmoscan/internal/platform/http"
)

// Client queries the Exoplanet Archive TAP endpoint.
type Client struct {
	tapURL     string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new archive client.
type ClientOptions struct {
	TAPURL         string
	RequestTimeout time.Duration
	RequestsPerSec int
}

// NewClient creates a new Exoplanet Archive client.
func NewClient(options ClientOptions, logger zerolog.Logger) *Client {
	if options.TAPURL == "" {
		options.TAPURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"
	}
	return &Client{
		tapURL: options.TAPURL,
		httpClient: httpClient.NewClient(httpClient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
		}),
		logger: logger,
	}
}

// Planet is one confirmed-planet row from the ps table.
type Planet struct {
	Name            string  `json:"pl_name"`
	HostName        string  `json:"hostname"`
	DiscoveryMethod string  `json:"discoverymethod"`
	DiscoveryYear   int     `json:"disc_year"`
	OrbitalPeriod   float64 `json:"pl_orbper"`
	EarthRadii      float64 `json:"pl_rade"`
}

// query runs an ADQL query and decodes the JSON rows.
func (c *Client) query(ctx context.Context, adql string) ([]Planet, error) {
	params := url.Values{}
	params.Set("query", adql)
	params.Set("format", "json")

	var planets []Planet
	if err := c.httpClient.GetJSON(ctx, c.tapURL+"?"+params.Encode(), &planets); err != nil {
		return nil, fmt.Errorf("exoplanet archive query: %w", err)
	}
	return planets, nil
}

// ConfirmedPlanets returns confirmed planets, optionally filtered by an
// ADQL WHERE clause.
func (c *Client) ConfirmedPlanets(ctx context.Context, where string, limit int) ([]Planet, error) {
	adql := fmt.Sprintf(
		"SELECT TOP %d pl_name, hostname, discoverymethod, disc_year, pl_orbper, pl_rade FROM ps WHERE default_flag = 1",
		limit,
	)
	if where != "" {
		adql += " AND " + where
	}
	return c.query(ctx, adql)
}

// SearchByName looks a planet up by its archive name.
func (c *Client) SearchByName(ctx context.Context, name string) ([]Planet, error) {
	escaped := strings.ReplaceAll(name, "'", "''")
	return c.ConfirmedPlanets(ctx, fmt.Sprintf("pl_name = '%s'", escaped), 10)
}

// ConeSearch returns confirmed planets within radiusDeg of (ra, dec) ICRS
// degrees.
func (c *Client) ConeSearch(ctx context.Context, ra, dec, radiusDeg float64) ([]Planet, error) {
	where := fmt.Sprintf(
		"CONTAINS(POINT('icrs', ra, dec), CIRCLE('icrs', %.6f, %.6f, %.6f)) = 1",
		ra, dec, radiusDeg,
	)
	return c.ConfirmedPlanets(ctx, where, 50)
}

// MatchPeriod returns confirmed transiting planets whose orbital period lies
// within tolerance (fractional) of periodDays. Used to decide whether a
// transit candidate is already catalogued.
func (c *Client) MatchPeriod(ctx context.Context, periodDays, tolerance float64) ([]Planet, error) {
	lo := periodDays * (1 - tolerance)
	hi := periodDays * (1 + tolerance)
	where := fmt.Sprintf("tran_flag = 1 AND pl_orbper BETWEEN %.6f AND %.6f", lo, hi)

	planets, err := c.ConfirmedPlanets(ctx, where, 50)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().
		Float64("period_days", periodDays).
		Int("matches", len(planets)).
		Msg("exoplanet archive period match")
	return planets, nil
}
