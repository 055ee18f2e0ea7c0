// Package simbad cross-checks detected coordinates against the SIMBAD
// astronomical database to flag detections as known or potentially new.
package simbad

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	httpClient "github.com/skywatch/cosmoscan/internal/platform/http"
)

// DefaultRadiusArcmin is the cone-search radius.
const DefaultRadiusArcmin = 2.0

// Matches closer than this are treated as the same object.
const knownObjectArcsec = 5.0

// Cross-check statuses.
const (
	StatusKnown        = "KNOWN"
	StatusCandidate    = "CANDIDATE"
	StatusPotentialNew = "POTENTIAL_NEW"
)

// Client queries the SIMBAD TAP service.
type Client struct {
	baseURL      string
	radiusArcmin float64
	httpClient   *httpClient.Client
	logger       zerolog.Logger
}

// ClientOptions holds options for creating a new SIMBAD client.
type ClientOptions struct {
	BaseURL        string
	RadiusArcmin   float64
	RequestTimeout time.Duration
	RequestsPerSec int
}

// NewClient creates a new SIMBAD API client.
func NewClient(options ClientOptions, logger zerolog.Logger) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://simbad.u-strasbg.fr/simbad/sim-tap/sync"
	}
	if options.RadiusArcmin == 0 {
		options.RadiusArcmin = DefaultRadiusArcmin
	}
	return &Client{
		baseURL:      options.BaseURL,
		radiusArcmin: options.RadiusArcmin,
		httpClient: httpClient.NewClient(httpClient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
		}),
		logger: logger,
	}
}

// Object is one SIMBAD match.
type Object struct {
	MainID         string
	RA             float64
	Dec            float64
	ObjectType     string
	DistanceArcsec float64
}

// CheckResult summarizes a coordinate cross-check.
type CheckResult struct {
	Found        bool
	TotalObjects int
	Primary      *Object
	Objects      []Object
	Status       string
}

// tapResponse is the VOTable-JSON shape returned by the TAP sync endpoint.
type tapResponse struct {
	Data [][]interface{} `json:"data"`
}

// CheckCoordinates cone-searches SIMBAD around (ra, dec) degrees. A match
// within 5 arcsec marks the position as a known object; matches farther out
// leave it a candidate needing manual review; no match marks it potentially
// new.
func (c *Client) CheckCoordinates(ctx context.Context, ra, dec float64) (*CheckResult, error) {
	radiusDeg := c.radiusArcmin / 60

	adql := fmt.Sprintf(
		"SELECT TOP 20 main_id, ra, dec, otype_txt FROM basic "+
			"WHERE CONTAINS(POINT('ICRS', ra, dec), CIRCLE('ICRS', %.6f, %.6f, %.6f)) = 1",
		ra, dec, radiusDeg,
	)
	params := url.Values{}
	params.Set("request", "doQuery")
	params.Set("lang", "adql")
	params.Set("format", "json")
	params.Set("query", adql)

	var resp tapResponse
	if err := c.httpClient.GetJSON(ctx, c.baseURL+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("simbad query: %w", err)
	}

	result := &CheckResult{Status: StatusPotentialNew}
	for _, row := range resp.Data {
		if len(row) < 4 {
			continue
		}
		obj := Object{}
		if s, ok := row[0].(string); ok {
			obj.MainID = s
		}
		if v, ok := row[1].(float64); ok {
			obj.RA = v
		}
		if v, ok := row[2].(float64); ok {
			obj.Dec = v
		}
		if s, ok := row[3].(string); ok {
			obj.ObjectType = s
		}
		obj.DistanceArcsec = angularSeparationArcsec(ra, dec, obj.RA, obj.Dec)
		result.Objects = append(result.Objects, obj)
	}

	result.TotalObjects = len(result.Objects)
	result.Found = result.TotalObjects > 0
	if result.Found {
		result.Primary = &result.Objects[0]
		result.Status = StatusCandidate
		for _, obj := range result.Objects {
			if obj.DistanceArcsec < knownObjectArcsec {
				result.Status = StatusKnown
				break
			}
		}
	}

	c.logger.Debug().
		Float64("ra", ra).
		Float64("dec", dec).
		Int("matches", result.TotalObjects).
		Str("status", result.Status).
		Msg("simbad cross-check")
	return result, nil
}

// LookupName resolves an object designation to its catalog entry. Returns
// nil when SIMBAD does not know the name.
func (c *Client) LookupName(ctx context.Context, name string) (*Object, error) {
	escaped := strings.ReplaceAll(name, "'", "''")
	adql := fmt.Sprintf(
		"SELECT TOP 1 basic.main_id, basic.ra, basic.dec, basic.otype_txt "+
			"FROM basic JOIN ident ON ident.oidref = basic.oid WHERE ident.id = '%s'",
		escaped,
	)
	params := url.Values{}
	params.Set("request", "doQuery")
	params.Set("lang", "adql")
	params.Set("format", "json")
	params.Set("query", adql)

	var resp tapResponse
	if err := c.httpClient.GetJSON(ctx, c.baseURL+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("simbad name lookup: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0]) < 4 {
		return nil, nil
	}

	row := resp.Data[0]
	obj := &Object{}
	if s, ok := row[0].(string); ok {
		obj.MainID = s
	}
	if v, ok := row[1].(float64); ok {
		obj.RA = v
	}
	if v, ok := row[2].(float64); ok {
		obj.Dec = v
	}
	if s, ok := row[3].(string); ok {
		obj.ObjectType = s
	}
	return obj, nil
}

// angularSeparationArcsec is the great-circle distance between two ICRS
// positions, in arcseconds.
func angularSeparationArcsec(ra1, dec1, ra2, dec2 float64) float64 {
	const degToRad = math.Pi / 180
	d1, d2 := dec1*degToRad, dec2*degToRad
	dRA := (ra2 - ra1) * degToRad
	cosSep := math.Sin(d1)*math.Sin(d2) + math.Cos(d1)*math.Cos(d2)*math.Cos(dRA)
	if cosSep > 1 {
		cosSep = 1
	}
	if cosSep < -1 {
		cosSep = -1
	}
	return math.Acos(cosSep) / degToRad * 3600
}
