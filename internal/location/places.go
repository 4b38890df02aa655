package location

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/corpgraph/corpgraph/internal/company"
)

const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

// PlacesConfig configures the Google Places client.
type PlacesConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// PlacesClient implements PlaceLookup against the Google Places API:
// a find-place text query followed by a details request for address
// components and coordinates.
type PlacesClient struct {
	client *resty.Client
	apiKey string
}

// NewPlacesClient builds a PlacesClient, or nil when no API key is
// configured so callers can wire the absence of a lookup directly.
func NewPlacesClient(cfg PlacesConfig) *PlacesClient {
	if cfg.APIKey == "" {
		return nil
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultPlacesBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout)
	return &PlacesClient{client: client, apiKey: cfg.APIKey}
}

type findPlaceResponse struct {
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
	Status string `json:"status"`
}

type placeDetailsResponse struct {
	Result struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
	Status string `json:"status"`
}

// Lookup resolves a company name to a place. Returns (nil, nil) when the
// API has no candidate for the name.
func (c *PlacesClient) Lookup(ctx context.Context, companyName string) (*Place, error) {
	var search findPlaceResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"input":     companyName,
			"inputtype": "textquery",
			"fields":    "place_id,name,formatted_address,geometry",
			"key":       c.apiKey,
		}).
		SetResult(&search).
		Get("/findplacefromtext/json")
	if err != nil {
		return nil, fmt.Errorf("find place: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("find place: status %d", res.StatusCode())
	}
	if len(search.Candidates) == 0 {
		return nil, nil
	}

	var details placeDetailsResponse
	res, err = c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"place_id": search.Candidates[0].PlaceID,
			"fields":   "name,formatted_address,address_components,geometry,types",
			"key":      c.apiKey,
		}).
		SetResult(&details).
		Get("/details/json")
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("place details: status %d", res.StatusCode())
	}

	return placeFromDetails(details), nil
}

// lastTwoParts keeps the trailing "City, Country" of a comma-separated
// formatted address.
func lastTwoParts(addr string) string {
	parts := strings.Split(addr, ",")
	if len(parts) < 2 {
		return strings.TrimSpace(addr)
	}
	tail := parts[len(parts)-2:]
	for i := range tail {
		tail[i] = strings.TrimSpace(tail[i])
	}
	return strings.Join(tail, ", ")
}

func placeFromDetails(details placeDetailsResponse) *Place {
	result := details.Result

	var city, country string
	for _, comp := range result.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				if city == "" {
					city = comp.LongName
				}
			case "country":
				if country == "" {
					country = comp.LongName
				}
			}
		}
	}

	place := &Place{}
	switch {
	case city != "" && country != "":
		place.Headquarters = city + ", " + country
	case result.FormattedAddress != "":
		place.Headquarters = lastTwoParts(result.FormattedAddress)
	}
	if result.FormattedAddress != "" {
		place.Addresses = []string{result.FormattedAddress}
	}
	if result.Geometry.Location.Lat != 0 || result.Geometry.Location.Lng != 0 {
		place.Coordinates = &company.Coordinates{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		}
	}
	return place
}
