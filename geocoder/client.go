package geocoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrGeocodingFailed covers every way a lookup can come back useless:
// provider unreachable, timeout, non-200, empty match list, malformed pos.
var ErrGeocodingFailed = errors.New("geocoding failed")

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Fetch(address string) (latitude, longitude float64, err error)
}

// Client talks to the Yandex geocode-maps HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Fetch returns the coordinates of the most relevant match for the address.
// One retry on transport errors only; an empty match list is a data problem,
// not a transient failure, and is never retried.
func (c *Client) Fetch(address string) (float64, float64, error) {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("geocode", address)
	query.Set("format", "json")
	requestURL := c.baseURL + "/?" + query.Encode()

	resp, err := c.http.Get(requestURL)
	if err != nil {
		resp, err = c.http.Get(requestURL)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("%w: provider returned status %d", ErrGeocodingFailed, resp.StatusCode)
	}

	var payload yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return 0, 0, fmt.Errorf("%w: no match for address", ErrGeocodingFailed)
	}

	// Matches are ranked by relevance; the first one wins. Pos is "lon lat".
	return parsePos(members[0].GeoObject.Point.Pos)
}

func parsePos(pos string) (float64, float64, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: malformed pos %q", ErrGeocodingFailed, pos)
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed pos %q", ErrGeocodingFailed, pos)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed pos %q", ErrGeocodingFailed, pos)
	}
	return lat, lon, nil
}
