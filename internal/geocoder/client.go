// Package geocoder implements the lookup boundary against the Nominatim
// search API: free text in, candidate places out.
// API docs: https://nominatim.org/release-docs/develop/api/Search/
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// DefaultBaseURL is the public Nominatim search endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org/search"

// userAgent identifies this application to Nominatim, per its usage policy.
const userAgent = "footprints-backend/1.0"

// Client queries a Nominatim-compatible search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a Client for the given base URL. An empty baseURL
// selects the public Nominatim endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// searchResult is the subset of a Nominatim jsonv2 search hit this client reads.
// Lat/lon arrive as strings.
type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		State       string `json:"state"`
		StateCode   string `json:"state_code"`
		Province    string `json:"province"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// Search looks up free text and returns candidate places.
// Hits without a country code or with non-finite coordinates are dropped.
// Non-2xx responses and malformed bodies return an error; callers are
// expected to degrade that to an empty result set, never a crash.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Candidate{}, nil
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("geocoder.Search: parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("limit", "8")
	// Ask for English names so the normalization tables apply.
	q.Set("accept-language", "en")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder.Search: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder.Search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder.Search: status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoder.Search: decode response: %w", err)
	}

	candidates := []domain.Candidate{}
	for _, r := range results {
		iso2 := strings.ToUpper(strings.TrimSpace(r.Address.CountryCode))
		if iso2 == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil || !finite(lat) || !finite(lon) {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lon:         lon,
			CountryISO2: iso2,
			Admin1:      admin1For(iso2, r),
		})
	}
	return candidates, nil
}

var twoLetters = regexp.MustCompile(`^[A-Z]{2}$`)

// admin1For extracts the first-level division from a search hit.
// US hits prefer the two-letter state code when the API returns one, falling
// back to the state name; CN hits take state or province; everything else has
// no admin1 — only the CN and US views need it.
func admin1For(iso2 string, r searchResult) string {
	switch iso2 {
	case "US":
		code := strings.ToUpper(strings.TrimSpace(r.Address.StateCode))
		if twoLetters.MatchString(code) {
			return code
		}
		return strings.TrimSpace(r.Address.State)
	case "CN":
		if s := strings.TrimSpace(r.Address.State); s != "" {
			return s
		}
		return strings.TrimSpace(r.Address.Province)
	}
	return ""
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
