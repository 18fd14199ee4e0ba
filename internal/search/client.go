// README: HTTP clients for the flight/hotel/car collaborator services.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tripagent/internal/intent"
)

// collaboratorTimeout bounds every outbound search call. A timeout is
// treated like any other failure: the turn degrades to "no results".
const collaboratorTimeout = 10 * time.Second

// Searcher is the collaborator search capability consumed by the pipeline.
type Searcher interface {
	Search(ctx context.Context, kind intent.Kind, params intent.Params) ([]Result, error)
}

// ServiceClient talks to the per-domain microservices over HTTP.
type ServiceClient struct {
	http      *http.Client
	flightURL string
	hotelURL  string
	carURL    string
	log       *logrus.Entry
}

func NewServiceClient(flightURL, hotelURL, carURL string, log *logrus.Entry) *ServiceClient {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ServiceClient{
		http:      &http.Client{Timeout: collaboratorTimeout},
		flightURL: strings.TrimSuffix(flightURL, "/"),
		hotelURL:  strings.TrimSuffix(hotelURL, "/"),
		carURL:    strings.TrimSuffix(carURL, "/"),
		log:       log,
	}
}

// envelope is the {success, data} wrapper every collaborator responds with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Search queries the service for the given kind. The car service does not
// understand a make parameter, so it is stripped from the query and applied
// as a company filter on the response instead.
func (c *ServiceClient) Search(ctx context.Context, kind intent.Kind, params intent.Params) ([]Result, error) {
	query := params.Query()

	var base string
	switch kind {
	case intent.KindFlights:
		base = c.flightURL + "/api/flights"
	case intent.KindHotels:
		base = c.hotelURL + "/api/hotels"
	case intent.KindCars:
		base = c.carURL + "/api/cars"
		query.Del("make")
	default:
		return nil, fmt.Errorf("search: unknown kind %q", kind)
	}

	results, err := c.get(ctx, base, query, string(kind))
	if err != nil {
		return nil, err
	}

	if kind == intent.KindCars && params.Make != "" {
		results = filterByCompany(results, params.Make)
		c.log.WithFields(logrus.Fields{"make": params.Make, "kept": len(results)}).
			Debug("filtered cars by make")
	}
	return results, nil
}

func (c *ServiceClient) get(ctx context.Context, base string, query url.Values, listKey string) ([]Result, error) {
	u := base
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search: %s returned status %d", base, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("search: decode response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("search: service reported failure: %s", env.Message)
	}
	return decodeResults(env.Data, listKey)
}

// decodeResults accepts both response shapes the services emit: a bare list
// and a paginated object keyed by the kind ({"flights": [...]}).
func decodeResults(data json.RawMessage, listKey string) ([]Result, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var list []Result
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var paged map[string]json.RawMessage
	if err := json.Unmarshal(data, &paged); err != nil {
		return nil, fmt.Errorf("search: unexpected data shape: %w", err)
	}
	inner, ok := paged[listKey]
	if !ok {
		return nil, nil
	}
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, fmt.Errorf("search: unexpected %s shape: %w", listKey, err)
	}
	return list, nil
}

func filterByCompany(items []Result, brand string) []Result {
	want := strings.ToLower(strings.TrimSpace(brand))
	var kept []Result
	for _, item := range items {
		if strings.ToLower(strings.TrimSpace(item.Company())) == want {
			kept = append(kept, item)
		}
	}
	return kept
}
