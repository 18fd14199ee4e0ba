// README: HTTP client for the user collaborator service.
package userctx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("user not found")

// Provider is the user-context capability consumed by the chat pipeline.
type Provider interface {
	Fetch(ctx context.Context, userID, token string) (*Context, error)
	Bookings(ctx context.Context, userID, token string) ([]Booking, error)
}

// ServiceClient fetches user data from the user microservice.
type ServiceClient struct {
	http    *http.Client
	baseURL string
	log     *logrus.Entry
}

func NewServiceClient(baseURL string, log *logrus.Entry) *ServiceClient {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ServiceClient{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log,
	}
}

// profile mirrors the user service's document shape.
type profile struct {
	FirstName         string           `json:"firstName"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	TravelPreferences map[string]any   `json:"travelPreferences"`
	BookingHistory    []Booking        `json:"bookingHistory"`
	Favourites        []map[string]any `json:"favourites"`
}

// Fetch returns the user's profile with preferences, booking history, and
// favourites, or ErrNotFound when the service has no such user.
func (c *ServiceClient) Fetch(ctx context.Context, userID, token string) (*Context, error) {
	var p profile
	if err := c.get(ctx, "/api/users/"+userID, token, &p); err != nil {
		return nil, err
	}

	name := p.FirstName
	if name == "" {
		name = p.Name
	}
	return &Context{
		UserID:         userID,
		Name:           name,
		Email:          p.Email,
		Preferences:    p.TravelPreferences,
		BookingHistory: p.BookingHistory,
		Favourites:     p.Favourites,
	}, nil
}

// Bookings returns the user's booking history.
func (c *ServiceClient) Bookings(ctx context.Context, userID, token string) ([]Booking, error) {
	var bookings []Booking
	if err := c.get(ctx, "/api/users/"+userID+"/bookings", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *ServiceClient) get(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("user service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("user service: status %d", resp.StatusCode)
	}

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("user service: decode response: %w", err)
	}
	if !env.Success {
		return ErrNotFound
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
