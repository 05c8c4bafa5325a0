// Package client is the programmatic counterpart of the booking front end:
// it drives the booking flow (seat grid, draft, pre-submission validation)
// and talks to the booking API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Surendar2005/BookMyShow/internal/dto/request"
	"github.com/Surendar2005/BookMyShow/internal/dto/response"
	"github.com/Surendar2005/BookMyShow/pkg/utils"
)

// Client is a thin HTTP client for the booking API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL()
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// DefaultBaseURL targets the relative /api path in a production build and
// the local development service otherwise
func DefaultBaseURL() string {
	if os.Getenv("APP_ENV") == "production" {
		return "/api"
	}
	return "http://localhost:5000/api"
}

// CreateBooking submits a booking and returns the confirmation
func (c *Client) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build booking request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp, "Failed to create booking")
	}

	var created response.CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode booking response: %w", err)
	}

	return &created, nil
}

// ListBookings fetches all persisted bookings, newest first
func (c *Client) ListBookings(ctx context.Context) ([]response.BookingRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bookings", nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp, "Failed to load bookings")
	}

	var bookings []response.BookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

// decodeAPIError surfaces the service's error message when one is present
// and falls back to a generic message otherwise
func decodeAPIError(resp *http.Response, fallback string) error {
	var apiErr utils.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("%s", apiErr.Message)
	}
	return fmt.Errorf("%s (status %d)", fallback, resp.StatusCode)
}
