// Package remote retrieves the page that publishes the reference dictionary.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"resty.dev/v3"
)

// ExampleURL is a page in the shape the extractors understand.
const ExampleURL = "https://github.com/FengYouJun520/flypy_user/blob/main/flypy_user.txt"

var ErrRemoteUnavailable = errors.New("remote dictionary is unavailable")

// UnavailableError is returned when the page cannot be retrieved.
// StatusCode is zero when the request failed before a response arrived.
type UnavailableError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request %s: status code %d", e.URL, e.StatusCode)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

type Options struct {
	// Timeout of zero leaves the transport default in place.
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(opts Options) *Client {
	client := resty.New()
	client.SetRetryCount(0)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Fetch issues a single GET request and returns the response body.
func (client *Client) Fetch(ctx context.Context, url string) (string, error) {
	slog.Default().Debug("fetch remote dictionary", "url", url)

	response, err := client.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", &UnavailableError{URL: url, Err: fmt.Errorf("httpClient.Get > %w", err)}
	}
	if response.StatusCode() != http.StatusOK {
		return "", &UnavailableError{URL: url, StatusCode: response.StatusCode()}
	}
	return response.String(), nil
}
