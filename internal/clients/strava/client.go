package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"league-server/internal/config"
	"league-server/internal/observability"

	"golang.org/x/oauth2"
)

var (
	ErrNotFound     = errors.New("strava resource not found")
	ErrUnauthorized = errors.New("strava rejected credentials")
)

// Client calls the provider REST API. Requests use the transport default
// timeout.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	oauthConfig  *oauth2.Config
	logger       *observability.Logger
	httpClient   *http.Client
}

func NewClient(cfg config.StravaConfig, logger *observability.Logger) *Client {
	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		logger:     logger,
		httpClient: &http.Client{},
	}
}

// RefreshToken exchanges the refresh token when tok has expired
func (c *Client) RefreshToken(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
	if tok.Valid() {
		return tok, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	refreshed, err := c.oauthConfig.TokenSource(ctx, tok).Token()
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to refresh strava token", err)
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil &&
			(retrieveErr.Response.StatusCode == http.StatusBadRequest || retrieveErr.Response.StatusCode == http.StatusUnauthorized) {
			return nil, fmt.Errorf("failed to refresh token: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	return refreshed, nil
}

// GetActivity fetches an activity including every segment effort
func (c *Client) GetActivity(ctx context.Context, accessToken string, activityID int64) (Activity, error) {
	endpoint := fmt.Sprintf("%s/activities/%d?include_all_efforts=true", c.baseURL, activityID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var activity Activity
	if err := c.do(ctx, req, &activity); err != nil {
		return Activity{}, fmt.Errorf("failed to get activity %d: %w", activityID, err)
	}
	return activity, nil
}

// ListSubscriptions returns the push subscriptions of the application
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	q := c.credentials()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/push_subscriptions?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var subs []Subscription
	if err := c.do(ctx, req, &subs); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// CreateSubscription registers the callback. The provider validates it with
// a handshake request before answering.
func (c *Client) CreateSubscription(ctx context.Context, callbackURL, verifyToken string) (Subscription, error) {
	form := c.credentials()
	form.Set("callback_url", callbackURL)
	form.Set("verify_token", verifyToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/push_subscriptions", strings.NewReader(form.Encode()))
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var sub Subscription
	if err := c.do(ctx, req, &sub); err != nil {
		return Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}
	sub.CallbackURL = callbackURL
	return sub, nil
}

// DeleteSubscription removes a push subscription
func (c *Client) DeleteSubscription(ctx context.Context, id int64) error {
	q := c.credentials()
	endpoint := c.baseURL + "/push_subscriptions/" + strconv.FormatInt(id, 10) + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.do(ctx, req, nil); err != nil {
		return fmt.Errorf("failed to delete subscription %d: %w", id, err)
	}
	return nil
}

func (c *Client) credentials() url.Values {
	v := url.Values{}
	v.Set("client_id", c.clientID)
	v.Set("client_secret", c.clientSecret)
	return v
}

// do sends req and decodes a JSON response into out when out is non-nil
func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to make request", err)
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to read response body", err)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.InfoWithError(ctx, "failed to unmarshal response body", err)
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}
	return nil
}

func statusError(status int, body []byte) error {
	var apiErr apiError
	message := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		message = apiErr.Message
		for _, e := range apiErr.Errors {
			message += fmt.Sprintf(" (%s %s %s)", e.Resource, e.Field, e.Code)
		}
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, message)
	}
}
