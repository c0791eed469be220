package activities

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
	"time"

	"activityBoard/internal/models"
	"activityBoard/internal/observability"
)

// ErrUnavailable marks calls that never produced a usable response:
// transport failures and bodies that could not be decoded.
var ErrUnavailable = errors.New("activities api unavailable")

// APIError is a non-2xx answer from the activities API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("activities api returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("activities api returned status %d: %s", e.StatusCode, e.Detail)
}

type Client struct {
	baseURL   string
	hc        *http.Client
	cacheBust bool
	now       func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithCacheBust appends t=<unix millis> to roster reads.
func WithCacheBust(enabled bool) Option {
	return func(c *Client) {
		c.cacheBust = enabled
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		hc:        http.DefaultClient,
		cacheBust: true,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type messageBody struct {
	Message string `json:"message"`
}

type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

// List fetches the current roster.
func (c *Client) List(ctx context.Context) (models.Roster, error) {
	const op = "client.activities.List"

	target := c.baseURL + "/activities"
	if c.cacheBust {
		target += "?t=" + strconv.FormatInt(c.now().UnixMilli(), 10)
	}

	var roster models.Roster
	if err := c.do(ctx, "list", http.MethodGet, target, &roster, true); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if roster == nil {
		roster = models.Roster{}
	}

	return roster, nil
}

// Signup registers email for activity and returns the server's message.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	const op = "client.activities.Signup"

	var body messageBody
	if err := c.do(ctx, "signup", http.MethodPost, c.participantURL(activity, "signup", email), &body, true); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return body.Message, nil
}

// Unregister removes email from activity. An empty success body is accepted.
func (c *Client) Unregister(ctx context.Context, activity, email string) (string, error) {
	const op = "client.activities.Unregister"

	var body messageBody
	if err := c.do(ctx, "unregister", http.MethodDelete, c.participantURL(activity, "unregister", email), &body, false); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return body.Message, nil
}

func (c *Client) participantURL(activity, action, email string) string {
	q := url.Values{}
	q.Set("email", email)

	return c.baseURL + "/activities/" + url.PathEscape(activity) + "/" + action + "?" + q.Encode()
}

// do issues one request. Non-2xx answers with a JSON body become *APIError;
// everything that prevents reading an answer becomes ErrUnavailable.
func (c *Client) do(ctx context.Context, operation, method, target string, out any, bodyRequired bool) error {
	started := time.Now()
	outcome := observability.OutcomeOK

	defer func() {
		observability.RecordUpstream(operation, outcome, time.Since(started))
	}()

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		outcome = observability.OutcomeUnavailable
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		outcome = observability.OutcomeUnavailable
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = observability.OutcomeUnavailable
		return fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if !json.Valid(raw) {
			outcome = observability.OutcomeUnavailable
			return fmt.Errorf("%w: status %d with undecodable body", ErrUnavailable, resp.StatusCode)
		}

		outcome = observability.OutcomeRejected
		return &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(raw)}
	}

	if len(strings.TrimSpace(string(raw))) == 0 && !bodyRequired {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		outcome = observability.OutcomeUnavailable
		return fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	return nil
}

// parseDetail extracts a string "detail" field; anything else yields "".
func parseDetail(raw []byte) string {
	var body detailBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}

	return detail
}
