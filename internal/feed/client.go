// Package feed fetches the public activity feed of a GitHub instance
// and forwards its events as decoded activity.Event values.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/simplesurance/ghactivity/internal/apierr"
)

const DefaultHTTPClientTimeout = time.Minute
const DefaultBaseURL = "https://api.github.com"

const clientLoggerName = "feed_client"

// NewClient returns a client for the events endpoint of the GitHub
// REST API.
// If apiToken is empty, requests are sent unauthenticated.
func NewClient(apiToken string, opts ...ClientOption) *Client {
	clt := Client{
		httpClient: newHTTPClient(apiToken),
		baseURL:    DefaultBaseURL,
	}

	for _, o := range opts {
		o(&clt)
	}

	if clt.logger == nil {
		clt.logger = zap.L().Named(clientLoggerName)
	}

	return &clt
}

type ClientOption func(*Client)

// WithBaseURL overrides the API base URL, e.g. for a GitHub Enterprise
// instance.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func newHTTPClient(apiToken string) *http.Client {
	if apiToken == "" {
		return &http.Client{
			Timeout: DefaultHTTPClientTimeout,
		}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: apiToken},
	)

	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = DefaultHTTPClientTimeout

	return tc
}

// Client fetches pages of raw event mappings from the activity-feed
// endpoint.
// Methods return an apierr.RetryableError when an operation can be
// retried, e.g. when the API ratelimit is exceeded.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// ListOptions control a single ListEvents call.
type ListOptions struct {
	Page    int
	PerPage int
	// ETag enables a conditional request, when the feed did not
	// change since the response that returned the ETag the server
	// answers with 304 and the request is not counted against the
	// ratelimit.
	ETag string
}

// ListResponse describes the feed metadata of a ListEvents response.
type ListResponse struct {
	// ETag of the response, to be passed in the next ListOptions.
	ETag string
	// PollInterval advertised by the server via the X-Poll-Interval
	// header, 0 when the header is missing.
	PollInterval time.Duration
	// NextPage is 0 when the last page was fetched.
	NextPage int
	// NotModified is true when the server answered a conditional
	// request with 304, no events are returned then.
	NotModified bool
}

// ListEvents fetches one page of the activity feed and returns its
// events as raw mappings, newest first.
// The mappings are suitable as input for activity.Decode.
func (clt *Client) ListEvents(ctx context.Context, opts *ListOptions) ([]map[string]any, *ListResponse, error) {
	if opts == nil {
		opts = &ListOptions{}
	}

	req, err := clt.newListRequest(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	resp, err := clt.httpClient.Do(req)
	if err != nil {
		return nil, nil, apierr.NewRetryableAnytimeError(err)
	}

	defer resp.Body.Close()

	listResp := ListResponse{
		ETag:         resp.Header.Get("ETag"),
		PollInterval: pollInterval(resp),
		NextPage:     nextPage(resp),
	}

	switch {
	case resp.StatusCode == http.StatusNotModified:
		listResp.NotModified = true
		// 304 responses repeat no ETag, keep the one we sent
		if listResp.ETag == "" {
			listResp.ETag = opts.ETag
		}

		return nil, &listResp, nil

	case resp.StatusCode == http.StatusOK:
		var events []map[string]any

		if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
			return nil, nil, fmt.Errorf("decoding events response body failed: %w", err)
		}

		return events, &listResp, nil

	default:
		return nil, nil, clt.wrapRetryableErrors(resp)
	}
}

func (clt *Client) newListRequest(ctx context.Context, opts *ListOptions) (*http.Request, error) {
	u, err := url.Parse(clt.baseURL + "/events")
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	query := u.Query()

	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}

	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	if opts.ETag != "" {
		req.Header.Set("If-None-Match", opts.ETag)
	}

	return req, nil
}

// wrapRetryableErrors converts an unsuccessful http response into an
// error, wrapping it into an apierr.RetryableError when the request
// can be repeated.
func (clt *Client) wrapRetryableErrors(resp *http.Response) error {
	err := fmt.Errorf("fetching events failed: %s returned status %d", resp.Request.URL, resp.StatusCode)

	if isRateLimited(resp) {
		reset := rateLimitResetTime(resp)

		clt.logger.Info(
			"api rate limit exceeded",
			zap.String("event", "github_api_rate_limit_exceeded"),
			zap.Time("github_api_rate_limit_reset_time", reset),
		)

		return apierr.NewRetryableError(err, reset)
	}

	if resp.StatusCode >= 500 && resp.StatusCode < 600 {
		return apierr.NewRetryableAnytimeError(err)
	}

	return err
}

func isRateLimited(resp *http.Response) bool {
	if resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusTooManyRequests {
		return false
	}

	return resp.Header.Get("X-RateLimit-Remaining") == "0"
}

func rateLimitResetTime(resp *http.Response) time.Time {
	unix, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(unix, 0)
}

func pollInterval(resp *http.Response) time.Duration {
	secs, err := strconv.Atoi(resp.Header.Get("X-Poll-Interval"))
	if err != nil || secs <= 0 {
		return 0
	}

	return time.Duration(secs) * time.Second
}

var linkNextRe = regexp.MustCompile(`<([^>]+)>\s*;\s*rel="next"`)

// nextPage extracts the page number of the next feed page from the
// Link response header.
func nextPage(resp *http.Response) int {
	matches := linkNextRe.FindStringSubmatch(resp.Header.Get("Link"))
	if len(matches) != 2 {
		return 0
	}

	u, err := url.Parse(matches[1])
	if err != nil {
		return 0
	}

	page, err := strconv.Atoi(u.Query().Get("page"))
	if err != nil {
		return 0
	}

	return page
}
