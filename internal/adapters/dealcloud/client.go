package dealcloud

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	"github.com/dealdesk/dcverify/internal/core/ports"
	"github.com/dealdesk/dcverify/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	tokenPath      = "/api/rest/v1/oauth/token"
	entryTypesPath = "/api/rest/v4/schema/entrytypes"

	defaultTimeoutSeconds   = 30
	defaultRequestsPerSec   = 5
	tokenExpirySafetyWindow = 30 * time.Second
)

// Config carries the DealCloud connection settings. Credentials follow the
// same contract as the rest of the pipeline tooling: site URL, client id and
// client secret, typically supplied via DCVERIFY_DEALCLOUD_* env variables.
type Config struct {
	SiteURL           string  `mapstructure:"site_url" yaml:"site_url" validate:"required,url"`
	ClientID          string  `mapstructure:"client_id" yaml:"client_id" validate:"required"`
	ClientSecret      string  `mapstructure:"client_secret" yaml:"client_secret" validate:"required"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
}

// Client is a minimal DealCloud schema API client: client-credentials token
// auth, a conservative rate limit, and JSON decoding. It deliberately has no
// retry logic; a failed call is a terminal connection error for the run.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       ports.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config, logger ports.Logger) (*Client, error) {
	var missing []string
	if cfg.SiteURL == "" {
		missing = append(missing, "site_url")
	}
	if cfg.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if cfg.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if len(missing) > 0 {
		return nil, errors.NewUserFacing(errors.CodeCredentialsMissing,
			fmt.Sprintf("missing DealCloud credentials: %s", strings.Join(missing, ", ")),
			"Set them in the config file or as DCVERIFY_DEALCLOUD_* environment variables.")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSec
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.SiteURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:      rate.NewLimiter(rate.Limit(rps), 1),
		logger:       logger,
	}, nil
}

// ListObjects fetches every entry type defined on the site.
func (c *Client) ListObjects(ctx context.Context) ([]objectEntry, error) {
	var objects []objectEntry
	if err := c.getJSON(ctx, entryTypesPath, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

// ListFields fetches the field definitions of one entry type.
func (c *Client) ListFields(ctx context.Context, objectID int) ([]fieldEntry, error) {
	var fields []fieldEntry
	path := fmt.Sprintf("%s/%d/fields", entryTypesPath, objectID)
	if err := c.getJSON(ctx, path, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, errors.CodePlatformAPIError, "rate limiter interrupted")
	}

	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapUserFacing(err, errors.CodePlatformAPIError,
			fmt.Sprintf("request to %s failed", path),
			"Check the DealCloud site URL and your network connectivity.")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, errors.CodePlatformAPIError, "failed to read response body")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.NewUserFacing(errors.CodePlatformAuthError,
			fmt.Sprintf("DealCloud rejected the request to %s (HTTP %d)", path, resp.StatusCode),
			"Verify the client id and client secret have schema read access.")
	case resp.StatusCode != http.StatusOK:
		msg := apiErrorMessage(body)
		return errors.Newf(errors.CodePlatformAPIError,
			"DealCloud returned HTTP %d for %s: %s", resp.StatusCode, path, msg)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, errors.CodePlatformAPIError,
			fmt.Sprintf("failed to decode response from %s", path))
	}
	return nil
}

// ensureToken returns a valid access token, requesting a new one when the
// cached token is absent or about to expire.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "data")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to build token request")
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WrapUserFacing(err, errors.CodePlatformAPIError,
			"could not reach the DealCloud token endpoint",
			"Check the DealCloud site URL and your network connectivity.")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.CodePlatformAPIError, "failed to read token response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewUserFacing(errors.CodePlatformAuthError,
			fmt.Sprintf("authentication failed (HTTP %d): %s", resp.StatusCode, apiErrorMessage(body)),
			"Check the DealCloud client id and client secret.")
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", errors.Wrap(err, errors.CodePlatformAuthError, "failed to decode token response")
	}
	if token.AccessToken == "" {
		return "", errors.New(errors.CodePlatformAuthError, "token response contained no access token")
	}

	c.token = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second).Add(-tokenExpirySafetyWindow)
	c.logger.Debugf(ctx, "Acquired DealCloud access token (expires in %ds)", token.ExpiresIn)
	return c.token, nil
}

func apiErrorMessage(body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Error != "" {
			return apiErr.Error
		}
	}
	const maxLen = 200
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	if msg == "" {
		msg = "(empty body)"
	}
	return msg
}
