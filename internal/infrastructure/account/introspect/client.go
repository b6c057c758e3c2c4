package introspect

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/user"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/cache"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/resilience"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

var errAuthTransient = crerr.New("auth introspection transient failure")

type ClientConfig struct {
	BaseURL        string
	IntrospectPath string
	// CacheTTL keeps verified principals for a short while so every request
	// does not pay an introspection round trip. Zero disables caching.
	CacheTTL time.Duration
	Circuit  resilience.CircuitBreakerConfig
}

// Client verifies bearer tokens against an OAuth-style introspection endpoint.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	principals    *cache.Store
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(httpClient *http.Client, cfg ClientConfig, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	client := &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		breaker:       resilience.NewCircuitBreakerFromConfig(cfg.Circuit),
		logger:        logger,
	}
	if cfg.CacheTTL > 0 {
		client.principals = cache.NewStore(cfg.CacheTTL)
	}
	return client
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	return cache.Load(ctx, c.principals, hashToken(token), func(ctx context.Context) (user.Principal, error) {
		return c.verify(ctx, token)
	})
}

func (c *Client) verify(ctx context.Context, token string) (user.Principal, error) {
	var principal user.Principal
	err := c.breaker.Guard(func() error {
		var err error
		principal, err = c.introspect(ctx, token)
		return err
	}, func(err error) bool { return crerr.Is(err, errAuthTransient) })
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		return user.Principal{}, fmt.Errorf("%w: auth circuit open", usecase.ErrDependencyUnavailable)
	}
	if crerr.Is(err, errAuthTransient) {
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	}
	return principal, err
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, crerr.Mark(crerr.Wrap(err, "request introspection"), errAuthTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, crerr.Mark(crerr.Wrap(err, "read introspect response"), errAuthTransient)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.logger.WarnContext(ctx, "auth introspection server error", "status_code", resp.StatusCode)
		return user.Principal{}, crerr.Mark(crerr.Newf("introspection failed with status %d", resp.StatusCode), errAuthTransient)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "auth introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("introspection failed with status %d", resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "principal:" + hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
