package statsfeed

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	concpool "github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/resilience"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

const (
	defaultBaseURL        = "https://api-web.nhle.com/v1"
	defaultBoxScoreWorker = 4
	maxResponseBytes      = 6 << 20
)

var errFeedTransient = crerr.New("stats feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Workers        int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the daily schedule and per-game box scores from the stats
// provider and maps them onto usecase.DayFeed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	retry      resilience.RetryPolicy
	workers    int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultBoxScoreWorker
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("stats feed circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		retry:      resilience.RetryPolicy{MaxRetries: max(cfg.MaxRetries, 0), Backoff: backoff},
		workers:    workers,
		logger:     logger,
		breaker:    breaker,
	}
}

// FetchDay loads the schedule for date and then every game's box score in
// parallel. Games that have not started have no box score yet.
func (c *Client) FetchDay(ctx context.Context, date time.Time) (usecase.DayFeed, error) {
	day := date.UTC().Format(time.DateOnly)

	var schedule scheduleEnvelope
	if err := c.doJSON(ctx, "/schedule/"+day, &schedule); err != nil {
		return usecase.DayFeed{}, fmt.Errorf("fetch schedule date=%s: %w", day, err)
	}

	feed := usecase.DayFeed{Games: make([]game.Game, 0, len(schedule.Games))}
	withStats := make([]string, 0, len(schedule.Games))
	for _, item := range schedule.Games {
		g, ok := item.toGame(date)
		if !ok {
			continue
		}
		feed.Games = append(feed.Games, g)
		if hasBoxScore(g.Status) {
			withStats = append(withStats, g.ID)
		}
	}
	if len(withStats) == 0 {
		return feed, nil
	}

	p := concpool.NewWithResults[boxScoreEnvelope]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(c.workers)
	for _, gameID := range withStats {
		p.Go(func(ctx context.Context) (boxScoreEnvelope, error) {
			var box boxScoreEnvelope
			if err := c.doJSON(ctx, "/gamecenter/"+url.PathEscape(gameID)+"/boxscore", &box); err != nil {
				return boxScoreEnvelope{}, fmt.Errorf("fetch box score game_id=%s: %w", gameID, err)
			}
			box.GameID = gameID
			return box, nil
		})
	}
	boxes, err := p.Wait()
	if err != nil {
		return usecase.DayFeed{}, err
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].GameID < boxes[j].GameID })

	for _, box := range boxes {
		players, stats := box.flatten(date)
		feed.Players = append(feed.Players, players...)
		feed.Stats = append(feed.Stats, stats...)
	}
	return feed, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path
	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		var body []byte
		err := c.breaker.Guard(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		return body, err
	})
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "stats feed circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: stats provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var raw []byte
	err := resilience.Retry(ctx, c.retry, isCircuitFailure, func(ctx context.Context) error {
		body, err := c.get(ctx, fullURL)
		if err != nil {
			return err
		}
		raw = body
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "stats feed request failed", "url", fullURL, "error", err)
		return nil, err
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if c.token != "" {
		req.Header.Set("authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %s", errFeedTransient, c.redact(err.Error()))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errFeedTransient, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return append([]byte(nil), buf.B...), nil
	}
	if isRetryableStatus(resp.StatusCode) {
		return nil, fmt.Errorf("%w: provider status=%d body=%s", errFeedTransient, resp.StatusCode, abbreviateBody(buf.B))
	}
	return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
}

func (c *Client) redact(value string) string {
	value = strings.TrimSpace(value)
	if c.token == "" {
		return value
	}
	return strings.ReplaceAll(value, c.token, "REDACTED")
}

func isCircuitFailure(err error) bool {
	return err != nil && stderrors.Is(err, errFeedTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
