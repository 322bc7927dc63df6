package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"sportsref/lib/restyutil"
	"sportsref/lib/timezone"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrape")

// PageCache stores fetched pages so repeat runs don't hammer the
// sites, which rate limit aggressively. implementations live outside
// this package; a nil cache disables caching.
type PageCache interface {
	Get(ctx context.Context, url string) (content string, ok bool, err error)
	Put(ctx context.Context, url, content string, expires time.Time) error
}

type ClientOptions struct {
	BaseUrl string
	// overrides the default browser user agent
	UserAgent string
	// nil disables page caching
	Cache PageCache
	// how long cached pages stay fresh, defaults to 24h
	CacheTTL time.Duration
	// receives request/response transcripts when debug logging is on
	Output restyutil.InstrumentOutput
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	cache PageCache
	ttl   time.Duration
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

const retryBaseWait = time.Second * 2
const retryMaxWait = time.Second * 60

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	client.SetRetryCount(3)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return res.StatusCode() == http.StatusTooManyRequests ||
			res.StatusCode() >= http.StatusInternalServerError
	})
	client.SetRetryAfter(retryAfter)

	restyutil.InstrumentClient(client, tracer, opts.Output)

	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = time.Hour * 24
	}
	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
		cache:   opts.Cache,
		ttl:     ttl,
	}, nil
}

// exponential backoff with jitter, stretched to whatever the site asks
// for when it sends a Retry-After
func retryAfter(cli *resty.Client, res *resty.Response) (time.Duration, error) {
	attempt := res.Request.Attempt
	if attempt < 1 {
		attempt = 1
	}

	wait := retryBaseWait << (attempt - 1)
	if wait > retryMaxWait {
		wait = retryMaxWait
	}
	wait += time.Duration(rand.Int63n(int64(wait) / 2))

	if hinted := parseRetryAfter(res.Header().Get("Retry-After")); hinted > wait {
		wait = hinted
	}
	return wait, nil
}

// Retry-After arrives either as delay seconds or as an HTTP date
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		return time.Until(at)
	}
	return 0
}

// Page returns the raw HTML of the page at path, consulting the cache
// first when one is configured. cache failures degrade to a refetch.
func (c *Client) Page(ctx context.Context, path string) (string, error) {
	ctx, span := tracer.Start(ctx, "Page")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	pageUrl := c.Http.BaseURL + path

	if c.cache != nil {
		content, ok, err := c.cache.Get(ctx, pageUrl)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "page cache read failed", "url", pageUrl, "err", err)
		}
		if ok {
			span.SetAttributes(attribute.Bool("cached", true))
			return content, nil
		}
	}

	res, err := c.Http.R().SetContext(ctx).Get(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return "", err
	}
	if res.StatusCode() != http.StatusOK {
		err := fmt.Errorf("GET %s: status %d", pageUrl, res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return "", err
	}

	content := res.String()
	if c.cache != nil {
		err := c.cache.Put(ctx, pageUrl, content, timezone.Now().Add(c.ttl))
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "page cache write failed", "url", pageUrl, "err", err)
		}
	}
	return content, nil
}

// Document fetches a page and parses it with comment-hidden tables
// revealed.
func (c *Client) Document(ctx context.Context, path string) (*goquery.Document, error) {
	page, err := c.Page(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(page)
}
