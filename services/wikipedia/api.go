package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/lazymap"

	"github.com/kiddy-universe/web-api/services/metrics"
)

const (
	urlFlag         = "wikipedia-api-url"
	userAgentFlag   = "wikipedia-user-agent"
	timeoutFlag     = "wikipedia-timeout"
	cacheExpireFlag = "wikipedia-cache-expire"
)

const (
	upstreamName = "wikipedia"
	Limit        = 5
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   urlFlag,
			Usage:  "wikipedia api url",
			Value:  "https://en.wikipedia.org/w/api.php",
			EnvVar: "WIKIPEDIA_API_URL",
		},
		cli.StringFlag{
			Name:   userAgentFlag,
			Usage:  "user agent sent to wikipedia",
			Value:  "KiddyUniverse/1.0 (https://github.com/kiddy-universe/web-api)",
			EnvVar: "WIKIPEDIA_USER_AGENT",
		},
		cli.DurationFlag{
			Name:   timeoutFlag,
			Usage:  "wikipedia request timeout",
			Value:  6 * time.Second,
			EnvVar: "WIKIPEDIA_TIMEOUT",
		},
		cli.DurationFlag{
			Name:   cacheExpireFlag,
			Usage:  "wikipedia search cache expiration",
			Value:  10 * time.Minute,
			EnvVar: "WIKIPEDIA_CACHE_EXPIRE",
		},
	)
}

type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

type Config struct {
	URL         string
	UserAgent   string
	Timeout     time.Duration
	CacheExpire time.Duration
}

type Api struct {
	url            string
	cl             *http.Client
	timeout        time.Duration
	prepareRequest func(r *http.Request) (*http.Request, error)
	cache          *lazymap.LazyMap[[]Result]
}

func New(c *cli.Context, cl *http.Client) *Api {
	api := NewApi(cl, &Config{
		URL:         c.String(urlFlag),
		UserAgent:   c.String(userAgentFlag),
		Timeout:     c.Duration(timeoutFlag),
		CacheExpire: c.Duration(cacheExpireFlag),
	})
	log.Infof("wikipedia api endpoint %v", api.url)
	return api
}

func NewApi(cl *http.Client, cfg *Config) *Api {
	ua := cfg.UserAgent
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		if ua != "" {
			r.Header.Set("User-Agent", ua)
		}
		r.Header.Set("Accept", "application/json")
		return r, nil
	}
	expire := cfg.CacheExpire
	if expire <= 0 {
		expire = time.Second
	}
	return &Api{
		url:            cfg.URL,
		cl:             cl,
		timeout:        cfg.Timeout,
		prepareRequest: prepareRequest,
		cache: lazymap.New[[]Result](&lazymap.Config{
			Expire:      expire,
			StoreErrors: true,
			ErrorExpire: 5 * time.Second,
		}),
	}
}

// Search returns up to Limit opensearch matches for query.
// Concurrent callers share one upstream call, so it is not bound
// to the cancellation of whichever caller started it.
func (api *Api) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	ctx = context.WithoutCancel(ctx)
	return api.cache.Get(query, func() ([]Result, error) {
		return api.search(ctx, query)
	})
}

func (api *Api) search(ctx context.Context, query string) (res []Result, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveUpstream(upstreamName, start, err)
	}()

	if api.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, api.timeout)
		defer cancel()
	}

	u, err := url.Parse(api.url)
	if err != nil {
		return nil, errors.Wrap(err, "parse url")
	}
	q := u.Query()
	q.Set("action", "opensearch")
	q.Set("search", query)
	q.Set("limit", fmt.Sprintf("%d", Limit))
	q.Set("namespace", "0")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req, err = api.prepareRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "prepare request")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	return parseOpenSearch(raw)
}

// parseOpenSearch reads [query, titles, descriptions, urls].
func parseOpenSearch(raw []json.RawMessage) ([]Result, error) {
	if len(raw) < 4 {
		return nil, errors.Errorf("unexpected opensearch response length %d", len(raw))
	}
	var titles, descs, links []string
	for i, dst := range []*[]string{&titles, &descs, &links} {
		if err := json.Unmarshal(raw[i+1], dst); err != nil {
			return nil, errors.Wrapf(err, "decode opensearch field %d", i+1)
		}
	}
	n := min(len(titles), len(links))
	res := make([]Result, 0, n)
	for i := 0; i < n; i++ {
		snippet := ""
		if i < len(descs) {
			snippet = descs[i]
		}
		res = append(res, Result{
			Title:   titles[i],
			Snippet: snippet,
			URL:     links[i],
		})
	}
	return res, nil
}
