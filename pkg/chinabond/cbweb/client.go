// Package cbweb provides a chinabond.Client implementation backed by the
// public yield.chinabond.com.cn query endpoint.
package cbweb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bonddata/pkg/chinabond"
	"bonddata/pkg/domain"
	"bonddata/pkg/serrors"
)

// DefaultBaseURL is the production ChinaBond web endpoint.
const DefaultBaseURL = "https://yield.chinabond.com.cn"

// defaultUserAgent is sent when Options.UserAgent is empty. The endpoint
// rejects requests without a browser-like agent.
const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

// ycDefIDs maps curve names to the ycDefId identifiers the endpoint keys its
// curve definitions by.
var ycDefIDs = map[domain.CurveName]string{ //nolint: gochecknoglobals
	domain.CurveTreasury: "2c9081e50a2f9606010a3068cae70001",
	domain.CurveMTNAAA:   "2c908188138b62cd01139a2ee6b40787",
	domain.CurveBankAAA:  "2c9081e91dadc4c6011dbe8239a70829",
}

// Options configure the endpoint the client talks to.
type Options struct {
	// BaseURL overrides the endpoint base, mainly for tests. Defaults to
	// DefaultBaseURL.
	BaseURL string
	// UserAgent overrides the User-Agent header sent with every request.
	UserAgent string
}

// Client talks to the ChinaBond web API and fulfills the chinabond.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the endpoint
	baseURL    string
	userAgent  string
}

// New constructs a Client that uses the provided http.Client to query the
// ChinaBond endpoint.
func New(httpClient *http.Client, opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// Ensure Client conforms to the chinabond.Client interface at compile time.
var _ chinabond.Client = (*Client)(nil)

// dayCurve mirrors one element of the endpoint's response: a curve snapshot
// for a single working day. seriesData pairs are [termYears, yieldPercent];
// the yield may be null for tenors the curve does not publish.
type dayCurve struct {
	YcDefID    string       `json:"ycDefId"`
	YcDefName  string       `json:"ycDefName"`
	Worktime   string       `json:"worktime"`
	SeriesData [][]*float64 `json:"seriesData"`
}

// Yields fetches the curve day by day over the inclusive [start, end] range.
// The endpoint only answers one working day per request, so a range of N days
// issues N requests; days without trading return an empty snapshot and are
// skipped.
func (c *Client) Yields(ctx context.Context,
	curve domain.CurveName,
	start, end time.Time) ([]domain.Yield, error) {
	id, ok := ycDefIDs[curve]
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown curve: %s", curve)
	}

	var out []domain.Yield
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		yields, err := c.fetchDay(ctx, curve, id, day)
		if err != nil {
			return nil, fmt.Errorf("could not fetch %s: %w", day.Format(domain.MetadataDateFormat), err)
		}

		out = append(out, yields...)
	}

	return out, nil
}

// fetchDay queries the snapshot for a single working day and converts the
// published tenors into domain observations.
func (c *Client) fetchDay(ctx context.Context,
	curve domain.CurveName,
	ycDefID string,
	day time.Time) ([]domain.Yield, error) {
	q := url.Values{}
	q.Set("ycDefIds", ycDefID)
	q.Set("zblx", "txy")
	q.Set("workTime", day.Format(domain.MetadataDateFormat))
	q.Set("dxbj", "0")
	q.Set("qxlx", "0,")
	q.Set("yqqxN", "N")
	q.Set("yqqxK", "K")
	q.Set("wrjxCBFlag", "0")
	q.Set("locale", "zh_CN")

	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet,
		c.baseURL+"/cbweb-mn/yc/searchYc?"+q.Encode(),
		nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", c.baseURL+"/")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"query failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var days []dayCurve
	if err := json.Unmarshal(b, &days); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	var out []domain.Yield
	for _, d := range days {
		date, err := time.ParseInLocation(domain.MetadataDateFormat, d.Worktime, time.UTC)
		if err != nil {
			// non-trading days come back with an empty worktime
			continue
		}

		for _, pair := range d.SeriesData {
			if len(pair) < 2 || pair[0] == nil || pair[1] == nil {
				continue
			}
			term, ok := domain.TermFromYears(*pair[0])
			if !ok {
				// the endpoint publishes more tenors than we serve
				continue
			}

			out = append(out, domain.Yield{
				CurveName: curve,
				Term:      term,
				Date:      date,
				Value:     *pair[1],
			})
		}
	}

	return out, nil
}
