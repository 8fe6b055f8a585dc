package cbweb_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"bonddata/pkg/chinabond/cbweb"
	"bonddata/pkg/domain"
	"bonddata/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *cbweb.Client {
	return cbweb.New(&http.Client{Transport: fn}, cbweb.Options{})
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func jsonBody(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestClient_Yields_Success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "yield.chinabond.com.cn", r.URL.Host)
		require.Equal(t, "/cbweb-mn/yc/searchYc", r.URL.Path)
		require.Equal(t, "txy", r.URL.Query().Get("zblx"))
		require.NotEmpty(t, r.URL.Query().Get("ycDefIds"))
		require.NotEmpty(t, r.Header.Get("User-Agent"))

		workTime := r.URL.Query().Get("workTime")
		body := fmt.Sprintf(`[{"ycDefId":"x","ycDefName":"中债国债收益率曲线",
			"worktime":%q,"seriesData":[[0.25,1.35],[10,1.6077],[50,2.1],[7,null]]}]`, workTime)

		return &http.Response{StatusCode: http.StatusOK, Body: jsonBody(body)}, nil
	})

	got, err := c.Yields(context.Background(), domain.CurveTreasury, day(2025, 1, 2), day(2025, 1, 3))
	require.NoError(t, err)
	// 2 days x 2 usable tenors; the 50y tenor and the null 7y are skipped.
	require.Len(t, got, 4)
	require.Equal(t, domain.Term3M, got[0].Term)
	require.Equal(t, 1.35, got[0].Value)
	require.Equal(t, domain.Term10Y, got[1].Term)
	require.Equal(t, 1.6077, got[1].Value)
	require.Equal(t, day(2025, 1, 2), got[0].Date)
	require.Equal(t, day(2025, 1, 3), got[2].Date)
}

func TestClient_Yields_SkipsNonTradingDays(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Query().Get("workTime") == "2025-01-04" {
			// weekend: endpoint answers with an empty snapshot
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       jsonBody(`[{"ycDefId":"x","worktime":"","seriesData":[]}]`),
			}, nil
		}

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: jsonBody(`[{"ycDefId":"x","worktime":"2025-01-03",
				"seriesData":[[10,1.6041]]}]`),
		}, nil
	})

	got, err := c.Yields(context.Background(), domain.CurveTreasury, day(2025, 1, 3), day(2025, 1, 4))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, day(2025, 1, 3), got[0].Date)
}

func TestClient_Yields_UnknownCurve(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})

	_, err := c.Yields(context.Background(), domain.CurveName("nope"), day(2025, 1, 2), day(2025, 1, 2))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Yields_RateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       jsonBody("slow down"),
		}, nil
	})

	_, err := c.Yields(context.Background(), domain.CurveTreasury, day(2025, 1, 2), day(2025, 1, 2))
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Yields_UpstreamError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusBadGateway, Body: jsonBody("upstream bad")}, nil
	})

	_, err := c.Yields(context.Background(), domain.CurveTreasury, day(2025, 1, 2), day(2025, 1, 2))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_Yields_BadJSON(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: jsonBody("<html>not json</html>")}, nil
	})

	_, err := c.Yields(context.Background(), domain.CurveTreasury, day(2025, 1, 2), day(2025, 1, 2))
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not decode response")
}
