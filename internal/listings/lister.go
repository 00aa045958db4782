package listings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/SiloGit/bcnotif/internal/models"
	"github.com/SiloGit/bcnotif/internal/shared/configs"
	"github.com/SiloGit/bcnotif/internal/shared/loggers"
	"github.com/SiloGit/bcnotif/internal/shared/metrics"

	"github.com/samber/lo"
)

//go:generate mockgen -source=lister.go -destination=./mocks/lister_mock.go -package=mocks
type Lister interface {
	// List fetches and scrapes the configured listing pages and returns the
	// merged feed set: whitelist/blacklist applied, deduplicated by feed ID,
	// sorted by feed ID ascending.
	List(ctx context.Context, cfg *configs.Config) ([]models.Feed, error)
}

type httpLister struct {
	client *http.Client
}

func NewHTTPLister() Lister {
	return &httpLister{client: &http.Client{}}
}

// feedSource is one listing page to fetch and scrape.
type feedSource struct {
	name   string // metric/log label: "top" or "state"
	url    string
	scrape func(r io.Reader) ([]models.Feed, error)
}

func (l *httpLister) List(ctx context.Context, cfg *configs.Config) ([]models.Feed, error) {
	listing := cfg.Listing

	sources := []feedSource{{
		name: sourceTop,
		url:  listing.BaseURL + "/listen/top",
		scrape: func(r io.Reader) ([]models.Feed, error) {
			return parseTopPage(listing.BaseURL, r)
		},
	}}
	if listing.StateID != 0 {
		sources = append(sources, feedSource{
			name: sourceState,
			url:  fmt.Sprintf("%s/listen/stid/%d", listing.BaseURL, listing.StateID),
			scrape: func(r io.Reader) ([]models.Feed, error) {
				return parseStatePage(listing.BaseURL, listing.StateID, r)
			},
		})
	}

	var merged []models.Feed
	for _, source := range sources {
		feeds, err := l.scrapeSource(ctx, listing, source)
		if err != nil {
			return nil, err
		}
		merged = append(merged, feeds...)
	}

	merged = lo.Filter(merged, func(feed models.Feed, _ int) bool {
		return cfg.Allows(feed)
	})

	// Dedup keeps the first occurrence, so the top-feeds version of a feed
	// wins over the state page's copy of the same feed.
	merged = lo.UniqBy(merged, func(feed models.Feed) int {
		return feed.ID
	})
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})

	return merged, nil
}

func (l *httpLister) scrapeSource(ctx context.Context, cfg configs.ListingConfig, source feedSource) ([]models.Feed, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldURL, source.url).
		Msg("fetching feed listing page")

	start := time.Now()
	body, err := l.download(ctx, cfg, source.url)
	metricListingFetchDurationSeconds.WithLabelValues(source.name).Observe(time.Since(start).Seconds())
	if err != nil {
		metricListingFetchesTotal.WithLabelValues(source.name, errorCode(err)).Inc()
		return nil, err
	}

	feeds, err := source.scrape(bytes.NewReader(body))
	if err != nil {
		metricListingFetchesTotal.WithLabelValues(source.name, errorCode(err)).Inc()
		return nil, err
	}

	metricListingFetchesTotal.WithLabelValues(source.name, metrics.ValueNoError).Inc()
	logger.Debug().
		Str(loggers.FieldURL, source.url).
		Int(loggers.FieldFeedCount, len(feeds)).
		Msg("scraped feed listing page")

	return feeds, nil
}

func (l *httpLister) download(ctx context.Context, cfg configs.ListingConfig, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errListingFetchFailed(url, err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errListingFetchFailed(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errListingBadStatus(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errListingFetchFailed(url, err)
	}

	return body, nil
}
