package screeners

import (
	"sort"

	"github.com/SiloGit/bcnotif/internal/models"
)

//go:generate mockgen -source=ranker.go -destination=./mocks/ranker_mock.go -package=mocks
type FeedRanker interface {
	// Rank orders feeds for the report. The sort is stable, so feeds with
	// equal sort values keep their listing order. The input slice is not
	// modified.
	Rank(feeds []models.Feed, key models.SortKey, order models.SortOrder, hour int) []models.Feed
}

type reportRanker struct{}

func NewReportRanker() FeedRanker {
	return &reportRanker{}
}

func (r *reportRanker) Rank(feeds []models.Feed, key models.SortKey, order models.SortOrder, hour int) []models.Feed {
	ranked := make([]models.Feed, len(feeds))
	copy(ranked, feeds)

	value := func(f models.Feed) float64 {
		if key == models.SortByJump {
			return f.JumpAt(hour)
		}
		return float64(f.Listeners)
	}

	// Strict comparisons keep equal elements in input order under
	// sort.SliceStable, in both directions.
	sort.SliceStable(ranked, func(i, j int) bool {
		if order == models.OrderDescending {
			return value(ranked[i]) > value(ranked[j])
		}
		return value(ranked[i]) < value(ranked[j])
	})

	return ranked
}
