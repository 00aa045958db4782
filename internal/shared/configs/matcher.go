package configs

import (
	"github.com/SiloGit/bcnotif/internal/models"
)

// FeedMatcher selects feeds by identity. Every field that is set must match;
// a matcher with no fields set is rejected at load time.
type FeedMatcher struct {
	Name    string `mapstructure:"name"`
	ID      int    `mapstructure:"id" validate:"omitempty,min=1"`
	County  string `mapstructure:"county"`
	StateID int    `mapstructure:"state_id" validate:"omitempty,min=1"`
}

// Matches reports whether the feed satisfies every set field of the matcher.
func (m FeedMatcher) Matches(feed models.Feed) bool {
	if m.isEmpty() {
		return false
	}
	if m.Name != "" && m.Name != feed.Name {
		return false
	}
	if m.ID != 0 && m.ID != feed.ID {
		return false
	}
	if m.County != "" && m.County != feed.County {
		return false
	}
	if m.StateID != 0 && m.StateID != feed.StateID {
		return false
	}
	return true
}

func (m FeedMatcher) isEmpty() bool {
	return m.Name == "" && m.ID == 0 && m.County == "" && m.StateID == 0
}
