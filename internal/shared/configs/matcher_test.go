package configs

import (
	"testing"

	"github.com/SiloGit/bcnotif/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFeedMatcher_Matches(t *testing.T) {
	t.Parallel()

	feed := models.Feed{
		ID:      1234,
		Name:    "Dallas City Fire",
		County:  "Dallas",
		StateID: 48,
	}

	tests := []struct {
		name     string
		matcher  FeedMatcher
		expected bool
	}{
		{
			name:     "empty matcher never matches",
			matcher:  FeedMatcher{},
			expected: false,
		},
		{
			name:     "name match",
			matcher:  FeedMatcher{Name: "Dallas City Fire"},
			expected: true,
		},
		{
			name:     "name mismatch",
			matcher:  FeedMatcher{Name: "Austin Police"},
			expected: false,
		},
		{
			name:     "id match",
			matcher:  FeedMatcher{ID: 1234},
			expected: true,
		},
		{
			name:     "county match",
			matcher:  FeedMatcher{County: "Dallas"},
			expected: true,
		},
		{
			name:     "state match",
			matcher:  FeedMatcher{StateID: 48},
			expected: true,
		},
		{
			name:     "all set fields must match",
			matcher:  FeedMatcher{Name: "Dallas City Fire", County: "Tarrant"},
			expected: false,
		},
		{
			name:     "combined fields all matching",
			matcher:  FeedMatcher{ID: 1234, StateID: 48},
			expected: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.matcher.Matches(feed))
		})
	}
}
