package reporters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/SiloGit/bcnotif/internal/models"

	"github.com/samber/lo"
)

//go:generate mockgen -source=reporter.go -destination=./mocks/reporter_mock.go -package=mocks
type Reporter interface {
	// Report renders one cycle's ranked spiking feeds. Quiet cycles produce
	// no output at all.
	Report(ctx context.Context, result *models.CycleResult) error
}

type consoleReporter struct {
	out io.Writer
	mu  sync.Mutex
}

// NewConsoleReporter returns a Reporter that writes one block per spiking
// feed to out, usually stdout.
func NewConsoleReporter(out io.Writer) Reporter {
	return &consoleReporter{out: out}
}

func (r *consoleReporter) Report(ctx context.Context, result *models.CycleResult) error {
	if len(result.Feeds) == 0 {
		return nil
	}

	blocks := lo.Map(result.Feeds, func(feed models.Feed, i int) string {
		return renderFeed(feed, i+1, len(result.Feeds), result.Hour)
	})

	// Assembled first so the report hits the writer in a single Write and
	// never interleaves with other output.
	var buf bytes.Buffer
	buf.WriteString(strings.Join(blocks, "\n"))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func renderFeed(feed models.Feed, index, total, hour int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - Broadcastify Update (%d of %d)\n", feed.StateAbbrev, index, total)
	fmt.Fprintf(&b, "Name: %s\n", feed.Name)
	fmt.Fprintf(&b, "Listeners: %d (^%d over avg %.1f)\n", feed.Listeners, int(feed.JumpAt(hour)), feed.Avg.At(hour))
	if feed.HasAlert() {
		fmt.Fprintf(&b, "Alert: %s\n", feed.Alert)
	}
	fmt.Fprintf(&b, "Link: %s\n", feed.URL)
	return b.String()
}
