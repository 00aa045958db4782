package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// ### Start - fixed fixture (no change)
// These rows define the deterministic listings and must match the expected
// results below. DO NOT MODIFY: the verification keys on feed 1003.
const (
	// spikeAfterCycles is how many top-page fetches serve the flat baseline
	// before feed spikeFeedID jumps to spikeFactor times its baseline.
	spikeAfterCycles = 3
	spikeFactor      = 3
	spikeFeedID      = 1003
	spikeAlert       = "Major structure fire, multiple alarms"
	fixtureStateID   = 48
)

type fixtureFeed struct {
	id       int
	name     string
	stateID  int
	abbrev   string
	county   string
	baseline int
	spikes   bool
}

var fixtureFeeds = []fixtureFeed{
	{id: 1001, name: "Adams County Public Safety", stateID: 17, abbrev: "IL", county: "Adams", baseline: 92},
	{id: 1002, name: "Chicago Police Zone 5", stateID: 17, abbrev: "IL", county: "Cook", baseline: 410},
	{id: 1003, name: "Dallas City Fire", stateID: 48, abbrev: "TX", county: "Dallas", baseline: 240, spikes: true},
	{id: 1004, name: "Travis County EMS", stateID: 48, abbrev: "TX", county: "Travis", baseline: 87},
}

// ### End - fixed fixture

// statusFeed mirrors the feed fields of the daemon's /status payload that
// the verification reads.
type statusFeed struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Listeners int    `json:"listeners"`
	Alert     string `json:"alert"`
}

type statusResult struct {
	CycleID      string       `json:"cycleId"`
	Hour         int          `json:"hour"`
	FetchedFeeds int          `json:"fetchedFeeds"`
	TrackedFeeds int          `json:"trackedFeeds"`
	Feeds        []statusFeed `json:"feeds"`
}

// main runs the e2e scenario: 001_basic_spike_report
//
// The scenario plays the upstream listing site: it serves deterministic
// top-feeds and state pages whose listener counts hold a flat baseline for
// the first few polling cycles and then jump one feed to several times its
// hourly average, with an alert message attached. It then watches the
// daemon's /status endpoint until the jump shows up in a cycle result.
//
// Run it in two terminals, scenario first:
//
//	go run ./tests/e2e/scenarios/001_basic_spike_report
//	bcnotif -c <config pointing listing.base_url at this server>
//
// The scenario prints a ready-to-use config on startup.
//
// What it tests:
//   - Fetching and scraping of the top-feeds and state pages over real HTTP
//   - Feed merge across the two pages (1003 and 1004 appear on both)
//   - Average tracking across cycles: the baseline cycles seed and hold the
//     averages, so nothing is reported until the jump
//   - Spike screening and the alert passthrough into the cycle result
//   - The /status endpoint, including 503 before the first cycle completes
//
// Expected results:
//   - Cycles during the baseline phase report zero feeds (first sight seeds
//     the average at the feed's own listener count)
//   - The first cycle after the jump reports feed 1003 "Dallas City Fire"
//     with listeners = 240 * spikeFactor and the alert message attached
//   - The other three feeds never appear in a report
//   - The same cycle is printed by the daemon on stdout in "N of M" form
func main() {
	// these configs can be changed to run the scenario
	listenAddr := getEnv("LISTEN_ADDR", "localhost:9090")             // Address the fake listing site binds to
	statusURL := getEnv("STATUS_URL", "http://localhost:8080/status") // Daemon status endpoint to watch
	pollEverySeconds := getEnvInt("POLL_EVERY_SECONDS", 15)           // How often to check /status
	waitTimeoutMinutes := getEnvInt("WAIT_TIMEOUT_MINUTES", 45)       // Give up after this long (the daemon polls at a 5 minute floor)

	expectedListeners := 0
	for _, f := range fixtureFeeds {
		if f.id == spikeFeedID {
			expectedListeners = f.baseline * spikeFactor
		}
	}

	fmt.Println("Starting e2e scenario: 001_basic_spike_report")
	fmt.Printf("LISTEN_ADDR: %s\n", listenAddr)
	fmt.Printf("STATUS_URL: %s\n", statusURL)
	fmt.Printf("POLL_EVERY_SECONDS: %d\n", pollEverySeconds)
	fmt.Printf("WAIT_TIMEOUT_MINUTES: %d\n", waitTimeoutMinutes)
	fmt.Printf("SPIKE_AFTER_CYCLES: %d\n", spikeAfterCycles)
	fmt.Printf("EXPECTED: feed %d reported with %d listeners\n", spikeFeedID, expectedListeners)
	fmt.Println()

	fmt.Println("Point the daemon at this server with a config like:")
	fmt.Println()
	fmt.Printf(`  server:
    port: 8080
  file_storage:
    root_dir: ./.tmp/e2e-data
  listing:
    base_url: http://%s
    state_id: %d
    user_agent: bcnotif-e2e/1.0
    timeout: 10
  poll:
    update_time: 5
`, listenAddr, fixtureStateID)
	fmt.Println()

	// Serve the listings. The jump keys off completed top-page fetches so
	// both pages agree on listener counts within a cycle.
	var topFetches, stateFetches int64

	mux := http.NewServeMux()
	mux.HandleFunc("/listen/top", func(w http.ResponseWriter, r *http.Request) {
		fetch := atomic.AddInt64(&topFetches, 1)
		fmt.Printf("Served top page (fetch %d, jumping=%v)\n", fetch, fetch > spikeAfterCycles)
		fmt.Fprint(w, renderTopPage(fetch))
	})
	mux.HandleFunc(fmt.Sprintf("/listen/stid/%d", fixtureStateID), func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&stateFetches, 1)
		fmt.Fprint(w, renderStatePage(fixtureStateID, atomic.LoadInt64(&topFetches)))
	})

	server := &http.Server{Addr: listenAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "ERROR: Listing server failed: %v\n", err)
			os.Exit(1)
		}
	}()
	fmt.Printf("Listing server up on http://%s\n", listenAddr)
	fmt.Println("Waiting for the daemon to report the jump...")
	fmt.Println()

	// Watch /status until the jump is reported or the timeout passes.
	start := time.Now()
	deadline := start.Add(time.Duration(waitTimeoutMinutes) * time.Minute)
	client := &http.Client{Timeout: 10 * time.Second}

	lastCycleID := ""
	cyclesObserved := 0

	for time.Now().Before(deadline) {
		time.Sleep(time.Duration(pollEverySeconds) * time.Second)

		result, err := fetchStatus(client, statusURL)
		if err != nil {
			fmt.Printf("Status not ready yet: %v\n", err)
			continue
		}

		if result.CycleID != lastCycleID {
			lastCycleID = result.CycleID
			cyclesObserved++
			fmt.Printf("Observed cycle %s: hour=%d fetched=%d tracked=%d reported=%d\n",
				result.CycleID, result.Hour, result.FetchedFeeds, result.TrackedFeeds, len(result.Feeds))
		}

		for _, feed := range result.Feeds {
			if feed.ID != spikeFeedID {
				fmt.Fprintf(os.Stderr, "ERROR: Unexpected feed %d (%s) in report\n", feed.ID, feed.Name)
				os.Exit(1)
			}
			if feed.Listeners != expectedListeners {
				fmt.Fprintf(os.Stderr, "ERROR: Feed %d reported %d listeners, want %d\n",
					feed.ID, feed.Listeners, expectedListeners)
				os.Exit(1)
			}
			if feed.Alert != spikeAlert {
				fmt.Fprintf(os.Stderr, "ERROR: Feed %d alert %q, want %q\n", feed.ID, feed.Alert, spikeAlert)
				os.Exit(1)
			}

			fmt.Println()
			fmt.Println("Jump reported")
			fmt.Println("=== Statistics ===")
			fmt.Printf("Top page fetches: %d\n", atomic.LoadInt64(&topFetches))
			fmt.Printf("State page fetches: %d\n", atomic.LoadInt64(&stateFetches))
			fmt.Printf("Cycles observed: %d\n", cyclesObserved)
			fmt.Printf("Elapsed: %s\n", time.Since(start).Round(time.Second))
			fmt.Println("Scenario completed successfully")
			return
		}
	}

	fmt.Fprintf(os.Stderr, "ERROR: No jump reported within %d minutes (%d cycles observed)\n",
		waitTimeoutMinutes, cyclesObserved)
	os.Exit(1)
}

func fetchStatus(client *http.Client, url string) (*statusResult, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var result statusResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &result, nil
}

func listenersAt(f fixtureFeed, topFetch int64) int {
	if f.spikes && topFetch > spikeAfterCycles {
		return f.baseline * spikeFactor
	}
	return f.baseline
}

func renderTopPage(topFetch int64) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="btable"><tr><th>Feed</th><th>Location</th><th>Listeners</th></tr>`)
	for _, f := range fixtureFeeds {
		alert := ""
		if f.spikes && topFetch > spikeAfterCycles {
			alert = `<div class="messageBox">` + spikeAlert + `</div>`
		}
		fmt.Fprintf(&b, `<tr>
  <td class="w100"><a href="/listen/feed/%d">%s</a>%s</td>
  <td><a href="/listen/stid/%d">%s</a> <a href="/listen/ctid/%d">%s</a></td>
  <td class="c m">%d</td>
</tr>`, f.id, f.name, alert, f.stateID, f.abbrev, f.id, f.county, listenersAt(f, topFetch))
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

func renderStatePage(stateID int, topFetch int64) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="btable"><tr><th>County</th><th>Feed</th><th>Listeners</th></tr>`)
	for _, f := range fixtureFeeds {
		if f.stateID != stateID {
			continue
		}
		fmt.Fprintf(&b, `<tr>
  <td><a href="/listen/ctid/%d">%s</a></td>
  <td class="w1p"><a href="/listen/feed/%d">%s</a></td>
  <td class="c m">%d</td>
</tr>`, f.id, f.county, f.id, f.name, listenersAt(f, topFetch))
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
