package listings

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SiloGit/bcnotif/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// stateAbbrevConfigured marks feeds from the config-specified state page;
// that page does not carry a state abbreviation of its own.
const stateAbbrevConfigured = "CS"

// parseTopPage scrapes the top-feeds listing. Rows live in the first .btable
// and may span multiple states, so each row carries its own state link.
func parseTopPage(baseURL string, r io.Reader) ([]models.Feed, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errListingParseFailed(fmt.Errorf("top page: %w", err))
	}

	var feeds []models.Feed
	var rowErr error

	doc.Find(".btable tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true // header row
		}

		feed, err := parseTopRow(baseURL, row)
		if err != nil {
			rowErr = err
			return false
		}

		feeds = append(feeds, feed)
		return true
	})
	if rowErr != nil {
		return nil, errListingParseFailed(fmt.Errorf("top page row: %w", rowErr))
	}

	if len(feeds) == 0 {
		return nil, errListingNoFeedsFound()
	}
	return feeds, nil
}

func parseTopRow(baseURL string, row *goquery.Selection) (models.Feed, error) {
	id, name, err := parseIDAndName(row, ".w100")
	if err != nil {
		return models.Feed{}, err
	}

	// The second cell holds the location links: state first, then county.
	location := row.Find("td").Eq(1)
	if location.Length() == 0 {
		return models.Feed{}, fmt.Errorf("feed %q: missing location cell", name)
	}

	links := location.Find("a")
	stateAnchor := links.Eq(0)
	if stateAnchor.Length() == 0 {
		return models.Feed{}, fmt.Errorf("feed %q: missing state link", name)
	}
	stateHref, _ := stateAnchor.Attr("href")
	stateID, err := parseLinkID(stateHref)
	if err != nil {
		return models.Feed{}, fmt.Errorf("feed %q: state id: %w", name, err)
	}

	// A missing or non-county second link means the feed covers several
	// counties at once.
	county := "Numerous"
	if countyAnchor := links.Eq(1); countyAnchor.Length() > 0 {
		if href, ok := countyAnchor.Attr("href"); ok && strings.HasPrefix(href, "/listen/ctid") {
			county = strings.TrimSpace(countyAnchor.Text())
		}
	}

	listeners, err := parseListeners(row)
	if err != nil {
		return models.Feed{}, fmt.Errorf("feed %q: %w", name, err)
	}

	return models.Feed{
		ID:          id,
		Name:        name,
		Listeners:   listeners,
		StateID:     stateID,
		StateAbbrev: strings.TrimSpace(stateAnchor.Text()),
		County:      county,
		Alert:       strings.TrimSpace(row.Find(".messageBox").First().Text()),
		URL:         feedURL(baseURL, id),
	}, nil
}

// parseStatePage scrapes a single state's feed listing. State pages may open
// with an areawide-feeds table before the main one; when two tables are
// present the first is skipped.
func parseStatePage(baseURL string, stateID int, r io.Reader) ([]models.Feed, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errListingParseFailed(fmt.Errorf("state page: %w", err))
	}

	tables := doc.Find(".btable")
	if tables.Length() == 0 {
		return nil, errListingParseFailed(fmt.Errorf("state %d page: no feed table", stateID))
	}
	table := tables.Eq(0)
	if tables.Length() >= 2 {
		table = tables.Eq(1)
	}

	var feeds []models.Feed
	var rowErr error

	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true // header row
		}

		feed, err := parseStateRow(baseURL, stateID, row)
		if err != nil {
			rowErr = err
			return false
		}

		feeds = append(feeds, feed)
		return true
	})
	if rowErr != nil {
		return nil, errListingParseFailed(fmt.Errorf("state %d page row: %w", stateID, rowErr))
	}

	if len(feeds) == 0 {
		return nil, errListingNoFeedsFound()
	}
	return feeds, nil
}

func parseStateRow(baseURL string, stateID int, row *goquery.Selection) (models.Feed, error) {
	id, name, err := parseIDAndName(row, ".w1p")
	if err != nil {
		return models.Feed{}, err
	}

	county := "Numerous"
	if countyAnchor := row.Find("a").First(); countyAnchor.Length() > 0 {
		county = strings.TrimSpace(countyAnchor.Text())
	}

	listeners, err := parseListeners(row)
	if err != nil {
		return models.Feed{}, fmt.Errorf("feed %q: %w", name, err)
	}

	return models.Feed{
		ID:          id,
		Name:        name,
		Listeners:   listeners,
		StateID:     stateID,
		StateAbbrev: stateAbbrevConfigured,
		County:      county,
		Alert:       strings.TrimSpace(row.Find("font.fontRed").First().Text()),
		URL:         feedURL(baseURL, id),
	}, nil
}

// parseIDAndName pulls the feed link out of the cell with the given class.
// The link's trailing path segment is the feed ID and its text is the name.
func parseIDAndName(row *goquery.Selection, cellClass string) (int, string, error) {
	anchor := row.Find(cellClass + " a").First()
	if anchor.Length() == 0 {
		return 0, "", fmt.Errorf("missing feed link in %s cell", cellClass)
	}

	href, ok := anchor.Attr("href")
	if !ok {
		return 0, "", fmt.Errorf("feed link in %s cell has no href", cellClass)
	}

	id, err := parseLinkID(href)
	if err != nil {
		return 0, "", fmt.Errorf("feed id: %w", err)
	}

	return id, strings.TrimSpace(anchor.Text()), nil
}

func parseListeners(row *goquery.Selection) (int, error) {
	cell := row.Find(".c.m").First()
	if cell.Length() == 0 {
		return 0, fmt.Errorf("missing listeners cell")
	}

	listeners, err := strconv.Atoi(strings.TrimSpace(cell.Text()))
	if err != nil {
		return 0, fmt.Errorf("listeners: %w", err)
	}
	if listeners < 0 {
		return 0, fmt.Errorf("listeners: negative count %d", listeners)
	}
	return listeners, nil
}

// parseLinkID extracts the numeric ID from a link's trailing path segment,
// e.g. "/listen/feed/1234" -> 1234.
func parseLinkID(href string) (int, error) {
	idx := strings.LastIndex(href, "/")
	if idx < 0 || idx+1 >= len(href) {
		return 0, fmt.Errorf("no trailing id in link %q", href)
	}

	id, err := strconv.Atoi(href[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("non-numeric id in link %q: %w", href, err)
	}
	return id, nil
}

func feedURL(baseURL string, id int) string {
	return fmt.Sprintf("%s/listen/feed/%d", baseURL, id)
}
