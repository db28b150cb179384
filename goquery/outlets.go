// Package goquery parses the rendered store-locator listing HTML into
// outlet records.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wkleong/outletmap"
)

// ListingSelector matches one listing node inside the listing container.
const ListingSelector = "div.fp_listitem"

// HoursSeparator joins the kept operating-hours lines of one listing.
const HoursSeparator = " | "

// dayTokens identify operating-hours lines among the free text of a
// listing's info section. Lines without one are promotional text and are
// discarded.
var dayTokens = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday",
	"saturday", "sunday", "daily",
}

// ParseOutlets parses rendered listing-container HTML into outlet records,
// in source order. A missing sub-element degrades that field to its zero
// value; only unreadable HTML fails the whole call.
func ParseOutlets(html string) ([]*outletmap.Outlet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, outletmap.Errorf(outletmap.EINVALID, "failed to parse listing HTML: %v", err)
	}

	var outlets []*outletmap.Outlet
	doc.Find(ListingSelector).Each(func(_ int, item *goquery.Selection) {
		outlets = append(outlets, parseListing(item))
	})

	return outlets, nil
}

// parseListing extracts one outlet from a listing node. Every field has an
// independent fallback so a malformed listing still yields a record.
func parseListing(item *goquery.Selection) *outletmap.Outlet {
	outlet := &outletmap.Outlet{
		Latitude:  parseCoordinate(item.AttrOr("data-latitude", "")),
		Longitude: parseCoordinate(item.AttrOr("data-longitude", "")),
		Name:      strings.TrimSpace(item.Find("h4").First().Text()),
	}

	var hoursLines []string
	item.Find(".infoboxcontent p").Each(func(i int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if i == 0 {
			outlet.Address = text
			return
		}
		if text != "" && containsDayToken(text) {
			hoursLines = append(hoursLines, text)
		}
	})
	outlet.OperatingHours = strings.Join(hoursLines, HoursSeparator)

	// The first action link points at Google Maps, the second at Waze.
	links := item.Find(".directionButton a")
	if links.Length() > 1 {
		outlet.WazeLink = links.Eq(1).AttrOr("href", "")
	}

	return outlet
}

func parseCoordinate(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0.0
	}
	return f
}

func containsDayToken(text string) bool {
	lower := strings.ToLower(text)
	for _, day := range dayTokens {
		if strings.Contains(lower, day) {
			return true
		}
	}
	return false
}
