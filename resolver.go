package outletmap

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Canned resolver responses.
const (
	fallbackMessage = "I'm not sure about that. Try asking about closing times or specific locations."
	apologyMessage  = "I apologize, but I'm having trouble answering that right now. Please try again in a moment."
	noLatestMessage = "Could not determine the latest closing outlets."
)

// greetingSet holds the queries answered with a canned greeting. Matching
// is exact against the normalized (lower-cased, trimmed) query.
var greetingSet = map[string]struct{}{
	"hello":          {},
	"hi":             {},
	"hey":            {},
	"good morning":   {},
	"good afternoon": {},
	"good evening":   {},
}

// locationPhrasePattern extracts an attempted location name from phrases
// like "outlets in Bangsar" or "stores near KLCC".
var locationPhrasePattern = regexp.MustCompile(`\b(?:in|at|near)\s+([a-z0-9][a-z0-9' ]*)`)

// Resolver classifies free-text queries about outlets and computes a
// deterministic textual answer. It is stateless per call and only ever
// reads the outlets it is given; concurrent calls are safe.
type Resolver struct {
	// Asker, when non-nil, handles queries no rule matches, supplied with
	// the current outlet listing as context. When nil such queries
	// receive a fixed fallback message. Which behavior is active is a
	// deployment configuration choice.
	Asker Asker

	// Locations are the recognized location keywords checked against
	// queries, e.g. "Bangsar". Keywords are configured, not inferred.
	Locations []string
}

// Answer classifies the query and returns a textual answer. It never
// returns an error: malformed queries fall through to the fallback, and a
// failing Asker degrades to an apology message.
func (r *Resolver) Answer(ctx context.Context, query string, outlets []*Outlet) string {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if _, ok := greetingSet[normalized]; ok {
		return fmt.Sprintf("Hello! I can help you find information about %d outlets. Feel free to ask about locations, opening hours, or specific areas!", len(outlets))
	}

	if strings.Contains(normalized, "close") || strings.Contains(normalized, "latest") {
		return LatestClosing(outlets)
	}

	if location, ok := r.matchLocation(normalized); ok {
		return MatchLocation(outlets, location)
	}

	if r.Asker != nil {
		answer, err := r.Asker.Ask(ctx, query, outlets)
		if err != nil {
			return apologyMessage
		}
		if answer == "" {
			return fallbackMessage
		}
		return answer
	}

	return fallbackMessage
}

// matchLocation returns the location named by the query: a configured
// keyword if the query contains one, else a location name extracted from an
// "in/at/near <place>" phrase.
func (r *Resolver) matchLocation(normalized string) (string, bool) {
	for _, keyword := range r.Locations {
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(keyword)) {
			return keyword, true
		}
	}

	if m := locationPhrasePattern.FindStringSubmatch(normalized); m != nil {
		if location := strings.TrimSpace(m[1]); location != "" {
			return location, true
		}
	}

	return "", false
}

// LatestClosing reports the outlets that close latest. The closing time of
// each outlet is derived from its operating-hours text; outlets with no
// parseable time token are skipped. Ties are kept, not broken: every outlet
// sharing the maximal closing time is reported, in encounter order.
func LatestClosing(outlets []*Outlet) string {
	var latest Clock
	var winners []*Outlet

	for _, o := range outlets {
		closing, ok := ExtractClosingTime(o.OperatingHours)
		if !ok {
			continue
		}
		switch {
		case len(winners) == 0 || closing.After(latest):
			latest = closing
			winners = []*Outlet{o}
		case closing == latest:
			winners = append(winners, o)
		}
	}

	if len(winners) == 0 {
		return noLatestMessage
	}

	var sb strings.Builder
	sb.WriteString("Latest closing outlets:\n")
	for _, o := range winners {
		fmt.Fprintf(&sb, "• %s: %s\n", o.Name, o.OperatingHours)
	}
	return sb.String()
}

// MatchLocation reports the outlets whose address contains location as a
// case-insensitive substring, in encounter order.
func MatchLocation(outlets []*Outlet, location string) string {
	lower := strings.ToLower(location)

	var matches []*Outlet
	for _, o := range outlets {
		if strings.Contains(strings.ToLower(o.Address), lower) {
			matches = append(matches, o)
		}
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No outlets found in %s.", location)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d outlet(s) in %s:\n", len(matches), location)
	for _, o := range matches {
		fmt.Fprintf(&sb, "• %s: %s\n", o.Name, o.Address)
	}
	return sb.String()
}
