package service

import (
	"regexp"
	"strings"
)

// boilerplatePrefixes are the leading phrases of legal/policy/amenity-rule
// sections that add noise to summaries. Each matched section spans from its
// prefix to the next blank line. New categories are additive: append a
// prefix here.
var boilerplatePrefixes = []string{
	"Rules and policies",
	"Terms and conditions",
	"Policies",
	"Guest Profile",
	"Id Proof Related",
	"Food Arrangement",
	"Smoking/alcohol Consumption Rules",
	// Both spellings appear in the wild; booking sites render the heading
	// as "Pet(s) Related" while some confirmation emails flatten it.
	"Pet(s) Related",
	"Pets Related",
	"Property Accessibility",
	"Other Rules",
	"Child / Extra Bed Policy",
	"Adult / Extra Bed Policy",
	"PNRs having fully waitlisted status",
	"clerkage charge",
	"Passengers travelling on a fully waitlisted",
	"Obtain certificate from the TTE",
	"In case, on a party e-ticket",
	"In case train is late more than 3 hours",
	"In case of train cancellation",
	"Never purchase e-ticket from unauthorized agents",
	"For detail, Rules, Refund rules",
	"While booking this ticket",
	"The FIR forms are available",
	"Variety of meals available",
	"National Consumer Helpline",
	"You can book unreserved ticket",
	"As per RBI guidelines",
	"Customer Care",
}

var boilerplatePatterns = compileBoilerplatePatterns()

// imagePlaceholderPattern strips bracketed image markers left behind by OCR.
var imagePlaceholderPattern = regexp.MustCompile(`(?s)\[image\].*?\n\n`)

func compileBoilerplatePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(boilerplatePrefixes))
	for _, prefix := range boilerplatePrefixes {
		// The blank-line boundary is consumed by the match and restored by
		// the replacement, so removed regions cannot be re-matched.
		patterns = append(patterns, regexp.MustCompile(`(?s)`+regexp.QuoteMeta(prefix)+`.*?\n\n`))
	}
	return patterns
}

// FilterBoilerplate removes legal/policy boilerplate sections and image
// placeholders from extracted text. Pure function, idempotent, and a no-op
// on trimmed text that contains none of the prefixes.
func FilterBoilerplate(text string) string {
	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "\n\n")
	}
	text = imagePlaceholderPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
