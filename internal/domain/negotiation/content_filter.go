package negotiation

import (
	"regexp"
)

// RedactionMarker replaces every span matched by a detector category.
const RedactionMarker = "[removed]"

// FilteredReason is deliberately generic: exposing which category matched
// would help a user tune evasions.
const FilteredReason = "message contained content that is not allowed"

// Detector is one independent filtering category. Adding a category means
// adding a detector to the pipeline; existing categories are untouched.
type Detector interface {
	// Redact replaces every matched span in content with the marker and
	// reports whether anything matched.
	Redact(content, marker string) (string, bool)
}

type patternDetector struct {
	re *regexp.Regexp
}

func (d *patternDetector) Redact(content, marker string) (string, bool) {
	if !d.re.MatchString(content) {
		return content, false
	}
	return d.re.ReplaceAllString(content, marker), true
}

var (
	// Email-like addresses.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Phone-number-like digit runs: 8+ digits allowing common separators.
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)

	// Social / messenger keywords and @handles.
	handlePattern = regexp.MustCompile(`(?i)\b(whats\s?app|telegram|signal|viber|wechat|discord|instagram|insta|snapchat|facebook|tiktok)\b|@[A-Za-z0-9_.]{3,}`)

	// Payment-service keywords.
	paymentPattern = regexp.MustCompile(`(?i)\b(paypal|venmo|cash\s?app|zelle|revolut|iban|bitcoin|btc|crypto|western\s?union|wire\s?transfer|bank\s?transfer)\b`)

	// Competing-platform keywords.
	platformPattern = regexp.MustCompile(`(?i)\b(ebay|craigslist|gumtree|offerup|marketplace|etsy|depop|vinted|mercari)\b`)

	// Direct off-platform solicitation phrases.
	solicitationPattern = regexp.MustCompile(`(?i)(off[\s\-]platform|outside\s+the\s+(app|site|platform)|avoid\s+(the\s+)?fees?|pay\s+(me\s+)?(directly|in\s+cash|outside)|deal\s+(offline|in\s+person)|cash\s+only)`)
)

type FilterResult struct {
	Filtered bool
	Reason   string
	Content  string
}

// ContentFilter detects and redacts attempts to move contact or payment off
// the platform. It is a deterrent, not a security boundary: it never rejects
// a message, it only redacts.
type ContentFilter struct {
	detectors []Detector
}

func NewContentFilter() *ContentFilter {
	return &ContentFilter{
		detectors: []Detector{
			&patternDetector{re: emailPattern},
			&patternDetector{re: phonePattern},
			&patternDetector{re: handlePattern},
			&patternDetector{re: paymentPattern},
			&patternDetector{re: platformPattern},
			&patternDetector{re: solicitationPattern},
		},
	}
}

func (f *ContentFilter) Filter(content string) FilterResult {
	out := content
	filtered := false
	for _, d := range f.detectors {
		redacted, matched := d.Redact(out, RedactionMarker)
		if matched {
			out = redacted
			filtered = true
		}
	}

	result := FilterResult{Filtered: filtered, Content: out}
	if filtered {
		result.Reason = FilteredReason
	}
	return result
}
