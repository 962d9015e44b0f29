// Package tagline splits marketing taglines around a call-out phrase such as
// "please note" so the phrase can be rendered with emphasis.
//
// The transform is pure: an Emphasizer holds only immutable marker data and
// is safe to share between goroutines.
package tagline

import (
	"strings"
	"unicode/utf8"
)

// Marker pairs a trigger phrase, matched case-insensitively, with the text
// shown in its place.
type Marker struct {
	Trigger string `yaml:"trigger"`
	Display string `yaml:"display"`
}

// DefaultMarker is the call-out phrase used when no markers are configured.
var DefaultMarker = Marker{Trigger: "please note", Display: "Please note"}

// Emphasis is the result of splitting a tagline.
// Prefix + MarkerText + Suffix reproduces the input, except that the matched
// phrase is replaced by its display form.
type Emphasis struct {
	Prefix     string `json:"prefix"`
	MarkerText string `json:"marker_text"`
	Suffix     string `json:"suffix"`
	Matched    bool   `json:"matched"`
}

// Emphasizer splits taglines on the first occurrence of any of its markers.
type Emphasizer struct {
	markers []Marker
}

// New returns an Emphasizer for the given markers. Markers with an empty
// trigger are ignored; an empty display falls back to the trigger text.
// With no usable markers the DefaultMarker is used.
func New(markers ...Marker) *Emphasizer {
	e := &Emphasizer{}
	for _, m := range markers {
		if m.Trigger == "" {
			continue
		}
		if m.Display == "" {
			m.Display = m.Trigger
		}
		e.markers = append(e.markers, m)
	}
	if len(e.markers) == 0 {
		e.markers = []Marker{DefaultMarker}
	}
	return e
}

var defaultEmphasizer = New()

// Emphasize splits s using the DefaultMarker.
func Emphasize(s string) Emphasis {
	return defaultEmphasizer.Emphasize(s)
}

// Markers returns a copy of the configured markers.
func (e *Emphasizer) Markers() []Marker {
	out := make([]Marker, len(e.markers))
	copy(out, e.markers)
	return out
}

// Emphasize locates the earliest marker in s and splits around it. When two
// markers match at the same position the longer trigger wins. A single em
// dash or hyphen directly after the phrase becomes part of MarkerText, with
// its glyph kept as written.
func (e *Emphasizer) Emphasize(s string) Emphasis {
	start, end := -1, -1
	var hit Marker
	for _, m := range e.markers {
		i, j := indexFold(s, m.Trigger)
		if i < 0 {
			continue
		}
		if start < 0 || i < start || (i == start && j > end) {
			start, end, hit = i, j, m
		}
	}
	if start < 0 {
		return Emphasis{Prefix: s}
	}

	marker := hit.Display
	if r, size := utf8.DecodeRuneInString(s[end:]); size > 0 && isDash(r) {
		marker += s[end : end+size]
		end += size
	}

	return Emphasis{
		Prefix:     s[:start],
		MarkerText: marker,
		Suffix:     s[end:],
		Matched:    true,
	}
}

// String joins the segments back together.
func (em Emphasis) String() string {
	return em.Prefix + em.MarkerText + em.Suffix
}

func isDash(r rune) bool {
	return r == '—' || r == '-'
}

// indexFold returns the byte span of the first case-insensitive occurrence
// of substr in s, or -1, -1. The span is measured in s, whose folded runes
// may differ in width from those of substr.
func indexFold(s, substr string) (int, int) {
	if substr == "" {
		return -1, -1
	}
	for i := 0; i < len(s); {
		if n, ok := hasPrefixFold(s[i:], substr); ok {
			return i, i + n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, -1
}

// hasPrefixFold reports whether s starts with prefix under Unicode case
// folding, and how many bytes of s the match covers.
func hasPrefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if sr != pr && !strings.EqualFold(string(sr), string(pr)) {
			return 0, false
		}
		n += size
	}
	return n, true
}
