package prompt

import (
	"math"
	"strconv"
)

// Kind classifies how a segment is rendered and highlighted
type Kind int

const (
	// KindPlain marks a segment whose weight is exactly 1.0 (no emphasis)
	KindPlain Kind = iota
	// KindWeighted marks a segment carrying any other weight
	KindWeighted
)

// Segment is one normalized piece of prompt content: the tag text (already
// un-escaped) and its resolved emphasis weight. A scanner emits segments in
// source order; serializers consume the whole sequence and never mutate it.
type Segment struct {
	Text   string
	Weight float64
	Kind   Kind
}

func newSegment(text string, weight float64) Segment {
	kind := KindWeighted
	if weight == 1.0 {
		kind = KindPlain
	}
	return Segment{Text: text, Weight: weight, Kind: kind}
}

// roundWeight rounds to two decimal places, half away from zero.
// Depth-derived weights always pass through here; explicit overrides don't.
func roundWeight(w float64) float64 {
	return math.Round(w*100) / 100
}

// formatWeight renders a weight without scientific notation or trailing
// zeros, in the same form the explicit-override parser accepts back.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
