package prompt

// Direction selects which way a conversion runs.
type Direction int

const (
	// NovelAIToPixAI scans one NovelAI field and splits it into PixAI
	// positive/negative prompt fields.
	NovelAIToPixAI Direction = iota
	// PixAIToNovelAI scans PixAI positive and negative fields and folds
	// them into one NovelAI field.
	PixAIToNovelAI
)

// Result is the output of one conversion. Segments is the full sequence the
// conversion was derived from, with signed weights intact, for callers that
// visualize per-tag emphasis.
type Result struct {
	Text         string
	NegativeText string
	Segments     []Segment
}

// Convert runs one conversion between the two syntaxes. It is a pure
// function of its inputs: nothing is retained between calls, and concurrent
// calls are safe.
//
// NovelAI carries negative tags in-band as negative weights, while PixAI
// uses a separate negative prompt field. Going A→B, segments are
// partitioned by weight sign and negatives land in NegativeText with the
// sign stripped. Going B→A, the negative field's segments are negated and
// appended after the positives into the single Text output; NegativeText
// stays empty.
func Convert(text, negativeText string, dir Direction) Result {
	if dir == PixAIToNovelAI {
		pos := ScanPixAI(text)
		neg := ScanPixAI(negativeText)

		merged := make([]Segment, 0, len(pos)+len(neg))
		merged = append(merged, pos...)
		for _, s := range neg {
			merged = append(merged, newSegment(s.Text, s.Weight*-1))
		}
		return Result{
			Text:     SerializeNovelAI(merged),
			Segments: merged,
		}
	}

	segs := ScanNovelAI(text)
	var pos, neg []Segment
	for _, s := range segs {
		if s.Weight < 0 {
			neg = append(neg, newSegment(s.Text, -s.Weight))
		} else {
			pos = append(pos, s)
		}
	}
	return Result{
		Text:         SerializePixAI(pos),
		NegativeText: SerializePixAI(neg),
		Segments:     segs,
	}
}
