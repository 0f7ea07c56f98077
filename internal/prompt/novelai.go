package prompt

import (
	"math"
	"strconv"
	"strings"
)

// ScanNovelAI parses NovelAI-style prompt text into segments. The syntax is
// a flat tag list with two emphasis mechanisms: `N::` tokens that set a base
// weight until the next token (a bare `::` resets it to 1.0), and nested
// `{}` / `[]` brackets that multiply the base by 1.05 / 0.95 per level.
//
// The scan never fails. Unbalanced brackets are not an error: a `N::` token
// zeroes both depth counters, so brackets closed after it drive the counter
// negative and lower subsequent weights accordingly.
func ScanNovelAI(text string) []Segment {
	var (
		segs        []Segment
		buf         strings.Builder
		baseWeight  = 1.0
		curlyDepth  int
		squareDepth int
	)

	flush := func() {
		tag := strings.TrimSpace(buf.String())
		buf.Reset()
		if tag == "" {
			return
		}
		w := baseWeight *
			math.Pow(1.05, float64(curlyDepth)) *
			math.Pow(0.95, float64(squareDepth))
		segs = append(segs, newSegment(tag, roundWeight(w)))
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if n, w, ok := matchWeightToken(runes[i:]); ok {
			// Flush with the weight state that was in effect
			// before the token, then start a fresh context.
			flush()
			baseWeight = w
			curlyDepth, squareDepth = 0, 0
			i += n - 1
			continue
		}

		switch runes[i] {
		case '{':
			flush()
			curlyDepth++
		case '}':
			flush()
			curlyDepth--
		case '[':
			flush()
			squareDepth++
		case ']':
			flush()
			squareDepth--
		case ',':
			flush()
		default:
			buf.WriteRune(runes[i])
		}
	}
	flush()

	return segs
}

// matchWeightToken reports whether rs begins with a weight-control token: an
// optional decimal number immediately followed by `::`. It returns the token
// length in runes and the new base weight. A run of number-ish characters
// that fails to parse is treated as if no number were present, so the base
// resets to 1.0 rather than propagating NaN.
func matchWeightToken(rs []rune) (int, float64, bool) {
	i := 0
	for i < len(rs) && isNumberRune(rs[i]) {
		i++
	}
	if i+1 >= len(rs) || rs[i] != ':' || rs[i+1] != ':' {
		return 0, 0, false
	}

	w := 1.0
	if i > 0 {
		if v, err := strconv.ParseFloat(string(rs[:i]), 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			w = v
		}
	}
	return i + 2, w, true
}

func isNumberRune(r rune) bool {
	return r == '+' || r == '-' || r == '.' || (r >= '0' && r <= '9')
}

// SerializeNovelAI renders segments back to NovelAI syntax, joined with
// ", ". Weighted segments become `weight::text::`; plain ones pass through
// verbatim. No escaping is needed: the syntax has no paren emphasis to
// collide with.
func SerializeNovelAI(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if s.Kind == KindPlain || s.Weight == 1.0 {
			parts = append(parts, text)
		} else {
			parts = append(parts, formatWeight(s.Weight)+"::"+text+"::")
		}
	}
	return strings.Join(parts, ", ")
}
