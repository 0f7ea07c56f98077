package prompt

import "testing"

func assertSegments(t *testing.T, got, want []Segment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d segments %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].Text != want[i].Text {
			t.Errorf("segment %d: Text = %q, want %q", i, got[i].Text, want[i].Text)
		}
		if got[i].Weight != want[i].Weight {
			t.Errorf("segment %d: Weight = %v, want %v", i, got[i].Weight, want[i].Weight)
		}
		if got[i].Kind != want[i].Kind {
			t.Errorf("segment %d: Kind = %v, want %v", i, got[i].Kind, want[i].Kind)
		}
	}
}

func TestScanNovelAI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
		{
			name:  "plain passthrough",
			input: "tag1, tag2",
			want: []Segment{
				{Text: "tag1", Weight: 1, Kind: KindPlain},
				{Text: "tag2", Weight: 1, Kind: KindPlain},
			},
		},
		{
			name:  "base weight token resets at bare colons",
			input: "2::1girl::, sword",
			want: []Segment{
				{Text: "1girl", Weight: 2, Kind: KindWeighted},
				{Text: "sword", Weight: 1, Kind: KindPlain},
			},
		},
		{
			name:  "curly emphasis",
			input: "{{tag}}",
			want: []Segment{
				{Text: "tag", Weight: 1.1, Kind: KindWeighted},
			},
		},
		{
			name:  "square de-emphasis",
			input: "[tag]",
			want: []Segment{
				{Text: "tag", Weight: 0.95, Kind: KindWeighted},
			},
		},
		{
			name:  "mixed brackets rounding back to plain",
			input: "{[tag]}",
			want: []Segment{
				{Text: "tag", Weight: 1, Kind: KindPlain},
			},
		},
		{
			name:  "weight persists across commas in a group",
			input: "{a, b}",
			want: []Segment{
				{Text: "a", Weight: 1.05, Kind: KindWeighted},
				{Text: "b", Weight: 1.05, Kind: KindWeighted},
			},
		},
		{
			name:  "unclosed bracket flushes at end of input",
			input: "{tag",
			want: []Segment{
				{Text: "tag", Weight: 1.05, Kind: KindWeighted},
			},
		},
		{
			name:  "token resets depth so closers go negative",
			input: "2::a}}b",
			want: []Segment{
				{Text: "a", Weight: 2, Kind: KindWeighted},
				{Text: "b", Weight: 1.81, Kind: KindWeighted},
			},
		},
		{
			name:  "back to back tokens",
			input: "2::3::tag::",
			want: []Segment{
				{Text: "tag", Weight: 3, Kind: KindWeighted},
			},
		},
		{
			name:  "negative base weight",
			input: "-1::bad::",
			want: []Segment{
				{Text: "bad", Weight: -1, Kind: KindWeighted},
			},
		},
		{
			name:  "fractional base weight",
			input: "1.5::tag::",
			want: []Segment{
				{Text: "tag", Weight: 1.5, Kind: KindWeighted},
			},
		},
		{
			name:  "malformed number falls back to reset",
			input: "1.2.3::tag",
			want: []Segment{
				{Text: "tag", Weight: 1, Kind: KindPlain},
			},
		},
		{
			name:  "token inside brackets discards bracket context",
			input: "{2::tag",
			want: []Segment{
				{Text: "tag", Weight: 2, Kind: KindWeighted},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSegments(t, ScanNovelAI(tt.input), tt.want)
		})
	}
}

func TestSerializeNovelAI(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
		want string
	}{
		{
			name: "empty sequence",
			segs: nil,
			want: "",
		},
		{
			name: "plain segments pass through",
			segs: []Segment{
				{Text: "tag1", Weight: 1, Kind: KindPlain},
				{Text: "tag2", Weight: 1, Kind: KindPlain},
			},
			want: "tag1, tag2",
		},
		{
			name: "weighted segments wrap in colons",
			segs: []Segment{
				{Text: "good", Weight: 2, Kind: KindWeighted},
				{Text: "plain", Weight: 1, Kind: KindPlain},
				{Text: "bad", Weight: -1, Kind: KindWeighted},
			},
			want: "2::good::, plain, -1::bad::",
		},
		{
			name: "empty content skipped",
			segs: []Segment{
				{Text: "  ", Weight: 1.5, Kind: KindWeighted},
				{Text: "tag", Weight: 1, Kind: KindPlain},
			},
			want: "tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SerializeNovelAI(tt.segs); got != tt.want {
				t.Errorf("SerializeNovelAI() = %q, want %q", got, tt.want)
			}
		})
	}
}
