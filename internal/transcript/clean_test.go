package transcript

import (
	"testing"

	"github.com/DarwinQVO/quotify/internal/model"
)

func toks(texts ...string) []model.TranscriptToken {
	out := make([]model.TranscriptToken, len(texts))
	for i, t := range texts {
		out[i] = model.TranscriptToken{Text: t, Start: float64(i), End: float64(i) + 0.5}
	}
	return out
}

func texts(tokens []model.TranscriptToken) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "drops fillers case insensitively",
			in:   []string{"Um", "hello", "UH", "world", "basically"},
			want: []string{"hello", "world"},
		},
		{
			name: "strips pause markers",
			in:   []string{"[pause]", "hello...", "[SILENCE]world"},
			want: []string{"hello", "world"},
		},
		{
			name: "drops token that becomes filler after stripping",
			in:   []string{"um...", "fine"},
			want: []string{"fine"},
		},
		{
			name: "drops non letter single chars keeps letters",
			in:   []string{"a", "-", "I", ","},
			want: []string{"a", "I"},
		},
		{
			name: "drops multi-byte single punctuation runes",
			in:   []string{"—", "hello", "…", "、", "world"},
			want: []string{"hello", "world"},
		},
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(Clean(toks(tt.in...)))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	in := toks("Um", "so...", "this", "is", "[pause]", "fine.", "you know")
	once := Clean(in)
	twice := Clean(once)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("token %d changed on second pass: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestCleanPreservesTimings(t *testing.T) {
	in := []model.TranscriptToken{
		{Text: "um", Start: 0, End: 0.4},
		{Text: "keep", Start: 0.5, End: 0.9},
		{Text: "me", Start: 1.0, End: 1.3},
	}
	got := Clean(in)
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2", len(got))
	}
	if got[0].Start != 0.5 || got[0].End != 0.9 {
		t.Errorf("timings not preserved: %+v", got[0])
	}
	if in[0].Text != "um" {
		t.Error("input slice was modified")
	}
}
