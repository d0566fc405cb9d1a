package segment

import "testing"

func TestIsQuestionStart(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Q1) What is 2+2?", true},
		{"Question 12: Pick one", true},
		{"q 3 - trailing", true},
		{"7. A bare numbered item", true},
		{"123: edge of the range", true},
		{"1234. four digits is not a question number", false},
		{"1) a numeric option line", false},
		{"(A) an option line", false},
		{"Plain prose line", false},
	}
	for _, tc := range cases {
		if got := IsQuestionStart(tc.line); got != tc.want {
			t.Errorf("IsQuestionStart(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestHead(t *testing.T) {
	num, rest, ok := Head("Q12: What is shock?")
	if !ok || num != 12 || rest != "What is shock?" {
		t.Errorf("Head = (%d, %q, %v)", num, rest, ok)
	}
	num, rest, ok = Head("3. Inline text")
	if !ok || num != 3 || rest != "Inline text" {
		t.Errorf("Head = (%d, %q, %v)", num, rest, ok)
	}
	if _, _, ok := Head("no marker here"); ok {
		t.Error("Head must reject non-marker lines")
	}
}

func TestSegment(t *testing.T) {
	lines := []string{
		"Preamble that belongs to no question",
		"Q1. First?",
		"(A) one",
		"(B) two",
		"Q2. Second?",
		"(A) three",
		"(B) four",
		"Ans: B",
	}
	blocks := Segment(lines)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Lines[0] != "Q1. First?" || len(blocks[0].Lines) != 3 {
		t.Errorf("block 0 = %#v", blocks[0])
	}
	// The final block must be flushed even without a following marker.
	if len(blocks[1].Lines) != 4 || blocks[1].Lines[3] != "Ans: B" {
		t.Errorf("block 1 = %#v", blocks[1])
	}
	for _, b := range blocks {
		if !IsQuestionStart(b.Lines[0]) {
			t.Errorf("block does not start with a marker: %q", b.Lines[0])
		}
	}
}

func TestSegmentKeepsNumericOptionLines(t *testing.T) {
	lines := []string{
		"Q1. Which organ pumps blood?",
		"1) Liver",
		"2) Heart",
		"3) Lung",
		"4) Kidney",
		"Ans: 2",
	}
	blocks := Segment(lines)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].Lines) != 6 {
		t.Errorf("numeric option lines must stay in the block: %#v", blocks[0])
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	if blocks := Segment(nil); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
	if blocks := Segment([]string{"no markers at all"}); len(blocks) != 0 {
		t.Errorf("marker-free input must yield no blocks, got %d", len(blocks))
	}
}
