package vtcore

import "testing"

func TestParseSGRAttributes(t *testing.T) {
	params := []int64{1, 3, 4, 7, 30, 38, 2, 100, 100, 100, 48, 5, 64}

	got := ParseSGRAttributes(params)
	want := []SGRAttribute{
		sgrFlag(FlagBold),
		sgrFlag(FlagItalic),
		sgrFlag(FlagUnderline),
		sgrFlag(FlagReverse),
		sgrFg(IndexedColor(0)),
		sgrFg(RGBColor(100, 100, 100)),
		sgrBg(IndexedColor(64)),
	}

	if len(got) != len(want) {
		t.Fatalf("got %d attributes, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("attribute %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseSGRAttributesReset(t *testing.T) {
	got := ParseSGRAttributes([]int64{0})
	if len(got) != 1 || got[0].Kind != SGRReset {
		t.Fatalf("got %+v, want single Reset", got)
	}
}

func TestParseSGRAttributesUnrecognizedSkipped(t *testing.T) {
	got := ParseSGRAttributes([]int64{58, 1})
	if len(got) != 1 || got[0] != sgrFlag(FlagBold) {
		t.Fatalf("got %+v, want only Bold (58 skipped)", got)
	}
}

func TestParseSGRAttributesOutOfRangeExtendedColorAborted(t *testing.T) {
	// 38;2;300;0;0 is out of byte range and should be dropped, while the
	// parameters after the aborted sub-sequence are simply gone too since
	// the sub-sequence consumes them positionally.
	got := ParseSGRAttributes([]int64{38, 2, 300, 0, 0})
	if len(got) != 0 {
		t.Fatalf("got %+v, want no attributes from an out-of-range color", got)
	}
}

func TestSGRAttributeApplyReset(t *testing.T) {
	template := DefaultAttributes()
	template.SetFlag(FlagBold)
	template.Fg = IndexedColor(3)

	SGRAttribute{Kind: SGRReset}.Apply(&template)

	if template != DefaultAttributes() {
		t.Errorf("expected reset template, got %+v", template)
	}
}

func TestSGRAttributeApplyBlinkMutualExclusion(t *testing.T) {
	template := DefaultAttributes()
	sgrFlag(FlagBlinkSlow).Apply(&template)
	sgrFlag(FlagBlinkFast).Apply(&template)

	if template.HasFlag(FlagBlinkSlow) {
		t.Error("expected slow blink cleared by fast blink")
	}
	if !template.HasFlag(FlagBlinkFast) {
		t.Error("expected fast blink set")
	}
}
