package font

import "testing"

func TestLookupKnownGlyph(t *testing.T) {
	g, ok := Lookup('A')
	if !ok {
		t.Fatal("expected glyph for 'A'")
	}
	if !g.Bit(2, 0) {
		t.Error("'A' glyph should have its apex pixel set at (2,0)")
	}
}

func TestLookupUnknownGlyphFallsBack(t *testing.T) {
	_, ok := Lookup('a')
	if ok {
		t.Error("lowercase letters are not in the built-in table, expected ok=false")
	}
}

func TestLookupOutOfRange(t *testing.T) {
	_, ok := Lookup(0x1F600)
	if ok {
		t.Error("non-ASCII rune should not resolve")
	}
}

func TestSpaceGlyphIsBlank(t *testing.T) {
	g, ok := Lookup(' ')
	if !ok {
		t.Fatal("expected glyph for space")
	}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if g.Bit(x, y) {
				t.Fatalf("space glyph should be blank, bit set at (%d,%d)", x, y)
			}
		}
	}
}
