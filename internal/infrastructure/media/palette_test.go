package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func solidPNG(t *testing.T, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractPaletteSolidColor(t *testing.T) {
	raw := solidPNG(t, color.NRGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff})
	palette, err := ExtractPalette(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if palette.Primary != "#204080" {
		t.Errorf("primary = %s, want #204080", palette.Primary)
	}
	if palette.Secondary == palette.Primary || palette.Accent == palette.Primary {
		t.Error("derived colors should differ from primary")
	}
}

func TestExtractPaletteRejectsTransparentImage(t *testing.T) {
	raw := solidPNG(t, color.NRGBA{A: 0})
	if _, err := ExtractPalette(raw); err == nil {
		t.Fatal("fully transparent image should fail extraction")
	}
}

func TestExtractPaletteRejectsGarbage(t *testing.T) {
	if _, err := ExtractPalette([]byte("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestIndustryPaletteDeterministic(t *testing.T) {
	first := IndustryPalette("Casino & Gaming")
	for i := 0; i < 10; i++ {
		if IndustryPalette("Casino & Gaming") != first {
			t.Fatal("industry palette unstable")
		}
	}
	if first == IndustryPalette("Insurance") {
		t.Error("casino palette should differ from the generic default")
	}
}

func TestIndustryPaletteSubstringMatch(t *testing.T) {
	if IndustryPalette("online CASINO platform") != industryPalettes["casino"] {
		t.Error("substring match failed for casino")
	}
	if IndustryPalette("") != defaultPalette {
		t.Error("empty industry should get the default palette")
	}
}
