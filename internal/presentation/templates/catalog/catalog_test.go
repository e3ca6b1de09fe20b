package catalog

import (
	"strings"
	"testing"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var allRenderers = map[string]func(*content.BrandConfig) (*content.RenderResult, error){
	"t1":  ClassicHero,
	"t2":  DarkLuxe,
	"t3":  FortuneWheel,
	"t4":  SlotMachine,
	"t5":  NeonArcade,
	"t6":  Minimal,
	"t7":  GoldenJackpot,
	"t8":  BonusPopup,
	"t9":  MegaWheel,
	"t10": FruitSlots,
	"t11": VIPLounge,
	"t12": CrashRocket,
	"t13": ScratchCard,
	"t14": LiveCasino,
	"t15": Sportsbook,
}

func testBrand() *content.BrandConfig {
	return &content.BrandConfig{
		BrandName: "Acme",
		Industry:  "Casino & Gaming",
		CTAURL:    "https://example.com/play",
		Colors: content.ColorPalette{
			Primary:   "#112233",
			Secondary: "#445566",
			Accent:    "#ffd700",
		},
		Copy: content.CopyBlock{
			Headline:    "Acme — Win Big Today!",
			Subheadline: "Spin and win.",
			CTA:         "PLAY NOW",
		},
	}
}

func TestRenderersProduceCompleteDocuments(t *testing.T) {
	brand := testBrand()
	for id, render := range allRenderers {
		result, err := render(brand)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", id, err)
		}
		if !strings.HasPrefix(result.HTML, "<!DOCTYPE html>") {
			t.Errorf("%s: output is not a complete document", id)
		}
		if !strings.Contains(result.HTML, "</html>") {
			t.Errorf("%s: output is truncated", id)
		}
		if !strings.Contains(result.HTML, "Acme") {
			t.Errorf("%s: brand name missing from output", id)
		}
		marker := Markers[id]
		if marker == "" {
			t.Fatalf("%s: no marker registered", id)
		}
		if !strings.Contains(result.HTML, marker) {
			t.Errorf("%s: marker class %q missing from output", id, marker)
		}
	}
}

func TestRenderersAreDeterministic(t *testing.T) {
	brand := testBrand()
	for id, render := range allRenderers {
		first, err := render(brand)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		second, err := render(brand)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if first.HTML != second.HTML || first.CSS != second.CSS {
			t.Errorf("%s: repeated render produced different output", id)
		}
	}
}

func TestRenderersApplyDefaults(t *testing.T) {
	empty := &content.BrandConfig{}
	result, err := GoldenJackpot(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{defaultHeadline, defaultCTA, defaultAccent, "Your Brand"} {
		if !strings.Contains(result.HTML, want) {
			t.Errorf("default %q missing from output", want)
		}
	}
}

func TestNormalizeRejectsMalformedColors(t *testing.T) {
	brand := testBrand()
	brand.Colors.Primary = `"></style><script>`
	brand.Colors.Secondary = "blue"
	v := normalize(brand)
	if v.Primary != defaultPrimary {
		t.Errorf("malformed primary not replaced, got %q", v.Primary)
	}
	if v.Secondary != defaultSecondary {
		t.Errorf("non-hex secondary not replaced, got %q", v.Secondary)
	}
	if v.Accent != "#ffd700" {
		t.Errorf("valid accent was replaced, got %q", v.Accent)
	}
}

func TestSplitWheelValues(t *testing.T) {
	slices := splitWheelValues("100, 250 ,LOSE")
	if len(slices) != 3 || slices[1] != "250" {
		t.Errorf("unexpected slices: %v", slices)
	}

	defaults := splitWheelValues("")
	if len(defaults) != 8 {
		t.Errorf("expected 8 default slices, got %d", len(defaults))
	}
}

func TestSupplementalCSS(t *testing.T) {
	brand := testBrand()
	withCSS := map[string]func(*content.BrandConfig) (*content.RenderResult, error){
		"t2": DarkLuxe, "t5": NeonArcade, "t9": MegaWheel, "t12": CrashRocket,
	}
	for id, render := range withCSS {
		result, err := render(brand)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if !strings.Contains(result.CSS, "@keyframes") {
			t.Errorf("%s: expected keyframe CSS, got %q", id, result.CSS)
		}
	}

	plain, err := Minimal(brand)
	if err != nil {
		t.Fatal(err)
	}
	if plain.CSS != "" {
		t.Errorf("t6: expected empty supplemental CSS, got %q", plain.CSS)
	}
}
