package templates

import (
	"testing"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/presentation/templates/catalog"
)

func TestRemapForStorageIsTotal(t *testing.T) {
	r := NewRegistry(testLogger(t))
	for _, id := range r.TemplateIDs() {
		mapped := RemapForStorage(id)
		if !LegacyAllowed(mapped) {
			t.Errorf("RemapForStorage(%s) = %s, outside the constrained set", id, mapped)
		}
	}

	if got := RemapForStorage("t99"); got != DefaultTemplateID {
		t.Errorf("unknown id mapped to %s, want default", got)
	}
}

func TestRemapForStoragePassesThroughAllowedIDs(t *testing.T) {
	for _, id := range []string{"t1", "t4", "t8"} {
		if got := RemapForStorage(id); got != id {
			t.Errorf("RemapForStorage(%s) = %s, want identity", id, got)
		}
	}
}

func TestRecoverAppTemplateIDFromMarker(t *testing.T) {
	r := NewRegistry(testLogger(t))
	brand := &content.BrandConfig{BrandName: "Acme"}

	// Render every extended template, store it under its collapsed id,
	// and check recovery round-trips.
	for _, extID := range []string{"t9", "t10", "t11", "t12", "t13", "t14", "t15"} {
		result, err := r.RenderWithFallback(extID, brand)
		if err != nil {
			t.Fatalf("%s: %v", extID, err)
		}
		collapsed := RemapForStorage(extID)
		if got := RecoverAppTemplateID(collapsed, result.HTML); got != extID {
			t.Errorf("RecoverAppTemplateID(%s, <%s markup>) = %s, want %s",
				collapsed, extID, got, extID)
		}
	}
}

func TestRecoverAppTemplateIDKeepsStoredIDWithoutMarker(t *testing.T) {
	html := `<!DOCTYPE html><html><body><div class="pl-fortune-wheel"></div></body></html>`
	if got := RecoverAppTemplateID("t3", html); got != "t3" {
		t.Errorf("plain t3 row recovered as %s", got)
	}
	if got := RecoverAppTemplateID("t6", "<html></html>"); got != "t6" {
		t.Errorf("t6 row with no markers recovered as %s", got)
	}
}

func TestRecoverAppTemplateIDIsStable(t *testing.T) {
	html := `<div class="` + catalog.Markers["t14"] + `">`
	first := RecoverAppTemplateID("t7", html)
	for i := 0; i < 100; i++ {
		if got := RecoverAppTemplateID("t7", html); got != first {
			t.Fatalf("recovery unstable: %s then %s", first, got)
		}
	}
	if first != "t14" {
		t.Errorf("expected t14, got %s", first)
	}
}

func TestRecoverAppTemplateIDExtendedRowsPassThrough(t *testing.T) {
	if got := RecoverAppTemplateID("t12", "<html></html>"); got != "t12" {
		t.Errorf("extended stored id not kept, got %s", got)
	}
	if got := RecoverAppTemplateID("t99", ""); got != DefaultTemplateID {
		t.Errorf("unknown stored id should fall to default, got %s", got)
	}
}
