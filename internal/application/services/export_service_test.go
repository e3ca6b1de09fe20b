package services

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/media"
)

func exportTestSite() *content.Site {
	return &content.Site{
		ID:        "site-1",
		Slug:      "acme",
		BrandName: "Acme",
		GeneratedHTML: `<!DOCTYPE html>
<html><head><title>Acme</title></head>
<body><!-- build marker --><div class="pl-golden-jackpot">Acme</div></body></html>`,
		GeneratedCSS: "@keyframes spin { to { transform: rotate(360deg); } }",
	}
}

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("invalid zip: %v", err)
	}
	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		entries[f.Name] = string(body)
	}
	return entries
}

func newExportService(t *testing.T) *ExportService {
	return NewExportService(media.NewLogoProcessor(1<<20), testLogger(t))
}

func TestBuildArchiveContents(t *testing.T) {
	svc := newExportService(t)
	data, err := svc.BuildArchive(context.Background(), exportTestSite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readArchive(t, data)
	for _, name := range []string{"index.html", "styles.css", "README.md"} {
		if _, ok := entries[name]; !ok {
			t.Errorf("missing archive entry %s", name)
		}
	}
	if _, ok := entries["assets/logo.webp"]; ok {
		t.Error("logo entry present despite empty logo URL")
	}

	index := entries["index.html"]
	if !strings.Contains(index, "@keyframes spin") {
		t.Error("supplemental CSS not inlined into index.html")
	}
	if !strings.Contains(index, "<!-- build marker -->") {
		t.Error("standard export should keep HTML comments")
	}
	if strings.Contains(index, "contextmenu") {
		t.Error("standard export must not carry the protection script")
	}
	if !strings.Contains(entries["README.md"], "Acme") {
		t.Error("README missing brand name")
	}
}

func TestBuildProtectedArchive(t *testing.T) {
	svc := newExportService(t)
	data, err := svc.BuildProtectedArchive(context.Background(), exportTestSite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index := readArchive(t, data)["index.html"]
	if strings.Contains(index, "<!--") {
		t.Error("protected export should strip HTML comments")
	}
	if !strings.Contains(index, "contextmenu") {
		t.Error("protection script not injected")
	}
	if !strings.Contains(index, "</body>") {
		t.Error("document structure damaged by injection")
	}
	if idx := strings.Index(index, "contextmenu"); idx > strings.Index(index, "</body>") {
		t.Error("protection script must sit before </body>")
	}
}

func TestBuildArchiveSkipsUnreachableLogo(t *testing.T) {
	svc := newExportService(t)
	site := exportTestSite()
	site.LogoURL = "http://127.0.0.1:1/logo.png"

	data, err := svc.BuildArchive(context.Background(), site)
	if err != nil {
		t.Fatalf("logo failure must not fail the export: %v", err)
	}
	if _, ok := readArchive(t, data)["assets/logo.webp"]; ok {
		t.Error("unreachable logo should be skipped silently")
	}
}
