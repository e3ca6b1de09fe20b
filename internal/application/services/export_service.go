package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/media"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
)

// ExportService packages generated sites into deployable ZIP bundles.
type ExportService struct {
	logos  *media.LogoProcessor
	logger *logging.ChanneledLogger
}

// NewExportService creates a new export service
func NewExportService(logos *media.LogoProcessor, logger *logging.ChanneledLogger) *ExportService {
	return &ExportService{logos: logos, logger: logger}
}

// antiCloneScript is injected into protected exports. It is a
// deterrent against casual copying, not a security measure.
const antiCloneScript = `<script>
(function(){
  document.addEventListener('contextmenu',function(e){e.preventDefault();});
  document.addEventListener('keydown',function(e){
    if(e.key==='F12'||((e.ctrlKey||e.metaKey)&&e.shiftKey&&(e.key==='I'||e.key==='J'))||((e.ctrlKey||e.metaKey)&&e.key==='u')){
      e.preventDefault();
    }
  });
  var t=setInterval(function(){
    var s=Date.now();debugger;
    if(Date.now()-s>100){document.body.innerHTML='';clearInterval(t);}
  },2000);
})();
</script>`

var htmlCommentPattern = regexp.MustCompile(`<!--[\s\S]*?-->`)

// BuildArchive assembles the standard export bundle: index.html with
// the CSS inlined, a standalone styles.css, the processed logo when
// one can be fetched, and a README.
func (s *ExportService) BuildArchive(ctx context.Context, site *content.Site) ([]byte, error) {
	return s.buildArchive(ctx, site, false)
}

// BuildProtectedArchive is the token-download variant: HTML comments
// are stripped and the anti-clone script is injected before </body>.
func (s *ExportService) BuildProtectedArchive(ctx context.Context, site *content.Site) ([]byte, error) {
	return s.buildArchive(ctx, site, true)
}

func (s *ExportService) buildArchive(ctx context.Context, site *content.Site, protected bool) ([]byte, error) {
	html := s.inlineCSS(site.GeneratedHTML, site.GeneratedCSS)
	if protected {
		html = htmlCommentPattern.ReplaceAllString(html, "")
		html = injectBeforeBodyClose(html, antiCloneScript)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", []byte(html)},
		{"styles.css", []byte(site.GeneratedCSS)},
		{"README.md", []byte(s.readme(site))},
	}

	if site.LogoURL != "" {
		logo, err := s.logos.FetchAndProcess(ctx, site.LogoURL)
		if err != nil {
			s.logger.Export().Debug("Skipping logo in export bundle",
				"siteId", site.ID, "error", err.Error())
		} else {
			files = append(files, struct {
				name string
				data []byte
			}{"assets/logo.webp", logo})
		}
	}

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", f.name, err)
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, fmt.Errorf("failed to write %s to archive: %w", f.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	s.logger.Export().Info("Built export bundle",
		"siteId", site.ID, "protected", protected, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// inlineCSS places supplemental CSS into the document head so
// index.html works standalone. styles.css ships alongside regardless.
func (s *ExportService) inlineCSS(html, css string) string {
	if css == "" {
		return html
	}
	block := fmt.Sprintf("<style>\n%s\n</style>\n</head>", css)
	if strings.Contains(html, "</head>") {
		return strings.Replace(html, "</head>", block, 1)
	}
	return html
}

func injectBeforeBodyClose(html, snippet string) string {
	if strings.Contains(html, "</body>") {
		return strings.Replace(html, "</body>", snippet+"\n</body>", 1)
	}
	return html + snippet
}

func (s *ExportService) readme(site *content.Site) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", site.BrandName)
	b.WriteString("Generated landing page bundle.\n\n")
	b.WriteString("## Deployment\n\n")
	b.WriteString("Upload the contents of this archive to any static host\n")
	b.WriteString("(Netlify, Vercel, S3, nginx). `index.html` is self-contained;\n")
	b.WriteString("`styles.css` is included separately for customization.\n")
	if site.LogoURL != "" {
		b.WriteString("\nThe brand logo, when bundled, is at `assets/logo.webp`.\n")
	}
	return b.String()
}
