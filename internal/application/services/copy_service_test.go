package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToConsole = false
	cfg.OutputToFile = true
	cfg.LogDirectory = t.TempDir()
	logger, err := logging.NewChanneledLogger(cfg)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

type stubGenerator struct {
	response   string
	err        error
	configured bool
	calls      int
}

func (g *stubGenerator) Configured() bool { return g.configured }

func (g *stubGenerator) Generate(ctx context.Context, prompt, inputText string) (string, error) {
	g.calls++
	return g.response, g.err
}

func TestFallbackCopyGamingIndustries(t *testing.T) {
	svc := NewCopyService(&stubGenerator{}, time.Second, testLogger(t))

	for _, industry := range []string{"Casino & Gaming", "online casino", "Entertainment", "iGaming"} {
		got := svc.GenerateMarketingCopy(context.Background(), CopyRequest{
			BrandName: "Acme",
			Industry:  industry,
		})
		if !strings.Contains(got.Headline, "Win Big") {
			t.Errorf("industry %q: expected gaming copy, got headline %q", industry, got.Headline)
		}
		if got.CTA != "PLAY NOW" {
			t.Errorf("industry %q: unexpected CTA %q", industry, got.CTA)
		}
	}
}

func TestFallbackCopyGenericIndustries(t *testing.T) {
	svc := NewCopyService(&stubGenerator{}, time.Second, testLogger(t))

	got := svc.GenerateMarketingCopy(context.Background(), CopyRequest{
		BrandName: "Acme",
		Industry:  "Insurance",
	})
	if strings.Contains(got.Headline, "Win Big") {
		t.Errorf("generic industry got gaming copy: %q", got.Headline)
	}
	if !strings.Contains(got.Headline, "Acme") {
		t.Errorf("brand missing from headline: %q", got.Headline)
	}
}

func TestFallbackCopyIsDeterministic(t *testing.T) {
	svc := NewCopyService(&stubGenerator{}, time.Second, testLogger(t))
	req := CopyRequest{BrandName: "Acme", Industry: "Casino & Gaming"}

	first := svc.GenerateMarketingCopy(context.Background(), req)
	for i := 0; i < 10; i++ {
		if got := svc.GenerateMarketingCopy(context.Background(), req); got.Headline != first.Headline {
			t.Fatalf("fallback copy unstable: %q then %q", first.Headline, got.Headline)
		}
	}
}

func TestGeneratorErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{configured: true, err: errors.New("api down")}
	svc := NewCopyService(gen, time.Second, testLogger(t))

	got := svc.GenerateMarketingCopy(context.Background(), CopyRequest{
		BrandName: "Acme", Industry: "Casino",
	})
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if !strings.Contains(got.Headline, "Win Big") {
		t.Errorf("expected fallback copy after error, got %q", got.Headline)
	}
}

func TestGeneratorResponseParsed(t *testing.T) {
	gen := &stubGenerator{
		configured: true,
		response: "```json\n" + `{"headline":"Go Acme","subheadline":"The best.","cta":"JOIN","seoKeywords":["acme"]}` + "\n```",
	}
	svc := NewCopyService(gen, time.Second, testLogger(t))

	got := svc.GenerateMarketingCopy(context.Background(), CopyRequest{BrandName: "Acme"})
	if got.Headline != "Go Acme" || got.CTA != "JOIN" {
		t.Errorf("generated copy not used: %+v", got)
	}
}

func TestIncompleteResponseFallsBack(t *testing.T) {
	gen := &stubGenerator{
		configured: true,
		response:   `{"headline":"Go Acme","subheadline":"","cta":"JOIN"}`,
	}
	svc := NewCopyService(gen, time.Second, testLogger(t))

	got := svc.GenerateMarketingCopy(context.Background(), CopyRequest{
		BrandName: "Acme", Industry: "Retail",
	})
	if got.Headline == "Go Acme" {
		t.Error("incomplete response should have been rejected")
	}
	if got.Subheadline == "" {
		t.Error("fallback should always fill the subheadline")
	}
}
