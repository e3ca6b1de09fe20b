package templates

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
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

func TestLookupUnknownIDResolvesToDefault(t *testing.T) {
	r := NewRegistry(testLogger(t))
	brand := &content.BrandConfig{BrandName: "Acme"}

	result, err := r.RenderWithFallback("t99", brand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.HTML, "pl-golden-jackpot") {
		t.Error("unknown id did not route to the default renderer")
	}
}

func TestRenderWithFallbackRetriesExactlyOnce(t *testing.T) {
	r := NewRegistry(testLogger(t))

	var defaultCalls int32
	real := r.Lookup(DefaultTemplateID)
	r.Override("t3", func(b *content.BrandConfig) (*content.RenderResult, error) {
		return nil, errors.New("boom")
	})
	r.Override(DefaultTemplateID, func(b *content.BrandConfig) (*content.RenderResult, error) {
		atomic.AddInt32(&defaultCalls, 1)
		return real(b)
	})

	result, err := r.RenderWithFallback("t3", &content.BrandConfig{BrandName: "Acme"})
	if err != nil {
		t.Fatalf("fallback should have succeeded: %v", err)
	}
	if got := atomic.LoadInt32(&defaultCalls); got != 1 {
		t.Errorf("default renderer invoked %d times, want 1", got)
	}
	if !strings.Contains(result.HTML, "pl-golden-jackpot") {
		t.Error("fallback did not produce the default template")
	}
}

func TestRenderWithFallbackSurfacesDoubleFailure(t *testing.T) {
	r := NewRegistry(testLogger(t))
	fail := func(b *content.BrandConfig) (*content.RenderResult, error) {
		return nil, errors.New("boom")
	}
	r.Override("t3", fail)
	r.Override(DefaultTemplateID, fail)

	_, err := r.RenderWithFallback("t3", &content.BrandConfig{})
	if !errors.Is(err, content.ErrTemplateRender) {
		t.Fatalf("expected ErrTemplateRender, got %v", err)
	}
}

func TestRenderSafelyRecoversPanics(t *testing.T) {
	r := NewRegistry(testLogger(t))
	r.Override("t3", func(b *content.BrandConfig) (*content.RenderResult, error) {
		panic("template exploded")
	})

	result, err := r.RenderWithFallback("t3", &content.BrandConfig{BrandName: "Acme"})
	if err != nil {
		t.Fatalf("panic should have fallen back to the default: %v", err)
	}
	if result == nil || result.HTML == "" {
		t.Fatal("fallback produced no output")
	}
}

func TestRenderSafelyRejectsEmptyOutput(t *testing.T) {
	r := NewRegistry(testLogger(t))
	r.Override("t3", func(b *content.BrandConfig) (*content.RenderResult, error) {
		return &content.RenderResult{HTML: ""}, nil
	})

	result, err := r.RenderWithFallback("t3", &content.BrandConfig{BrandName: "Acme"})
	if err != nil {
		t.Fatalf("empty output should have fallen back: %v", err)
	}
	if !strings.Contains(result.HTML, "pl-golden-jackpot") {
		t.Error("empty renderer output did not trigger fallback")
	}
}

func TestTemplateIDsStableOrder(t *testing.T) {
	r := NewRegistry(testLogger(t))
	ids := r.TemplateIDs()
	if len(ids) != 15 {
		t.Fatalf("expected 15 templates, got %d", len(ids))
	}
	if ids[0] != "t1" || ids[8] != "t9" || ids[9] != "t10" || ids[14] != "t15" {
		t.Errorf("unexpected ordering: %v", ids)
	}
}
