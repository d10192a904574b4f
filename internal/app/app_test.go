package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seawavessolutions/seawaves-site/internal/contact"
)

func TestNewSubmitterPrefersEndpoint(t *testing.T) {
	sub := NewSubmitter(Config{ContactEndpoint: "https://example.com/contact", ContactTimeout: time.Second})
	httpSub, ok := sub.(*contact.HTTP)
	if !ok {
		t.Fatalf("expected HTTP submitter, got %T", sub)
	}
	if httpSub.Endpoint != "https://example.com/contact" {
		t.Fatalf("unexpected endpoint %q", httpSub.Endpoint)
	}
}

func TestNewSubmitterFallsBackToSimulated(t *testing.T) {
	sub := NewSubmitter(Config{ContactEndpoint: "  ", SimulateFailure: true})
	sim, ok := sub.(*contact.Simulated)
	if !ok {
		t.Fatalf("expected simulated submitter, got %T", sub)
	}
	if !sim.Fail || sim.Delay != contact.DefaultSimulatedDelay {
		t.Fatalf("unexpected simulated submitter %+v", sim)
	}
}

func TestNewModelLoadsEmbeddedContent(t *testing.T) {
	model, err := NewModel(Config{Width: 80, Height: 24})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	defer model.Teardown()
	if got := model.Controller().Registry().Len(); got != 10 {
		t.Fatalf("expected 10 sections, got %d", got)
	}
}

func TestNewModelReportsContentErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("popup:\n  target: nowhere\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewModel(Config{ContentPath: path}); err == nil {
		t.Fatalf("expected invalid content to fail")
	}
	if _, err := NewModel(Config{ContentPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected missing content to fail")
	}
}
