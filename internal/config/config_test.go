package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected terminal-sized viewport, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter || cfg.App.DisablePopup || cfg.App.SimulateFailure {
		t.Fatalf("expected boolean options off, got %+v", cfg.App)
	}
	if cfg.App.ContactEndpoint != "" || cfg.App.ContactTimeout != 0 {
		t.Fatalf("expected no endpoint, got %+v", cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	environ := []string{
		"SEAWAVES_WIDTH=100",
		"SEAWAVES_HEIGHT=40",
		"SEAWAVES_CONTACT_ENDPOINT=https://env.example.com/contact",
		"SEAWAVES_NO_POPUP=true",
		"SEAWAVES_LOG_FILE=/tmp/env.log",
	}
	args := []string{"--width", "90", "--contact-endpoint=https://flag.example.com/contact", "--contact-timeout", "3s", "--trace"}
	cfg, err := LoadArgs(args, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected flag width 90, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 40 {
		t.Fatalf("expected env height 40, got %d", cfg.App.Height)
	}
	if cfg.App.ContactEndpoint != "https://flag.example.com/contact" {
		t.Fatalf("unexpected endpoint %q", cfg.App.ContactEndpoint)
	}
	if cfg.App.ContactTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.App.ContactTimeout)
	}
	if !cfg.App.DisablePopup {
		t.Fatalf("expected popup disabled from env")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Flags["width"] != "90" || cfg.Flags["contactTimeout"] != "3s" {
		t.Fatalf("unexpected flags %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SEAWAVES_WIDTH=wide", "SEAWAVES_FOOTER=maybe", "SEAWAVES_CONTACT_TIMEOUT=soon", "junk"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter || cfg.App.ContactTimeout != 0 {
		t.Fatalf("expected fallbacks for malformed env, got %+v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeValues(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height=-5"},
		{"--contact-timeout", "-2s"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag to fail")
	}
}

func TestValidateEndpoint(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/contact": true,
		"http://localhost:8080/form":  true,
		"ftp://example.com/contact":   false,
		"example.com/contact":         false,
		"https://":                    false,
	}
	for endpoint, valid := range cases {
		cfg, err := LoadArgs([]string{"--contact-endpoint", endpoint}, nil)
		if err != nil {
			t.Fatalf("LoadArgs(%q): %v", endpoint, err)
		}
		err = Validate(cfg)
		if valid && err != nil {
			t.Fatalf("expected %q to be valid, got %v", endpoint, err)
		}
		if !valid && err == nil {
			t.Fatalf("expected %q to be rejected", endpoint)
		}
	}
}
