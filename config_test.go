package emberwick

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidateRejectsMissingRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Root = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("empty content root must fail validation")
	}
}

func TestConfigValidateRejectsBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("port 0 must fail validation")
	}

	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatalf("port 70000 must fail validation")
	}
}

func TestContentConfigPathResolution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Root = "site-content"

	if got := cfg.Content.BlogPath(); got != filepath.Join("site-content", "blog") {
		t.Fatalf("BlogPath = %q", got)
	}

	abs := string(filepath.Separator) + filepath.Join("var", "content", "blog")
	cfg.Content.BlogDir = abs
	if got := cfg.Content.BlogPath(); got != abs {
		t.Fatalf("absolute BlogDir must not be rejoined: %q", got)
	}
}
