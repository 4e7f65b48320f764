package sharpparse

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateCleanConfig(t *testing.T) {
	cfg := NewConfig().EnableTokens().
		RegisterSequence("let", nil).
		RegisterPattern(`[0-9]+`, nil).
		RegisterErrorHandler(func(*Context, string) {})

	issues := Validate(cfg)
	if len(issues) != 0 {
		t.Errorf("clean config produced issues: %v", issues)
	}
	if issues.Err() != nil {
		t.Errorf("Err() = %v, want nil", issues.Err())
	}
}

func TestValidateDuplicateCharHandlers(t *testing.T) {
	cfg := NewConfig().
		RegisterChar('x', nil).
		RegisterChar('x', nil)

	issues := Validate(cfg)
	if len(issues.Warnings()) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(issues.Warnings()), issues)
	}
	// Duplicate handlers are a conflict warning, not an error.
	if issues.Err() != nil {
		t.Errorf("Err() = %v, want nil", issues.Err())
	}
}

func TestValidateDuplicatePatterns(t *testing.T) {
	cfg := NewConfig().
		RegisterPattern(`[0-9]+`, nil).
		RegisterPattern(`[0-9]+`, nil)

	issues := Validate(cfg)
	if len(issues.Warnings()) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(issues.Warnings()), issues)
	}

	// The same pattern in different modes is fine.
	cfg = NewConfig().
		RegisterPattern(`[0-9]+`, nil).
		WithMode("m", func(m *ModeConfig) {
			m.RegisterPattern(`[0-9]+`, nil)
		})
	if issues := Validate(cfg); len(issues) != 0 {
		t.Errorf("cross-mode duplicate flagged: %v", issues)
	}
}

func TestValidateNonCompilingPattern(t *testing.T) {
	cfg := NewConfig().RegisterPattern(`[unclosed`, nil)

	issues := Validate(cfg)
	if issues.Err() == nil {
		t.Fatal("non-compiling pattern must be an error")
	}
}

func TestValidateTraceWithoutErrorHandlers(t *testing.T) {
	cfg := NewConfig().EnableTrace()

	issues := Validate(cfg)
	if len(issues.Warnings()) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(issues.Warnings()), issues)
	}

	cfg.RegisterErrorHandler(func(*Context, string) {})
	if issues := Validate(cfg); len(issues) != 0 {
		t.Errorf("warning persisted after registering an error handler: %v", issues)
	}
}

func TestValidateOutputIsStable(t *testing.T) {
	cfg := NewConfig().
		RegisterChar('a', nil).RegisterChar('a', nil).
		RegisterChar('z', nil).RegisterChar('z', nil).
		RegisterPattern(`[0-9]+`, nil).RegisterPattern(`[0-9]+`, nil).
		WithMode("beta", func(m *ModeConfig) {
			m.RegisterChar('x', nil).RegisterChar('x', nil)
			m.RegisterPattern(`[a-z]+`, nil).RegisterPattern(`[a-z]+`, nil)
		}).
		WithMode("alpha", func(m *ModeConfig) {
			m.RegisterChar('y', nil).RegisterChar('y', nil)
		})

	first := Validate(cfg)
	if len(first) != 6 {
		t.Fatalf("got %d issues, want 6: %v", len(first), first)
	}
	for i := 0; i < 10; i++ {
		if got := Validate(cfg); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d reported issues in a different order:\nfirst: %v\ngot:   %v", i, first, got)
		}
	}
}

func TestEmptyIdentifiersRejectedAtRegistration(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() *Config
	}{
		{"empty sequence", func() *Config { return NewConfig().RegisterSequence("", nil) }},
		{"empty pattern", func() *Config { return NewConfig().RegisterPattern("", nil) }},
		{"empty mode", func() *Config { return NewConfig().WithMode("", func(*ModeConfig) {}) }},
		{"zero parallelism", func() *Config { return NewConfig().SetMaxParallelism(0) }},
		{"negative min functions", func() *Config { return NewConfig().SetMinFunctionsForParallelism(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg()
			if Validate(cfg).Err() == nil {
				t.Error("expected an error-level validation issue")
			}

			// The invalid registration is dropped, not deferred to
			// scan time; the run still completes and surfaces the
			// configuration error on the context.
			ctx := cfg.RunString("x")
			found := false
			for _, e := range ctx.Errors() {
				if e.Kind == ConfigError {
					found = true
				}
			}
			if !found {
				t.Error("run did not surface the configuration error")
			}
		})
	}
}

func TestEmptyModeSkipsNestedBuilder(t *testing.T) {
	ran := false
	NewConfig().WithMode("", func(*ModeConfig) { ran = true })
	if ran {
		t.Error("nested builder must not run for an empty mode name")
	}
}

func TestIssuesError(t *testing.T) {
	var is Issues
	if got := is.Error(); got != "no issues" {
		t.Errorf("Error() = %q, want \"no issues\"", got)
	}

	is.errorf("first")
	if got := is.Error(); got != "first" {
		t.Errorf("Error() = %q, want \"first\"", got)
	}

	is.warnf("second")
	if got := is.Error(); !strings.Contains(got, "1 more") {
		t.Errorf("Error() = %q, want mention of 1 more issue", got)
	}
}
