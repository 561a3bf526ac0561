package scaffold

import (
	"errors"
	"strings"
	"testing"

	"github.com/jnew-dev/jnew/internal/config"
	jerrors "github.com/jnew-dev/jnew/internal/errors"
)

func TestTemplate(t *testing.T) {
	cfg := config.Default()

	for _, kind := range config.BuiltinKinds {
		if _, err := Template(cfg, kind); err != nil {
			t.Errorf("Template(%q) error: %v", kind, err)
		}
	}

	_, err := Template(cfg, "widget")
	if !errors.Is(err, jerrors.ErrConfig) {
		t.Fatalf("Template(widget) error = %v, want ErrConfig", err)
	}
	if !strings.Contains(jerrors.HintOf(err), "abstract_class") {
		t.Errorf("hint %q should list known kinds", jerrors.HintOf(err))
	}

	cfg.Templates[config.KindEnum] = ""
	if _, err := Template(cfg, config.KindEnum); !errors.Is(err, jerrors.ErrConfig) {
		t.Errorf("Template(enum) with empty template error = %v, want ErrConfig", err)
	}
}

func TestCheckRelease(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		release string
		wantErr bool
	}{
		{"record on 21", config.KindRecord, "21", false},
		{"record on 16", config.KindRecord, "16", false},
		{"record on 17.0.2", config.KindRecord, "17.0.2", false},
		{"record on 11", config.KindRecord, "11", true},
		{"record on 1.8", config.KindRecord, "1.8", true},
		{"record gate disabled", config.KindRecord, "", false},
		{"class on 1.8", config.KindClass, "1.8", false},
		{"bad release string", config.KindRecord, "latest", true},
		{"bad release ignored for ungated kind", config.KindEnum, "latest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRelease(tt.kind, tt.release)
			if tt.wantErr {
				if !errors.Is(err, jerrors.ErrConfig) {
					t.Errorf("CheckRelease(%q, %q) = %v, want ErrConfig", tt.kind, tt.release, err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckRelease(%q, %q) unexpected error: %v", tt.kind, tt.release, err)
			}
		})
	}
}

func TestLabelAndCommandName(t *testing.T) {
	if got := Label(config.KindAbstractClass); got != "abstract class" {
		t.Errorf("Label() = %q", got)
	}
	if got := CommandName(config.KindAbstractClass); got != "abstract-class" {
		t.Errorf("CommandName() = %q", got)
	}
	if got := CommandName(config.KindClass); got != "class" {
		t.Errorf("CommandName() = %q", got)
	}
}
