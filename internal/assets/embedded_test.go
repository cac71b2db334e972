package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	page, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
	}
	for _, placeholder := range []string{"{{ Title }}", "{{ Content }}"} {
		if !strings.Contains(page, placeholder) {
			t.Errorf("built-in page template lacks %s", placeholder)
		}
	}

	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(\"nonexistent\") error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadTemplate("../page"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(\"../page\") error = %v, want ErrInvalidAssetName", err)
	}
}

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{"default", DefaultStyleName, nil},
		{"minimal", "minimal", nil},
		{"missing", "nonexistent", ErrStyleNotFound},
		{"invalid", "style.css", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := loader.LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
			if tt.wantErr == nil && !strings.Contains(css, "{") {
				t.Errorf("LoadStyle(%q) = %q, want CSS rules", tt.style, css)
			}
		})
	}
}

func TestEmbeddedLoader_Styles(t *testing.T) {
	t.Parallel()

	got := NewEmbeddedLoader().Styles()
	want := []string{DefaultStyleName, "minimal"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Styles() = %v, want %v", got, want)
	}
}
