package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/ramltools/parser"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"title": "Test API"}

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputStructured(&buf, data, FormatJSON); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"title": "Test API"`) {
			t.Errorf("expected JSON output, got %q", buf.String())
		}
	})

	t.Run("yaml format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputStructured(&buf, data, FormatYAML); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "title: Test API") {
			t.Errorf("expected YAML output, got %q", buf.String())
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		var buf bytes.Buffer
		err := OutputStructured(&buf, data, "invalid")
		if err == nil {
			t.Error("expected error for invalid format")
		}
	})

	t.Run("text is not structured", func(t *testing.T) {
		var buf bytes.Buffer
		err := OutputStructured(&buf, data, FormatText)
		if err == nil {
			t.Error("expected error for text format")
		}
	})
}

func TestFormatSpecPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"-", "<stdin>"},
		{"api.raml", "api.raml"},
		{"/abs/path/api.raml", "/abs/path/api.raml"},
	}

	for _, tt := range tests {
		if got := FormatSpecPath(tt.path); got != tt.want {
			t.Errorf("FormatSpecPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSchemeDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		scheme *parser.SecurityScheme
		want   string
	}{
		{"oauth_2_0", nil, "Oauth 2 0"},
		{"basic-auth", nil, "Basic Auth"},
		{"custom.scheme", nil, "Custom Scheme"},
		{"oauth_2_0", &parser.SecurityScheme{DisplayName: "OAuth 2.0"}, "OAuth 2.0"},
		{"basic", &parser.SecurityScheme{}, "Basic"},
	}

	for _, tt := range tests {
		if got := SchemeDisplayName(tt.name, tt.scheme); got != tt.want {
			t.Errorf("SchemeDisplayName(%q, %+v) = %q, want %q", tt.name, tt.scheme, got, tt.want)
		}
	}
}
