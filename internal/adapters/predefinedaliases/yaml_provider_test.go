package predefinedaliases

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
)

func TestNewYAMLProvider(t *testing.T) {
	t.Run("valid path", func(t *testing.T) {
		provider, err := NewYAMLProvider("aliases.yaml")
		if err != nil {
			t.Fatalf("NewYAMLProvider() unexpected error = %v", err)
		}
		if _, ok := provider.(*YAMLProvider); !ok {
			t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := NewYAMLProvider(""); err == nil {
			t.Error("NewYAMLProvider(\"\") expected an error, got nil")
		}
	})
}

func TestYAMLProvider_GetPredefinedAliases(t *testing.T) {
	validYAML := `
- alias: g <$&>
  pattern: https://www.google.com/search?q=<$&>
- alias: yt <$1>
  pattern: youtube.com/results?search_query=<$1>
`
	tests := []struct {
		name                string
		content             *string // nil means the file is not created
		wantAliases         []alias.Record
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "file does not exist",
			content:     nil,
			wantAliases: []alias.Record{},
		},
		{
			name:        "empty file",
			content:     ptr(""),
			wantAliases: []alias.Record{},
		},
		{
			name:        "comments only",
			content:     ptr("# nothing here\n"),
			wantAliases: []alias.Record{},
		},
		{
			name:        "empty list",
			content:     ptr("[]"),
			wantAliases: []alias.Record{},
		},
		{
			name:    "valid aliases",
			content: ptr(validYAML),
			wantAliases: []alias.Record{
				{Alias: "g <$&>", Pattern: "https://www.google.com/search?q=<$&>"},
				{Alias: "yt <$1>", Pattern: "youtube.com/results?search_query=<$1>"},
			},
		},
		{
			name:                "unknown field",
			content:             ptr("- alias: g\n  pattern: x\n  command: git\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal predefined aliases",
		},
		{
			name:                "not a list",
			content:             ptr("alias: g pattern: x"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal predefined aliases",
		},
		{
			name:                "missing pattern",
			content:             ptr("- alias: g\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "needs both alias and pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "aliases.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatalf("failed to write seed file: %v", err)
				}
			}

			provider, err := NewYAMLProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			aliases, err := provider.GetPredefinedAliases()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetPredefinedAliases() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetPredefinedAliases() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if aliases != nil {
					t.Errorf("GetPredefinedAliases() expected nil aliases on error, got %#v", aliases)
				}
				return
			}
			if !reflect.DeepEqual(aliases, tt.wantAliases) {
				t.Errorf("GetPredefinedAliases() aliases = %#v, want %#v", aliases, tt.wantAliases)
			}
		})
	}
}

func ptr(s string) *string { return &s }
