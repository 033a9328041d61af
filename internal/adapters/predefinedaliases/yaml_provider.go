package predefinedaliases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the PredefinedAliasProvider interface
// by reading alias records from a YAML seed file.
//
// The file is a YAML sequence of mappings with alias and pattern keys, e.g.
// [{alias: "g <$&>", pattern: "https://www.google.com/search?q=<$&>"}].
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML seed file.
func NewYAMLProvider(filePath string) (ports.PredefinedAliasProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPredefinedAliases reads and parses alias records from the configured file.
// A missing or empty file yields an empty list and no error.
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.Record, error) {
	predefined := []alias.Record{}

	content, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return predefined, nil
		}
		return nil, fmt.Errorf("failed to read predefined aliases file %s: %w", p.filePath, err)
	}
	if len(content) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(&predefined); err != nil {
		// A file holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Record{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal predefined aliases from %s: %w", p.filePath, err)
	}

	for i, r := range predefined {
		if r.Alias == "" || r.Pattern == "" {
			return nil, fmt.Errorf("predefined alias #%d in %s needs both alias and pattern", i+1, p.filePath)
		}
	}
	return predefined, nil
}
