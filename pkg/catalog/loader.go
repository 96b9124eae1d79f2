package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"
)

// documentSeparator splits multi-document YAML files.
var documentSeparator = regexp.MustCompile(`(?m)^---\s*$`)

// Parse decodes one or more YAML documents into entities. Empty documents
// are skipped. Every decoded entity is validated and assigned a UID when it
// carries none; the namespace defaults to "default".
func Parse(data []byte) ([]Entity, error) {
	var entities []Entity
	for i, doc := range documentSeparator.Split(string(data), -1) {
		if strings.TrimSpace(doc) == "" {
			continue
		}

		var entity Entity
		if err := yaml.Unmarshal([]byte(doc), &entity); err != nil {
			return nil, fmt.Errorf("failed to parse entity document %d: %w", i, err)
		}
		if err := validate(entity); err != nil {
			return nil, fmt.Errorf("invalid entity document %d: %w", i, err)
		}

		entity.Kind = strings.ToLower(entity.Kind)
		if entity.Metadata.Namespace == "" {
			entity.Metadata.Namespace = DefaultNamespace
		}
		if entity.Metadata.UID == "" {
			entity.Metadata.UID = uuid.NewString()
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// LoadFile reads and parses a single entity YAML file.
func LoadFile(path string) ([]Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity file: %w", err)
	}

	entities, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entities, nil
}

// LoadPaths loads entities from the given files and directories.
// Directories are walked recursively; only .yaml and .yml files are read.
func LoadPaths(paths []string) ([]Entity, error) {
	var entities []Entity
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if !info.IsDir() {
			loaded, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			entities = append(entities, loaded...)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isYAMLFile(p) {
				return nil
			}
			loaded, err := LoadFile(p)
			if err != nil {
				return err
			}
			entities = append(entities, loaded...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	}
	return entities, nil
}

func isYAMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func validate(e Entity) error {
	if e.Kind == "" {
		return fmt.Errorf("missing kind")
	}
	if e.Metadata.Name == "" {
		return fmt.Errorf("missing metadata.name")
	}
	return nil
}
