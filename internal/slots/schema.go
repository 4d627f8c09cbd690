package slots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrConfigDocumentInvalid = errors.New("slots: configuration document invalid")
	ErrDuplicateSlotID       = errors.New("slots: duplicate slot id in configuration")
)

// configDocumentSchema constrains externally supplied slot configuration
// documents before they reach the registry.
const configDocumentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["slug", "slots"],
	"properties": {
		"slug": {"type": "string", "minLength": 1},
		"component_path": {"type": "string"},
		"slots": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "label", "type", "section"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"label": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"type": {"enum": ["text", "paragraph", "richText", "list"]},
					"default_value": {"type": "string"},
					"default_list": {"type": "array", "items": {"type": "string"}},
					"section": {"type": "string", "minLength": 1}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func documentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("slot-config.json", strings.NewReader(configDocumentSchema)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("slot-config.json")
	})
	return compiledSchema, compileErr
}

type configDocument struct {
	Slug          string        `json:"slug"`
	ComponentPath string        `json:"component_path"`
	Slots         []ContentSlot `json:"slots"`
}

// ParseDocument validates and decodes a JSON slot configuration document.
func ParseDocument(data []byte) (string, *SlotConfiguration, error) {
	schema, err := documentSchema()
	if err != nil {
		return "", nil, fmt.Errorf("compile slot config schema: %w", err)
	}

	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrConfigDocumentInvalid, err)
	}
	if err := schema.Validate(raw); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrConfigDocumentInvalid, err)
	}

	var doc configDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrConfigDocumentInvalid, err)
	}

	seen := make(map[string]struct{}, len(doc.Slots))
	for _, slot := range doc.Slots {
		if _, dup := seen[slot.ID]; dup {
			return "", nil, fmt.Errorf("%w: %s", ErrDuplicateSlotID, slot.ID)
		}
		seen[slot.ID] = struct{}{}
	}

	return doc.Slug, &SlotConfiguration{
		ComponentPath: doc.ComponentPath,
		Slots:         doc.Slots,
	}, nil
}

// LoadDirectory registers every *.json configuration document found under dir.
// Missing directories are tolerated so hosts can ship without overrides.
func LoadDirectory(dir string, registry *StaticRegistry) error {
	if strings.TrimSpace(dir) == "" || registry == nil {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read slot config dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read slot config %s: %w", entry.Name(), err)
		}
		slug, cfg, err := ParseDocument(data)
		if err != nil {
			return fmt.Errorf("slot config %s: %w", entry.Name(), err)
		}
		registry.Register(slug, cfg)
	}
	return nil
}
