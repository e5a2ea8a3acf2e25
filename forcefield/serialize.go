package forcefield

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// document is the on-disk shape of a force field: per handler name, the
// ordered list of records with the id folded into the field map.
type document struct {
	Handlers map[string][]map[string]string `yaml:"handlers" json:"handlers"`
}

// LoadFile reads a force field from a file. The extension selects the
// format (JSON or YAML).
func LoadFile(path string, opts ...Option) (*ForceField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return ParseJSON(data, opts...)
	case ".yml", ".yaml":
		return ParseYAML(data, opts...)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ParseYAML reads a force field from YAML.
func ParseYAML(data []byte, opts ...Option) (*ForceField, error) {
	var doc document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return nil, err
	}
	return fromDocument(&doc, opts...)
}

// ParseJSON reads a force field from JSON.
func ParseJSON(data []byte, opts ...Option) (*ForceField, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return fromDocument(&doc, opts...)
}

func fromDocument(doc *document, opts ...Option) (*ForceField, error) {
	f := New(opts...)
	names := make([]string, 0, len(doc.Handlers))
	for name := range doc.Handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		handler := f.handler(name)
		for i, fields := range doc.Handlers[name] {
			id := fields["id"]
			if id == "" {
				return nil, fmt.Errorf("handler %s: record %d has no id", name, i)
			}
			rest := make(map[string]string, len(fields))
			for k, v := range fields {
				if k == "id" {
					continue
				}
				rest[k] = v
			}
			if rest["smirks"] == "" {
				return nil, fmt.Errorf("handler %s: record %s has no smirks", name, id)
			}
			if _, exists := handler.Get(rest["smirks"]); exists {
				return nil, fmt.Errorf("handler %s: duplicate smirks %q", name, rest["smirks"])
			}
			handler.Append(NewParameterRecord(id, rest))
		}
	}
	return f, nil
}

// MarshalYAML serializes the force field to YAML. Handler names are written
// sorted; records keep their insertion order.
func MarshalYAML(f *ForceField) ([]byte, error) {
	return yaml.Marshal(toDocument(f))
}

// MarshalJSON serializes the force field to JSON.
func MarshalJSON(f *ForceField) ([]byte, error) {
	return json.MarshalIndent(toDocument(f), "", "  ")
}

// Save writes the force field to a file, with the format selected by the
// extension.
func Save(f *ForceField, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = MarshalJSON(f)
	case ".yml", ".yaml":
		data, err = MarshalYAML(f)
	default:
		return fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func toDocument(f *ForceField) *document {
	doc := &document{Handlers: make(map[string][]map[string]string)}
	names := f.HandlerNames()
	sort.Strings(names)
	for _, name := range names {
		handler := f.handlers[name]
		records := make([]map[string]string, 0, handler.Len())
		for _, rec := range handler.Records() {
			fields := rec.Fields()
			fields["id"] = rec.ID()
			records = append(records, fields)
		}
		doc.Handlers[name] = records
	}
	return doc
}
