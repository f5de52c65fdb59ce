// Package manifest reads the config.json file declaring per-slot file
// additions.
package manifest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FileName is the exact manifest name; the checker only honors it at the mod
// root, never deeper in the tree.
const FileName = "config.json"

//go:embed schema.json
var manifestSchema string

// Document is a read-only snapshot of a mod's config.json. Keys under
// new-dir-files are slot-qualified paths; values list the files newly added
// under each.
type Document struct {
	NewDirFiles map[string][]string `json:"new-dir-files"`
}

// Keys returns the new-dir-files keys in sorted order for deterministic
// iteration.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.NewDirFiles))
	for k := range d.NewDirFiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MalformedManifestError reports a config.json that cannot be parsed or that
// lacks the expected shape. Fatal for the verification run that hit it.
type MalformedManifestError struct {
	Path    string
	Message string
	Cause   error
}

func (e *MalformedManifestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed manifest %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed manifest %s: %s", e.Path, e.Message)
}

func (e *MalformedManifestError) Unwrap() error {
	return e.Cause
}

// Load parses a config.json file, shape-checking it against the embedded
// schema before decoding.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MalformedManifestError{Path: path, Message: "failed to read manifest", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(manifestSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &MalformedManifestError{Path: path, Message: "failed to parse manifest JSON", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, &MalformedManifestError{Path: path, Message: strings.Join(msgs, "; ")}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedManifestError{Path: path, Message: "failed to decode manifest", Cause: err}
	}
	return &doc, nil
}
