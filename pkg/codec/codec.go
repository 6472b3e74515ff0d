// Package codec converts the ordered note list to and from its stored form.
//
// Each format is a core.Codec selected by the data file's extension. All
// codecs are pure: they never touch the filesystem.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/plans/pkg/core"
	"gopkg.in/yaml.v3"
)

// DefaultExtension is the format used when none is configured.
const DefaultExtension = ".json"

// ErrUnsupportedFormat is returned for extensions with no registered codec.
var ErrUnsupportedFormat = errors.New("unsupported note format")

// DefaultCodecs returns the standard set of codecs keyed by extension.
func DefaultCodecs() map[string]core.Codec {
	return map[string]core.Codec{
		".json": NewJSONCodec(),
		".yaml": NewYAMLCodec(),
		".yml":  NewYAMLCodec(),
		".csv":  NewCSVCodec(),
	}
}

// ForExtension returns the codec for ext. The leading dot is optional.
func ForExtension(ext string) (core.Codec, error) {
	ext = NormalizeExtension(ext)
	c, ok := DefaultCodecs()[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return c, nil
}

// Extensions lists the registered extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(DefaultCodecs()))
	for ext := range DefaultCodecs() {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// NormalizeExtension lowercases ext and ensures the leading dot.
// An empty extension maps to DefaultExtension.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// isEmpty reports whether data holds no encoded content at all.
// A freshly created store is empty and decodes to an empty list.
func isEmpty(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

// normalize copies notes with dates in UTC so every format writes the same instant the same way.
func normalize(notes []core.Note) []core.Note {
	out := make([]core.Note, len(notes))
	for i, n := range notes {
		n.Date = n.Date.UTC()
		out[i] = n
	}
	return out
}

// --- JSON Codec ---

// JSONCodec stores notes as a JSON array.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (c *JSONCodec) Encode(notes []core.Note) ([]byte, error) {
	data, err := json.MarshalIndent(normalize(notes), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrEncodeFailure, err)
	}
	return data, nil
}

func (c *JSONCodec) Decode(data []byte) ([]core.Note, error) {
	if isEmpty(data) {
		return []core.Note{}, nil
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", core.ErrDecodeFailure, err)
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

// --- YAML Codec ---

// YAMLCodec stores notes as a YAML sequence.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

func (c *YAMLCodec) Encode(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(normalize(notes)); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrEncodeFailure, err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrEncodeFailure, err)
	}
	return buf.Bytes(), nil
}

func (c *YAMLCodec) Decode(data []byte) ([]core.Note, error) {
	if isEmpty(data) {
		return []core.Note{}, nil
	}

	var notes []core.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: invalid yaml: %w", core.ErrDecodeFailure, err)
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}
