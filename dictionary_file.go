package toxic

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a dictionary file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for dictionary files that are neither JSON
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported dictionary format")

// dictionaryFile is the on-disk layout:
//
//	{
//	    "categories": {"insults": ["..."], "threats": ["..."]},
//	    "weights": {"insults": 2, "threats": 5}
//	}
//
// The weights object is optional.
type dictionaryFile struct {
	Categories orderedCategories `json:"categories" yaml:"categories"`
	Weights    fileWeights       `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// orderedCategories keeps categories in file order, which plain maps lose.
// A repeated key keeps its first position and takes its last value.
type orderedCategories []Entry

func (o *orderedCategories) set(c Category, phrases []string) {
	for i := range *o {
		if (*o)[i].Category == c {
			(*o)[i].Phrases = phrases
			return
		}
	}
	*o = append(*o, Entry{Category: c, Phrases: phrases})
}

func (o *orderedCategories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories must be an object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var phrases []string
		if err := dec.Decode(&phrases); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		o.set(Category(key), phrases)
	}

	_, err = dec.Token()
	return err
}

func (o orderedCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		phrases := e.Phrases
		if phrases == nil {
			phrases = []string{}
		}
		if err := enc.Encode(string(e.Category)); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(phrases); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *orderedCategories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: categories must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var phrases []string
		if err := node.Content[i+1].Decode(&phrases); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		o.set(Category(key), phrases)
	}
	return nil
}

// fileWeights decodes the weights object one category at a time so that a
// bad value is reported with its category.
type fileWeights Weights

func (w *fileWeights) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("weights must be an object: %w", err)
	}
	if raw == nil {
		return nil
	}

	out := make(fileWeights, len(raw))
	for key, value := range raw {
		var weight int
		if err := json.Unmarshal(value, &weight); err != nil {
			return fmt.Errorf("weight for category %q must be an integer, got %s", key, value)
		}
		out[Category(key)] = weight
	}
	*w = out
	return nil
}

func (w *fileWeights) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: weights must be a mapping", node.Line)
	}

	out := make(fileWeights, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		var weight int
		if err := value.Decode(&weight); err != nil {
			return fmt.Errorf("line %d: weight for category %q must be an integer, got %s", value.Line, key, value.Value)
		}
		out[Category(key)] = weight
	}
	*w = out
	return nil
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadDictionary reads a dictionary file. The returned Weights is nil when
// the file has no weights section. Weights must be integers. A category
// listed twice keeps its first position and its last phrase list.
func LoadDictionary(path string) (*Dictionary, Weights, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening dictionary file: %w", err)
	}
	defer f.Close()

	dict, weights, err := ReadDictionary(f, format)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return dict, weights, nil
}

// ReadDictionary decodes a dictionary in the given format.
func ReadDictionary(r io.Reader, format Format) (*Dictionary, Weights, error) {
	var file dictionaryFile

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&file); err != nil {
			return nil, nil, fmt.Errorf("error parsing dictionary JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("error parsing dictionary YAML: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return NewDictionary(file.Categories...), Weights(file.Weights), nil
}

// WriteJSON encodes the dictionary, and weights when non-nil, in the file
// layout LoadDictionary reads.
func (d *Dictionary) WriteJSON(w io.Writer, weights Weights) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(dictionaryFile{
		Categories: orderedCategories(d.Entries()),
		Weights:    fileWeights(weights),
	})
}

// LoadNames reads a list of names, one per line. Only the first CSV column
// is used and blank rows are skipped.
func LoadNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var names []string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading names: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
