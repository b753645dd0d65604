package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is the config location relative to the service's scripts directory.
	DefaultPath = "../config/config.yaml"

	JWTSection = "jwt"
	JWTKey     = "key"
)

var (
	ErrNotFound       = errors.New("config file not found or unreadable")
	ErrParse          = errors.New("config is not valid YAML")
	ErrMissingSection = errors.New("config section missing")
	ErrWrite          = errors.New("config write failed")
)

// Document is a parsed YAML configuration kept as a node tree so that
// comments, ordering and scalar styles survive a rewrite.
type Document struct {
	root yaml.Node
}

// Parse parses YAML content. Empty content yields an empty mapping. A stream
// holding more than one document is rejected since a rewrite keeps only one.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc.root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: multiple documents not supported", ErrParse)
	}
	if doc.root.Kind == 0 {
		doc.root = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}
	top := doc.top()
	if top == nil || top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrParse)
	}
	if key, dup := duplicateKey(top); dup {
		return nil, fmt.Errorf("%w: duplicate top-level key %q", ErrParse, key)
	}
	return doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: config path is required", ErrNotFound)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read config: %w", ErrNotFound, err)
	}
	return Parse(data)
}

// Lookup returns the scalar value at the given key path.
func (d *Document) Lookup(keys ...string) (string, bool) {
	node := d.top()
	for _, key := range keys {
		node = mappingValue(node, key)
		if node == nil {
			return "", false
		}
	}
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return "", false
	}
	return node.Value, true
}

// RequireSection fails with ErrMissingSection unless keys lead to a mapping.
func (d *Document) RequireSection(keys ...string) error {
	_, err := d.section(keys)
	return err
}

func (d *Document) section(keys []string) (*yaml.Node, error) {
	node := d.top()
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: empty document", ErrMissingSection)
	}
	for i, key := range keys {
		node = mappingValue(node, key)
		name := strings.Join(keys[:i+1], ".")
		if node == nil || node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %q must be a mapping", ErrMissingSection, name)
		}
		if dup, ok := duplicateKey(node); ok {
			return nil, fmt.Errorf("%w: duplicate key %q in %q", ErrParse, dup, name)
		}
	}
	return node, nil
}

// HasValue reports whether the key path holds something other than an empty
// or null scalar. It is the same test SetString uses to report a replacement.
func (d *Document) HasValue(keys ...string) bool {
	node := d.top()
	for _, key := range keys {
		node = mappingValue(node, key)
		if node == nil {
			return false
		}
	}
	return occupied(node)
}

// SetString sets the last key of path to value as a string scalar. Every
// parent must already exist as a mapping; only the final key may be added.
// It reports whether a non-empty value was replaced.
func (d *Document) SetString(value string, keys ...string) (bool, error) {
	if len(keys) == 0 {
		return false, errors.New("set config value: empty key path")
	}
	parent, err := d.section(keys[:len(keys)-1])
	if err != nil {
		return false, err
	}

	last := keys[len(keys)-1]
	idx := valueIndex(parent, last)
	fresh := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if idx < 0 {
		parent.Content = append(parent.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: last},
			fresh,
		)
		return false, nil
	}

	old := parent.Content[idx]
	replaced := occupied(resolve(old))
	if old.Kind == yaml.ScalarNode {
		fresh.Style = old.Style & (yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle)
	}
	fresh.HeadComment = old.HeadComment
	fresh.LineComment = old.LineComment
	fresh.FootComment = old.FootComment
	parent.Content[idx] = fresh
	return replaced, nil
}

// Marshal serializes the document with two-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the document as YAML to w.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&d.root); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return nil
}

func (d *Document) top() *yaml.Node {
	if d.root.Kind != yaml.DocumentNode || len(d.root.Content) == 0 {
		return nil
	}
	return resolve(d.root.Content[0])
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	node = resolve(node)
	idx := valueIndex(node, key)
	if idx < 0 {
		return nil
	}
	return resolve(node.Content[idx])
}

// valueIndex returns the index of key's value within a mapping node, or -1.
func valueIndex(node *yaml.Node, key string) int {
	if node == nil || node.Kind != yaml.MappingNode {
		return -1
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return i + 1
		}
	}
	return -1
}

func occupied(node *yaml.Node) bool {
	if node == nil || node.Kind != yaml.ScalarNode {
		return true
	}
	return node.Value != "" && node.Tag != "!!null"
}

// duplicateKey returns the first key that appears twice in a mapping. Merge
// keys are allowed to repeat.
func duplicateKey(node *yaml.Node) (string, bool) {
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == "<<" {
			continue
		}
		if seen[key] {
			return key, true
		}
		seen[key] = true
	}
	return "", false
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}
