// Package frontmatter splits snippet files into a YAML metadata block and a body.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// Delimiter opens and closes a metadata block. It must be alone on its line.
const Delimiter = "---"

// maxDepth bounds nesting, which also stops self-referencing aliases.
const maxDepth = 32

// tabWidth is the number of spaces substituted for each tab before parsing,
// since YAML forbids tabs in indentation.
const tabWidth = 4

// Result is the outcome of splitting a document.
type Result struct {
	// HasMetadata is true only when a block was found and parsed.
	HasMetadata bool

	// RawMetadata is the verbatim text between the delimiters. It is kept
	// when the block failed to parse and is empty when no block was closed.
	RawMetadata string

	// Body is the text after the block, or the whole input when there is
	// no usable block, trimmed in both cases.
	Body string

	// Metadata is the parsed mapping, nil when HasMetadata is false.
	Metadata domain.Metadata

	// Warning explains why a block was rejected. It wraps
	// domain.ErrMetadataParse and never makes the document unusable.
	Warning error
}

// Parse splits raw into metadata and body. It never fails: a block without
// a closing delimiter, or one that is not a YAML mapping, leaves the whole
// input as the body and sets Warning.
func Parse(raw string) Result {
	lines := strings.Split(raw, "\n")
	if strings.TrimSpace(lines[0]) != Delimiter {
		return Result{Body: strings.TrimSpace(raw)}
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return Result{
			Body:    strings.TrimSpace(raw),
			Warning: fmt.Errorf("%w: missing closing %q", domain.ErrMetadataParse, Delimiter),
		}
	}

	block := strings.Join(lines[1:closing], "\n")
	md, err := parseMetadata(strings.ReplaceAll(block, "\t", strings.Repeat(" ", tabWidth)))
	if err != nil {
		return Result{
			RawMetadata: block,
			Body:        strings.TrimSpace(raw),
			Warning:     fmt.Errorf("%w: %w", domain.ErrMetadataParse, err),
		}
	}

	return Result{
		HasMetadata: true,
		RawMetadata: block,
		Body:        strings.TrimSpace(strings.Join(lines[closing+1:], "\n")),
		Metadata:    md,
	}
}

// Title returns the metadata title rendered as text, if present and non-empty.
func (r Result) Title() (string, bool) {
	return r.text("title")
}

// Description returns the metadata description, or "".
func (r Result) Description() string {
	s, _ := r.text("description")
	return s
}

// Tags returns the metadata tags when they are an array of strings only.
// Any other shape yields an empty, non-nil slice.
func (r Result) Tags() []string {
	v, ok := r.Metadata.Lookup("tags")
	if !ok {
		return []string{}
	}
	tags, ok := v.StringSlice()
	if !ok {
		return []string{}
	}
	return tags
}

func (r Result) text(key string) (string, bool) {
	v, ok := r.Metadata.Lookup(key)
	if !ok {
		return "", false
	}
	s, ok := v.Text()
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

var errNotMapping = errors.New("metadata is not a mapping")

func parseMetadata(text string) (domain.Metadata, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, err
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return domain.Metadata{}, nil
		}
		node = node.Content[0]
	}
	switch node.Kind {
	case 0:
		// Empty or comment-only block.
		return domain.Metadata{}, nil
	case yaml.MappingNode:
		return mappingFromNode(node, 0)
	default:
		return nil, fmt.Errorf("%w: found %s", errNotMapping, describe(node))
	}
}

func mappingFromNode(node *yaml.Node, depth int) (domain.Metadata, error) {
	md := make(domain.Metadata, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		val := node.Content[i+1]

		if key.Kind != yaml.ScalarNode || key.Tag == "!!null" {
			return nil, fmt.Errorf("line %d: keys must be scalars, found %s", key.Line, describe(key))
		}

		if key.Tag == "!!merge" {
			merged, err := mergeFromNode(val, depth+1)
			if err != nil {
				return nil, err
			}
			md = append(md, merged...)
			continue
		}

		v, err := valueFromNode(val, depth+1)
		if err != nil {
			return nil, err
		}
		md = append(md, domain.Entry{Key: key.Value, Value: v})
	}
	return md, nil
}

// mergeFromNode expands a "<<" merge key whose value is a mapping or a
// sequence of mappings.
func mergeFromNode(node *yaml.Node, depth int) (domain.Metadata, error) {
	if depth > maxDepth {
		return nil, errors.New("metadata nested too deeply")
	}
	node = resolve(node)
	switch node.Kind {
	case yaml.MappingNode:
		return mappingFromNode(node, depth)
	case yaml.SequenceNode:
		var md domain.Metadata
		for _, item := range node.Content {
			m, err := mergeFromNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			md = append(md, m...)
		}
		return md, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping, found %s", node.Line, describe(node))
	}
}

func valueFromNode(node *yaml.Node, depth int) (domain.Value, error) {
	if depth > maxDepth {
		return domain.Value{}, errors.New("metadata nested too deeply")
	}

	switch node.Kind {
	case yaml.AliasNode:
		if node.Alias == nil {
			return domain.Value{}, fmt.Errorf("line %d: unknown alias", node.Line)
		}
		return valueFromNode(node.Alias, depth+1)
	case yaml.ScalarNode:
		return scalarFromNode(node)
	case yaml.SequenceNode:
		items := make([]domain.Value, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := valueFromNode(child, depth+1)
			if err != nil {
				return domain.Value{}, err
			}
			items = append(items, v)
		}
		return domain.Array(items...), nil
	case yaml.MappingNode:
		md, err := mappingFromNode(node, depth)
		if err != nil {
			return domain.Value{}, err
		}
		return domain.Mapping(md), nil
	default:
		return domain.Value{}, fmt.Errorf("line %d: unexpected %s", node.Line, describe(node))
	}
}

func scalarFromNode(node *yaml.Node) (domain.Value, error) {
	var decoded any
	if err := node.Decode(&decoded); err != nil {
		return domain.Value{}, err
	}

	switch v := decoded.(type) {
	case nil:
		return domain.Null(), nil
	case string:
		return domain.String(v), nil
	case bool:
		return domain.Bool(v), nil
	case int:
		return domain.Number(float64(v)), nil
	case int64:
		return domain.Number(float64(v)), nil
	case uint64:
		return domain.Number(float64(v)), nil
	case float64:
		return domain.Number(v), nil
	case time.Time:
		// Dates keep their source spelling.
		return domain.String(node.Value), nil
	default:
		return domain.String(node.Value), nil
	}
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func describe(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "null"
		}
		return "scalar " + node.Tag
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
