package script

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/markup"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML script and validates it.
func Parse(data []byte) (*Script, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	s, err := Build(doc)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Build converts a decoded document into a Script without validating links.
func Build(doc Document) (*Script, error) {
	s := &Script{
		Title: doc.Title,
		Start: doc.Start,
		index: make(map[string]*Node, len(doc.Nodes)),
	}
	if s.Start == "" && len(doc.Nodes) > 0 {
		s.Start = doc.Nodes[0].ID
	}

	for _, nd := range doc.Nodes {
		if nd.ID == "" {
			return nil, fmt.Errorf("node missing id")
		}
		if _, dup := s.index[nd.ID]; dup {
			return nil, fmt.Errorf("duplicate node id: %s", nd.ID)
		}

		n := &Node{ID: nd.ID}
		for i, ld := range nd.Lines {
			line, err := buildLine(ld.Character, ld.Text, ld.Markup)
			if err != nil {
				return nil, fmt.Errorf("node %s line %d: %w", nd.ID, i, err)
			}
			n.Lines = append(n.Lines, line)
		}
		for i, od := range nd.Options {
			label, err := buildLine("", od.Text, od.Markup)
			if err != nil {
				return nil, fmt.Errorf("node %s option %d: %w", nd.ID, i, err)
			}
			id := od.ID
			if id == "" {
				id = strconv.Itoa(i)
			}
			n.Options = append(n.Options, domain.Option{
				ID:    id,
				Label: markup.Segment(label),
				Next:  od.Next,
			})
		}

		s.Nodes = append(s.Nodes, n)
		s.index[n.ID] = n
	}
	return s, nil
}

// buildLine turns a document line into a domain.Line. A character name is
// prefixed as "Name: " and recorded as a "character" attribute, shifting the
// other attributes past the prefix.
func buildLine(character, text string, attrs []AttributeDocument) (domain.Line, error) {
	line := domain.Line{Text: text}
	shift := 0
	if character != "" {
		prefix := character + ": "
		shift = utf8.RuneCountInString(prefix)
		line.Text = prefix + text
		line.Attributes = append(line.Attributes, domain.Attribute{
			Name:       domain.AttributeCharacter,
			Position:   0,
			Length:     shift,
			Properties: map[string]domain.Value{domain.PropertyName: domain.String(character)},
		})
	}

	for _, ad := range attrs {
		props := make(map[string]domain.Value, len(ad.Properties))
		for k, v := range ad.Properties {
			val, err := toValue(v)
			if err != nil {
				return domain.Line{}, fmt.Errorf("attribute %s property %s: %w", ad.Name, k, err)
			}
			props[k] = val
		}
		line.Attributes = append(line.Attributes, domain.Attribute{
			Name:       ad.Name,
			Position:   ad.Position + shift,
			Length:     ad.Length,
			Properties: props,
		})
	}
	return line, nil
}

func toValue(v any) (domain.Value, error) {
	switch v := v.(type) {
	case bool:
		return domain.Bool(v), nil
	case int:
		return domain.Int(int64(v)), nil
	case int64:
		return domain.Int(v), nil
	case uint64:
		if v <= math.MaxInt64 {
			return domain.Int(int64(v)), nil
		}
	case float64:
		if v == float64(int64(v)) {
			return domain.Int(int64(v)), nil
		}
	case string:
		return domain.String(v), nil
	}
	return domain.Value{}, fmt.Errorf("unsupported value %v (%T)", v, v)
}
