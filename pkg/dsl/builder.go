package dsl

import (
	"fmt"

	"github.com/aretw0/termdialog"
	"github.com/aretw0/termdialog/internal/script"
	"gopkg.in/yaml.v3"
)

// Builder manages the script construction.
type Builder struct {
	doc   script.Document
	nodes map[string]int
}

// New creates a new script builder.
func New(title string) *Builder {
	return &Builder{
		doc:   script.Document{Title: title},
		nodes: make(map[string]int),
	}
}

// Start sets the node the dialogue begins at. Defaults to the first node added.
func (b *Builder) Start(id string) *Builder {
	b.doc.Start = id
	return b
}

// Add creates a new node in the script.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if i, ok := b.nodes[id]; ok {
		return &NodeBuilder{index: i, builder: b}
	}
	b.doc.Nodes = append(b.doc.Nodes, script.NodeDocument{ID: id})
	b.nodes[id] = len(b.doc.Nodes) - 1
	return &NodeBuilder{index: b.nodes[id], builder: b}
}

// YAML renders the script in the format script files use.
func (b *Builder) YAML() ([]byte, error) {
	data, err := yaml.Marshal(b.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal script: %w", err)
	}
	return data, nil
}

// Build validates the script and returns an engine ready to play it.
func (b *Builder) Build(opts ...termdialog.Option) (*termdialog.Engine, error) {
	data, err := b.YAML()
	if err != nil {
		return nil, err
	}
	return termdialog.Parse(data, opts...)
}
