package dsl

import "github.com/aretw0/termdialog/internal/script"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	index   int
	builder *Builder
}

func (n *NodeBuilder) node() *script.NodeDocument {
	return &n.builder.doc.Nodes[n.index]
}

// Say adds a line spoken by character. Markup positions count from the
// start of text, not from the name prefix.
func (n *NodeBuilder) Say(character, text string, markup ...Markup) *NodeBuilder {
	node := n.node()
	node.Lines = append(node.Lines, script.LineDocument{
		Character: character,
		Text:      text,
		Markup:    documents(markup),
	})
	return n
}

// Narrate adds a line with no speaker.
func (n *NodeBuilder) Narrate(text string, markup ...Markup) *NodeBuilder {
	return n.Say("", text, markup...)
}

// Option offers a choice leading to next. An empty next ends the dialogue.
func (n *NodeBuilder) Option(text, next string, markup ...Markup) *NodeBuilder {
	node := n.node()
	node.Options = append(node.Options, script.OptionDocument{
		Text:   text,
		Markup: documents(markup),
		Next:   next,
	})
	return n
}

// OptionID is Option with an explicit option id.
func (n *NodeBuilder) OptionID(id, text, next string, markup ...Markup) *NodeBuilder {
	n.Option(text, next, markup...)
	node := n.node()
	node.Options[len(node.Options)-1].ID = id
	return n
}
