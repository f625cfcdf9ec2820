package script

import (
	"fmt"

	"github.com/aretw0/termdialog/pkg/domain"
)

// Node is a resolved script node.
type Node struct {
	ID      string
	Lines   []domain.Line
	Options []domain.Option
}

// Script is a loaded dialogue: nodes in file order plus an index by id.
type Script struct {
	Title string
	Start string
	Nodes []*Node

	index map[string]*Node
}

// Node returns the node with the given id.
func (s *Script) Node(id string) (*Node, error) {
	n, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return n, nil
}

// Option returns the option with the given id offered by n.
func (n *Node) Option(id string) (domain.Option, error) {
	for _, opt := range n.Options {
		if opt.ID == id {
			return opt, nil
		}
	}
	return domain.Option{}, fmt.Errorf("%w: %s (node %s)", domain.ErrOptionNotFound, id, n.ID)
}

// Reachable returns the ids of nodes reachable from the start node, in visit order.
func (s *Script) Reachable() []string {
	visited := make(map[string]bool)
	var order []string
	queue := []string{s.Start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		n, ok := s.index[id]
		if !ok {
			continue
		}
		visited[id] = true
		order = append(order, id)

		for _, opt := range n.Options {
			if opt.Next != "" && !visited[opt.Next] {
				queue = append(queue, opt.Next)
			}
		}
	}
	return order
}
