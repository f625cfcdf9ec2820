package script

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/aretw0/termdialog/pkg/domain"
)

// Validate checks that the start node exists, every option leads to a known
// node, and every line's markup stays inside its text without overlapping.
// All problems are reported together.
func (s *Script) Validate() error {
	var errs []error

	if _, err := s.Node(s.Start); err != nil {
		errs = append(errs, fmt.Errorf("start node: %w", err))
	}

	for _, n := range s.Nodes {
		for i, line := range n.Lines {
			if err := validateLine(line); err != nil {
				errs = append(errs, fmt.Errorf("node %s line %d: %w", n.ID, i, err))
			}
		}
		seen := make(map[string]bool, len(n.Options))
		for _, opt := range n.Options {
			if seen[opt.ID] {
				errs = append(errs, fmt.Errorf("node %s: duplicate option id %s", n.ID, opt.ID))
			}
			seen[opt.ID] = true
			if opt.Next == "" {
				continue
			}
			if _, err := s.Node(opt.Next); err != nil {
				errs = append(errs, fmt.Errorf("node %s option %s: %w", n.ID, opt.ID, err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateLine(line domain.Line) error {
	size := utf8.RuneCountInString(line.Text)
	attrs := slices.Clone(line.Attributes)
	slices.SortStableFunc(attrs, func(a, b domain.Attribute) int { return a.Position - b.Position })

	end := 0
	for _, a := range attrs {
		if a.Position < 0 || a.Length < 0 || a.End() > size {
			return fmt.Errorf("attribute %s [%d,%d) outside text of length %d", a.Name, a.Position, a.End(), size)
		}
		if a.Position < end {
			return fmt.Errorf("attribute %s at %d overlaps the previous attribute", a.Name, a.Position)
		}
		end = a.End()
	}
	return nil
}
