package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/termdialog/pkg/dsl"
)

// Words used to build lines. Mixed scripts and widths exercise the wrapper.
var words = []string{
	"the", "ledger", "was", "never", "here", "lamplight", "archive", "dust",
	"extraordinarily", "café", "naïve", "東京", "データ", "🙂", "👍🏽", "a",
}

var characters = []string{"Archivist", "Mara", "Guard", ""}

func main() {
	target := "generated.yaml"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}
	nodes := 5
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		check(err)
		nodes = n
	}

	// Fixed seed: the same arguments always generate the same script.
	rng := rand.New(rand.NewPCG(uint64(nodes), 42))
	b := dsl.New(fmt.Sprintf("Generated (%d nodes)", nodes))

	for i := range nodes {
		node := b.Add(nodeID(i))
		for range 1 + rng.IntN(3) {
			text := sentence(rng)
			node.Say(characters[rng.IntN(len(characters))], text, markup(rng, text)...)
		}
		if i == nodes-1 {
			continue
		}
		for j := range 1 + rng.IntN(3) {
			next := nodeID(i + 1 + rng.IntN(nodes-i-1))
			if j == 0 {
				next = nodeID(i + 1)
			}
			text := sentence(rng)
			node.Option(text, next, markup(rng, text)...)
		}
	}

	data, err := b.YAML()
	check(err)
	check(os.WriteFile(target, data, 0o644))
	fmt.Printf("Generated %d nodes in: %s\n", nodes, target)
}

func nodeID(i int) string { return fmt.Sprintf("node-%d", i) }

func sentence(rng *rand.Rand) string {
	n := 3 + rng.IntN(12)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rng.IntN(len(words))]
	}
	return strings.Join(parts, " ") + "."
}

// markup styles at most one span of text so attributes never overlap.
func markup(rng *rand.Rand, text string) []dsl.Markup {
	size := utf8.RuneCountInString(text)
	if rng.IntN(2) == 0 || size < 2 {
		return nil
	}
	pos := rng.IntN(size - 1)
	length := 1 + rng.IntN(size-pos)

	styles := []dsl.Markup{
		dsl.Bold(pos, length),
		dsl.Italic(pos, length),
		dsl.Color(pos, length, rng.IntN(256)),
		dsl.Zalgo(pos, length),
	}
	return []dsl.Markup{styles[rng.IntN(len(styles))].With(dsl.Color(pos, length, 1+rng.IntN(15)))}
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
