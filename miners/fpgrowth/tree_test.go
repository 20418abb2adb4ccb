package fpgrowth

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"strings"
)

func basketPaths() []path {
	return []path{
		{items: []string{"bread", "eggs", "milk"}, count: 1},
		{items: []string{"bread", "butter"}, count: 1},
		{items: []string{"butter", "eggs", "milk"}, count: 1},
		{items: []string{"bread", "butter", "milk"}, count: 1},
		{items: []string{"bread", "eggs"}, count: 1},
	}
}

func TestTreeHeaders(x *testing.T) {
	t := assert.New(x)
	tr := newTree(basketPaths(), 2)
	counts := make(map[string]int, len(tr.headers))
	for _, h := range tr.headers {
		counts[h.item] = h.count
	}
	t.Equal(map[string]int{"bread": 4, "butter": 3, "eggs": 3, "milk": 3}, counts)
	// rank orders descending frequency, label breaking the ties
	t.Equal("bread", tr.headers[0].item)
	t.Equal(0, tr.rank["bread"])
	t.Equal(1, tr.rank["butter"])
	t.Equal(2, tr.rank["eggs"])
	t.Equal(3, tr.rank["milk"])
}

func TestTreeFiltersInfrequent(x *testing.T) {
	t := assert.New(x)
	tr := newTree(basketPaths(), 4)
	t.Equal(1, len(tr.headers))
	t.Equal("bread", tr.headers[0].item)
	t.Equal(4, tr.headers[0].count)
	// the root plus a single bread node
	t.Equal(2, len(tr.nodes))
}

func TestConditionalPatternBase(x *testing.T) {
	t := assert.New(x)
	tr := newTree(basketPaths(), 2)
	base := tr.conditionalPatternBase("milk")
	got := make(map[string]int, len(base))
	total := 0
	for _, p := range base {
		got[strings.Join(p.items, " ")] += p.count
		total += p.count
	}
	t.Equal(map[string]int{
		"bread eggs":   1,
		"bread butter": 1,
		"butter eggs":  1,
	}, got)
	t.Equal(3, total)
}

func TestConditionalPatternBaseRoots(x *testing.T) {
	t := assert.New(x)
	tr := newTree(basketPaths(), 2)
	// bread always sits directly below the root, so its base is empty
	t.Equal(0, len(tr.conditionalPatternBase("bread")))
	t.Equal(0, len(tr.conditionalPatternBase("tea")))
}

func TestNodeCountsShare(x *testing.T) {
	t := assert.New(x)
	tr := newTree(basketPaths(), 2)
	// four transactions pass through the bread node below the root
	bread := tr.nodes[0].children["bread"]
	t.Equal(4, tr.nodes[bread].count)
	// two of them continue into eggs
	eggs := tr.nodes[bread].children["eggs"]
	t.Equal(2, tr.nodes[eggs].count)
}
