package fpgrowth

import (
	"sort"
)

// A path is a weighted item sequence. Transactions enter the initial
// tree with weight 1; conditional pattern bases carry the count of the
// node they were lifted from.
type path struct {
	items []string
	count int
}

type node struct {
	item     string
	count    int
	parent   int
	children map[string]int
	link     int // next node holding the same item, -1 ends the chain
}

type header struct {
	item  string
	count int
	head  int // first node of the item's link chain
}

// A tree is the prefix tree of the weighted transactions restricted to
// items meeting minCount. Nodes live in an arena indexed by integer
// handles; nodes[0] is the root sentinel. Parent pointers and link
// chains are plain indices into the arena, so the structure traverses
// in both directions without reference cycles.
type tree struct {
	nodes   []node
	headers []header
	index   map[string]int // item -> position in headers
	rank    map[string]int // item -> insertion order
}

// newTree makes two passes: the first counts item frequencies and
// fixes the insertion order (descending frequency, ties to the smaller
// label), the second filters and sorts each path by that order and
// threads it into the tree.
func newTree(paths []path, minCount int) *tree {
	counts := make(map[string]int)
	for _, p := range paths {
		for _, item := range p.items {
			counts[item] += p.count
		}
	}
	items := make([]string, 0, len(counts))
	for item, count := range counts {
		if count >= minCount {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if counts[items[i]] != counts[items[j]] {
			return counts[items[i]] > counts[items[j]]
		}
		return items[i] < items[j]
	})
	t := &tree{
		nodes:   make([]node, 1, len(paths)+1),
		headers: make([]header, 0, len(items)),
		index:   make(map[string]int, len(items)),
		rank:    make(map[string]int, len(items)),
	}
	t.nodes[0] = node{parent: -1, link: -1, children: make(map[string]int)}
	for i, item := range items {
		t.rank[item] = i
		t.index[item] = len(t.headers)
		t.headers = append(t.headers, header{item: item, count: counts[item], head: -1})
	}
	for _, p := range paths {
		t.insert(p)
	}
	return t
}

func (t *tree) insert(p path) {
	items := make([]string, 0, len(p.items))
	for _, item := range p.items {
		if _, frequent := t.rank[item]; frequent {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return t.rank[items[i]] < t.rank[items[j]]
	})
	cur := 0
	for _, item := range items {
		if child, has := t.nodes[cur].children[item]; has {
			t.nodes[child].count += p.count
			cur = child
		} else {
			child = len(t.nodes)
			t.nodes = append(t.nodes, node{
				item:     item,
				count:    p.count,
				parent:   cur,
				children: make(map[string]int),
				link:     t.headers[t.index[item]].head,
			})
			t.headers[t.index[item]].head = child
			t.nodes[cur].children[item] = child
			cur = child
		}
	}
}

// conditionalPatternBase returns the prefix paths preceding item
// across the tree, each weighted by the count of the item node it was
// lifted from. The item itself is excluded; empty prefixes are
// dropped since they cannot extend any pattern.
func (t *tree) conditionalPatternBase(item string) []path {
	at, has := t.index[item]
	if !has {
		return nil
	}
	base := make([]path, 0, 10)
	for n := t.headers[at].head; n != -1; n = t.nodes[n].link {
		items := make([]string, 0, 10)
		for p := t.nodes[n].parent; p > 0; p = t.nodes[p].parent {
			items = append(items, t.nodes[p].item)
		}
		if len(items) == 0 {
			continue
		}
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
		base = append(base, path{items: items, count: t.nodes[n].count})
	}
	return base
}
