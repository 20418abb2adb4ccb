package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// An Itemset is a non-empty set of distinct item labels kept in
// lexicographic order. The sorted form is the canonical representation:
// {milk, bread} and {bread, milk} construct the same Itemset and
// therefore the same Label and Key.
type Itemset []string

// A Transaction is one basket. It is canonicalized on construction and
// the miners never mutate it. Always build transactions through
// NewTransaction (or Load); the miners assume the canonical form.
type Transaction Itemset

// Frequent is a mined itemset together with its support (the fraction
// of transactions containing it) and frequency (the absolute
// transaction count).
type Frequent struct {
	Items     Itemset
	Support   float64
	Frequency int
}

// New builds the canonical itemset over the given labels, dropping
// duplicates and empty labels.
func New(items ...string) Itemset {
	s := set.NewSortedSet(len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		s.Add(types.String(item))
	}
	canon := make(Itemset, 0, s.Size())
	for item, next := s.Items()(); next != nil; item, next = next() {
		canon = append(canon, string(item.(types.String)))
	}
	return canon
}

func NewTransaction(items ...string) Transaction {
	return Transaction(New(items...))
}

// NewFrequent scores a mined itemset against the total transaction
// count.
func NewFrequent(items Itemset, count, total int) Frequent {
	return Frequent{
		Items:     items,
		Support:   float64(count) / float64(total),
		Frequency: count,
	}
}

func (t Transaction) Itemset() Itemset {
	return Itemset(t)
}

func (s Itemset) Size() int {
	return len(s)
}

func (s Itemset) Has(item string) bool {
	i := sort.SearchStrings([]string(s), item)
	return i < len(s) && s[i] == item
}

// SubsetOf reports whether every item of s occurs in o.
func (s Itemset) SubsetOf(o Itemset) bool {
	if len(s) > len(o) {
		return false
	}
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		if s[i] == o[j] {
			i++
			j++
		} else if s[i] > o[j] {
			j++
		} else {
			return false
		}
	}
	return i == len(s)
}

// Union merges two canonical itemsets into a new canonical itemset.
// Neither input is modified.
func (s Itemset) Union(o Itemset) Itemset {
	merged := make(Itemset, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] == o[j]:
			merged = append(merged, s[i])
			i++
			j++
		case s[i] < o[j]:
			merged = append(merged, s[i])
			i++
		default:
			merged = append(merged, o[j])
			j++
		}
	}
	merged = append(merged, s[i:]...)
	merged = append(merged, o[j:]...)
	return merged
}

func (s Itemset) Equal(o Itemset) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Label returns the canonical binary key of the itemset: a big endian
// item count followed by length prefixed label bytes.
func (s Itemset) Label() []byte {
	size := 4
	for _, item := range s {
		size += 4 + len(item)
	}
	bytes := make([]byte, 4, size)
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(s)))
	for _, item := range s {
		var l [4]byte
		binary.BigEndian.PutUint32(l[:], uint32(len(item)))
		bytes = append(bytes, l[:]...)
		bytes = append(bytes, item...)
	}
	return bytes
}

// Key is the Label as a string, usable as a map key.
func (s Itemset) Key() string {
	return string(s.Label())
}

func (s Itemset) String() string {
	return strings.Join([]string(s), " ")
}

func (f *Frequent) String() string {
	return fmt.Sprintf("<%v> (support %g, frequency %d)", f.Items, f.Support, f.Frequency)
}
