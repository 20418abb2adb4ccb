package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"strings"
)

func baskets() []Transaction {
	return []Transaction{
		NewTransaction("bread", "milk", "eggs"),
		NewTransaction("bread", "butter"),
		NewTransaction("milk", "eggs", "butter"),
		NewTransaction("bread", "milk", "butter"),
		NewTransaction("bread", "eggs"),
	}
}

func TestNewCanonical(x *testing.T) {
	t := assert.New(x)
	s := New("milk", "bread", "milk", "")
	t.Equal(Itemset{"bread", "milk"}, s)
	t.Equal(New("bread", "milk").Key(), s.Key())
	t.Equal(New("bread", "milk").Label(), s.Label())
	t.True(s.Equal(New("milk", "bread")))
	t.False(s.Equal(New("milk")))
}

func TestLabelDistinguishes(x *testing.T) {
	t := assert.New(x)
	// a naive join would collapse these two
	t.NotEqual(New("ab", "c").Key(), New("a", "bc").Key())
}

func TestSubsetOf(x *testing.T) {
	t := assert.New(x)
	t.True(New("bread").SubsetOf(New("bread", "milk")))
	t.True(New("bread", "milk").SubsetOf(New("bread", "eggs", "milk")))
	t.False(New("bread", "butter").SubsetOf(New("bread", "eggs", "milk")))
	t.False(New("bread", "eggs", "milk").SubsetOf(New("bread", "milk")))
	t.True(Itemset(nil).SubsetOf(New("bread")))
}

func TestUnion(x *testing.T) {
	t := assert.New(x)
	t.Equal(New("bread", "eggs", "milk"), New("bread", "milk").Union(New("eggs", "milk")))
	t.Equal(New("bread"), New("bread").Union(New("bread")))
	t.Equal(New("bread"), Itemset(nil).Union(New("bread")))
}

func TestHas(x *testing.T) {
	t := assert.New(x)
	s := New("bread", "eggs", "milk")
	t.True(s.Has("eggs"))
	t.False(s.Has("butter"))
}

func TestCount(x *testing.T) {
	t := assert.New(x)
	txs := baskets()
	t.Equal(4, Count(txs, New("bread")))
	t.Equal(2, Count(txs, New("bread", "milk")))
	t.Equal(1, Count(txs, New("butter", "eggs")))
	t.Equal(0, Count(txs, New("tea")))
}

func TestCountAll(x *testing.T) {
	t := assert.New(x)
	txs := baskets()
	candidates := []Itemset{
		New("bread"),
		New("bread", "milk"),
		New("butter", "eggs"),
		New("tea"),
	}
	counts := CountAll(txs, candidates)
	t.Equal(len(candidates), len(counts))
	for _, c := range candidates {
		t.Equal(Count(txs, c), counts[c.Key()], "candidate %v", c)
	}
}

func TestNewFrequent(x *testing.T) {
	t := assert.New(x)
	f := NewFrequent(New("bread", "milk"), 2, 5)
	t.Equal(2, f.Frequency)
	t.InDelta(.4, f.Support, 1e-9)
}

func TestLoad(x *testing.T) {
	t := assert.New(x)
	txs, err := Load(strings.NewReader("bread milk eggs\n\nbread bread butter\n"))
	t.Nil(err)
	t.Equal(2, len(txs))
	t.Equal(NewTransaction("bread", "eggs", "milk"), txs[0])
	t.Equal(NewTransaction("bread", "butter"), txs[1])
}
