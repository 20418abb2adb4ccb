package rules

import (
	"github.com/appdotbuilder/data-mining-dashboard/stores/bytes_float"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

// A SupportIndex resolves the support of a canonical itemset label.
// The miners always emit size-1 itemsets alongside larger ones, so an
// index built from a complete mining result answers every antecedent
// and consequent lookup. Lookups that miss are skipped by Generate
// rather than treated as errors.
type SupportIndex interface {
	Support(label []byte) (support float64, has bool, err error)
}

type MapIndex map[string]float64

func NewMapIndex(freq []itemset.Frequent) MapIndex {
	m := make(MapIndex, len(freq))
	for i := range freq {
		m[freq[i].Items.Key()] = freq[i].Support
	}
	return m
}

func (m MapIndex) Support(label []byte) (float64, bool, error) {
	support, has := m[string(label)]
	return support, has, nil
}

// StoreIndex keeps the lookup table in a bytes_float multimap: an
// anonymous mmap by default, a file under the cache dir when one is
// configured.
type StoreIndex struct {
	supports bytes_float.MultiMap
}

func NewStoreIndex(supports bytes_float.MultiMap, freq []itemset.Frequent) (*StoreIndex, error) {
	idx := &StoreIndex{supports: supports}
	for i := range freq {
		if err := idx.Add(&freq[i]); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func (idx *StoreIndex) Add(f *itemset.Frequent) error {
	label := f.Items.Label()
	if has, err := idx.supports.Has(label); err != nil {
		return err
	} else if has {
		return nil
	}
	return idx.supports.Add(label, f.Support)
}

func (idx *StoreIndex) Support(label []byte) (support float64, has bool, err error) {
	has, err = idx.supports.Has(label)
	if err != nil || !has {
		return 0, has, err
	}
	err = idx.supports.DoFind(label, func(_ []byte, s float64) error {
		support = s
		return nil
	})
	return support, true, err
}

func (idx *StoreIndex) Close() error {
	return idx.supports.Close()
}
