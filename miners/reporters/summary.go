package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/stats"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

// Summary accumulates the run's support and confidence distributions
// and logs them on Close.
type Summary struct {
	supports    []float64
	confidences []float64
	lifts       []float64
}

func NewSummary() *Summary {
	return &Summary{
		supports:    make([]float64, 0, 10),
		confidences: make([]float64, 0, 10),
		lifts:       make([]float64, 0, 10),
	}
}

func (s *Summary) Itemset(f *itemset.Frequent) error {
	s.supports = append(s.supports, f.Support)
	return nil
}

func (s *Summary) Rule(r *rules.Rule) error {
	s.confidences = append(s.confidences, r.Confidence)
	s.lifts = append(s.lifts, r.Lift)
	return nil
}

func (s *Summary) Close() error {
	errors.Logf("INFO", "%v frequent itemsets, support min %v mean %v max %v",
		len(s.supports),
		stats.Round(stats.Min(s.supports), 4),
		stats.Round(stats.Mean(s.supports), 4),
		stats.Round(stats.Max(s.supports), 4))
	errors.Logf("INFO", "%v rules, confidence mean %v max %v, lift mean %v max %v",
		len(s.confidences),
		stats.Round(stats.Mean(s.confidences), 4),
		stats.Round(stats.Max(s.confidences), 4),
		stats.Round(stats.Mean(s.lifts), 4),
		stats.Round(stats.Max(s.lifts), 4))
	return nil
}
