package stats

import "testing"
import "github.com/stretchr/testify/assert"

func TestRound(x *testing.T) {
	t := assert.New(x)
	t.Equal(3.0, Round(2.5, 0))
	t.Equal(2.0, Round(2.4, 0))
	t.Equal(.44, Round(.4444, 2))
	t.Equal(-3.0, Round(-2.5, 0))
}

func TestSummaries(x *testing.T) {
	t := assert.New(x)
	list := []float64{.2, .4, .6}
	t.InDelta(1.2, Sum(list), 1e-9)
	t.InDelta(.4, Mean(list), 1e-9)
	t.Equal(.6, Max(list))
	t.Equal(.2, Min(list))
}

func TestSummariesEmpty(x *testing.T) {
	t := assert.New(x)
	t.Equal(0.0, Sum(nil))
	t.Equal(0.0, Mean(nil))
	t.Equal(0.0, Max(nil))
	t.Equal(0.0, Min(nil))
}
