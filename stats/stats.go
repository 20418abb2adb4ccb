package stats

import (
	"math"
)

func Sum(list []float64) float64 {
	var sum float64
	for _, item := range list {
		sum += item
	}
	return sum
}

func Mean(list []float64) float64 {
	if len(list) == 0 {
		return 0
	}
	return Sum(list) / float64(len(list))
}

func Max(list []float64) float64 {
	if len(list) == 0 {
		return 0
	}
	max := list[0]
	for _, item := range list[1:] {
		if item > max {
			max = item
		}
	}
	return max
}

func Min(list []float64) float64 {
	if len(list) == 0 {
		return 0
	}
	min := list[0]
	for _, item := range list[1:] {
		if item < min {
			min = item
		}
	}
	return min
}

// Round rounds half away from zero at the given number of decimal
// places.
func Round(val float64, places int) (newVal float64) {
	var round float64
	roundOn := .5
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	_div := math.Copysign(div, val)
	_roundOn := math.Copysign(roundOn, val)
	if _div >= _roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	return round / pow
}
