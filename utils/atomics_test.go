package utils

import (
	"math"
	"math/rand"
	"sync"
	"testing"
)

const hammerThreads = 8

func Test_AtomicMinFloat64(t *testing.T) {
	cell := math.Inf(1)
	values := make([]float64, 10000)
	for i := range values {
		values[i] = float64(rand.Intn(1000000)) + 1
	}
	values[rand.Intn(len(values))] = 0.5 // known global min

	var wg sync.WaitGroup
	for tidx := 0; tidx < hammerThreads; tidx++ {
		wg.Add(1)
		go func(tidx int) {
			for i := tidx; i < len(values); i += hammerThreads {
				old := AtomicMinFloat64(&cell, values[i])
				if values[i] < old && AtomicLoadFloat64(&cell) > values[i] {
					t.Error("cell increased after an improving min")
				}
			}
			wg.Done()
		}(tidx)
	}
	wg.Wait()

	if cell != 0.5 {
		t.Error("expected 0.5, got ", cell)
	}
}

func Test_AtomicMaxInt32(t *testing.T) {
	cell := int32(-1)
	var wg sync.WaitGroup
	improvements := make([]int, hammerThreads)
	for tidx := 0; tidx < hammerThreads; tidx++ {
		wg.Add(1)
		go func(tidx int) {
			for i := int32(tidx); i < 10000; i += hammerThreads {
				if AtomicMaxInt32(&cell, i) < i {
					improvements[tidx]++
				}
			}
			wg.Done()
		}(tidx)
	}
	wg.Wait()

	if cell != 9999 {
		t.Error("expected 9999, got ", cell)
	}
	// Exactly one caller can have observed any given strict increase to the
	// final value, so at least one improvement happened, and no more than the
	// number of distinct values written.
	total := Sum(improvements)
	if total < 1 || total > 10000 {
		t.Error("implausible improvement count ", total)
	}
}

func Test_AtomicAddFloat64(t *testing.T) {
	cell := 0.0
	var wg sync.WaitGroup
	for tidx := 0; tidx < hammerThreads; tidx++ {
		wg.Add(1)
		go func() {
			for i := 0; i < 1000; i++ {
				AtomicAddFloat64(&cell, 3)
			}
			wg.Done()
		}()
	}
	wg.Wait()

	// Integer valued adds are exact in float64.
	if cell != float64(hammerThreads*1000*3) {
		t.Error("expected ", hammerThreads*1000*3, ", got ", cell)
	}
}
