package bloom

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizer(t *testing.T) {
	s := NewSizer()

	m, k := s.Size(1, 0.01)
	assert.GreaterOrEqual(t, m, uint64(10))
	assert.Equal(t, uint8(7), k)

	m, k = s.Size(1_000_000, 0.01)
	assert.InDelta(t, 9_585_059, float64(m), 100_000)
	assert.Equal(t, uint8(7), k)

	_, k = s.Size(10_000, 0.5)
	assert.Equal(t, uint8(1), k)
}

func TestSizer_Defaults(t *testing.T) {
	s := NewSizer()
	m0, k0 := s.Size(0, 0)
	m1, k1 := s.Size(1, 0.01)
	assert.Equal(t, m1, m0, "n=0 is treated as 1 and p<=0 as 1%")
	assert.Equal(t, k1, k0)

	m, k := s.Size(100, 1.0)
	assert.NotZero(t, m)
	assert.NotZero(t, k)
}

func TestFilter_AddTestClear(t *testing.T) {
	f := NewFactory().New(32, 0.001)
	key := []byte("xn--pple-43d.com")

	assert.False(t, f.MightContain(key))
	f.Add(key)
	assert.True(t, f.MightContain(key))
	f.Clear()
	assert.False(t, f.MightContain(key))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	f := NewFactory().New(1000, 0.01)
	for i := 0; i < 1000; i++ {
		f.Add([]byte(fmt.Sprintf("host%d.example", i)))
	}
	for i := 0; i < 1000; i++ {
		assert.True(t, f.MightContain([]byte(fmt.Sprintf("host%d.example", i))))
	}
	fp := 0
	for i := 0; i < 1000; i++ {
		if f.MightContain([]byte(fmt.Sprintf("other%d.test", i))) {
			fp++
		}
	}
	assert.Less(t, fp, 50, "false-positive rate far above target")
}

func TestFilter_ConcurrentReadsDuringWrites(t *testing.T) {
	f := NewFactory().New(256, 0.01)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			f.Add([]byte(fmt.Sprintf("k%d", i)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			f.MightContain([]byte(fmt.Sprintf("k%d", i)))
		}
	}()
	wg.Wait()
	assert.True(t, f.MightContain([]byte("k499")))
}
