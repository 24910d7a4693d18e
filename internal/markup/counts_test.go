package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts_Fraction(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		want   float64
	}{
		{"empty", Counts{}, 0},
		{"none checked", Counts{Total: 4}, 0},
		{"half", Counts{Total: 4, Checked: 2}, 0.5},
		{"all", Counts{Total: 3, Checked: 3}, 1},
		{"clamped", Counts{Total: 1, Checked: 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.counts.Fraction(), 1e-9)
		})
	}
}

func TestCounts_Reset(t *testing.T) {
	c := Counts{Total: 5, Checked: 3}
	c.Reset()
	assert.Equal(t, Counts{}, c)
}

func TestLedger(t *testing.T) {
	l := NewLedger()

	_, ok := l.Get(1)
	assert.False(t, ok)
	assert.Zero(t, l.Completion(1))

	l.Record(1, Counts{Total: 4, Checked: 1})
	assert.InDelta(t, 0.25, l.Completion(1), 1e-9)

	l.Begin(1)
	c, ok := l.Get(1)
	assert.True(t, ok)
	assert.Equal(t, Counts{}, c, "Begin resets a stale entry")

	l.Forget(1)
	_, ok = l.Get(1)
	assert.False(t, ok)
}
