package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatorsStartAtZero(t *testing.T) {
	sw := New()
	assert.Zero(t, sw.Conv)
	assert.Zero(t, sw.Step)
	assert.Zero(t, sw.File)
	assert.Zero(t, sw.Soln)
}

func TestAccumulatorsOnlyGrow(t *testing.T) {
	sw := New()
	sw.Conv += 3 * time.Millisecond
	sw.Conv += 2 * time.Millisecond
	sw.Soln += time.Millisecond
	assert.Equal(t, 5*time.Millisecond, sw.Conv)
	assert.Equal(t, time.Millisecond, sw.Soln)
}

func TestTotalAdvances(t *testing.T) {
	sw := New()
	a := sw.Total()
	time.Sleep(5 * time.Millisecond)
	b := sw.Total()
	assert.Greater(t, b, a)
	assert.GreaterOrEqual(t, b, 5*time.Millisecond)
}
