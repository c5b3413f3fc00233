package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBarShape(t *testing.T) {
	var buf strings.Builder
	p := NewProgressWriter(100, &buf)
	for step := 0; step < 100; step++ {
		p.Update(step)
	}

	out := buf.String()
	assert.Contains(t, out, "[")
	assert.Contains(t, out, "]")
	assert.Contains(t, out, "seconds elapsed")
	// one dot per 5% plus the closing dot
	assert.Equal(t, 20, strings.Count(out, "•"))
}

func TestProgressShortRunSkipsDots(t *testing.T) {
	var buf strings.Builder
	p := NewProgressWriter(3, &buf)
	for step := 0; step < 3; step++ {
		p.Update(step)
	}

	out := buf.String()
	// only the closing marker; under 20 steps there is no room for a bar
	assert.Equal(t, 1, strings.Count(out, "•"))
	assert.Contains(t, out, "seconds elapsed")
}

func TestProgressSingleStepRun(t *testing.T) {
	var buf strings.Builder
	p := NewProgressWriter(1, &buf)
	p.Update(0)

	out := buf.String()
	assert.Contains(t, out, "[")
	assert.Contains(t, out, "]")
	assert.Contains(t, out, "seconds elapsed")
	assert.Equal(t, 1, strings.Count(out, "•"))
}

func TestProgressSilentMidRun(t *testing.T) {
	var buf strings.Builder
	p := NewProgressWriter(1000, &buf)
	p.Update(1)
	p.Update(7)
	p.Update(999 - 1) // not the last step
	assert.Empty(t, buf.String())
}
