package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger(&out, &errOut, "orbit", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String(), "debug is off")

	l.SetDebug(true)
	l.Debugf("shown %d", 2)
	assert.Contains(t, out.String(), "[orbit] DEBUG: shown 2")

	l.Infof("hello")
	assert.Contains(t, out.String(), "[orbit] INFO: hello")

	l.Warnf("careful")
	l.Errorf("broken")
	assert.Contains(t, errOut.String(), "[orbit] WARN: careful")
	assert.Contains(t, errOut.String(), "[orbit] ERROR: broken")
	assert.NotContains(t, out.String(), "careful")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
}
