package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteCallLine(t *testing.T) {
	var buf bytes.Buffer
	writeCallLine(&buf, LabelMemo, 0, 1500*time.Microsecond)

	assert.Equal(t, "[MEMO] Time for call 1: 1.5 milliseconds.\n", buf.String())
}

func TestMillis(t *testing.T) {
	assert.Equal(t, "0", millis(0))
	assert.Equal(t, "0.000042", millis(42*time.Nanosecond))
	assert.Equal(t, "250", millis(250*time.Millisecond))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, PassResult{Label: LabelNoMemo, Trials: 4, Total: 10 * time.Millisecond})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\n"+separator+"\n [NO-MEMO] SUMMARY: \n"+separator+"\n"))
	assert.True(t, strings.HasSuffix(out, "\n"+separator+"\n\n"))

	var avg, total string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "Average time"):
			avg = line
		case strings.Contains(line, "Total time"):
			total = line
		}
	}
	assert.Contains(t, avg, "2.5")
	assert.Contains(t, total, "10")
}
