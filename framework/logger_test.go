package framework

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMultiLoggerWritesToEveryLogger(t *testing.T) {
	var first, second CapturingLogger
	MultiLogger(&first, nil, &second).Printf("GET %s", "title/Ozymandias")

	for _, l := range []*CapturingLogger{&first, &second} {
		if assert.Len(t, l.Output(), 1) {
			assert.Equal(t, "GET title/Ozymandias", l.Output()[0].Message)
		}
	}
}

func TestDumpFormatsDebugLines(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 15, 250*int(time.Millisecond), time.UTC)
	output := CapturedOutput{
		{Time: at, Message: "GET title/Ozymandias"},
		{Time: at, Message: "Response 200"},
	}

	var buf bytes.Buffer
	output.Dump(&buf, "  ")
	assert.Equal(t, "  DEBUG [09:30:15.250] GET title/Ozymandias\n"+
		"  DEBUG [09:30:15.250] Response 200\n", buf.String())
}

func TestOutputIsACopy(t *testing.T) {
	var l CapturingLogger
	l.Printf("one")
	out := l.Output()
	l.Printf("two")
	assert.Len(t, out, 1)
	assert.Len(t, l.Output(), 2)
}
