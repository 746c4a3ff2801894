package ttylog

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeConversions(t *testing.T) {
	cases := map[string]struct {
		microseconds int64
		seconds      float64
	}{
		"precision": {
			microseconds: 1,
			seconds:      1e-6,
		},
		"negative": {
			microseconds: -631119539e6,
			seconds:      -631119539,
		},
		"positive": {
			microseconds: 631119539e6,
			seconds:      631119539,
		},
		"bigprecise": {
			microseconds: 123456789987654,
			seconds:      123456789.987654,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			s2m := secondsToMicroseconds(tc.seconds)
			m2s := microsecondsToSeconds(tc.microseconds)

			// Only allow delta to be to the NS
			assert.InDelta(t, m2s, tc.seconds, float64(time.Nanosecond)/float64(time.Second))
			assert.Equal(t, s2m, tc.microseconds)
		})
	}
}

func TestAsciicast_roundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewAsciicastLogSink(buf)

	entries := []*TTYLogEntry{
		{TimestampMicros: 1_000_000, Fd: FDStdout, Data: []byte("/> ")},
		{TimestampMicros: 1_500_000, Fd: FDStdin, Data: []byte("l")},
		{TimestampMicros: 2_000_000, Fd: FDStderr, Data: []byte("oops\n")},
		{TimestampMicros: 2_250_000, Fd: FDStdout, Data: []byte("a<b && c>d")},
	}
	for _, e := range entries {
		require.NoError(t, sink(e))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], `"version":2`)
	assert.Equal(t, `[0,"o","/> "]`, lines[1])
	assert.Equal(t, `[0.5,"i","l"]`, lines[2])
	assert.Equal(t, `[1.25,"o","a<b && c>d"]`, lines[4])

	var replayed []*TTYLogEntry
	err := Replay(NewAsciicastLogSource(buf), func(e *TTYLogEntry) error {
		replayed = append(replayed, e)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []*TTYLogEntry{
		{TimestampMicros: 0, Fd: FDStdout, Data: []byte("/> ")},
		{TimestampMicros: 500_000, Fd: FDStdin, Data: []byte("l")},
		{TimestampMicros: 1_000_000, Fd: FDStdout, Data: []byte("oops\n")},
		{TimestampMicros: 1_250_000, Fd: FDStdout, Data: []byte("a<b && c>d")},
	}, replayed)
}

func TestAsciicastLogSource_malformed(t *testing.T) {
	for tn, input := range map[string]string{
		"not json":     "{}\nnope\n",
		"wrong length": "{}\n[1, \"o\"]\n",
		"wrong type":   "{}\n[\"1\", \"o\", \"x\"]\n",
	} {
		t.Run(tn, func(t *testing.T) {
			_, err := NewAsciicastLogSource(strings.NewReader(input)).Next()
			assert.Error(t, err)
		})
	}
}

func TestAsciicastLogSource_skipsUnknown(t *testing.T) {
	source := NewAsciicastLogSource(strings.NewReader("{}\n\n[1, \"m\", \"marker\"]\n[2, \"o\", \"x\"]\n"))

	entry, err := source.Next()
	require.NoError(t, err)
	assert.Equal(t, "x", string(entry.Data))

	_, err = source.Next()
	assert.ErrorIs(t, err, io.EOF)
}
