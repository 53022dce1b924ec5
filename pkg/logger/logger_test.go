package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Logger_levelFiltering(t *testing.T) {
	original := log.Writer()
	defer log.SetOutput(original)

	var buf bytes.Buffer
	log.SetOutput(&buf)

	l := NewLogger(INFO)
	l.Debugf("connection pool stats: %d", 3)
	require.Empty(t, buf.String())

	l.Warnf("cannot notify %s", "user1")
	require.Contains(t, buf.String(), "WARN cannot notify user1")

	buf.Reset()
	NewLogger(SILENCE).Errorf("never shown")
	require.Empty(t, buf.String())
}
