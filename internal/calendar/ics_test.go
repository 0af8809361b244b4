package calendar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteICS(t *testing.T) {
	events := []Event{
		timedEvent("ev1", "Standup", "2025-11-12T09:00:00+01:00", "2025-11-12T09:15:00+01:00"),
		allDayEvent("ev2", "Holiday", "2025-12-24", "2025-12-24"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, events))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Standup")
	assert.Contains(t, out, "SUMMARY:Holiday")
	assert.Contains(t, out, "UID:ev1")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTART")
	assert.Contains(t, out, "END:VCALENDAR")
}
