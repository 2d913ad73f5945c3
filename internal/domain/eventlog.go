package domain

import "time"

// Severity classifies an event log line
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// EventLogEntry is a single formatted terminal line
type EventLogEntry struct {
	At       time.Time
	Seq      int64
	Severity Severity
	Text     string
}

// EventLog is an ordered append-only list of terminal lines.
// Entries are only removed by Clear, which leaves exactly one banner entry.
type EventLog struct {
	entries []EventLogEntry
	nextSeq int64
	now     func() time.Time
}

// NewEventLog creates a log holding only the given banner
func NewEventLog(banner string) *EventLog {
	l := &EventLog{now: time.Now}
	l.Append(banner, SeverityInfo)
	return l
}

// Append adds an entry after all existing ones and returns it
func (l *EventLog) Append(text string, severity Severity) EventLogEntry {
	l.nextSeq++
	entry := EventLogEntry{
		At:       l.now(),
		Seq:      l.nextSeq,
		Severity: severity,
		Text:     text,
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Info appends an info entry
func (l *EventLog) Info(text string) EventLogEntry {
	return l.Append(text, SeverityInfo)
}

// Success appends a success entry
func (l *EventLog) Success(text string) EventLogEntry {
	return l.Append(text, SeveritySuccess)
}

// Error appends an error entry
func (l *EventLog) Error(text string) EventLogEntry {
	return l.Append(text, SeverityError)
}

// Clear drops the history and appends a single info banner.
// Sequence numbers keep increasing across clears.
func (l *EventLog) Clear(banner string) EventLogEntry {
	l.entries = nil
	return l.Append(banner, SeverityInfo)
}

// Entries returns a copy of the entries in order
func (l *EventLog) Entries() []EventLogEntry {
	out := make([]EventLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Last returns the most recent entry
func (l *EventLog) Last() (EventLogEntry, bool) {
	if len(l.entries) == 0 {
		return EventLogEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
