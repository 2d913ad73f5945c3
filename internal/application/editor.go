package application

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/aura-ide/aura/internal/domain"
)

// OpenTicket identifies one issued file read
type OpenTicket struct {
	Path string
	Seq  uint64
}

// DiffStats counts changed lines between the server copy and the buffer
type DiffStats struct {
	Added   int
	Removed int
}

// IsZero reports whether no line changed
func (d DiffStats) IsZero() bool {
	return d.Added == 0 && d.Removed == 0
}

// EditorController tracks the open file and its buffer.
// Only the most recently issued open may replace the session.
type EditorController struct {
	lastIssued uint64
	session    domain.EditorSession
}

// NewEditorController creates a controller with nothing open
func NewEditorController() *EditorController {
	return &EditorController{}
}

// BeginOpen issues a ticket for reading path
func (c *EditorController) BeginOpen(path string) (OpenTicket, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return OpenTicket{}, domain.ErrEmptyPath
	}
	c.lastIssued++
	return OpenTicket{Path: path, Seq: c.lastIssued}, nil
}

// IsCurrent reports whether ticket is the latest issued open
func (c *EditorController) IsCurrent(ticket OpenTicket) bool {
	return ticket.Seq == c.lastIssued
}

// CompleteOpen replaces the session with the loaded file.
// Unsaved edits to the previous file are discarded. Stale tickets are ignored.
func (c *EditorController) CompleteOpen(ticket OpenTicket, content string) bool {
	if !c.IsCurrent(ticket) {
		return false
	}
	c.session = domain.NewEditorSession(ticket.Path, content)
	return true
}

// Edit replaces the buffer without touching the server
func (c *EditorController) Edit(content string) {
	if !c.session.HasOpen() {
		return
	}
	c.session.BufferContent = content
}

// Session returns the current session
func (c *EditorController) Session() domain.EditorSession {
	return c.session
}

// HasOpen reports whether a file is open
func (c *EditorController) HasOpen() bool {
	return c.session.HasOpen()
}

// Dirty reports whether the buffer has unsaved edits
func (c *EditorController) Dirty() bool {
	return c.session.Dirty()
}

// PrepareSave returns what to write, or ErrNothingOpen
func (c *EditorController) PrepareSave() (path, content string, err error) {
	if !c.session.HasOpen() {
		return "", "", domain.ErrNothingOpen
	}
	return c.session.OpenPath, c.session.BufferContent, nil
}

// CompleteSave records content as the server copy of path
func (c *EditorController) CompleteSave(path, content string) {
	if c.session.OpenPath == path {
		c.session.MarkSaved(content)
	}
}

// Close drops the session. Outstanding opens become stale.
func (c *EditorController) Close() {
	c.lastIssued++
	c.session = domain.EditorSession{}
}

// DiffStats compares the buffer with the server copy line by line
func (c *EditorController) DiffStats() DiffStats {
	if !c.session.Dirty() {
		return DiffStats{}
	}
	return diffLines(c.session.SavedContent(), c.session.BufferContent)
}

func diffLines(before, after string) DiffStats {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var stats DiffStats
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			stats.Added += n
		case diffmatchpatch.DiffDelete:
			stats.Removed += n
		}
	}
	return stats
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
