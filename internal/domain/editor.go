package domain

// EditorSession is the open file and its in-memory buffer.
// The buffer is authoritative until saved.
type EditorSession struct {
	BufferContent string
	OpenPath      string
	// content as last read from or written to the server
	savedContent string
}

// NewEditorSession creates a session for a freshly loaded file
func NewEditorSession(path, content string) EditorSession {
	return EditorSession{
		BufferContent: content,
		OpenPath:      path,
		savedContent:  content,
	}
}

// HasOpen reports whether a file is open
func (s EditorSession) HasOpen() bool {
	return s.OpenPath != ""
}

// Dirty reports whether the buffer differs from the server copy
func (s EditorSession) Dirty() bool {
	return s.HasOpen() && s.BufferContent != s.savedContent
}

// SavedContent returns the last known server copy
func (s EditorSession) SavedContent() string {
	return s.savedContent
}

// MarkSaved records content as the server copy
func (s *EditorSession) MarkSaved(content string) {
	s.savedContent = content
}
