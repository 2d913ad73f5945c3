package ports

// PathFilter decides which tree rows are hidden from the explorer
type PathFilter interface {
	Hidden(path string, isDir bool) bool
}
