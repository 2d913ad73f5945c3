package ui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/ports"
	"github.com/aura-ide/aura/internal/theme"
)

// Explorer renders the remote file tree with a cursor.
// The root row is always first so the whole tree can be collapsed.
type Explorer struct {
	cursor    int
	filter    ports.PathFilter
	height    int
	offset    int
	rootLabel string
	rows      []domain.TreeRow
	tree      *domain.TreeModel
	width     int
}

// NewExplorer creates an explorer over tree. filter may be nil.
func NewExplorer(tree *domain.TreeModel, filter ports.PathFilter, rootLabel string) *Explorer {
	e := &Explorer{
		filter:    filter,
		rootLabel: rootLabel,
		tree:      tree,
	}
	e.Rebuild()
	return e
}

// Rebuild recomputes the visible rows, keeping the cursor on the same path when possible
func (e *Explorer) Rebuild() {
	selected := e.SelectedPath()

	var hidden func(string, bool) bool
	if e.filter != nil {
		hidden = e.filter.Hidden
	}
	rows := e.tree.RenderFiltered(hidden)
	if e.tree.IsExpanded(domain.RootPath) {
		root := domain.TreeRow{Expanded: true, IsDir: true, Name: domain.RootPath, Path: domain.RootPath}
		rows = append([]domain.TreeRow{root}, rows...)
	}
	e.rows = rows

	e.cursor = 0
	for i, row := range rows {
		if row.Path == selected {
			e.cursor = i
			break
		}
	}
	e.clampOffset()
}

// SetSize sets the number of rows and columns available
func (e *Explorer) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.clampOffset()
}

func (e *Explorer) MoveUp() {
	if e.cursor > 0 {
		e.cursor--
		e.clampOffset()
	}
}

func (e *Explorer) MoveDown() {
	if e.cursor < len(e.rows)-1 {
		e.cursor++
		e.clampOffset()
	}
}

// Selected returns the row under the cursor
func (e *Explorer) Selected() (domain.TreeRow, bool) {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return domain.TreeRow{}, false
	}
	return e.rows[e.cursor], true
}

// SelectedPath returns the path under the cursor, or "" for an empty tree
func (e *Explorer) SelectedPath() string {
	row, ok := e.Selected()
	if !ok {
		return ""
	}
	return row.Path
}

// SelectedDir returns the folder a new file should go into
func (e *Explorer) SelectedDir() string {
	row, ok := e.Selected()
	if !ok || row.Path == domain.RootPath {
		return ""
	}
	if row.IsDir {
		return row.Path
	}
	if dir := path.Dir(row.Path); dir != "." {
		return dir
	}
	return ""
}

// Rows returns the visible rows
func (e *Explorer) Rows() []domain.TreeRow {
	return e.rows
}

func (e *Explorer) clampOffset() {
	visible := e.visibleRows()
	if e.cursor < e.offset {
		e.offset = e.cursor
	}
	if e.cursor >= e.offset+visible {
		e.offset = e.cursor - visible + 1
	}
	if e.offset < 0 {
		e.offset = 0
	}
}

func (e *Explorer) visibleRows() int {
	if e.height < 1 {
		return len(e.rows) + 1
	}
	return e.height
}

// View renders the visible window of rows. treeErr is shown when the
// last fetch failed; loaded is false until the first fetch succeeds.
func (e *Explorer) View(treeErr error, loaded bool) string {
	var sb strings.Builder

	if treeErr != nil {
		sb.WriteString(theme.OfflineBadgeStyle.Render("⚠ tree unavailable"))
		sb.WriteString("\n")
	} else if !loaded {
		sb.WriteString(theme.MutedStyle.Render("loading..."))
		sb.WriteString("\n")
	}

	end := min(e.offset+e.visibleRows(), len(e.rows))
	for i := e.offset; i < end; i++ {
		line := e.renderRow(e.rows[i])
		if i == e.cursor {
			line = theme.SelectedRowStyle.Render(line)
		}
		sb.WriteString(line)
		if i < end-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (e *Explorer) renderRow(row domain.TreeRow) string {
	if row.Path == domain.RootPath {
		icon := "▾"
		if !row.Expanded {
			icon = "▸"
		}
		return theme.DirectoryStyle.Render(fmt.Sprintf("%s 📁 %s", icon, e.rootLabel))
	}

	indent := strings.Repeat("  ", row.Depth)
	var label string
	switch {
	case row.IsDir && row.Expanded:
		label = theme.DirectoryStyle.Render("▾ " + row.Name + "/")
	case row.IsDir:
		label = theme.DirectoryStyle.Render("▸ " + row.Name + "/")
	case row.Active:
		label = theme.ActiveFileStyle.Render(fileIcon(row.Name) + " " + row.Name)
	default:
		label = theme.FileStyle.Render(fileIcon(row.Name) + " " + row.Name)
	}

	line := indent + label
	if e.width > 0 {
		line = ansi.Truncate(line, e.width, "…")
	}
	return line
}

// fileIcon picks a glyph by extension
func fileIcon(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".py":
		return "🐍"
	case ".md":
		return "📝"
	case ".json", ".yaml", ".yml", ".toml":
		return "⚙"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg":
		return "🖼"
	default:
		return "📄"
	}
}
