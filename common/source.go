package common

import (
	"sort"

	"github.com/rivo/uniseg"
)

// FileInfo contains information about the contents of a source file. A
// lexer accumulates line offsets as it scans the file, which allows the
// source position of any byte offset to be computed on demand.
type FileInfo struct {
	name string
	data []byte
	// The offsets for each line in the file. The value is the zero-based
	// byte offset for a given line. The line is given by its index, so the
	// value at index 0 is the offset of the first line (always zero).
	lines []int
}

// NewFileInfo creates a new instance for the given file.
func NewFileInfo(filename string, contents []byte) *FileInfo {
	return &FileInfo{
		name:  filename,
		data:  contents,
		lines: []int{0},
	}
}

func (f *FileInfo) Name() string {
	return f.name
}

// AddLine records that the character at the given offset is a newline.
// Offsets must be added in increasing order.
func (f *FileInfo) AddLine(offset int) {
	if offset < 0 || offset >= len(f.data) {
		panic("common: AddLine offset out of range")
	}
	if last := f.lines[len(f.lines)-1]; last > offset {
		panic("common: AddLine offsets must be monotonic")
	}
	f.lines = append(f.lines, offset+1)
}

// SourcePos returns the location of the given byte offset. The column is
// measured in grapheme clusters so that combining sequences and other
// multi-rune glyphs count as a single column.
func (f *FileInfo) SourcePos(offset int) SourcePos {
	line := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})
	start := f.lines[line-1]
	col := 1
	if start < offset && offset <= len(f.data) {
		col += uniseg.GraphemeClusterCount(string(f.data[start:offset]))
	}
	return SourcePos{
		Filename: f.name,
		Line:     line,
		Col:      col,
		Offset:   offset,
	}
}

// Token builds a token at the given byte range of the file.
func (f *FileInfo) Token(kind Kind, start, end, index int) Token {
	return Token{
		Kind:  kind,
		Str:   string(f.data[start:end]),
		Pos:   f.SourcePos(start),
		Index: index,
	}
}
