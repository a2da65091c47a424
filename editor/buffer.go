//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"strings"

	gott "github.com/pmarks/pine/types"
)

// A Buffer holds the document being edited as an ordered sequence of rows.
// It always contains at least one row.

type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadBytes replaces the buffer contents. A trailing newline terminates the
// last row; it does not open an extra empty one.
func (b *Buffer) LoadBytes(bytes []byte) {
	s := string(bytes)
	lines := strings.Split(s, "\n")
	if len(s) > 0 && strings.HasSuffix(s, "\n") {
		lines = lines[0 : len(lines)-1]
	}
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
}

// Bytes returns the document with each row followed by a newline.
func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for _, row := range b.rows {
		s.WriteString(string(row.Text))
		s.WriteString("\n")
	}
	return []byte(s.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRowText(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].DisplayText()
	}
	return ""
}

func (b *Buffer) TextAfter(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

// InsertRow inserts a row at the given position, shifting later rows down.
// Out-of-range positions are a guarded no-op.
func (b *Buffer) InsertRow(at int, text string) bool {
	if at < 0 || at > len(b.rows) {
		return false
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = NewRow(text)
	return true
}

// DeleteRow removes a row, shifting later rows up. An emptied buffer
// immediately regains one empty row.
func (b *Buffer) DeleteRow(at int) bool {
	if at < 0 || at >= len(b.rows) {
		return false
	}
	b.rows = append(b.rows[0:at], b.rows[at+1:]...)
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	return true
}

// InsertCharacter splices a character into a row. The column is clamped,
// never rejected; an out-of-range row is a guarded no-op.
func (b *Buffer) InsertCharacter(row, col int, c rune) bool {
	if row < 0 || row >= len(b.rows) {
		return false
	}
	b.rows[row].InsertChar(col, c)
	return true
}

// draw text in an area defined by origin and size with a specified offset into the buffer
func (b *Buffer) Render(origin gott.Point, size gott.Size, offset gott.Size, display gott.Display) {
	for i := origin.Row; i < origin.Row+size.Rows; i++ {
		var line string
		if (i + offset.Rows) < len(b.rows) {
			line = b.rows[i+offset.Rows].DisplayText()
			if offset.Cols < len(line) {
				line = line[offset.Cols:]
			} else {
				line = ""
			}
		}
		// truncate line to fit screen
		if len(line) > size.Cols {
			line = line[0:size.Cols]
		}
		for j, c := range line {
			display.SetCell(j+origin.Col, i, rune(c))
		}
	}
}
