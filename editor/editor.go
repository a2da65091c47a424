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
	"os"

	gott "github.com/pmarks/pine/types"
)

// DefaultUntitledName is used when saving a buffer that was never
// associated with a file.
const DefaultUntitledName = "untitled.txt"

// The Editor manages the editing of text in a Buffer. It owns the cursor,
// the scroll offset, and the modified flag. Every mutation recomputes the
// scroll offset so the caller can redraw immediately.
type Editor struct {
	Cursor   gott.Point // cursor position
	Offset   gott.Size  // display offset
	Buffer   *Buffer    // buffer being edited
	size     gott.Size  // size of editing area
	modified bool       // buffer differs from the last saved state
	untitled string     // save name for a buffer with no file
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.untitled = DefaultUntitledName
	return e
}

// SetUntitledName overrides the fallback save name (from configuration).
func (e *Editor) SetUntitledName(name string) {
	if name != "" {
		e.untitled = name
	}
}

// ReadFile loads a file into the buffer. A file that does not exist is the
// same as an empty file; any other open failure yields an empty buffer and
// an advisory message. Neither is an error.
func (e *Editor) ReadFile(path string) gott.Result {
	e.Buffer = NewBuffer()
	e.Buffer.SetFileName(path)
	e.Cursor = gott.Point{}
	e.Offset = gott.Size{}
	e.modified = false
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return gott.Recovered("", err)
		}
		return gott.Recovered("Error opening file.", err)
	}
	e.Buffer.LoadBytes(b)
	return gott.OK("")
}

// SaveFile writes the buffer to its file, assigning the untitled name
// first if no file is associated. Failure leaves the buffer and the
// modified flag untouched.
func (e *Editor) SaveFile() gott.Result {
	if e.Buffer.GetFileName() == "" {
		e.Buffer.SetFileName(e.untitled)
	}
	f, err := os.Create(e.Buffer.GetFileName())
	if err != nil {
		return gott.Failed("Error: Cannot open file for writing!", err)
	}
	defer f.Close()
	if _, err = f.Write(e.Bytes()); err != nil {
		return gott.Failed("Error: Cannot open file for writing!", err)
	}
	e.modified = false
	return gott.OK("File saved successfully!")
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) Modified() bool {
	return e.modified
}

// Scroll keeps the cursor inside the visible window. Idempotent when the
// cursor has not left the current window.
func (e *Editor) Scroll() {
	if e.size.Rows > 0 {
		if e.Cursor.Row < e.Offset.Rows {
			e.Offset.Rows = e.Cursor.Row
		}
		if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
			e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
		}
	}
	if e.size.Cols > 0 {
		if e.Cursor.Col < e.Offset.Cols {
			e.Offset.Cols = e.Cursor.Col
		}
		if e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
			e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
		}
	}
}

// MoveCursor moves one step in a direction. Left at the start of a row
// wraps to the end of the previous row; Right at the end of a row wraps to
// the start of the next one.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case gott.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
		e.clampColToRow()
	case gott.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
		e.clampColToRow()
	case gott.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case gott.MoveRight:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		} else if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	}
	e.Scroll()
}

// the cursor column may rest just past the last character, but no further
func (e *Editor) clampColToRow() {
	rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
	if e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

// InsertChar splices a printable character in at the cursor and advances
// the cursor by one column.
func (e *Editor) InsertChar(c rune) {
	e.clampColToRow()
	if e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c) {
		e.Cursor.Col++
		e.modified = true
	}
	e.Scroll()
}

// BackspaceChar deletes the character before the cursor. At the start of a
// row it merges the row onto the previous one; at the start of the
// document it does nothing.
func (e *Editor) BackspaceChar() {
	if e.Cursor.Col == 0 && e.Cursor.Row == 0 {
		return
	}
	if e.Cursor.Col > 0 {
		e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col - 1)
		e.Cursor.Col--
		e.modified = true
	} else {
		// merge this row into the previous one
		previous := e.Buffer.rows[e.Cursor.Row-1]
		newCol := previous.Length()
		previous.Join(e.Buffer.rows[e.Cursor.Row])
		e.Buffer.rows = append(e.Buffer.rows[0:e.Cursor.Row], e.Buffer.rows[e.Cursor.Row+1:]...)
		e.Cursor.Row--
		e.Cursor.Col = newCol
		e.modified = true
	}
	e.Scroll()
}

// BreakLine handles the line-break key. On the last row it appends a new
// empty row and moves to it; otherwise it only moves the cursor to the
// next existing row. The current row's tail stays where it is.
func (e *Editor) BreakLine() {
	if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
		e.Cursor.Row++
		e.clampColToRow()
	} else {
		e.InsertLineAt(e.Buffer.GetRowCount(), "")
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
		e.Cursor.Col = 0
	}
	e.Scroll()
}

// InsertLineAt inserts a row, shifting later rows down. Out-of-range
// positions are a guarded no-op.
func (e *Editor) InsertLineAt(at int, text string) {
	if e.Buffer.InsertRow(at, text) {
		e.modified = true
	}
	e.Scroll()
}

// DeleteLineAt removes a row. The buffer keeps at least one row and the
// cursor stays inside it.
func (e *Editor) DeleteLineAt(at int) {
	if e.Buffer.DeleteRow(at) {
		e.modified = true
	}
	if e.Cursor.Row > e.Buffer.GetRowCount()-1 {
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
	}
	e.clampColToRow()
	e.Scroll()
}

// editor interface accessors

func (e *Editor) GetCursor() gott.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.Cursor = cursor
}

func (e *Editor) SetSize(s gott.Size) {
	e.size = s
}

func (e *Editor) GetOffset() gott.Size {
	return e.Offset
}

func (e *Editor) GetBuffer() gott.Buffer {
	return e.Buffer
}
