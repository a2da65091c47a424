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

import "testing"

func rowTexts(b *Buffer) []string {
	texts := make([]string, 0, b.GetRowCount())
	for i := 0; i < b.GetRowCount(); i++ {
		texts = append(texts, b.GetRowText(i))
	}
	return texts
}

func sameTexts(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBufferStartsWithOneRow(t *testing.T) {
	b := NewBuffer()
	if count := b.GetRowCount(); count != 1 {
		t.Errorf("New buffer should have one row, got %d", count)
	}
	if text := b.GetRowText(0); text != "" {
		t.Errorf("New buffer's row should be empty, got '%s'", text)
	}
}

func TestBufferLoadBytes(t *testing.T) {
	b := NewBuffer()

	b.LoadBytes([]byte("ab\nc\n\n"))
	if !sameTexts(rowTexts(b), []string{"ab", "c", ""}) {
		t.Errorf("Unexpected rows after load: %v", rowTexts(b))
	}

	// a document with no trailing newline keeps its last line
	b.LoadBytes([]byte("ab\nc"))
	if !sameTexts(rowTexts(b), []string{"ab", "c"}) {
		t.Errorf("Unexpected rows after load without trailing newline: %v", rowTexts(b))
	}

	// an empty source still yields one empty row
	b.LoadBytes([]byte(""))
	if !sameTexts(rowTexts(b), []string{""}) {
		t.Errorf("Unexpected rows after empty load: %v", rowTexts(b))
	}

	// carriage returns are stripped with the terminator
	b.LoadBytes([]byte("ab\r\nc\r\n"))
	if !sameTexts(rowTexts(b), []string{"ab", "c"}) {
		t.Errorf("Unexpected rows after CRLF load: %v", rowTexts(b))
	}
}

func TestBufferBytesRoundTrip(t *testing.T) {
	documents := [][]string{
		{""},
		{"ab", "c", ""},
		{"", "", ""},
		{"only line"},
	}
	for _, doc := range documents {
		b := NewBuffer()
		b.rows = make([]*Row, 0)
		for _, line := range doc {
			b.rows = append(b.rows, NewRow(line))
		}
		reloaded := NewBuffer()
		reloaded.LoadBytes(b.Bytes())
		if !sameTexts(rowTexts(reloaded), doc) {
			t.Errorf("Round trip changed %v to %v", doc, rowTexts(reloaded))
		}
	}
}

func TestBufferInsertRow(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("a\nc\n"))
	if !b.InsertRow(1, "b") {
		t.Error("In-range insertion failed")
	}
	if !sameTexts(rowTexts(b), []string{"a", "b", "c"}) {
		t.Errorf("Unexpected rows after insertion: %v", rowTexts(b))
	}
	if !b.InsertRow(3, "d") {
		t.Error("Insertion at the end failed")
	}
	// out-of-range insertions are guarded no-ops
	if b.InsertRow(5, "x") || b.InsertRow(-1, "x") {
		t.Error("Out-of-range insertion was not rejected")
	}
	if count := b.GetRowCount(); count != 4 {
		t.Errorf("Unexpected row count: %d", count)
	}
}

func TestBufferDeleteRowKeepsOneRow(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("a\nb\n"))
	if !b.DeleteRow(0) {
		t.Error("In-range deletion failed")
	}
	if b.DeleteRow(5) || b.DeleteRow(-1) {
		t.Error("Out-of-range deletion was not rejected")
	}
	// deleting every row leaves one empty row
	for i := 0; i < 10; i++ {
		b.DeleteRow(0)
		if b.GetRowCount() < 1 {
			t.Fatalf("Buffer dropped below one row after %d deletions", i+1)
		}
	}
	if !sameTexts(rowTexts(b), []string{""}) {
		t.Errorf("Unexpected rows after deleting everything: %v", rowTexts(b))
	}
}

func TestBufferInsertCharacter(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ac\n"))
	if !b.InsertCharacter(0, 1, 'b') {
		t.Error("In-range insertion failed")
	}
	if text := b.GetRowText(0); text != "abc" {
		t.Errorf("Unexpected row text: '%s'", text)
	}
	// the column is clamped, never rejected
	if !b.InsertCharacter(0, 100, 'd') {
		t.Error("Insertion with a large column should be clamped, not rejected")
	}
	if text := b.GetRowText(0); text != "abcd" {
		t.Errorf("Unexpected row text after clamped insertion: '%s'", text)
	}
	// an out-of-range row is a guarded no-op
	if b.InsertCharacter(5, 0, 'x') {
		t.Error("Out-of-range row insertion was not rejected")
	}
}
