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
package commander

import (
	"errors"
	"os"

	"github.com/steelseries/golisp"
	gott "github.com/pmarks/pine/types"
)

// the editor driven by the lisp primitives, set by NewCommander
var lispEditor gott.Editor

func init() {
	golisp.MakePrimitiveFunction("move-up", "1", moveImpl(gott.MoveUp))
	golisp.MakePrimitiveFunction("move-down", "1", moveImpl(gott.MoveDown))
	golisp.MakePrimitiveFunction("move-left", "1", moveImpl(gott.MoveLeft))
	golisp.MakePrimitiveFunction("move-right", "1", moveImpl(gott.MoveRight))
	golisp.MakePrimitiveFunction("insert-text", "1", insertTextImpl)
	golisp.MakePrimitiveFunction("break-line", "0", breakLineImpl)
	golisp.MakePrimitiveFunction("backspace", "1", backspaceImpl)
	golisp.MakePrimitiveFunction("goto", "1", gotoImpl)
	golisp.MakePrimitiveFunction("save", "0", saveImpl)
	golisp.MakePrimitiveFunction("editor-row", "0", editorRowImpl)
	golisp.MakePrimitiveFunction("editor-col", "0", editorColImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", bufferTextImpl)
}

func numberValue(d *golisp.Data) (int, error) {
	if golisp.IntegerP(d) {
		return int(golisp.IntegerValue(d)), nil
	}
	if golisp.FloatP(d) {
		return int(golisp.FloatValue(d)), nil
	}
	return 0, errors.New("numeric argument required")
}

func moveImpl(direction int) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if lispEditor == nil {
			return nil, errors.New("no editor")
		}
		n, err := numberValue(golisp.Car(args))
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			lispEditor.MoveCursor(direction)
		}
		return nil, nil
	}
}

func insertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-text requires a string argument")
	}
	for _, c := range golisp.StringValue(val) {
		if c == '\n' {
			lispEditor.BreakLine()
		} else {
			lispEditor.InsertChar(c)
		}
	}
	return nil, nil
}

func breakLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	lispEditor.BreakLine()
	return nil, nil
}

func backspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	n, err := numberValue(golisp.Car(args))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		lispEditor.BackspaceChar()
	}
	return nil, nil
}

// (goto n) moves to the start of 1-based line n, clamped to the document
func gotoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	n, err := numberValue(golisp.Car(args))
	if err != nil {
		return nil, err
	}
	row := n - 1
	if row > lispEditor.GetBuffer().GetRowCount()-1 {
		row = lispEditor.GetBuffer().GetRowCount() - 1
	}
	if row < 0 {
		row = 0
	}
	lispEditor.SetCursor(gott.Point{Row: row, Col: 0})
	lispEditor.Scroll()
	return nil, nil
}

func saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	result := lispEditor.SaveFile()
	if result.Severity == gott.StatusFailed {
		return nil, result.Err
	}
	return golisp.StringWithValue(result.Message), nil
}

func editorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	return golisp.IntegerWithValue(int64(lispEditor.GetCursor().Row)), nil
}

func editorColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	return golisp.IntegerWithValue(int64(lispEditor.GetCursor().Col)), nil
}

func bufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor")
	}
	return golisp.StringWithValue(string(lispEditor.Bytes())), nil
}

func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "error: " + err.Error()
	}
	return golisp.String(value)
}

func (c *Commander) ParseEvalFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return "error: " + err.Error()
	}
	return c.ParseEval(string(b))
}
