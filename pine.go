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
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pmarks/pine/commander"
	"github.com/pmarks/pine/config"
	"github.com/pmarks/pine/editor"
	"github.com/pmarks/pine/screen"
)

func main() {

	var filename string
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			// If a file was specified on the command line, edit it.
			filename = argi
		}
	}

	home, _ := os.UserHomeDir()
	cfg, cfgErr := config.Load(filepath.Join(home, ".pinerc"))

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.SetUntitledName(cfg.Untitled)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)
	c.SetTabWidth(cfg.TabWidth)

	if filename != "" {
		result := e.ReadFile(filename)
		c.SetMessage(result.Message)
	}
	if cfgErr != nil {
		c.SetMessage("Error reading ~/.pinerc, using defaults.")
	}

	if script != "" {
		// Run a pine script and exit.
		output := c.ParseEvalFile(script)
		if output != "" {
			fmt.Println(output)
		}
		return
	}

	// Create a screen to manage display.
	s := screen.NewScreen(cfg.ShowHelp)
	if s == nil {
		return
	}
	defer s.Close()

	// Open a log file; termbox owns the terminal, so stderr is unusable.
	f, err := os.OpenFile(filepath.Join(home, ".pinelog"), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	if c.GetMessage() == "" {
		c.SetMessage("HELP: Ctrl+O = Save | Ctrl+X = Exit")
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
