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
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const defaultTabWidth = 8

// Config holds the run-control settings read from ~/.pinerc.
type Config struct {
	TabWidth int    `yaml:"tabwidth"` // columns per tab stop
	Untitled string `yaml:"untitled"` // save name for a buffer with no file
	ShowHelp bool   `yaml:"showhelp"` // render the help bar
}

func Default() Config {
	return Config{
		TabWidth: defaultTabWidth,
		Untitled: "untitled.txt",
		ShowHelp: true,
	}
}

// Load reads a YAML rc file over the defaults. A missing file yields the
// defaults silently; a malformed one yields the defaults and an error the
// caller may surface as an advisory.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), err
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.Untitled == "" {
		cfg.Untitled = "untitled.txt"
	}
	return cfg, nil
}
