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
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-rc"))
	if err != nil {
		t.Errorf("A missing rc file should not be an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("A missing rc file should yield the defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinerc")
	rc := "tabwidth: 4\nuntitled: scratch.txt\nshowhelp: false\n"
	if err := os.WriteFile(path, []byte(rc), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TabWidth != 4 || cfg.Untitled != "scratch.txt" || cfg.ShowHelp {
		t.Errorf("Unexpected configuration: %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinerc")
	if err := os.WriteFile(path, []byte("tabwidth: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TabWidth != 2 {
		t.Errorf("Unexpected tab width: %d", cfg.TabWidth)
	}
	if cfg.Untitled != "untitled.txt" || !cfg.ShowHelp {
		t.Errorf("Unset fields should keep their defaults: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinerc")
	if err := os.WriteFile(path, []byte("tabwidth: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Error("A malformed rc file should report an error")
	}
	if cfg != Default() {
		t.Errorf("A malformed rc file should yield the defaults, got %+v", cfg)
	}
}

func TestLoadRejectsNonPositiveTabWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinerc")
	if err := os.WriteFile(path, []byte("tabwidth: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TabWidth != defaultTabWidth {
		t.Errorf("A non-positive tab width should fall back to the default, got %d", cfg.TabWidth)
	}
}
