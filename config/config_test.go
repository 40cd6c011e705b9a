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

	gott "github.com/timburks/typewriter/types"
	"github.com/timburks/typewriter/window"
)

func TestDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.lsp"))
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if c.WrapWidth != window.DefaultWidth || c.VisibleRows != window.DefaultRows || c.Backend != "termbox" {
		t.Errorf("Unexpected defaults %+v", c)
	}
	if c.Keyclick != 0 || c.Debug {
		t.Errorf("Keyclick and debugging should be off by default: %+v", c)
	}
}

func TestParseAllSettings(t *testing.T) {
	c := Default()
	source := `
; a quieter, narrower page
(wrap-width 80)
(visible-rows 24)
(backend "tcell")
(keyclick 0.5)
(margin 0 4)
(debug-events 1)
`
	if err := Parse(source, c); err != nil {
		t.Fatalf("Parse failed: %+v", err)
	}
	if c.WrapWidth != 80 || c.VisibleRows != 24 || c.Backend != "tcell" {
		t.Errorf("Unexpected settings %+v", c)
	}
	if c.Keyclick != 0.5 || !c.Debug {
		t.Errorf("Unexpected settings %+v", c)
	}
	if c.Margin != (gott.Point{Row: 0, Col: 4}) {
		t.Errorf("Unexpected margin %+v", c.Margin)
	}
}

func TestParseEmpty(t *testing.T) {
	c := Default()
	if err := Parse("  \n", c); err != nil {
		t.Errorf("Parse of an empty file failed: %+v", err)
	}
	if *c != *Default() {
		t.Errorf("Empty source changed settings %+v", c)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	for _, source := range []string{
		"(wrap-width 0)",
		"(visible-rows -3)",
		`(wrap-width "wide")`,
		`(backend "sdl")`,
		"(backend 1)",
		"(keyclick 2)",
		"(margin -1 0)",
	} {
		if err := Parse(source, Default()); err == nil {
			t.Errorf("Expected %s to be rejected", source)
		}
	}
}

func TestLoadKeepsEarlierSettingsOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typewriter.lsp")
	os.WriteFile(path, []byte("(visible-rows 12)\n(backend \"sdl\")\n(wrap-width 60)"), 0644)
	c, err := Load(path)
	if err == nil {
		t.Errorf("Expected an error")
	}
	if c.VisibleRows != 12 || c.WrapWidth != window.DefaultWidth || c.Backend != "termbox" {
		t.Errorf("Unexpected settings after error %+v", c)
	}
}
