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
	"strings"

	"github.com/pkg/errors"

	gott "github.com/timburks/typewriter/types"
	"github.com/timburks/typewriter/window"
)

// Config holds the settings of a typewriter session.
type Config struct {
	WrapWidth   int        // characters per display line
	VisibleRows int        // display lines shown at once
	Backend     string     // "termbox" or "tcell"
	Keyclick    float64    // keyclick volume, 0 is silent
	Margin      gott.Point // offset of the text block in the terminal
	Debug       bool       // log every event
}

func Default() *Config {
	return &Config{
		WrapWidth:   window.DefaultWidth,
		VisibleRows: window.DefaultRows,
		Backend:     "termbox",
		Margin:      gott.Point{Row: 1, Col: 2},
	}
}

// Load reads the config file at path. A missing file gives the defaults.
// On an evaluation error the returned config holds the defaults updated by
// every form evaluated before the error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	return c, errors.Wrap(Parse(string(b), c), path)
}

// Parse evaluates source, applying its settings to c.
func Parse(source string, c *Config) error {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	return eval("(begin\n"+source+"\n)", c)
}
