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
	"errors"
	"fmt"
	"sync"

	"github.com/steelseries/golisp"
)

// golisp primitives are global, so evaluation writes to a single target at a time.
var (
	mu     sync.Mutex
	target *Config
)

func init() {
	golisp.MakePrimitiveFunction("wrap-width", "1", WrapWidthImpl)
	golisp.MakePrimitiveFunction("visible-rows", "1", VisibleRowsImpl)
	golisp.MakePrimitiveFunction("backend", "1", BackendImpl)
	golisp.MakePrimitiveFunction("keyclick", "1", KeyclickImpl)
	golisp.MakePrimitiveFunction("margin", "2", MarginImpl)
	golisp.MakePrimitiveFunction("debug-events", "1", DebugImpl)
}

func eval(source string, c *Config) error {
	mu.Lock()
	defer mu.Unlock()
	target = c
	defer func() { target = nil }()
	_, err := golisp.ParseAndEval(source)
	return err
}

func number(d *golisp.Data) (float64, error) {
	switch {
	case golisp.IntegerP(d):
		return float64(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return float64(golisp.FloatValue(d)), nil
	default:
		return 0, errors.New("expected a number")
	}
}

func positive(name string, args *golisp.Data) (int, error) {
	n, err := number(golisp.Car(args))
	if err != nil {
		return 0, fmt.Errorf("%s: %v", name, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive, got %v", name, n)
	}
	return int(n), nil
}

func WrapWidthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := positive("wrap-width", args)
	if err != nil {
		return nil, err
	}
	target.WrapWidth = n
	return golisp.Car(args), nil
}

func VisibleRowsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := positive("visible-rows", args)
	if err != nil {
		return nil, err
	}
	target.VisibleRows = n
	return golisp.Car(args), nil
}

func BackendImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("backend requires a string argument")
	}
	name := golisp.StringValue(val)
	switch name {
	case "termbox", "tcell":
		target.Backend = name
		return val, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func KeyclickImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	volume, err := number(golisp.Car(args))
	if err != nil {
		return nil, fmt.Errorf("keyclick: %v", err)
	}
	if volume < 0 || volume > 1 {
		return nil, fmt.Errorf("keyclick volume must be between 0 and 1, got %v", volume)
	}
	target.Keyclick = volume
	return golisp.Car(args), nil
}

func MarginImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	rows, err := number(golisp.Car(args))
	if err != nil {
		return nil, fmt.Errorf("margin: %v", err)
	}
	cols, err := number(golisp.Car(golisp.Cdr(args)))
	if err != nil {
		return nil, fmt.Errorf("margin: %v", err)
	}
	if rows < 0 || cols < 0 {
		return nil, errors.New("margin must not be negative")
	}
	target.Margin.Row = int(rows)
	target.Margin.Col = int(cols)
	return golisp.Car(args), nil
}

func DebugImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := number(golisp.Car(args))
	if err != nil {
		return nil, fmt.Errorf("debug-events: %v", err)
	}
	target.Debug = n != 0
	return golisp.Car(args), nil
}
