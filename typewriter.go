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
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/timburks/typewriter/commander"
	"github.com/timburks/typewriter/config"
	"github.com/timburks/typewriter/editor"
	"github.com/timburks/typewriter/screen"
	"github.com/timburks/typewriter/sound"
	"github.com/timburks/typewriter/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	root := filepath.Join(home, "typewriter")
	if err = os.MkdirAll(root, 0755); err != nil {
		return err
	}

	// Open a log file.
	f, err := os.OpenFile(filepath.Join(root, "typewriter.log"), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	defer f.Close()

	cfg, err := config.Load(filepath.Join(root, "typewriter.lsp"))
	if err != nil {
		log.Output(1, err.Error())
	}

	// The editor holds the document and the file it is bound to.
	e := editor.NewEditor(editor.NewStorage(filepath.Join(root, "text")))

	// The commander converts key events into edits and commands for the editor.
	c := commander.NewCommander(e)
	c.SetDebug(cfg.Debug)

	click := sound.NewKeyclick(cfg.Keyclick)
	if err := click.Initialize(); err != nil {
		// the typewriter works fine without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer click.Close()
	c.SetClicker(click)

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg.Backend, cfg.Margin)
	if err != nil {
		return err
	}
	defer s.Close()
	log.Printf("started with %s backend, %d columns, %d rows", cfg.Backend, cfg.WrapWidth, cfg.VisibleRows)

	// Quit signals are delivered to the event loop as quit events.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-signals
		s.Interrupt()
	}()

	// Run the main event loop.
	for c.IsRunning() {
		frame := window.Frame(e.Text(), cfg.WrapWidth, cfg.VisibleRows)
		if err = s.Render(frame, e.Dirty()); err != nil {
			return err
		}
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}
