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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// TextExtension is the only kind of file the storage directory lists.
const TextExtension = ".txt"

// Storage is the directory that documents are listed from, read from and
// written to. The directory is created on demand.
type Storage struct {
	dir string
}

func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) Ensure() error {
	return os.MkdirAll(s.dir, 0755)
}

// List returns the names of the text files in the directory, sorted.
func (s *Storage) List() ([]string, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != TextExtension {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Resolve returns the path of a named document inside the directory.
func (s *Storage) Resolve(name string) string {
	if filepath.Ext(name) != TextExtension {
		name += TextExtension
	}
	return filepath.Join(s.dir, name)
}

// Read returns the contents of path. Contents that are not valid UTF-8
// are reported as an error.
func (s *Storage) Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s does not contain valid text", path)
	}
	return string(b), nil
}

// Write replaces the contents of path with text, verbatim.
func (s *Storage) Write(path string, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = f.WriteString(text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
