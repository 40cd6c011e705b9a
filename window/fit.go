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
package window

import (
	gott "github.com/timburks/typewriter/types"
)

// DefaultOrigin is where a fitted block is placed inside its container.
var DefaultOrigin = gott.Point{Row: 30, Col: 30}

func Fit(content, container gott.Size) gott.Rect {
	return FitAt(content, container, DefaultOrigin)
}

// FitAt places content at origin, scaled down uniformly if it does not fit in
// container. The content is never scaled up.
func FitAt(content, container gott.Size, origin gott.Point) gott.Rect {
	r := gott.Rect{Origin: origin}
	if container.Cols <= 0 || container.Rows <= 0 || content.Cols <= 0 || content.Rows <= 0 {
		return r
	}
	wr := float64(content.Cols) / float64(container.Cols)
	hr := float64(content.Rows) / float64(container.Rows)
	switch {
	case wr <= 1 && hr <= 1:
		r.Size = content
	case wr > hr:
		r.Size = gott.Size{Cols: container.Cols, Rows: int(float64(content.Rows) / wr)}
	default:
		r.Size = gott.Size{Cols: int(float64(content.Cols) / hr), Rows: container.Rows}
	}
	return r
}

// Scaled reports whether r is smaller than content.
func Scaled(content gott.Size, r gott.Rect) bool {
	return r.Size != content
}
