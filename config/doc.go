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

// Package config reads typewriter settings from a small Lisp file, for example
//
//	(wrap-width 100)
//	(visible-rows 24)
//	(backend "tcell")
//	(keyclick 0.5)
//	(margin 1 2)
//	(debug-events 1)
//
// Every form is optional; anything not set keeps its default.
package config
