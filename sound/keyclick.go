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
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate     = beep.SampleRate(44100)
	clickDuration  = 25 * time.Millisecond
	clickFrequency = 1900.0
	clickDecay     = 250.0 // envelope decay per second
)

// Keyclick plays a short typewriter click for every typed character.
type Keyclick struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
}

func NewKeyclick(volume float64) *Keyclick {
	return &Keyclick{volume: volume}
}

// Initialize opens the speaker. A silent keyclick never touches the audio device.
func (k *Keyclick) Initialize() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.initialized || k.volume <= 0 {
		return nil
	}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	if err != nil {
		return err
	}
	k.initialized = true
	return nil
}

func (k *Keyclick) Click() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.initialized {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), NewClickGenerator(sampleRate, k.volume)))
}

func (k *Keyclick) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.initialized {
		return
	}
	speaker.Close()
	k.initialized = false
}

// ClickGenerator is a sharply decaying tone mixed with a little noise.
type ClickGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
	seed   uint32
}

func NewClickGenerator(sr beep.SampleRate, volume float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, volume: volume, seed: 2463534242}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// xorshift noise in [-1, 1]
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := 0.7*math.Sin(2*math.Pi*clickFrequency*t) + 0.3*noise
		sample *= math.Exp(-clickDecay*t) * g.volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
