// Copyright 2024 Logdeck Technologies <dev@logdeck.io>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package debounce coalesces rapid text-input changes into a single filter
// update once the input has been quiet for a fixed period.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the debounce window applied when none is given.
const DefaultQuietPeriod = 300 * time.Millisecond

// Input wraps a text value. The latest keystroke is visible through Value
// immediately, but emit only fires with the final value after a full quiet
// period without further keystrokes.
type Input struct {
	// protects value and timer
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
	value string
	emit  func(string)
}

// NewInput creates a controller that forwards settled values to emit.
func NewInput(quiet time.Duration, emit func(string)) *Input {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Input{quiet: quiet, emit: emit}
}

// OnInput records a keystroke and restarts the quiet period.
func (in *Input) OnInput(value string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.value = value
	in.resetTimer()
}

// OnExternalReset resynchronizes the displayed value when the underlying
// filter changes from outside (e.g. a reset), bypassing the delay. Any
// pending emit is cancelled.
func (in *Input) OnExternalReset(value string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.value = value
	if in.timer != nil {
		in.timer.Stop()
	}
}

// Value returns the latest keystroke value for display.
func (in *Input) Value() string {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.value
}

// Stop cancels any pending emit.
func (in *Input) Stop() {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.timer != nil {
		in.timer.Stop()
	}
}

// Starts or restarts the quiet-period timer
func (in *Input) resetTimer() {
	if in.timer == nil {
		in.timer = time.AfterFunc(in.quiet, in.flush)
	} else {
		in.timer.Reset(in.quiet)
	}
}

// Forwards the settled value
func (in *Input) flush() {
	in.mu.Lock()
	value := in.value
	emit := in.emit
	in.mu.Unlock()

	if emit != nil {
		emit(value)
	}
}
