// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package tickwheel

import (
	"time"

	"github.com/aristanetworks/goarista/monotime"
)

// Driver advances a wheel from the monotonic clock, mapping wall-clock time
// onto ticks at a fixed precision. The wheel itself never looks at a clock;
// the driver is an optional collaborator for callers that pump timers from a
// ticker or poll loop rather than from their own logical time.
//
//	w := tickwheel.New()
//	d := tickwheel.NewDriver(w, 10*time.Millisecond)
//	for range ticker.C {
//		d.Update()
//	}
type Driver struct {
	wheel  *Wheel
	precis time.Duration
	// last observed monotonic time, quantized to precis.
	point uint64
}

// NewDriver returns a driver pumping w with one tick per precision interval.
// A non-positive precision defaults to 10 milliseconds.
func NewDriver(w *Wheel, precision time.Duration) *Driver {
	if precision <= 0 {
		precision = 10 * time.Millisecond
	}
	return &Driver{
		wheel:  w,
		precis: precision,
		point:  monotime.Now() / uint64(precision),
	}
}

// Update samples the monotonic clock and advances the wheel by however many
// whole ticks have elapsed since the previous call, firing due events.
// It returns the number of ticks advanced; calls landing inside the same
// tick are no-ops.
func (d *Driver) Update() Tick {
	cp := monotime.Now() / uint64(d.precis)
	if cp <= d.point {
		// A monotonic clock should not go backwards, but resync rather
		// than advance if it somehow does.
		d.point = cp
		return 0
	}
	diff := Tick(cp - d.point)
	d.point = cp
	d.wheel.Advance(diff)
	return diff
}

// Now returns the driven wheel's current tick.
func (d *Driver) Now() Tick {
	return d.wheel.Now()
}
