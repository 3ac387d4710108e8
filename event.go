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

// Event is a single deferred callback, created by the caller and handed to a
// Wheel with Schedule or ScheduleInRange. The event doubles as its own
// intrusive list node: the slot holding it only keeps a head pointer, so
// cancelling or moving an event is a constant-time relink with no allocation.
//
// An event is owned by its creator. The wheel holds non-owning linkage only,
// and an event may be reused for any number of schedule/fire/cancel cycles.
// An Event must not be copied while active; the slot it sits in points back
// at it.
type Event struct {
	scheduledAt Tick
	// slot currently holding this event; nil when the event is inactive.
	slot       *slot
	next, prev *Event
	fn         func()
}

// NewEvent returns an inactive event that runs fn when it fires.
func NewEvent(fn func()) *Event {
	return &Event{fn: fn}
}

// NewMethodEvent returns an inactive event bound to a method of obj. The
// event keeps a non-owning reference to obj; the caller must ensure obj
// outlives the event.
//
//	conn := &Conn{}
//	idle := tickwheel.NewMethodEvent(conn, (*Conn).onIdle)
func NewMethodEvent[T any](obj *T, fn func(*T)) *Event {
	return &Event{fn: func() { fn(obj) }}
}

// Active reports whether the event currently occupies a slot in some wheel.
func (e *Event) Active() bool {
	return e.slot != nil
}

// ScheduledAt returns the absolute tick the event fires at. The value is
// meaningful only while the event is active, or right after it has fired.
func (e *Event) ScheduledAt() Tick {
	return e.scheduledAt
}

// Cancel detaches the event from its wheel. Cancelling an inactive event is
// a no-op, so Cancel is idempotent and safe to call from inside any event
// callback, including the event's own.
func (e *Event) Cancel() {
	if e.slot == nil {
		return
	}
	e.relink(nil)
}

// execute runs the callback. The wheel has already detached the event, so
// the callback may freely reschedule or cancel it.
func (e *Event) execute() {
	e.fn()
}

// relink moves the event to newSlot, detaching it from its current slot
// first. A nil newSlot just detaches. Relinking into the slot the event is
// already in keeps its list position.
func (e *Event) relink(newSlot *slot) {
	if newSlot == e.slot {
		return
	}

	if e.slot != nil {
		prev, next := e.prev, e.next
		if next != nil {
			next.prev = prev
		}
		if prev != nil {
			prev.next = next
		} else {
			// At the head of the slot, move the next event up.
			e.slot.events = next
		}
	}

	if newSlot != nil {
		old := newSlot.events
		e.next = old
		if old != nil {
			old.prev = e
		}
		newSlot.events = e
	} else {
		e.next = nil
	}
	e.prev = nil
	e.slot = newSlot
}

// slot is the head of an intrusive doubly-linked list of events due inside
// this slot's granularity window. Insertion is LIFO.
type slot struct {
	events *Event
}

// popFront detaches and returns the head event, or nil on an empty slot.
func (s *slot) popFront() *Event {
	e := s.events
	if e == nil {
		return nil
	}
	s.events = e.next
	if s.events != nil {
		s.events.prev = nil
	}
	e.next = nil
	e.slot = nil
	return e
}
