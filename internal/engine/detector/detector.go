// Package detector tracks the last known value of each cache-enabled activity.
package detector

import "sync"

type slot struct {
	mu    sync.Mutex
	value string
}

// Detector remembers one last value per activity. The set of tracked
// activities is fixed at construction, so the slot map itself is read-only.
type Detector struct {
	slots map[string]*slot
}

// New creates a Detector tracking activities, each starting from "".
func New(activities ...string) *Detector {
	d := &Detector{slots: make(map[string]*slot, len(activities))}
	for _, a := range activities {
		d.slots[a] = &slot{}
	}
	return d
}

// IsChanged reports whether value differs from the last value seen for
// activity, and records value when it does. Untracked activities always
// report a change and record nothing.
func (d *Detector) IsChanged(activity, value string) bool {
	s, ok := d.slots[activity]
	if !ok {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == value {
		return false
	}
	s.value = value
	return true
}

// Last returns the last value recorded for activity.
func (d *Detector) Last(activity string) string {
	s, ok := d.slots[activity]
	if !ok {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Reset overwrites the last value of activity, e.g. to roll back a change
// whose persistence failed.
func (d *Detector) Reset(activity, value string) {
	s, ok := d.slots[activity]
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}
