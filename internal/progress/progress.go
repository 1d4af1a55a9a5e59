// Package progress defines the progress notification types shared by the
// calculator, the background worker and the presentation layers.
package progress

import "sync"

// Update is a single progress notification emitted by a running
// calculation. It travels over channels from the worker goroutine to the
// goroutine that owns the progress surface.
type Update struct {
	// Percent is the integer percentage boundary reached (0..100).
	Percent int
}

// Callback is the functional form used by the calculator loop to report a
// percentage boundary without knowing how it will be delivered.
type Callback func(percent int)

// Observer receives progress notifications.
type Observer interface {
	Update(percent int)
}

// Subject fans a progress notification out to registered observers in
// registration order. It is safe for concurrent use.
type Subject struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewSubject creates an empty Subject.
func NewSubject() *Subject {
	return &Subject{}
}

// Register adds an observer. A nil observer is ignored.
func (s *Subject) Register(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Notify forwards percent to every registered observer.
func (s *Subject) Notify(percent int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.Update(percent)
	}
}

// ObserverCount returns the number of registered observers.
func (s *Subject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// AsCallback adapts the subject to the Callback form expected by the
// calculator.
func (s *Subject) AsCallback() Callback {
	return s.Notify
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(percent int)

// Update calls f(percent).
func (f ObserverFunc) Update(percent int) { f(percent) }

// Recorder is an Observer that keeps every percentage it receives.
// Useful for tests and for post-run summaries.
type Recorder struct {
	mu     sync.Mutex
	values []int
}

// Update records percent.
func (r *Recorder) Update(percent int) {
	r.mu.Lock()
	r.values = append(r.values, percent)
	r.mu.Unlock()
}

// Values returns a copy of the recorded percentages.
func (r *Recorder) Values() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}

// Last returns the most recent percentage, or -1 if none was recorded.
func (r *Recorder) Last() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return -1
	}
	return r.values[len(r.values)-1]
}

// IsNonDecreasing reports whether values never go down.
func IsNonDecreasing(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
