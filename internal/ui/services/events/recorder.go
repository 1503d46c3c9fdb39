package events

// Recorder is an EventBus that keeps every published event in order.
// Subscribers are still notified.
type Recorder struct {
	Bus
	Events []interface{}
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{Bus: Bus{listeners: make(map[string][]func(interface{}))}}
}

// Publish records the event, then delivers it
func (r *Recorder) Publish(event interface{}) {
	r.Events = append(r.Events, event)
	r.Bus.Publish(event)
}

// Count returns how many events of the same type as sample were published
func (r *Recorder) Count(sample interface{}) int {
	name := TypeOf(sample)
	n := 0
	for _, e := range r.Events {
		if TypeOf(e) == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded events
func (r *Recorder) Reset() {
	r.Events = nil
}
