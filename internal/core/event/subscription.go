package event

// Subscription is the handle returned by Subscribe. Unsubscribe may be called
// any number of times; only the first call has an effect.
type Subscription struct {
	registry     *registry
	registration *registration
}

// Unsubscribe removes the handler. Once it returns, no later Publish calls
// the handler. A Publish already running on another goroutine may still
// deliver to it if it read the handler before the removal.
func (s *Subscription) Unsubscribe() {
	s.registry.remove(s.registration)
}

func (s *Subscription) Active() bool {
	return s.registration.active.Load()
}

// UnsubscribeAll disposes every non-nil subscription in subs.
func UnsubscribeAll(subs []*Subscription) {
	for _, s := range subs {
		if s != nil {
			s.Unsubscribe()
		}
	}
}
