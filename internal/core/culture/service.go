// Package culture tracks the process-wide UI culture and announces changes on
// the event bus.
package culture

import (
	"fmt"
	"sync"
	"time"

	"herald/internal/core/event"
	"herald/internal/domain"
	"herald/internal/logger"

	"golang.org/x/text/language"
)

type Service struct {
	bus *event.Bus
	log logger.Logger

	mu        sync.RWMutex
	current   language.Tag
	supported []language.Tag
	matcher   language.Matcher
}

func NewService(bus *event.Bus, log logger.Logger, defaultCulture string, supported []string) (*Service, error) {
	tags := make([]language.Tag, 0, len(supported))
	for _, raw := range supported {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCulture, raw)
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil, ErrNoSupportedCulture
	}

	s := &Service{
		bus:       bus,
		log:       log,
		supported: tags,
		matcher:   language.NewMatcher(tags),
	}

	current, err := s.resolve(defaultCulture)
	if err != nil {
		return nil, fmt.Errorf("default culture: %w", err)
	}
	s.current = current

	return s, nil
}

func (s *Service) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.String()
}

func (s *Service) Supported() []string {
	out := make([]string, len(s.supported))
	for i, tag := range s.supported {
		out[i] = tag.String()
	}
	return out
}

// Set switches the current culture. Subscribers are notified on the caller's
// goroutine after the new value is visible to Current.
func (s *Service) Set(raw string) error {
	next, err := s.resolve(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.current
	if prev == next {
		s.mu.Unlock()
		return nil
	}
	s.current = next
	s.mu.Unlock()

	s.log.Info("culture: changed", "from", prev.String(), "to", next.String())

	s.bus.Publish(domain.EventCultureChanged{
		Previous:  prev.String(),
		Current:   next.String(),
		ChangedAt: time.Now().UTC(),
	})

	return nil
}

// resolve maps raw onto one of the supported tags. Matches below high
// confidence are rejected.
func (s *Service) resolve(raw string) (language.Tag, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidCulture, raw)
	}

	_, idx, conf := s.matcher.Match(tag)
	if conf < language.High {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedCulture, raw)
	}

	return s.supported[idx], nil
}

// Watch subscribes fn to culture changes. The caller owns the returned
// subscription.
func Watch(bus *event.Bus, fn func(domain.EventCultureChanged)) *event.Subscription {
	return event.Subscribe(bus, fn)
}
