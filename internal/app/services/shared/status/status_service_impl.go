package status

import (
	"sync"
	"time"

	"patientor-service/internal/app/contracts"
	"patientor-service/internal/pkg/dto/responses"
)

// statusService keeps the single transient banner. Each Show advances a
// generation counter and arms a fresh dismiss timer; an expiring timer only
// clears the banner it was armed for, so a stale timer can never wipe a
// banner shown after it.
type statusService struct {
	mu         sync.Mutex
	ttl        time.Duration
	timer      *time.Timer
	generation uint64
	current    *responses.StatusBanner
}

func NewStatusService(ttl time.Duration) contracts.StatusService {
	return &statusService{ttl: ttl}
}

func (s *statusService) Show(severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.generation++
	generation := s.generation
	s.current = &responses.StatusBanner{Severity: severity, Message: message}
	s.timer = time.AfterFunc(s.ttl, func() {
		s.expire(generation)
	})
}

func (s *statusService) expire(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return
	}
	s.current = nil
	s.timer = nil
}

func (s *statusService) Current() *responses.StatusBanner {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	banner := *s.current
	return &banner
}

func (s *statusService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
	s.current = nil
}
