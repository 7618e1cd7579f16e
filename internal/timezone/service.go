package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // Fixed validates names without relying on the host zoneinfo

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// finderService implements timezone lookup using tzf
type finderService struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *finderService
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton coordinate lookup service.
// tzf.Finder keeps its polygon data in memory (~50MB) so it is loaded once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &finderService{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// e.g. "Europe/Prague"
func (s *finderService) GetTimezone(latitude, longitude float64) (string, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return "", fmt.Errorf("coordinates out of range: lat=%f, lon=%f", latitude, longitude)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return name, nil
}

// fixedService answers every lookup with the same zone
type fixedService struct {
	name string
}

// Fixed returns a Service that always reports name. name must be a zone
// the forecast API accepts: an IANA name, "GMT" or "auto".
func Fixed(name string) (Service, error) {
	switch name {
	case "":
		return nil, fmt.Errorf("timezone name is empty")
	case "auto", "GMT":
	default:
		if _, err := time.LoadLocation(name); err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
		}
	}
	return fixedService{name: name}, nil
}

func (s fixedService) GetTimezone(latitude, longitude float64) (string, error) {
	return s.name, nil
}
