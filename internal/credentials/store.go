package credentials

import "sync"

// Recognized credential names. Anything else passed to Set is ignored.
const (
	TwitterAPIKey      = "API_KEY"
	TwitterAPISecret   = "API_SECRET"
	TwitterAccessToken = "ACCESS_TOKEN"
	TwitterTokenSecret = "ACCESS_SECRET"
	OpenAIAPIKey       = "OPENAI_API_KEY"
	UnsplashAccessKey  = "UNSPLASH_ACCESS_KEY"
)

var recognized = map[string]bool{
	TwitterAPIKey:      true,
	TwitterAPISecret:   true,
	TwitterAccessToken: true,
	TwitterTokenSecret: true,
	OpenAIAPIKey:       true,
	UnsplashAccessKey:  true,
}

// Store holds the API secrets for the outbound clients. Values are
// seeded from the environment at startup and may be replaced at runtime
// through the /api_keys endpoint; clients re-read them on every call, so
// an update is observed by the next outbound request.
type Store struct {
	mu      sync.RWMutex
	secrets map[string]string
}

func NewStore(initial map[string]string) *Store {
	s := &Store{secrets: make(map[string]string, len(recognized))}
	for name, value := range initial {
		s.Set(name, value)
	}
	return s
}

// Get returns the stored value for name and whether one is present.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.secrets[name]
	return value, ok
}

// Set stores value under name. Unrecognized names are a no-op.
func (s *Store) Set(name, value string) {
	if !recognized[name] {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[name] = value
}

// IsRecognized reports whether name is a credential this store accepts.
func IsRecognized(name string) bool {
	return recognized[name]
}

// Snapshot returns a copy of the current credential map.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.secrets))
	for k, v := range s.secrets {
		out[k] = v
	}
	return out
}
