// Package lifecycle tracks where the server is in its shutdown sequence so that handlers
// and middleware can refuse new work while it drains.
package lifecycle

import "sync/atomic"

type ServerState int32

const (
	ServerStateStarting ServerState = iota
	ServerStateReady
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

func (s ServerState) String() string {
	switch s {
	case ServerStateStarting:
		return "starting"
	case ServerStateReady:
		return "ready"
	case ServerStateInGracePeriod:
		return "grace_period"
	case ServerStateInCleanupPeriod:
		return "cleanup_period"
	default:
		return "unknown"
	}
}

// State is safe for concurrent use.
type State struct {
	current atomic.Int32
}

func New() *State {
	return &State{}
}

func (s *State) Get() ServerState {
	return ServerState(s.current.Load())
}

func (s *State) Set(state ServerState) {
	s.current.Store(int32(state))
}

// Accepting reports whether new requests should be served.
func (s *State) Accepting() bool {
	return s.Get() == ServerStateReady
}
