package playback

import (
	"fmt"

	"NewsPulse/internal/ports"
)

// Registry keeps a mapping from backend names to player implementations.
type Registry struct {
	players map[string]ports.Player
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{players: map[string]ports.Player{}}
}

// Register adds or replaces a playback backend.
func (r *Registry) Register(player ports.Player) {
	if r.players == nil {
		r.players = map[string]ports.Player{}
	}
	r.players[player.Name()] = player
}

// Resolve returns a backend by name or an error if it is absent.
func (r *Registry) Resolve(name string) (ports.Player, error) {
	if player, ok := r.players[name]; ok {
		return player, nil
	}
	return nil, fmt.Errorf("playback backend %s is not registered", name)
}
