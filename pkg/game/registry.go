package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prodk123/Dolphin-Bot/pkg/eval"
	"github.com/prodk123/Dolphin-Bot/pkg/search"
	"github.com/seekerror/logw"
)

// Registry is the in-memory session store mapping game ids to games. The
// core is stateless across games; all game state lives on the Game. Games
// are never persisted.
type Registry struct {
	root search.Search
	seed int64

	games map[uint64]*Game
	next  uint64
	mu    sync.Mutex
}

// Option is a registry creation option.
type Option func(*Registry)

// WithSeed fixes the random seed used by the engines of created games.
// Defaults to the current time.
func WithSeed(seed int64) Option {
	return func(r *Registry) {
		r.seed = seed
	}
}

// WithSearch overrides the root search for created games.
func WithSearch(root search.Search) Option {
	return func(r *Registry) {
		r.root = root
	}
}

func NewRegistry(ctx context.Context, opts ...Option) *Registry {
	r := &Registry{
		root:  search.AlphaBeta{Eval: eval.Material{}},
		seed:  time.Now().UnixNano(),
		games: map[uint64]*Game{},
	}
	for _, fn := range opts {
		fn(r)
	}

	logw.Infof(ctx, "Initialized game registry: core %v", Version())
	return r
}

// Create returns a fresh game in the starting position.
func (r *Registry) Create(ctx context.Context) *Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++

	g := New(id, search.NewEngine(r.root, r.seed+int64(id)))
	r.games[id] = g

	logw.Infof(ctx, "Created game %v", id)
	return g
}

// Lookup returns the game with the given id, or ErrInvalidGame.
func (r *Registry) Lookup(id uint64) (*Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGame, id)
	}
	return g, nil
}
