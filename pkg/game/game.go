// Package game exposes the chess core to hosts: a game facade and an
// in-memory session registry. The human always plays white; the engine
// replies as black within the same move cycle.
package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/prodk123/Dolphin-Bot/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(1, 2, 0)

// Version returns the core version.
func Version() string {
	return fmt.Sprintf("%v", version)
}

// Result is the outcome of a full move cycle: the updated state, the
// engine's reply if one was made, and the terminal status if the game
// ended.
type Result struct {
	State  State
	Reply  lang.Optional[board.Move]
	Status lang.Optional[Status]
}

// Game is one chess game: a board plus the engine playing black. All
// operations serialize on the game's lock; a full move cycle (validate,
// apply player move, search, apply engine move, terminal status) holds it
// for the duration.
type Game struct {
	id     uint64
	b      *board.Board
	engine *search.Engine

	mu sync.Mutex
}

func New(id uint64, engine *search.Engine) *Game {
	return &Game{
		id:     id,
		b:      board.New(),
		engine: engine,
	}
}

func (g *Game) ID() uint64 {
	return g.id
}

// LegalMoves returns the legal destination squares for the piece at the
// square.
func (g *Game) LegalMoves(row, col int) ([]board.Sq, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sq := board.NewSq(row, col)
	if !sq.InBounds() {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, sq)
	}
	if g.b.At(sq) == nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptySquare, sq)
	}

	var dests []board.Sq
	for _, m := range g.b.LegalMoves(sq) {
		dests = append(dests, m.To)
	}
	return dests, nil
}

// MakeMove runs one full move cycle: it validates and applies the player's
// move, checks for a terminal position, and if the game is still on lets
// the engine reply and checks again. A rejected move leaves the game
// unchanged.
func (g *Game) MakeMove(ctx context.Context, from, to board.Sq) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !from.InBounds() || !to.InBounds() {
		return Result{}, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, from, to)
	}

	p := g.b.At(from)
	if p == nil {
		return Result{}, fmt.Errorf("%w: %v", ErrEmptySquare, from)
	}
	if p.Color != board.White {
		return Result{}, fmt.Errorf("%w: %v at %v", ErrWrongColor, p, from)
	}

	move := board.Move{From: from, To: to}
	if !g.isLegal(from, move) {
		return Result{}, fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}

	g.b.Apply(p, move, false)
	logw.Infof(ctx, "Game %v: player %v: %v", g.id, move, g.b)

	if status, ok := g.terminalStatus(board.Black); ok {
		return g.result(lang.Optional[board.Move]{}, lang.Some(status)), nil
	}

	reply, ok := g.engine.PickMove(ctx, g.b, board.Black)
	if !ok {
		// No legal reply exists; the terminal check above should have
		// caught it. Report the position as it stands.
		return g.result(lang.Optional[board.Move]{}, lang.Optional[Status]{}), nil
	}

	replyPiece := g.b.At(reply.From)
	g.b.Apply(replyPiece, reply, false)
	logw.Infof(ctx, "Game %v: engine %v: %v", g.id, reply, g.b)

	if status, ok := g.terminalStatus(board.White); ok {
		return g.result(lang.Some(reply), lang.Some(status)), nil
	}
	return g.result(lang.Some(reply), lang.Optional[Status]{}), nil
}

// State returns the current board, captures and scores.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return snapshot(g.b)
}

// Reset replaces the board with a fresh one, clearing history, captures,
// scores and caches.
func (g *Game) Reset(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.b = board.New()
	logw.Infof(ctx, "Game %v: reset", g.id)
}

func (g *Game) isLegal(from board.Sq, move board.Move) bool {
	for _, m := range g.b.LegalMoves(from) {
		if m.Equals(move) {
			return true
		}
	}
	return false
}

func (g *Game) terminalStatus(next board.Color) (Status, bool) {
	if g.b.IsCheckmate(next) {
		return Status{Outcome: Checkmate, Winner: next.Opponent()}, true
	}
	if g.b.IsStalemate(next) {
		return Status{Outcome: Stalemate}, true
	}
	return Status{}, false
}

func (g *Game) result(reply lang.Optional[board.Move], status lang.Optional[Status]) Result {
	return Result{State: snapshot(g.b), Reply: reply, Status: status}
}
