package search

import (
	"context"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/prodk123/Dolphin-Bot/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Width truncation: only the top-priority candidates at each node are
// explored.
const (
	wideWidth   = 8 // depth >= 2
	narrowWidth = 5
)

// AlphaBeta implements depth-limited minimax with alpha-beta pruning and
// width truncation. Pseudo-code:
//
// function alphabeta(node, depth, α, β, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := −∞
//	    for each child of node do
//	        value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//	else
//	    value := +∞
//	    for each child of node do
//	        value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	        β := min(β, value)
//	        if β ≤ α then
//	            break (* α cutoff *)
//	    return value
//
// Children are ordered by the cheap heuristic and truncated to the top 8
// (top 5 below depth 2) before exploration.
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning.
type AlphaBeta struct {
	Eval eval.Evaluator
}

func (s AlphaBeta) Search(ctx context.Context, b *board.Board, turn board.Color, depth int) (eval.Score, lang.Optional[board.Move]) {
	run := &runAlphaBeta{eval: s.Eval, b: b}
	return run.search(ctx, depth, eval.NegInf, eval.Inf, turn == board.White)
}

type runAlphaBeta struct {
	eval  eval.Evaluator
	b     *board.Board
	nodes uint64
}

func (m *runAlphaBeta) search(ctx context.Context, depth int, alpha, beta eval.Score, maximizing bool) (eval.Score, lang.Optional[board.Move]) {
	m.nodes++

	// Cancellation sentinel: the static evaluation, never a partial result.
	if contextx.IsCancelled(ctx) {
		return m.eval.Evaluate(ctx, m.b), lang.Optional[board.Move]{}
	}
	if depth == 0 {
		return m.eval.Evaluate(ctx, m.b), lang.Optional[board.Move]{}
	}

	turn := board.Black
	if maximizing {
		turn = board.White
	}

	cands := m.b.AllLegalMoves(turn)
	if len(cands) == 0 {
		if m.b.IsInCheck(turn) {
			if maximizing {
				return eval.CheckmateLoss, lang.Optional[board.Move]{}
			}
			return eval.CheckmateWin, lang.Optional[board.Move]{}
		}
		return 0, lang.Optional[board.Move]{}
	}

	priority := OrderPriority(m.b)
	if maximizing {
		board.SortByPriority(cands, priority)
	} else {
		board.SortByPriorityAscending(cands, priority)
	}

	width := narrowWidth
	if depth >= 2 {
		width = wideWidth
	}
	if len(cands) > width {
		cands = cands[:width]
	}

	best := lang.Optional[board.Move]{}

	if maximizing {
		value := eval.NegInf
		for _, c := range cands {
			captured := m.b.Apply(c.Piece, c.Move, true)
			score, _ := m.search(ctx, depth-1, alpha, beta, false)
			m.b.Undo(c.Piece, c.Move, captured)

			if score > value {
				value = score
				best = lang.Some(c.Move)
			}
			alpha = eval.Max(alpha, score)
			if beta <= alpha {
				break // β cutoff
			}
		}
		return value, best
	}

	value := eval.Inf
	for _, c := range cands {
		captured := m.b.Apply(c.Piece, c.Move, true)
		score, _ := m.search(ctx, depth-1, alpha, beta, true)
		m.b.Undo(c.Piece, c.Move, captured)

		if score < value {
			value = score
			best = lang.Some(c.Move)
		}
		beta = eval.Min(beta, score)
		if beta <= alpha {
			break // α cutoff
		}
	}
	return value, best
}
