// Package console implements a line-based console host for playing against
// the engine, mainly for debugging.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/prodk123/Dolphin-Bot/pkg/game"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Driver implements the console host. Commands:
//
//	new            start a fresh game
//	moves <sq>     list legal destinations for the piece on <sq>, e.g. "moves e2"
//	<move>         play a move in coordinate form, e.g. "e2e4"
//	print, p       print the board
//	state          dump the game state as JSON
//	quit, q        exit
type Driver struct {
	iox.AsyncCloser

	reg *game.Registry
	g   *game.Game

	out chan<- string
}

func NewDriver(ctx context.Context, reg *game.Registry, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		reg:         reg,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console host initialized")

	d.out <- fmt.Sprintf("dolphin %v -- you play white", game.Version())
	d.g = d.reg.Create(ctx)
	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "new", "n":
				d.g = d.reg.Create(ctx)
				d.printBoard()

			case "moves", "m":
				if len(args) == 0 {
					d.out <- "usage: moves <square>"
					break
				}
				sq, err := board.ParseSq(args[0])
				if err != nil {
					d.out <- fmt.Sprintf("invalid square: '%v'", args[0])
					break
				}
				dests, err := d.g.LegalMoves(sq.Row, sq.Col)
				if err != nil {
					d.out <- err.Error()
					break
				}
				d.out <- fmt.Sprintf("%v: %v", sq, board.FormatSqs(dests))

			case "print", "p":
				d.printBoard()

			case "state":
				data, err := json.Marshal(d.g.State())
				if err != nil {
					d.out <- err.Error()
					break
				}
				d.out <- string(data)

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume move if not a recognized command.

				move, err := board.ParseMove(cmd)
				if err != nil {
					d.out <- fmt.Sprintf("invalid move: '%v'", cmd)
					break
				}

				result, err := d.g.MakeMove(ctx, move.From, move.To)
				if err != nil {
					d.out <- err.Error()
					break
				}

				if reply, ok := result.Reply.V(); ok {
					d.out <- fmt.Sprintf("engine: %v", reply)
				}
				d.printBoard()
				if status, ok := result.Status.V(); ok {
					d.out <- status.String()
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	state := d.g.State()

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for row := 0; row < board.NumRows; row++ {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d", 8-row))
		sb.WriteString(vertical)
		for col := 0; col < board.NumCols; col++ {
			sb.WriteString(printCell(state.Board[row][col]))
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("captures: white=%v black=%v, score: %v/%v",
		state.Captured["white"], state.Captured["black"], state.Scores["white"], state.Scores["black"])
	d.out <- ""
}

func printCell(c *game.Cell) string {
	if c == nil {
		return " "
	}

	letter := string(c.Kind.String()[0])
	if c.Kind == board.Knight {
		letter = "n"
	}
	if c.Color == board.White {
		return strings.ToUpper(letter)
	}
	return letter
}
