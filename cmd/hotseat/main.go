// Command hotseat plays a two-player game on one terminal. Each line names a
// move as two squares ("e2e4" or "e2 e4"); "show e2" highlights where the
// piece on e2 may go and "quit" ends the game.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/render"
)

func main() {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	gs := model.NewGameState()
	if err := prompt(out, gs, nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		var marked []model.Square
		switch {
		case fields[0] == "quit" || fields[0] == "exit":
			return nil
		case fields[0] == "show" && len(fields) == 2:
			from, err := model.ParseSquare(fields[1])
			if err != nil {
				fmt.Fprintf(out, "Invalid!! %v\n", err)
				continue
			}
			marked = gs.LegalTargets(from)
		default:
			move, err := parseMove(fields, &gs.Board)
			if err != nil {
				fmt.Fprintf(out, "Invalid!! %v\n", err)
				continue
			}
			special, err := gs.Validate(move)
			if err != nil {
				fmt.Fprintf(out, "Invalid!! %v\n", err)
				continue
			}
			gs.ApplyMove(move, special)
			fmt.Fprintln(out, move.Notation())
		}
		if err := prompt(out, gs, marked); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseMove(fields []string, board *model.Board) (model.Move, error) {
	var from, to string
	switch {
	case len(fields) == 1 && len(fields[0]) == 4:
		from, to = fields[0][:2], fields[0][2:]
	case len(fields) == 2:
		from, to = fields[0], fields[1]
	default:
		return model.Move{}, errors.New("expected a move like e2e4")
	}
	start, err := model.ParseSquare(from)
	if err != nil {
		return model.Move{}, err
	}
	end, err := model.ParseSquare(to)
	if err != nil {
		return model.Move{}, err
	}
	return model.NewMove(start, end, board), nil
}

func prompt(out io.Writer, gs *model.GameState, marked []model.Square) error {
	if err := render.Terminal(out, &gs.Board, marked); err != nil {
		return err
	}
	side := gs.SideToMove()
	if gs.InCheck(side) {
		_, err := fmt.Fprintf(out, "%s to move (check)> ", side)
		return err
	}
	_, err := fmt.Fprintf(out, "%s to move> ", side)
	return err
}
