// Package levels provides level loading functionality for Pipes.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels/formats"
)

var sourceColors = map[byte]core.Color{
	formats.CodeRed:    core.ColorRed,
	formats.CodeGreen:  core.ColorGreen,
	formats.CodeBlue:   core.ColorBlue,
	formats.CodeYellow: core.ColorYellow,
}

var pipeKinds = map[byte]core.PipeKind{
	formats.CodeLine:  core.KindLine,
	formats.CodeFork:  core.KindFork,
	formats.CodeCross: core.KindCross,
	formats.CodeTurn:  core.KindTurn,
	formats.CodeOver:  core.KindOver,
}

// Build turns a parsed level into a board definition.
//
// Borders take their shape from their position. Sources and attached pipes
// are placed on the grid. Every other pipe token goes into the stock and
// leaves an empty cell with the token's rotation.
func Build(fl formats.Level) (*core.Definition, error) {
	g := core.NewGrid(fl.Height, fl.Width)
	stock := core.NewStock()

	for row, tokens := range fl.Rows {
		for col, t := range tokens {
			pos := core.P(row, col)
			elem, err := buildElement(t, pos, fl.Height, fl.Width, stock)
			if err != nil {
				return nil, err
			}
			if err := g.Set(pos, elem); err != nil {
				return nil, err
			}
		}
	}

	return &core.Definition{ID: fl.ID, Name: fl.Name, Grid: g, Stock: stock}, nil
}

func buildElement(t formats.Token, pos core.Pos, h, w int, stock *core.Stock) (core.Element, error) {
	if t.Code == formats.CodeBorder {
		b, ok := core.BorderAt(pos, h, w)
		if !ok {
			return core.Element{}, formats.FormatError{
				Code:    formats.CodeMisplacedBorder,
				Message: fmt.Sprintf("border at interior position %v", pos),
			}
		}
		return core.BorderElement(b), nil
	}

	if t.Code == formats.CodeEmpty {
		return core.CellElement(core.Cell{Pipe: core.EmptyPipe(t.Rotation), Attached: t.Attached}), nil
	}

	if color, ok := sourceColors[t.Code]; ok {
		pipe, err := core.NewPipe(core.KindSource, t.Rotation, color)
		if err != nil {
			return core.Element{}, err
		}
		return core.CellElement(core.Cell{Pipe: pipe, Attached: t.Attached}), nil
	}

	kind, ok := pipeKinds[t.Code]
	if !ok {
		return core.Element{}, formats.FormatError{
			Code:    formats.CodeUnknownKind,
			Message: fmt.Sprintf("unknown kind %q at %v", t.Code, pos),
		}
	}
	if !t.Attached {
		stock.Add(kind, t.Rotation)
		return core.CellElement(core.EmptyCell(t.Rotation)), nil
	}
	pipe, err := core.NewPipe(kind, t.Rotation, core.ColorGray)
	if err != nil {
		return core.Element{}, err
	}
	return core.CellElement(core.Cell{Pipe: pipe, Attached: true}), nil
}

// ParseText parses the text format and builds the definition in one step.
func ParseText(data []byte) (*core.Definition, error) {
	fl, err := formats.ParseText(data)
	if err != nil {
		return nil, err
	}
	return Build(fl)
}
