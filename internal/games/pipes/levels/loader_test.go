package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels/formats"
)

func TestBuiltinLevels(t *testing.T) {
	loader := levels.NewBuiltinLoader()
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 built-in levels, got %d", len(all))
	}
	for i, lvl := range all {
		if lvl.ID() != i+1 {
			t.Errorf("level %d has ID %d", i, lvl.ID())
		}
		if lvl.Def.Stock.Total() == 0 {
			t.Errorf("level %d has an empty stock", lvl.ID())
		}
	}
	if all[4].Name() != "Crossroads" {
		t.Errorf("expected YAML name, got %q", all[4].Name())
	}
	if all[0].Name() != "level1" {
		t.Errorf("expected file name as default name, got %q", all[0].Name())
	}
}

// Each built-in level is solved by putting every stocked pipe back where the
// level file lists it.
func TestBuiltinLevelsSolvable(t *testing.T) {
	loader := levels.NewBuiltinLoader()
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	for _, lvl := range all {
		t.Run(lvl.Name(), func(t *testing.T) {
			b := core.NewBoard(lvl.Def)
			layout := solutionLayout(t, lvl.FilePath)
			for pos, key := range layout {
				ok, err := b.DropFromStock(key, pos.Row, pos.Col)
				if err != nil || !ok {
					t.Fatalf("drop %v at %v: ok=%v err=%v", key, pos, ok, err)
				}
			}
			if !b.IsSolved() {
				t.Errorf("level not solved:\n%s", core.RenderASCII(b))
			}
		})
	}
}

func solutionLayout(t *testing.T, name string) map[core.Pos]core.StockKey {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("builtin", name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	var fl formats.Level
	if filepath.Ext(name) == ".p" {
		fl, err = formats.ParseText(data)
	} else {
		fl, err = formats.ParseYAML(data)
	}
	if err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}

	kinds := map[byte]core.PipeKind{'L': core.KindLine, 'F': core.KindFork, 'C': core.KindCross, 'T': core.KindTurn, 'O': core.KindOver}
	layout := make(map[core.Pos]core.StockKey)
	for row, tokens := range fl.Rows {
		for col, tok := range tokens {
			if kind, ok := kinds[tok.Code]; ok && !tok.Attached {
				layout[core.P(row, col)] = core.StockKey{Kind: kind, Rotation: tok.Rotation}
			}
		}
	}
	return layout
}

func TestLoadByID(t *testing.T) {
	loader := levels.NewBuiltinLoader()
	lvl, err := loader.LoadByID(3)
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if lvl.ID() != 3 {
		t.Errorf("expected level 3, got %d", lvl.ID())
	}
	if _, err := loader.LoadByID(99); !errors.Is(err, levels.ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
}

func TestLoaderCustomDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"Level 12.p": "3 3\nX X X\nX L1 X\nX X X\n",
		"broken.p":   "3 3\nX X\n",
		"notes.txt":  "ignored",
		"pack/b.yml": "id: 2\nsize: {h: 3, w: 3}\nrows: [\"X X X\", \"X .1 X\", \"X X X\"]\n",
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := levels.NewLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 12 {
		t.Errorf("expected [2 12], got %v", ids)
	}
}

func TestBuildMisplacedBorder(t *testing.T) {
	_, err := levels.ParseText([]byte("3 3\nX X X\nX X X\nX X X\n"))
	var fe formats.FormatError
	if !errors.As(err, &fe) || fe.Code != formats.CodeMisplacedBorder {
		t.Errorf("expected MISPLACED_BORDER, got %v", err)
	}
}

func TestBuildAttachedAndStock(t *testing.T) {
	def, err := levels.ParseText([]byte("3 5\nX X X X X\nX *T1 O1 R3 X\nX X X X X\n"))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	c, err := def.Grid.CellAt(core.P(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if !c.Attached || c.Pipe.Kind != core.KindTurn || c.Pipe.Rotation != 1 {
		t.Errorf("unexpected attached cell %+v", c)
	}
	c, _ = def.Grid.CellAt(core.P(1, 2))
	if !c.IsEmpty() || c.Pipe.Rotation != 1 {
		t.Errorf("stocked pipe should leave empty cell with rotation 1, got %+v", c)
	}
	if def.Stock.Quantity(core.KindOver, 1) != 1 {
		t.Error("expected one OVER1 in stock")
	}
	c, _ = def.Grid.CellAt(core.P(1, 3))
	if !c.IsSource() || c.Pipe.SourceColor() != core.ColorRed {
		t.Errorf("expected red source, got %+v", c)
	}
}

func TestBuildAttachedEmpty(t *testing.T) {
	def, err := levels.ParseText([]byte("3 4\nX X X X\nX *. *.2 X\nX X X X\n"))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	testCases := []struct {
		col      int
		rotation int
	}{
		{1, 0},
		{2, 2},
	}
	for _, tc := range testCases {
		c, err := def.Grid.CellAt(core.P(1, tc.col))
		if err != nil {
			t.Fatal(err)
		}
		if !c.IsEmpty() || !c.Attached || c.Pipe.Rotation != tc.rotation {
			t.Errorf("col %d: expected attached empty cell with rotation %d, got %+v", tc.col, tc.rotation, c)
		}
	}
	if def.Stock.Total() != 0 {
		t.Error("attached empty slots must not seed the stock")
	}
}

func TestNumberFromName(t *testing.T) {
	testCases := map[string]int{
		"Level 3":  3,
		"level12":  12,
		"intro":    0,
		"7":        7,
		"Level 2 ": 2,
	}
	for in, want := range testCases {
		if got := levels.NumberFromName(in); got != want {
			t.Errorf("NumberFromName(%q) = %d, want %d", in, got, want)
		}
	}
}
