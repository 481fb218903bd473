package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels/formats"
)

//go:embed builtin/*
var builtinFS embed.FS

// ErrLevelNotFound is returned when no level has the requested ID.
var ErrLevelNotFound = errors.New("level not found")

// Level is a loaded level file.
type Level struct {
	Def      *core.Definition
	FilePath string
}

// ID returns the level number.
func (l Level) ID() int { return l.Def.ID }

// Name returns the display name.
func (l Level) Name() string { return l.Def.Name }

// Loader loads level files from a file system.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader over the directory root. An empty root selects
// the built-in level pack.
func NewLoader(root string) *Loader {
	if root == "" {
		return NewBuiltinLoader()
	}
	return NewFSLoader(os.DirFS(root))
}

// NewBuiltinLoader creates a loader over the embedded level pack.
func NewBuiltinLoader() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return NewFSLoader(sub)
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, logger: log.New(io.Discard)}
}

// WithLogger sets the logger used to report skipped files.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// LoadAll scans and loads all level files.
// Invalid files are logged and skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.logger.Warn("skipping level file", "path", p, "err", err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID() < levels[j].ID()
	})
	l.logger.Debug("levels loaded", "count", len(levels))
	return levels, nil
}

// LoadFile loads a single level file. A level without an explicit ID takes
// the trailing number of its file name ("Level 3.p" is level 3).
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if parsed.ID == 0 {
		parsed.ID = NumberFromName(base)
	}
	if parsed.Name == "" {
		parsed.Name = base
	}

	def, err := Build(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("building %s: %w", p, err)
	}
	return Level{Def: def, FilePath: p}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id int) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID() == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]int, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID()
	}
	return ids, nil
}

var trailingNumber = regexp.MustCompile(`(\d+)\s*$`)

// NumberFromName extracts the trailing integer of a file base name.
// It returns 0 when there is none.
func NumberFromName(name string) int {
	m := trailingNumber.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".p":
		return formats.ParseText(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
