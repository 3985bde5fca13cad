package game

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

// GameService is the surface a front-end drives a game through.
type GameService interface {
	Configure(cfg Config)
	Config() Config
	SetWidth(n int)
	SetHeight(n int)
	SetMineCount(n int)
	SetHintEnabled(enabled bool)
	SetDebugRevealEnabled(enabled bool)

	NewGame() error
	ActivateCell(index int) (models.ActivationResult, bool)
	ToggleFlag(index int) bool
	IsGameOver() bool
	Cleared() bool

	Width() int
	Height() int
	CellView(index int) CellView
	Cells() []CellView
}

// Session holds the configuration and the board of the game being played.
// All methods are serialized on one lock.
type Session struct {
	mu  sync.Mutex
	log logrus.FieldLogger
	rng models.Rand

	width       int
	height      int
	mines       int
	hint        bool
	debugReveal bool

	canPlay bool
	board   *models.Board
}

var _ GameService = (*Session)(nil)

type Option func(*Session)

// WithRand sets the randomness mines and hints are drawn from.
func WithRand(rng models.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// NewSession configures a session and starts its first game.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	s := &Session{
		log: discardLogger(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Configure(cfg)
	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Configure applies every option at once. The mine count is clamped against
// the new dimensions. The current board is left alone until NewGame.
func (s *Session) Configure(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setWidth(cfg.Width)
	s.setHeight(cfg.Height)
	s.setMineCount(cfg.Mines)
	s.hint = cfg.Hint
	s.debugReveal = cfg.DebugReveal
}

// Config returns the options the next game will be generated with.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Config{
		Width:       s.width,
		Height:      s.height,
		Mines:       s.mines,
		Hint:        s.hint,
		DebugReveal: s.debugReveal,
	}
}

func (s *Session) SetWidth(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setWidth(n)
}

func (s *Session) SetHeight(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setHeight(n)
}

// SetMineCount stores n clamped to [1, width*height-3].
func (s *Session) SetMineCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setMineCount(n)
}

func (s *Session) SetHintEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hint = enabled
}

// SetDebugRevealEnabled shows mines while the game is still being played.
func (s *Session) SetDebugRevealEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugReveal = enabled
}

func (s *Session) setWidth(n int) {
	s.width = clampDimension(n)
	if s.width != n {
		s.log.WithFields(logrus.Fields{"requested": n, "width": s.width}).Debug("width clamped")
	}
	s.setMineCount(s.mines)
}

func (s *Session) setHeight(n int) {
	s.height = clampDimension(n)
	if s.height != n {
		s.log.WithFields(logrus.Fields{"requested": n, "height": s.height}).Debug("height clamped")
	}
	s.setMineCount(s.mines)
}

func (s *Session) setMineCount(n int) {
	s.mines = clamp(n, 1, s.width*s.height-minSafeCells)
	if s.mines != n {
		s.log.WithFields(logrus.Fields{"requested": n, "mines": s.mines}).Debug("mine count clamped")
	}
}

// NewGame replaces the board with a freshly generated one. With the hint
// enabled a random safe cell is activated before the player moves.
func (s *Session) NewGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, hint, err := models.Generate(s.width, s.height, s.mines, s.rng)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	s.board = board
	s.canPlay = true

	s.log.WithFields(logrus.Fields{
		"width":      s.width,
		"height":     s.height,
		"mines":      s.mines,
		"hint":       s.hint,
		"hint_index": hint,
	}).Debug("new game")

	if s.hint && hint != models.NoHint {
		s.activate(hint)
	}
	return nil
}

// ActivateCell activates the cell at index. It reports false without doing
// anything once the game is over or when the cell is flagged.
func (s *Session) ActivateCell(index int) (models.ActivationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canPlay || s.board.Cell(index).IsFlagged() {
		return models.ActivationResult{}, false
	}
	return s.activate(index), true
}

// ToggleFlag flips the flag on a hidden cell. It reports false without doing
// anything once the game is over or when the cell is already activated.
func (s *Session) ToggleFlag(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.board.Cell(index)
	if !s.canPlay || c.WasActivated() {
		return false
	}
	flagged := s.board.ToggleFlag(index)
	s.log.WithFields(logrus.Fields{"index": index, "flagged": flagged}).Debug("flag toggled")
	return true
}

func (s *Session) activate(index int) models.ActivationResult {
	res := s.board.Activate(index)
	if res.Outcome == models.MineHit {
		s.canPlay = false
		c := s.board.Cell(index)
		s.log.WithFields(logrus.Fields{
			"index": index,
			"row":   c.Row(),
			"col":   c.Col(),
		}).Info("mine hit")
	}
	return res
}

func (s *Session) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.canPlay
}

// Cleared reports whether every safe cell has been revealed while the game
// is still being played.
func (s *Session) Cleared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canPlay && s.board.SafeRemaining() == 0
}

// Width returns the width of the current board, which lags the configured
// width until the next NewGame.
func (s *Session) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Width()
}

func (s *Session) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Height()
}

// CellView returns how the cell at index should be shown. Mines are only
// shown after the game is over or with debug reveal on.
func (s *Session) CellView(index int) CellView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cellView(index)
}

// Cells returns the view of every cell in index order.
func (s *Session) Cells() []CellView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]CellView, s.board.Len())
	for i := range views {
		views[i] = s.cellView(i)
	}
	return views
}

func (s *Session) cellView(index int) CellView {
	c := s.board.Cell(index)
	v := CellView{
		Index:   c.Index(),
		Row:     c.Row(),
		Col:     c.Col(),
		Enabled: s.canPlay && !c.WasActivated() && !c.IsFlagged(),
	}

	switch {
	case c.IsMine() && (!s.canPlay || s.debugReveal):
		v.State = CellMine
	case c.IsFlagged():
		v.State = CellFlagged
	case c.NearbyMineCount() > 0:
		v.State = CellNumber
		v.Count = c.NearbyMineCount()
	case c.NearbyMineCount() == 0:
		v.State = CellBlank
	default:
		v.State = CellHidden
	}
	return v
}
