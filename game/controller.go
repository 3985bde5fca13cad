package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

// GameController turns key presses into calls on a GameService and keeps the
// renderer in step with it.
type GameController struct {
	service  GameService
	renderer *Renderer
	app      *tview.Application
	log      logrus.FieldLogger
}

func NewGameController(service GameService, log logrus.FieldLogger) *GameController {
	c := &GameController{
		service:  service,
		renderer: NewRenderer(),
		app:      tview.NewApplication(),
		log:      log,
	}
	c.renderer.boardTable.SetInputCapture(c.handleKey)
	c.renderer.DrawBoard(service)
	c.renderer.boardTable.Select(0, 0)
	c.app.SetRoot(c.renderer.Root(), true)
	return c
}

// StartGame runs the terminal UI until the player quits.
func (c *GameController) StartGame() error {
	return c.app.Run()
}

func (c *GameController) TerminateGame() {
	c.log.Debug("terminating the game")
	c.app.Stop()
}

func (c *GameController) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		c.activateSelected()
		return nil
	case tcell.KeyEscape:
		c.TerminateGame()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	cfg := c.service.Config()
	switch event.Rune() {
	case ' ':
		c.activateSelected()
		return nil
	case 'f', 'F':
		c.flagSelected()
		return nil
	case 'q', 'Q':
		c.TerminateGame()
		return nil
	case 'n', 'N':
		c.newGame()
		return nil
	case 'h', 'H':
		c.service.SetHintEnabled(!cfg.Hint)
	case 'd', 'D':
		c.service.SetDebugRevealEnabled(!cfg.DebugReveal)
		c.renderer.DrawBoard(c.service)
		return nil
	case '+', '=':
		c.service.SetMineCount(cfg.Mines + 1)
	case '-', '_':
		c.service.SetMineCount(cfg.Mines - 1)
	case ']':
		c.service.SetWidth(cfg.Width + 1)
	case '[':
		c.service.SetWidth(cfg.Width - 1)
	case '}':
		c.service.SetHeight(cfg.Height + 1)
	case '{':
		c.service.SetHeight(cfg.Height - 1)
	default:
		return event
	}

	c.log.WithField("key", string(event.Rune())).Debug("configuration changed")
	c.renderer.DrawStatus(c.service)
	return nil
}

func (c *GameController) selectedIndex() int {
	row, col := c.renderer.boardTable.GetSelection()
	return row*c.service.Width() + col
}

func (c *GameController) flagSelected() {
	index := c.selectedIndex()
	if c.service.ToggleFlag(index) {
		c.renderer.RenderCells(c.service, []int{index})
	}
}

func (c *GameController) activateSelected() {
	index := c.selectedIndex()

	res, ok := c.service.ActivateCell(index)
	if !ok {
		return
	}
	c.log.WithFields(logrus.Fields{
		"index":    index,
		"outcome":  res.Outcome,
		"revealed": len(res.Revealed),
	}).Debug("cell activated")

	if res.Outcome == models.MineHit {
		// Every mine becomes visible and every cell disabled.
		c.renderer.DrawBoard(c.service)
		return
	}
	c.renderer.RenderCells(c.service, res.Revealed)
}

func (c *GameController) newGame() {
	if err := c.service.NewGame(); err != nil {
		c.log.WithError(err).Error("new game failed")
		return
	}
	c.renderer.DrawBoard(c.service)
	c.renderer.boardTable.Select(0, 0)
}
