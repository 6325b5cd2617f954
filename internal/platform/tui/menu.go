package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

// menuEntry identifies a row of the main menu.
type menuEntry int

const (
	entryClassic menuEntry = iota
	entryEndless
	entryDifficulty
	entryScores
	entryQuit
	entryCount
)

// difficultyChoices lists the selector values. The empty preset keeps the
// loaded configuration as is.
var difficultyChoices = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

func difficultyLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	cursor     menuEntry
	difficulty int // Index into difficultyChoices
	width      int
	height     int
	opts       Options
	config     core.RuntimeConfig
	theme      Theme
	keyMapper  *KeyMapper
	best       map[string]int

	quitting       bool
	selected       string // Game ID chosen by the user
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(opts Options, cfg core.RuntimeConfig) MenuModel {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		opts:      opts,
		config:    cfg,
		theme:     NewTheme(core.RandomAccent(rng)),
		keyMapper: NewKeyMapper(),
		best:      make(map[string]int),
	}

	if opts.Store != nil {
		for _, id := range []string{match3.IDClassic, match3.IDEndless} {
			high, err := opts.Store.HighScore(id)
			if err != nil {
				opts.logger().Warn("load high score", "game", id, "err", err)
				continue
			}
			m.best[id] = high
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = menuEntry(core.Wrap(int(m.cursor)-1, int(entryCount)))

	case MenuActionDown:
		m.cursor = menuEntry(core.Wrap(int(m.cursor)+1, int(entryCount)))

	case MenuActionLeft:
		if m.cursor == entryDifficulty {
			m.difficulty = core.Wrap(m.difficulty-1, len(difficultyChoices))
		}

	case MenuActionRight:
		if m.cursor == entryDifficulty {
			m.difficulty = core.Wrap(m.difficulty+1, len(difficultyChoices))
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case entryClassic:
			m.selected = match3.IDClassic
			return m, tea.Quit
		case entryEndless:
			m.selected = match3.IDEndless
			return m, tea.Quit
		case entryDifficulty:
			m.difficulty = core.Wrap(m.difficulty+1, len(difficultyChoices))
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("M A T C H - 3"), m.width))
	b.WriteString("\n\n")

	cfg := m.GameConfig()
	for entry := menuEntry(0); entry < entryCount; entry++ {
		label, desc := m.entryText(entry, cfg)

		style := m.theme.ItemNormal
		cursor := "  "
		if entry == m.cursor {
			style = m.theme.ItemActive
			cursor = "> "
		}
		line := style.Render(cursor + label)
		if desc != "" {
			line += "  " + m.theme.Description.Render(desc)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) entryText(entry menuEntry, cfg config.Match3Config) (label, desc string) {
	switch entry {
	case entryClassic:
		return "Classic", fmt.Sprintf("%d moves, best %d", cfg.Classic.Moves, m.best[match3.IDClassic])
	case entryEndless:
		return "Endless", fmt.Sprintf("no move limit, best %d", m.best[match3.IDEndless])
	case entryDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", difficultyLabel(difficultyChoices[m.difficulty])),
			fmt.Sprintf("%d kinds on %dx%d", cfg.Board.Kinds, cfg.Board.Size, cfg.Board.Size)
	case entryScores:
		return "High scores", ""
	case entryQuit:
		return "Quit", ""
	}
	return "", ""
}

// GameConfig returns the loaded configuration with the chosen preset applied.
func (m MenuModel) GameConfig() config.Match3Config {
	cfg := m.opts.Config
	if p := difficultyChoices[m.difficulty]; p != "" {
		config.ApplyPreset(&cfg, p)
	}
	return cfg
}

// Selected returns the chosen game ID, or "" if none.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	GameConfig      config.Match3Config
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(opts Options, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(opts, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		GameConfig: m.GameConfig(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == "":
		result.Quit = true
	default:
		result.GameID = m.Selected()
	}
	return result, nil
}
