package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jellyblocker/internal/config"
	"github.com/vovakirdan/jellyblocker/internal/presets"
)

// MenuItem is a selectable difficulty in the start menu.
type MenuItem struct {
	Difficulty  config.DifficultyPreset
	Title       string
	Description string
}

// DefaultMenuItems lists every difficulty.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{config.DifficultyEasy, "Easy", "3 colors, slow fall, long grace"},
		{config.DifficultyNormal, "Normal", "4 colors"},
		{config.DifficultyHard, "Hard", "5 colors, fast fall, short grace"},
		{config.DifficultyFixed, "Fixed", "normal pace, level never rises"},
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionPrevPreset
	MenuActionNextPreset
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "left", "h":
		return MenuActionPrevPreset
	case "right", "l":
		return MenuActionNextPreset
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// MenuModel is the Bubble Tea model for the start menu: pick a difficulty
// with up/down and a starting board with left/right.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	presets        []presets.Preset
	presetCursor   int // 0 = empty board, i = presets[i-1]
	width          int
	height         int
	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with difficulty preselected.
func NewMenuModel(boards []presets.Preset, difficulty config.DifficultyPreset, width, height int) MenuModel {
	m := MenuModel{
		items:   DefaultMenuItems(),
		presets: boards,
		width:   width,
		height:  height,
	}
	for i, item := range m.items {
		if item.Difficulty == difficulty {
			m.cursor = i
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionPrevPreset:
		n := len(m.presets) + 1
		m.presetCursor = (m.presetCursor + n - 1) % n

	case MenuActionNextPreset:
		m.presetCursor = (m.presetCursor + 1) % (len(m.presets) + 1)

	case MenuActionSelect:
		m.selected = true
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// Preset returns the chosen starting board, or nil for an empty board.
func (m MenuModel) Preset() *presets.Preset {
	if m.presetCursor == 0 {
		return nil
	}
	p := m.presets[m.presetCursor-1]
	return &p
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("J E L L Y B L O C K E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, item.Title, item.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	board := "Empty board"
	if p := m.Preset(); p != nil {
		board = p.Name
		if p.Description != "" {
			board += " - " + p.Description
		}
	}
	b.WriteString(centerText(fmt.Sprintf("< %s >", board), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Difficulty  |  Left/Right: Board  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// ModeName is the score table key for a difficulty and optional preset.
func ModeName(difficulty config.DifficultyPreset, p *presets.Preset) string {
	mode := string(difficulty)
	if mode == "" {
		mode = string(config.DifficultyNormal)
	}
	if p != nil {
		mode += "/" + p.ID
	}
	return mode
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Preset          *presets.Preset
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(boards []presets.Preset, difficulty config.DifficultyPreset, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(boards, difficulty, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{
		Difficulty:      m.items[m.cursor].Difficulty,
		Preset:          m.Preset(),
		Width:           m.width,
		Height:          m.height,
		WantsScoreboard: m.openScoreboard,
		Quit:            m.quitting || (!m.selected && !m.openScoreboard),
	}
	return result, nil
}
