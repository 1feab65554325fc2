// Package tui provides the Bubble Tea password generator screen.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuipass/internal/clipboard"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/report"
	"github.com/verte-zerg/tuipass/internal/strength"
)

type field int

const (
	fieldLength field = iota
	fieldUppercase
	fieldLowercase
	fieldDigits
	fieldSymbols
	fieldCustom
	fieldBatchCount
	numFields
)

const (
	maxContentWidth  = 72
	batchTableHeight = 6
)

// Toast texts.
const (
	msgWelcome     = "Welcome! Your password generator is ready."
	msgGenerated   = "New password generated!"
	msgCopied      = "Password copied to clipboard!"
	msgCopyFailed  = "Failed to copy password"
	msgNoTypes     = "Please select at least one character type!"
	msgNothingCopy = "Nothing to copy yet"
)

var (
	titleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	letterStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	digitStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	symbolStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347"))
	customStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C39BD3"))
	placeholderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	optionStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	focusedOptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	passwordBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#4A4A4A")).
				Padding(0, 1)
	toastSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

var meterGradients = map[model.Tier][2]string{
	model.Weak:   {"#FF6B6B", "#FF9E7D"},
	model.Medium: {"#FFDE59", "#FFB347"},
	model.Strong: {"#4ECDC4", "#44A08D"},
}

// Model implements the Bubble Tea generator UI.
type Model struct {
	settings model.Settings
	rng      generator.RandomSource
	clip     clipboard.Writer

	keys   keyMap
	help   help.Model
	custom textinput.Model
	meters map[model.Tier]progress.Model
	batch  table.Model

	width  int
	height int

	focus        field
	batchFocused bool

	password    string
	hasPassword bool
	result      model.StrengthResult
	batchRows   []report.Row

	toast    toast
	toastSeq int
	initCmd  tea.Cmd
}

// NewModel constructs the generator UI and produces the first password.
func NewModel(settings model.Settings, rng generator.RandomSource, clip clipboard.Writer) *Model {
	m := &Model{
		settings: settings,
		rng:      rng,
		clip:     clip,
		keys:     defaultKeyMap(),
		help:     help.New(),
		custom:   newCustomInput(settings.Custom),
		meters:   map[model.Tier]progress.Model{},
		batch:    newBatchTable(),
	}
	// The input truncates at its limit; generate from what it shows.
	m.settings.Custom = m.custom.Value()
	for tier, colors := range meterGradients {
		m.meters[tier] = progress.New(
			progress.WithGradient(colors[0], colors[1]),
			progress.WithoutPercentage(),
		)
	}
	m.updateLayout()

	if err := m.regenerate(); err != nil {
		m.initCmd = m.showToast(errorMessage(err), toastError)
	} else {
		m.initCmd = m.showToast(msgWelcome, toastSuccess)
	}
	return m
}

func newCustomInput(value string) textinput.Model {
	input := textinput.New()
	input.Prompt = "Custom       "
	input.Placeholder = "extra characters"
	input.CharLimit = model.MaxCustom
	input.SetValue(value)
	return input
}

func newBatchTable() table.Model {
	t := table.New(
		table.WithColumns(batchColumns(40)),
		table.WithHeight(batchTableHeight),
	)
	t.SetStyles(batchTableStyles())
	return t
}

func batchColumns(passwordWidth int) []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Password", Width: passwordWidth},
		{Title: "Strength", Width: 8},
	}
}

func batchTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.initCmd
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case toastExpiredMsg:
		m.expireToast(msg.id)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.focus == fieldCustom && !m.batchFocused {
		var cmd tea.Cmd
		m.custom, cmd = m.custom.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.batchFocused {
		return m.handleBatchKey(msg)
	}
	if m.focus == fieldCustom {
		return m.handleCustomKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Generate):
		return m, m.generate()
	case key.Matches(msg, m.keys.Batch):
		return m, m.generateBatch()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCurrent()
	case key.Matches(msg, m.keys.Switch):
		return m, m.switchZone()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleCustomKey routes keys while the custom alphabet input has focus.
// Letter shortcuts are typed into the input instead of triggering actions.
func (m *Model) handleCustomKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		return m, m.moveFocus(-1)
	case tea.KeyDown, tea.KeyEsc:
		return m, m.moveFocus(1)
	case tea.KeyEnter, tea.KeyCtrlG:
		return m, m.generate()
	case tea.KeyTab, tea.KeyShiftTab:
		return m, m.switchZone()
	}
	var cmd tea.Cmd
	m.custom, cmd = m.custom.Update(msg)
	m.settings.Custom = m.custom.Value()
	return m, cmd
}

func (m *Model) handleBatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Switch), msg.Type == tea.KeyEsc:
		return m, m.switchZone()
	case msg.Type == tea.KeyEnter, key.Matches(msg, m.keys.Copy):
		// Enter copies the selected row here instead of regenerating.
		return m, m.copySelected()
	case key.Matches(msg, m.keys.Generate):
		return m, m.generate()
	case key.Matches(msg, m.keys.Batch):
		return m, m.generateBatch()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	var cmd tea.Cmd
	m.batch, cmd = m.batch.Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(numFields)) % int(numFields)
	m.focus = field(next)
	if m.focus == fieldCustom {
		return m.custom.Focus()
	}
	m.custom.Blur()
	return nil
}

func (m *Model) switchZone() tea.Cmd {
	if m.batchFocused {
		m.batchFocused = false
		m.batch.Blur()
		if m.focus == fieldCustom {
			return m.custom.Focus()
		}
		return nil
	}
	if len(m.batchRows) == 0 {
		return nil
	}
	m.batchFocused = true
	m.custom.Blur()
	m.batch.Focus()
	return nil
}

func (m *Model) adjust(delta int) {
	switch m.focus {
	case fieldLength:
		m.settings.Length = clamp(m.settings.Length+delta, model.MinLength, model.MaxLength)
	case fieldBatchCount:
		m.settings.Count = clamp(m.settings.Count+delta, model.MinCount, model.MaxCount)
	case fieldUppercase, fieldLowercase, fieldDigits, fieldSymbols:
		m.toggle()
	}
}

func (m *Model) toggle() {
	switch m.focus {
	case fieldUppercase:
		m.settings.Uppercase = !m.settings.Uppercase
	case fieldLowercase:
		m.settings.Lowercase = !m.settings.Lowercase
	case fieldDigits:
		m.settings.Digits = !m.settings.Digits
	case fieldSymbols:
		m.settings.Symbols = !m.settings.Symbols
	}
}

// regenerate replaces the displayed password. On failure the previous
// password stays on screen.
func (m *Model) regenerate() error {
	password, err := generator.Generate(m.settings.Request(), m.rng)
	if err != nil {
		return err
	}
	m.password = password
	m.hasPassword = true
	m.result = strength.Score(password)
	return nil
}

func (m *Model) generate() tea.Cmd {
	if err := m.regenerate(); err != nil {
		return m.showToast(errorMessage(err), toastError)
	}
	return m.showToast(msgGenerated, toastSuccess)
}

func (m *Model) generateBatch() tea.Cmd {
	passwords, err := generator.Batch(m.settings.Request(), m.settings.Count, m.rng)
	if err != nil {
		return m.showToast(errorMessage(err), toastError)
	}
	m.batchRows = report.Build(passwords)
	m.batch.SetRows(batchTableRows(m.batchRows))
	m.batch.SetCursor(0)
	return m.showToast(fmt.Sprintf("Generated %d passwords!", len(passwords)), toastSuccess)
}

func batchTableRows(rows []report.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for i, row := range rows {
		out = append(out, table.Row{
			fmt.Sprintf("%d", i+1),
			row.Password,
			string(row.Result.Tier),
		})
	}
	return out
}

func (m *Model) copyCurrent() tea.Cmd {
	if !m.hasPassword {
		return m.showToast(msgNothingCopy, toastError)
	}
	return m.copyText(m.password)
}

func (m *Model) copySelected() tea.Cmd {
	idx := m.batch.Cursor()
	if idx < 0 || idx >= len(m.batchRows) {
		return nil
	}
	return m.copyText(m.batchRows[idx].Password)
}

func (m *Model) copyText(text string) tea.Cmd {
	if err := m.clip.Write(text); err != nil {
		if errors.Is(err, clipboard.ErrUnsupported) {
			return m.showToast(err.Error(), toastError)
		}
		return m.showToast(msgCopyFailed, toastError)
	}
	return m.showToast(msgCopied, toastSuccess)
}

func errorMessage(err error) string {
	if errors.Is(err, generator.ErrNoCharacterTypes) {
		return msgNoTypes
	}
	return err.Error()
}

func (m *Model) updateLayout() {
	width := m.contentWidth()
	for tier, meter := range m.meters {
		meter.Width = maxInt(10, width-30)
		m.meters[tier] = meter
	}
	m.batch.SetColumns(batchColumns(maxInt(8, width-15)))
	m.batch.SetWidth(width)
	m.help.Width = width
	m.custom.Width = maxInt(8, width-lipgloss.Width(m.custom.Prompt)-4)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 60
	}
	return clamp(m.width-4, 20, maxContentWidth)
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.contentWidth()
	sections := []string{
		titleStyle.Render("tuipass"),
		m.renderPassword(width),
		m.renderMeter(),
		m.renderOptions(),
	}
	if len(m.batchRows) > 0 {
		sections = append(sections, m.batch.View())
	}
	if line := m.renderToast(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.help.View(m.keys))
	content := lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderPassword(width int) string {
	box := passwordBoxStyle.Width(width - passwordBoxStyle.GetHorizontalBorderSize())
	if !m.hasPassword {
		return box.Render(placeholderStyle.Render("Press ctrl+g to generate"))
	}
	runes := buildStyledRunes([]rune(m.password))
	return box.Render(wrapStyledRunes(runes, width-passwordBoxStyle.GetHorizontalFrameSize()))
}

func (m *Model) renderMeter() string {
	if !m.hasPassword {
		return labelStyle.Render("Strength")
	}
	meter := m.meters[m.result.Tier]
	tier := lipgloss.NewStyle().Foreground(report.TierColor(m.result.Tier)).Bold(true).Render(string(m.result.Tier))
	bar := meter.ViewAs(float64(m.result.Percentage) / 100)
	details := labelStyle.Render(fmt.Sprintf("%.1f bits · crack time: %s", m.result.EntropyBits, m.result.CrackTime))
	return fmt.Sprintf("%s %s  %s\n%s", labelStyle.Render("Strength"), bar, tier, details)
}

func (m *Model) renderOptions() string {
	lines := make([]string, 0, numFields+2)
	for f := fieldLength; f < numFields; f++ {
		lines = append(lines, m.renderField(f))
	}
	pool := len(generator.Pool(m.settings.Request()))
	lines = append(lines, "", labelStyle.Render(fmt.Sprintf("  Pool: %d characters", pool)))
	return strings.Join(lines, "\n")
}

func (m *Model) renderField(f field) string {
	focused := !m.batchFocused && m.focus == f
	marker := "  "
	style := optionStyle
	if focused {
		marker = "> "
		style = focusedOptionStyle
	}
	switch f {
	case fieldLength:
		return marker + style.Render(fmt.Sprintf("Length       ◀ %3d ▶", m.settings.Length))
	case fieldUppercase:
		return marker + style.Render(checkbox(m.settings.Uppercase)+" Uppercase (A-Z)")
	case fieldLowercase:
		return marker + style.Render(checkbox(m.settings.Lowercase)+" Lowercase (a-z)")
	case fieldDigits:
		return marker + style.Render(checkbox(m.settings.Digits)+" Digits (0-9)")
	case fieldSymbols:
		return marker + style.Render(checkbox(m.settings.Symbols)+" Symbols ("+model.SymbolChars+")")
	case fieldCustom:
		return marker + m.custom.View()
	case fieldBatchCount:
		return marker + style.Render(fmt.Sprintf("Batch count  ◀ %3d ▶", m.settings.Count))
	default:
		return ""
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
