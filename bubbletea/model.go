package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	diffview "github.com/fwojciec/diffstory"
	"github.com/muesli/termenv"
)

// Compile-time interface verification.
var _ diffview.Viewer = (*Viewer)(nil)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379"))
	deletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61afef"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#56b6c2"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370"))
)

// Viewer renders a diffview.Diff as a scrollable terminal pager using
// bubbletea and bubbles/viewport.
type Viewer struct {
	Tokenizer        diffview.Tokenizer
	LanguageDetector diffview.LanguageDetector
	WordDiffer       diffview.WordDiffer
}

// View displays diff in an interactive pager and blocks until the user quits.
func (v *Viewer) View(ctx context.Context, diff *diffview.Diff) error {
	m := NewModel(diff, v.Tokenizer, v.LanguageDetector, v.WordDiffer)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Model is the bubbletea model for the interactive diff pager.
type Model struct {
	diff             *diffview.Diff
	tokenizer        diffview.Tokenizer
	languageDetector diffview.LanguageDetector
	wordDiffer       diffview.WordDiffer

	viewport viewport.Model
	ready    bool
	colorize bool
	width    int
}

// NewModel creates a pager model for diff. tokenizer, languageDetector and
// wordDiffer are optional; a nil value disables the feature it provides.
func NewModel(diff *diffview.Diff, tokenizer diffview.Tokenizer, languageDetector diffview.LanguageDetector, wordDiffer diffview.WordDiffer) *Model {
	return &Model{
		diff:             diff,
		tokenizer:        tokenizer,
		languageDetector: languageDetector,
		wordDiffer:       wordDiffer,
		colorize:         termenv.ColorProfile() != termenv.Ascii,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		m.viewport.SetContent(m.render())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "initializing..."
	}
	return m.headerView() + "\n" + m.viewport.View()
}

func (m *Model) headerView() string {
	if m.diff == nil || len(m.diff.Files) == 0 {
		return dimStyle.Render("no changes")
	}
	return dimStyle.Render(fmt.Sprintf("%d file(s) changed — q to quit", len(m.diff.Files)))
}

// render builds the full scrollable body of the pager from m.diff.
func (m *Model) render() string {
	if m.diff == nil {
		return ""
	}

	var b strings.Builder
	for i, file := range m.diff.Files {
		if i > 0 {
			b.WriteString("\n")
		}
		m.renderFile(&b, file)
	}
	return b.String()
}

func (m *Model) renderFile(b *strings.Builder, file diffview.FileDiff) {
	b.WriteString(headerStyle.Render(fileHeading(file)))
	b.WriteString("\n")

	if file.IsBinary {
		b.WriteString(dimStyle.Render("Binary file differs"))
		b.WriteString("\n")
		return
	}

	language := ""
	if m.languageDetector != nil {
		language = m.languageDetector.Detect(file.NewPath)
	}

	for _, hunk := range file.Hunks {
		b.WriteString(hunkStyle.Render(hunkHeading(hunk)))
		b.WriteString("\n")
		m.renderHunk(b, hunk, language)
	}
}

func (m *Model) renderHunk(b *strings.Builder, hunk diffview.Hunk, language string) {
	for i := 0; i < len(hunk.Lines); i++ {
		line := hunk.Lines[i]

		// Pair an adjacent delete+add as a replacement for word-level
		// highlighting when a WordDiffer is available.
		if m.wordDiffer != nil && line.Type == diffview.LineDeleted &&
			i+1 < len(hunk.Lines) && hunk.Lines[i+1].Type == diffview.LineAdded {
			next := hunk.Lines[i+1]
			oldSegs, newSegs := m.wordDiffer.Diff(line.Content, next.Content)
			b.WriteString(renderSegments(deletedStyle, "-", oldSegs))
			b.WriteString(renderSegments(addedStyle, "+", newSegs))
			i++
			continue
		}

		b.WriteString(m.renderLine(line, language))
	}
}

func (m *Model) renderLine(line diffview.Line, language string) string {
	prefix, style := linePrefixAndStyle(line.Type)
	content := line.Content
	if budget := m.width - len(prefix); budget > 0 && DisplayWidth(content) > budget {
		content = truncateToWidth(content, budget)
	}
	if m.tokenizer != nil && language != "" && line.Type == diffview.LineContext {
		content = renderTokenized(m.tokenizer.Tokenize(language, content), content)
	}

	out := prefix + content
	if line.NoNewline {
		out += dimStyle.Render(" (no newline at end of file)")
	}
	if !m.colorize {
		return out + "\n"
	}
	return style.Render(out) + "\n"
}

func linePrefixAndStyle(t diffview.LineType) (string, lipgloss.Style) {
	switch t {
	case diffview.LineAdded:
		return "+", addedStyle
	case diffview.LineDeleted:
		return "-", deletedStyle
	default:
		return " ", lipgloss.NewStyle()
	}
}

func renderSegments(lineStyle lipgloss.Style, prefix string, segments []diffview.Segment) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, seg := range segments {
		if seg.Changed {
			b.WriteString(lineStyle.Reverse(true).Render(seg.Text))
		} else {
			b.WriteString(lineStyle.Render(seg.Text))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderTokenized(tokens []diffview.Token, fallback string) string {
	if tokens == nil {
		return fallback
	}
	var b strings.Builder
	for _, tok := range tokens {
		style := lipgloss.NewStyle()
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(tok.Text))
	}
	return b.String()
}

func fileHeading(file diffview.FileDiff) string {
	switch file.Operation {
	case diffview.FileAdded:
		return "+++ " + file.NewPath
	case diffview.FileDeleted:
		return "--- " + file.OldPath
	case diffview.FileRenamed:
		return file.OldPath + " -> " + file.NewPath
	default:
		return file.NewPath
	}
}

func hunkHeading(hunk diffview.Hunk) string {
	heading := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
	if hunk.Section != "" {
		heading += " " + hunk.Section
	}
	return heading
}
