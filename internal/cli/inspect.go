package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// objectListModel is the bubbletea model for browsing the objects of an
// AGP. Enter selects an object whose rows are printed after the program
// exits.
type objectListModel struct {
	Objects  []objectSummary
	Cursor   int
	Selected *objectSummary
	Height   int
	Offset   int
}

func newObjectListModel(objects []objectSummary) objectListModel {
	return objectListModel{
		Objects: objects,
		Height:  15,
	}
}

func (m objectListModel) Init() tea.Cmd {
	return nil
}

func (m objectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Objects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = &m.Objects[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m objectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Object"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ show rows  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Objects) {
		end = len(m.Objects)
	}

	for i := m.Offset; i < end; i++ {
		o := m.Objects[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		detail := fmt.Sprintf("%d bp, %d components, %d gaps", o.length, o.components, o.gaps)
		line := fmt.Sprintf("%s%-30s  %s", cursor, o.name, listDimStyle.Render(detail))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Objects))))

	return b.String()
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [agp]",
		Short: "Browse the objects of an AGP interactively",
		Long: `Open an interactive list of the objects in an AGP. Selecting an
object prints its rows to stdout.

The AGP is read from the first argument, or stdin when omitted. When
reading from stdin the file must be a regular file path, since the
terminal is needed for interaction.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			entries, err := readAGP(argOrStdin(args, 0))
			if err != nil {
				return err
			}
			summaries := summarize(entries)
			if len(summaries) == 0 {
				printWarning("no objects found")
				return nil
			}

			program := tea.NewProgram(newObjectListModel(summaries))
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("interactive selection: %w", err)
			}

			model := final.(objectListModel)
			if model.Selected == nil {
				return nil
			}
			for _, row := range model.Selected.rows {
				fmt.Println(row)
			}
			return nil
		},
	}
	return cmd
}
