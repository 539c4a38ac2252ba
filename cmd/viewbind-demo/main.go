// Command viewbind-demo is a small terminal front-end for the binder. The
// widget tree and resources come from a viewtest fixture, the screen struct
// below is bound against it, and key presses dispatch through the installed
// click listeners.
//
// Keys: o presses OK, c presses Cancel, C long-presses Cancel, u unbinds,
// q quits.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ygrebnov/viewbind"
	"github.com/ygrebnov/viewbind/view"
	"github.com/ygrebnov/viewbind/view/viewtest"
)

const fixture = `
resources:
  colors:  {301: crimson}
  strings: {330: "press u to unbind, q to quit"}
root:
  id: 1
  children:
    - {id: 11, kind: label, text: viewbind demo}
    - {id: 12, kind: button, text: OK}
    - {id: 13, kind: button, text: Cancel}
`

type screen struct {
	Title  *viewtest.Label  `bind:"11"`
	OK     *viewtest.Button `bind:"12"`
	Cancel *viewtest.Button `bind:"13"`
	Accent uint32           `bindcolor:"301"`
	Footer string           `bindstring:"330"`

	_ viewbind.Handlers `onclick:"Pressed(12,13)" onlongclick:"Held(13)"`

	status string
}

func (s *screen) Pressed(v view.View) {
	if b, ok := v.(*viewtest.Button); ok {
		s.status = fmt.Sprintf("%s pressed", b.Text)
	}
}

func (s *screen) Held(view.View) bool {
	s.status = "Cancel held"
	return true
}

type model struct {
	screen *screen
	unbind viewbind.Unbinder
	bound  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "o":
		if m.bound {
			m.screen.OK.PerformClick()
		}
	case "c":
		if m.bound {
			m.screen.Cancel.PerformClick()
		}
	case "C":
		if m.bound {
			m.screen.Cancel.PerformLongClick()
		}
	case "u":
		if m.bound {
			m.unbind.Unbind()
			m.bound = false
			m.screen.status = "unbound; widgets released"
		}
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	accent := lipgloss.Color(fmt.Sprintf("#%06x", m.screen.Accent&0xffffff))
	title := lipgloss.NewStyle().Bold(true).Foreground(accent)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	faint := lipgloss.NewStyle().Faint(true)

	header := "(unbound)"
	buttons := ""
	if m.bound {
		header = title.Render(m.screen.Title.Text)
		buttons = lipgloss.JoinHorizontal(lipgloss.Top,
			box.Render("o: "+m.screen.OK.Text),
			" ",
			box.Render("c/C: "+m.screen.Cancel.Text),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		buttons,
		m.screen.status,
		faint.Render(m.screen.Footer),
	) + "\n"
}

func main() {
	root, err := viewtest.Load([]byte(fixture))
	if err != nil {
		fmt.Fprintln(os.Stderr, "viewbind-demo:", err)
		os.Exit(1)
	}

	s := &screen{status: "bound; o/c/C to press buttons"}
	u, err := viewbind.Bind(s, root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "viewbind-demo:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(model{screen: s, unbind: u, bound: true}).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "viewbind-demo:", err)
		os.Exit(1)
	}
}
