// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/service"
)

// Run starts the interactive item list and blocks until the user quits or
// the context is cancelled.
func Run(ctx context.Context, svc service.Service, out io.Writer) error {
	if !isTTY(out) {
		return fmt.Errorf("tui requires a TTY")
	}
	p := tea.NewProgram(newModel(svc), tea.WithContext(ctx), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// row pairs an item with its absolute store index, so toggling works
// even when a filter hides preceding items.
type row struct {
	index int
	item  service.Item
}

type model struct {
	svc    service.Service
	filter service.ListFilter
	rows   []row
	cursor int
	status string
}

func newModel(svc service.Service) *model {
	m := &model{svc: svc, filter: service.FilterAll}
	m.refresh()
	return m
}

// refresh rebuilds the visible rows from the store.
func (m *model) refresh() {
	items := m.svc.ListItems(service.FilterAll)
	m.rows = m.rows[:0]
	for i, item := range items {
		switch m.filter {
		case service.FilterPending:
			if item.Completed {
				continue
			}
		case service.FilterCompleted:
			if !item.Completed {
				continue
			}
		}
		m.rows = append(m.rows, row{index: i, item: item})
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ", "enter":
		m.toggle()
	case "a":
		m.filter = service.FilterAll
		m.refresh()
	case "p":
		m.filter = service.FilterPending
		m.refresh()
	case "c":
		m.filter = service.FilterCompleted
		m.refresh()
	case "r":
		if r, ok := m.svc.(service.Reloader); ok {
			r.Reload()
		}
		m.refresh()
		m.status = "reloaded"
	}
	return m, nil
}

// toggle flips completion of the item under the cursor.
func (m *model) toggle() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	var err error
	if r.item.Completed {
		_, err = m.svc.UncompleteItem(r.index)
	} else {
		_, err = m.svc.CompleteItem(r.index)
	}
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.refresh()
}

func (m *model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "todo — %d item(s)", m.svc.ItemCount())
	if m.filter != service.FilterAll {
		fmt.Fprintf(&b, " [%s]", m.filter)
	}
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString("  No todo items found.\n")
	}
	for i, r := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s\n", marker, r.item)
	}

	b.WriteString("\n")
	if m.status != "" {
		fmt.Fprintf(&b, "%s\n", m.status)
	}
	b.WriteString("j/k move · space toggle · a/p/c filter · r reload · q quit\n")
	return b.String()
}
