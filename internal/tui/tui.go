package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

// listItem adapts a model.Item to bubbles/list.Item
type listItem struct {
	item *model.Item
}

func (i listItem) Title() string       { return i.item.Title }
func (i listItem) Description() string { return i.item.Description }
func (i listItem) FilterValue() string { return i.item.Title }

// Model is the interactive list. Every change is saved through the repository
// as it happens.
type Model struct {
	list  list.Model
	items *store.Items
	now   func() time.Time

	// shared text input for add & edit
	ti        textinput.Model
	adding    bool
	editing   bool
	editIndex int
	inputErr  string

	status string

	// single-level undo of the last delete
	undoIndex int
	undoItem  *model.Item

	width, height int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(listItem)
	if !ok {
		return
	}
	th := ui.Current()
	cells := it.item.RenderRow().Cells

	box := th.Muted.Render(th.BoxUnchecked)
	title := it.item.Title
	if it.item.IsRead() {
		box = th.Success.Render(th.BoxChecked)
		title = th.DoneText.Render(title)
	}
	var meta []string
	for _, c := range cells {
		switch c.Attribute {
		case model.AttrDate, model.AttrPriority:
			if c.Text != "" {
				meta = append(meta, c.Text)
			}
		}
	}
	line := fmt.Sprintf("%s %s", box, title)
	if len(meta) > 0 {
		line += " " + th.Muted.Render("("+strings.Join(meta, ", ")+")")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = th.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// New loads every stored item into a list ordered by id.
func New(items *store.Items) (Model, error) {
	sorted, err := items.Sorted()
	if err != nil {
		return Model{}, err
	}
	li := make([]list.Item, 0, len(sorted))
	for _, it := range sorted {
		li = append(li, listItem{item: it})
	}

	th := ui.Current()
	l := list.New(li, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = th.Title
	l.Styles.HelpStyle = th.Muted
	l.Styles.PaginationStyle = th.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, editBind, delBind, undoBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{list: l, items: items, ti: ti, now: time.Now, undoIndex: -1, width: 80, height: 24}
	m.refreshTitle()
	return m, nil
}

// Run starts the program on the alternate screen.
func Run(items *store.Items) error {
	m, err := New(items)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) refreshTitle() {
	done, pending := 0, 0
	for _, li := range m.list.Items() {
		if it, ok := li.(listItem); ok && it.item.IsRead() {
			done++
		} else {
			pending++
		}
	}
	th := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		th.Title.Render("Todos"),
		th.Success.Render(th.SymDone), done,
		th.Pending.Render(th.SymPending), pending,
		th.Accent.Render("Total"), done+pending,
	)
}

func (m *Model) selected() (int, *model.Item) {
	i := m.list.Index()
	items := m.list.Items()
	if i < 0 || i >= len(items) {
		return -1, nil
	}
	li, ok := items[i].(listItem)
	if !ok {
		return -1, nil
	}
	return i, li.item
}

func (m *Model) fail(op string, err error) {
	logger.Error("tui "+op+" failed", "error", err)
	m.status = ui.Current().Error.Render(op + ": " + err.Error())
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if i, it := m.selected(); it != nil {
				it.Toggle()
				if _, err := m.items.Save(it); err != nil {
					it.Toggle()
					m.fail("toggle", err)
					return m, nil
				}
				m.list.SetItem(i, listItem{item: it})
				m.status = ""
				m.refreshTitle()
			}
			return m, nil
		case "d":
			if i, it := m.selected(); it != nil {
				if err := m.items.Destroy(it); err != nil {
					m.fail("delete", err)
					return m, nil
				}
				m.undoItem, m.undoIndex = it, i
				m.list.RemoveItem(i)
				m.status = ui.Current().Muted.Render("deleted, u to undo")
				m.refreshTitle()
			}
			return m, nil
		case "u":
			if m.undoItem != nil {
				// an add since the delete may have reused the id
				_, taken, err := m.items.Find(m.undoItem.ID)
				if err != nil {
					m.fail("undo", err)
					return m, nil
				}
				if taken {
					m.undoItem.ID = 0
				}
				if _, err := m.items.Save(m.undoItem); err != nil {
					m.fail("undo", err)
					return m, nil
				}
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				m.list.InsertItem(idx, listItem{item: m.undoItem})
				m.undoItem, m.undoIndex = nil, -1
				m.status = ""
				m.refreshTitle()
			}
			return m, nil
		case "a":
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New item title..."
			m.ti.Focus()
			return m, nil
		case "e":
			if i, it := m.selected(); it != nil {
				m.editing = true
				m.editIndex = i
				m.inputErr = ""
				m.ti.SetValue(it.Title)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit item title..."
				m.ti.Focus()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			if m.adding {
				m.addItem(title)
			} else {
				m.editItem(title)
			}
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) addItem(title string) {
	it := model.New(model.Raw{"title": title, "date": m.now().Format(model.DateLayout)})
	if _, err := m.items.Save(it); err != nil {
		m.fail("add", err)
		return
	}
	m.list.InsertItem(len(m.list.Items()), listItem{item: it})
	m.list.Select(len(m.list.Items()) - 1)
	m.status = ""
	m.refreshTitle()
}

func (m *Model) editItem(title string) {
	items := m.list.Items()
	if m.editIndex < 0 || m.editIndex >= len(items) {
		return
	}
	li, ok := items[m.editIndex].(listItem)
	if !ok {
		return
	}
	old := li.item.Title
	li.item.Title = title
	if _, err := m.items.Save(li.item); err != nil {
		li.item.Title = old
		m.fail("edit", err)
		return
	}
	m.list.SetItem(m.editIndex, li)
	m.status = ""
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding || m.editing {
		listHeight = m.height - 6
	}
	if m.status != "" {
		listHeight--
	}
	m.list.SetSize(m.width-4, listHeight)

	content := m.list.View()
	if m.status != "" {
		content += "\n" + m.status
	}
	if m.adding || m.editing {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += " - " + ui.Current().Error.Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.PanelString(content)
}
