package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/model"
)

// Theme bundles palette + symbols.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, DoneText, Border                    lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain.Reverse(true), DoneText: plain, Border: plain,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
		}
	default: // classic
		current = Theme{
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			DoneText: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: model.GlyphCheck, SymPending: "•",
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// ClassStyle maps a cell style class to a terminal style.
func ClassStyle(class string) lipgloss.Style {
	switch class {
	case model.ClassRead:
		return current.Success
	case model.ClassUnread:
		return current.Error
	}
	return lipgloss.NewStyle()
}

func OK(msg string) {
	fmt.Println(current.Success.Render(model.GlyphCheck + " " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render(model.GlyphCross+" "+msg))
}
