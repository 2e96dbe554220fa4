package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

type LsCmd struct {
	Group bool `short:"g" help:"Group output by pending/done."`
}

func (c *LsCmd) Run(ctx *Context) error {
	items, err := ctx.Items.Sorted()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	fmt.Println(renderList(items, c.Group))
	return nil
}

func renderList(items []*model.Item, group bool) string {
	th := ui.Current()
	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render("Todos"),
		th.Success.Render(th.SymDone), d,
		th.Pending.Render(th.SymPending), p,
		th.Accent.Render("Total"), len(items),
	)

	lines := []string{header, th.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, tableLines(items)...)
	}
	lines = append(lines, "", th.Muted.Render(`Tip: add with "tada add Buy milk --date 2024-01-31"`))
	return ui.PanelString(strings.Join(lines, "\n"))
}

func stats(items []*model.Item) (done, pending int) {
	for _, it := range items {
		if it.IsRead() {
			done++
		} else {
			pending++
		}
	}
	return
}

func tableLines(items []*model.Item) []string {
	if len(items) == 0 {
		return []string{ui.Current().Muted.Render("no items")}
	}
	rows := make([]model.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, it.RenderRow())
	}
	return []string{ui.Table(rows)}
}

func groupLines(items []*model.Item) []string {
	var pend, done []*model.Item
	for _, it := range items {
		if it.IsRead() {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	th := ui.Current()
	section := func(title string, its []*model.Item) []string {
		out := []string{th.Accent.Render(title)}
		if len(its) == 0 {
			return append(out, th.Muted.Render("(none)"))
		}
		return append(out, tableLines(its)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	return tui.Run(ctx.Items)
}
