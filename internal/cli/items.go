package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

type AddCmd struct {
	Title       []string `arg:"" help:"Item title (can be multiple words)."`
	Date        string   `short:"D" help:"Due date (YYYY-MM-DD)." required:""`
	Description string   `short:"d" help:"Longer description."`
	Priority    string   `short:"p" help:"Priority, stored as given."`
}

func (c *AddCmd) Validate() error {
	if strings.TrimSpace(strings.Join(c.Title, " ")) == "" {
		return fmt.Errorf("empty title")
	}
	if model.ParseDate(c.Date).IsZero() {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", c.Date)
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	it := model.New(model.Raw{
		"title":       strings.TrimSpace(strings.Join(c.Title, " ")),
		"description": c.Description,
		"date":        c.Date,
		"priority":    c.Priority,
	})
	if _, err := ctx.Items.Save(it); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Info("item added", "id", it.ID, "date", it.DateString())
	ui.OK(fmt.Sprintf("added #%d", it.ID))
	return nil
}

type ShowCmd struct {
	ID int `arg:"" help:"Item id."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	it, ok, err := ctx.Items.Find(c.ID)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if !ok {
		return fmt.Errorf("item %d not found", c.ID)
	}
	fmt.Println(ui.Table([]model.Row{it.RenderRow()}))
	return nil
}

type DoneCmd struct {
	ID int `arg:"" help:"Item id."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	it, ok, err := ctx.Items.Find(c.ID)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if !ok {
		return fmt.Errorf("item %d not found", c.ID)
	}
	if _, err := ctx.Items.Save(it.Toggle()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if it.IsRead() {
		ui.OK(fmt.Sprintf("#%d done", it.ID))
	} else {
		ui.OK(fmt.Sprintf("#%d pending", it.ID))
	}
	return nil
}

type RmCmd struct {
	ID int `arg:"" help:"Item id."`
}

func (c *RmCmd) Run(ctx *Context) error {
	if _, ok, err := ctx.Items.Find(c.ID); err != nil {
		return fmt.Errorf("load: %w", err)
	} else if !ok {
		return fmt.Errorf("item %d not found", c.ID)
	}
	if err := ctx.Items.DestroyID(c.ID); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	logger.Info("item removed", "id", c.ID)
	ui.OK(fmt.Sprintf("removed #%d", c.ID))
	return nil
}
