package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

var version = "v0.2.0"

func main() {
	cfg := config.Load()

	var root cli.CLI
	ctx := kong.Parse(&root,
		kong.Name("tada"),
		kong.Description("A tiny persisted todo list"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		cli.Vars(cfg, version),
	)

	ui.SetTheme(root.Theme)
	if err := logger.Init(logger.Config{Debug: root.Debug, Dir: cfg.LogDir}); err != nil {
		ui.Fail("logger: " + err.Error())
	}

	storage, closeStorage, err := cli.OpenStorage(root.Store, root.Path)
	if err != nil {
		logger.Error("open storage failed", "backend", root.Store, "path", root.Path, "error", err)
		ui.Fail("open: " + err.Error())
		os.Exit(1)
	}
	logger.Debug("storage ready", "backend", root.Store, "path", root.Path)

	err = ctx.Run(&cli.Context{Items: store.NewItems(storage)})
	if cerr := closeStorage(); cerr != nil {
		logger.Warn("close storage failed", "error", cerr)
	}
	if err != nil {
		logger.Error("command failed", "command", ctx.Command(), "error", err)
		ui.Fail(err.Error())
		os.Exit(1)
	}
}
