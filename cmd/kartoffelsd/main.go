// Copyright 2026 The Kartoffels Authors
// This file is part of Kartoffels.
//
// Kartoffels is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kartoffels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kartoffels. If not, see <http://www.gnu.org/licenses/>.

// Command kartoffelsd boots the world registry and keeps it running until a
// shutdown signal arrives. It owns no frontend: HTTP/SSH control surfaces and
// the terminal UI are out of scope for this binary.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/urfave/cli.v1"

	"github.com/kartoffels/kartoffels/internal/config"
	"github.com/kartoffels/kartoffels/internal/ids"
	"github.com/kartoffels/kartoffels/internal/logging"
	"github.com/kartoffels/kartoffels/internal/registry"
	"github.com/kartoffels/kartoffels/internal/world"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	worldsDirFlag = cli.StringFlag{
		Name:  "worlds-dir",
		Usage: "overrides Config.WorldsDir",
	}
	listenFlag = cli.StringFlag{
		Name:  "listen",
		Usage: "overrides Config.Listen",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "kartoffelsd"
	app.Usage = "runs the kartoffels world registry"
	app.Flags = []cli.Flag{configFlag, worldsDirFlag, listenFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "kartoffelsd:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg := config.Default()
	if path := ctx.String(configFlag.Name); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if dir := ctx.String(worldsDirFlag.Name); dir != "" {
		cfg.WorldsDir = dir
	}
	if listen := ctx.String(listenFlag.Name); listen != "" {
		cfg.Listen = listen
	}

	if err := os.MkdirAll(cfg.WorldsDir, 0o755); err != nil {
		return fmt.Errorf("kartoffelsd: create worlds dir: %w", err)
	}

	log := logging.Root
	defaultPolicy := world.Policy{
		MaxAliveBots:    cfg.WorldDefaults.MaxAliveBots,
		MaxQueuedBots:   cfg.WorldDefaults.MaxQueuedBots,
		TickBudgetSteps: cfg.WorldDefaults.TickBudgetSteps,
		AutoRespawn:     cfg.WorldDefaults.AutoRespawn,
	}
	reg, err := registry.New(cfg.WorldsDir, cfg.MaxWorlds, ids.NewRandom(), log, defaultPolicy)
	if err != nil {
		return fmt.Errorf("kartoffelsd: open registry: %w", err)
	}

	log.Info().
		Str("worlds_dir", cfg.WorldsDir).
		Str("listen", cfg.Listen).
		Log("kartoffelsd starting")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Log("shutting down")
	reg.Shutdown()
	return nil
}
