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

package main

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"
)

func TestRunCreatesWorldsDirAndExitsOnSignal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "worlds")

	app := cli.NewApp()
	app.Flags = []cli.Flag{configFlag, worldsDirFlag, listenFlag}
	app.Action = run

	done := make(chan error, 1)
	go func() {
		done <- app.Run([]string{"kartoffelsd", "--worlds-dir", dir})
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(dir)
		return err == nil
	}, time.Second, 5*time.Millisecond, "run creates the worlds directory before waiting on a signal")

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not exit after SIGINT")
	}
}
