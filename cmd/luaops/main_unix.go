// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

//go:build unix

package main

import (
	"iter"
	"os/signal"
	"slices"

	"go4.org/xdgdir"
	"golang.org/x/sys/unix"
)

func cacheDir() string {
	return xdgdir.Cache.Path()
}

// systemConfigDirs returns a sequence of configuration directory paths
// in increasing order of preference (i.e. later entries should override earlier entries).
func systemConfigDirs() iter.Seq[string] {
	return func(yield func(string) bool) {
		dirs := xdgdir.Config.SearchPaths()
		// SearchPaths lists the most preferred directory first.
		for _, dir := range slices.Backward(dirs) {
			if !yield(dir) {
				return
			}
		}
	}
}

// ignoreSIGPIPE keeps a closed pipe on stdout (as in "luaops tables | head")
// from killing the process before the write error can be reported.
func ignoreSIGPIPE() {
	signal.Ignore(unix.SIGPIPE)
}
