package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/uaslang/uasc/pkg/runtime"
)

// runWatch recompiles the source file whenever it changes. Compilation
// failures are reported and watching continues; only setup failures abort.
func runWatch(args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	path := args[0]

	watchCmd := flag.NewFlagSet("watch", flag.ExitOnError)
	outPath := watchCmd.String("o", "", "file to write generated C++ into (required)")
	runtimeDir := watchCmd.String("runtime", "", "also write runtime.h into this directory")
	watchCmd.Parse(args[1:])

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "watch requires -o")
		os.Exit(1)
	}

	if *runtimeDir != "" {
		if _, err := runtime.WriteTo(*runtimeDir); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write runtime header: %v\n", err)
			os.Exit(1)
		}
	}

	recompile := func() {
		src, err := os.ReadFile(path)
		if err != nil {
			logWatchError("could not read %s: %v", path, err)
			return
		}
		code, err := transpile(string(src))
		if err != nil {
			logWatchError("%v", err)
			return
		}
		if err := os.WriteFile(*outPath, []byte(code), 0o644); err != nil {
			logWatchError("could not write %s: %v", *outPath, err)
			return
		}
		logWatch("compiled %s -> %s", path, *outPath)
	}

	recompile()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not start watcher: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save, which
	// would drop a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		fmt.Fprintf(os.Stderr, "Could not watch %s: %v\n", path, err)
		os.Exit(1)
	}
	logWatch("watching %s", path)

	// Debounce rapid successive events from one save.
	const debounce = 100 * time.Millisecond
	var lastChange time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(path) {
				continue
			}
			if time.Since(lastChange) < debounce {
				continue
			}
			lastChange = time.Now()
			recompile()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logWatchError("%v", err)
		}
	}
}

func logWatch(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "[WATCH] "+format+"\n", args...)
}

func logWatchError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[WATCH ERROR] "+format+"\n", args...)
}
