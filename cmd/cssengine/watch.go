package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yacobolo/cssengine"
	"go.uber.org/zap"
)

const rebuildDebounce = 150 * time.Millisecond

// watchAndRebuild rebuilds whenever a declaration or theme file changes,
// until ctx is cancelled or the process is interrupted.
func watchAndRebuild(ctx context.Context, config cssengine.GenerateConfig, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, config.SourceDir); err != nil {
		return err
	}
	for _, path := range themeFiles(config) {
		// Watch the directory; editors replace files on save
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	log.Info("Watching for changes", zap.String("source", config.SourceDir))

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
					continue
				}
			}
			if !relevantChange(config, event) {
				continue
			}
			log.Debug("Change detected", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			if timer == nil {
				timer = time.NewTimer(rebuildDebounce)
			} else {
				timer.Reset(rebuildDebounce)
			}
			trigger = timer.C

		case <-trigger:
			trigger = nil
			if err := buildOnce(config, os.Stdout, os.Stderr); err != nil {
				// keep watching; the next save may fix it
				log.Error("Rebuild failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))
		}
	}
}

// addRecursive adds dir and all its subdirectories to the watch list
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func themeFiles(config cssengine.GenerateConfig) []string {
	var files []string
	if config.ThemeFile != "" {
		files = append(files, config.ThemeFile)
	}
	return append(files, config.ThemeOverrides...)
}

// relevantChange reports whether event touches a theme file or a file
// with a declaration or theme extension.
func relevantChange(config cssengine.GenerateConfig, event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	name := filepath.Clean(event.Name)
	for _, path := range themeFiles(config) {
		if filepath.Clean(path) == name {
			return true
		}
	}
	if config.OutputFile != "" && filepath.Clean(config.OutputFile) == name {
		return false
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	}
	return false
}
