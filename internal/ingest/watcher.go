package ingest

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/akshat-khanna/invoice-ledger/constants"
)

type WatchConfig struct {
	Root        string              // input directory (watched non-recursively)
	AllowedExts map[string]struct{} // lowercase sans '.'; nil -> constants.AllowedExtensions
	InitialScan bool                // if true, emit files already present in Root
	Debounce    time.Duration       // coalesce rapid event bursts
}

// StartWatcher emits paths of processing candidates appearing in the input
// directory. Subdirectories and their contents are ignored. Both channels
// close when ctx is done.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if cfg.Root == "" {
		slog.Error("watcher start failed: no root provided")
		return nil, nil, errors.New("no root provided")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.AllowedExtensions
	}
	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}
	if err := w.Add(cfg.Root); err != nil {
		slog.Error("failed to watch input directory", "root", cfg.Root, "error", err)
		_ = w.Close()
		return nil, nil, err
	}

	var initial []string
	if cfg.InitialScan {
		entries, err := os.ReadDir(cfg.Root)
		if err != nil {
			_ = w.Close()
			return nil, nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			path := filepath.Join(cfg.Root, e.Name())
			if allowed(path, cfg.AllowedExts) {
				initial = append(initial, path)
			}
		}
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			if cerr := w.Close(); cerr != nil {
				slog.Warn("failed to close watcher", "error", cerr)
			}
		}()

		// Every file present at startup is a candidate, so these sends
		// block rather than drop; the consumer is already draining.
		for _, p := range initial {
			select {
			case evCh <- p:
			case <-ctx.Done():
				return
			}
		}

		var timer *time.Timer
		var timerC <-chan time.Time
		pending := map[string]struct{}{}

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
					slog.Warn("event buffer full, dropping path", "path", p)
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				sendPending()
			case e := <-w.Events:
				if e.Op&fsnotify.Create == 0 {
					continue
				}
				if !allowed(e.Name, cfg.AllowedExts) || !isRegular(e.Name) {
					continue
				}
				pending[e.Name] = struct{}{}
				if cfg.Debounce > 0 {
					if timer == nil {
						timer = time.NewTimer(cfg.Debounce)
						timerC = timer.C
					} else {
						if !timer.Stop() {
							select {
							case <-timer.C:
							default:
							}
						}
						timer.Reset(cfg.Debounce)
					}
				} else {
					sendPending()
				}
			case err := <-w.Errors:
				slog.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func allowed(path string, exts map[string]struct{}) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := exts[ext]
	return ok
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
