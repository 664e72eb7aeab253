package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/takuya-okamoto/zumenkan/constants"
)

type WatchConfig struct {
	Root        string        // intake directory, watched recursively
	InitialScan bool          // emit files already present at startup
	Debounce    time.Duration // coalesce write bursts while a scan is still copying
}

// Watch emits paths of drawing files dropped under cfg.Root. Scanners tend to
// write large TIFFs in chunks, so events are debounced before being emitted.
// The channels close when ctx is cancelled.
func Watch(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if cfg.Root == "" {
		return nil, nil, errors.New("watch: no root provided")
	}
	if logger == nil {
		logger = slog.Default()
	}

	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	walkErr := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		if cfg.InitialScan && watchable(path) {
			select {
			case evCh <- path:
			default:
			}
		}
		return nil
	})
	if walkErr != nil {
		_ = w.Close()
		return nil, nil, walkErr
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer w.Close()

		var timer *time.Timer
		pending := map[string]struct{}{}

		flush := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
					logger.Warn("watch queue full, dropping file", "path", p)
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op.Has(fsnotify.Create) {
					// new subdirectory: watch it too; Add on a file fails
					// harmlessly so no stat is needed
					_ = w.Add(e.Name)
				}
				if watchable(e.Name) && e.Op.Has(fsnotify.Create|fsnotify.Write|fsnotify.Rename) {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(cfg.Debounce, flush)
					} else {
						flush()
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watch error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func watchable(path string) bool {
	base := filepath.Base(path)
	if len(base) > 0 && base[0] == '.' {
		return false
	}
	return constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))]
}
