package cdcli

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/piliotov/BDM-sub000/lib/log"
	"github.com/piliotov/BDM-sub000/lib/xmain"
)

type watcherOpts struct {
	inputPath string
	timeout   time.Duration
	process   func(context.Context) error

	// pollInterval defaults to 10s.
	pollInterval time.Duration
}

type watcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	ms *xmain.State
	watcherOpts

	runCh chan struct{}

	// ran receives the result of every run when set.
	ran chan error

	fw *fsnotify.Watcher

	closeOnce sync.Once
	errMu     sync.Mutex
	err       error
}

func newWatcher(ctx context.Context, ms *xmain.State, opts watcherOpts) (*watcher, error) {
	ctx, cancel := context.WithCancel(ctx)
	if opts.pollInterval <= 0 {
		opts.pollInterval = time.Second * 10
	}

	w := &watcher{
		ctx:    ctx,
		cancel: cancel,

		ms:          ms,
		watcherOpts: opts,

		runCh: make(chan struct{}, 1),
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		cancel()
		return nil, err
	}
	w.fw = fw
	return w, nil
}

func (w *watcher) run() error {
	defer w.close()

	w.goFunc(w.watchLoop)
	w.goFunc(w.runLoop)

	w.wg.Wait()
	return w.err
}

func (w *watcher) close() {
	w.closeOnce.Do(func() {
		w.cancel()
		err := w.fw.Close()
		w.setErr(err)
	})
}

func (w *watcher) setErr(err error) {
	w.errMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errMu.Unlock()
}

func (w *watcher) goFunc(fn func(context.Context) error) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.cancel()

		err := fn(w.ctx)
		w.setErr(err)
	}()
}

// watchLoop requests a run once at startup and then after every burst of
// events on the input file. Editors often replace the file instead of
// writing it, so the watch is re-added after every event and on every poll.
func (w *watcher) watchLoop(ctx context.Context) error {
	var lastModified time.Time

	mt, err := w.ensureAddWatch(ctx)
	if err != nil {
		return err
	}
	lastModified = mt
	w.ms.Log.Info.Printf("processing %v...", w.ms.HumanPath(w.inputPath))
	w.requestRun()

	eatBurstTimer := time.NewTimer(0)
	<-eatBurstTimer.C
	pollTicker := time.NewTicker(w.pollInterval)
	defer pollTicker.Stop()

	changed := false
	for {
		select {
		case <-pollTicker.C:
			// Catches changes whose events were lost.
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if !mt.Equal(lastModified) {
				lastModified = mt
				w.requestRun()
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Debug.Printf("received file system event %v", ev)
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod {
				if mt.Equal(lastModified) {
					// Benign Chmod.
					continue
				}
			}
			lastModified = mt
			changed = true
			// Wait for the editor to finish writing before running.
			eatBurstTimer.Reset(time.Millisecond * 16)
		case <-eatBurstTimer.C:
			if !changed {
				continue
			}
			changed = false
			w.ms.Log.Info.Printf("detected change in %s: processing again...", w.ms.HumanPath(w.inputPath))
			w.requestRun()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) requestRun() {
	select {
	case w.runCh <- struct{}{}:
	default:
	}
}

// ensureAddWatch retries with backoff until the input file can be watched,
// as it may be missing briefly while an editor replaces it.
func (w *watcher) ensureAddWatch(ctx context.Context) (time.Time, error) {
	interval := time.Millisecond * 16
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch()
		if err == nil {
			return mt, nil
		}
		if interval >= time.Second {
			w.ms.Log.Error.Printf("failed to watch %q: %v (retrying in %v)", w.ms.HumanPath(w.inputPath), err, interval)
		}

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second {
				interval = time.Second
			}
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

func (w *watcher) addWatch() (time.Time, error) {
	err := w.fw.Add(w.inputPath)
	if err != nil {
		return time.Time{}, err
	}
	fi, err := os.Stat(w.inputPath)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

func (w *watcher) runLoop(ctx context.Context) error {
	first := true
	for {
		select {
		case <-w.runCh:
		case <-ctx.Done():
			return ctx.Err()
		}

		prefix := ""
		if !first {
			prefix = "re"
		}
		first = false

		runCtx, cancel := log.WithTimeout(ctx, w.timeout)
		err := w.process(runCtx)
		cancel()
		if err != nil {
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return ctx.Err()
			}
			w.ms.Log.Error.Print(err)
		} else {
			w.ms.Log.Success.Printf("successfully %sprocessed %v", prefix, w.ms.HumanPath(w.inputPath))
		}
		if w.ran != nil {
			select {
			case w.ran <- err:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
