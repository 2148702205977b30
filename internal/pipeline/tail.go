package pipeline

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Follower is a blocking reader over a file that is still being appended to.
// Read returns data as it lands; at end of file it waits for a write
// notification instead of reporting EOF. Cancelling the context ends the
// stream cleanly with io.EOF.
type Follower struct {
	ctx     context.Context
	f       *os.File
	watcher *fsnotify.Watcher
}

// Follow opens path for tailing and starts watching it for appends.
func Follow(ctx context.Context, path string) (*Follower, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		f.Close()
		return nil, err
	}

	return &Follower{ctx: ctx, f: f, watcher: watcher}, nil
}

func (t *Follower) Read(p []byte) (int, error) {
	for {
		n, err := t.f.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}

		// Caught up; block until the file grows. The timer is a fallback for
		// filesystems where change notifications are unreliable.
		select {
		case <-t.ctx.Done():
			return 0, io.EOF
		case _, ok := <-t.watcher.Events:
			if !ok {
				return 0, io.EOF
			}
		case werr, ok := <-t.watcher.Errors:
			if !ok {
				return 0, io.EOF
			}
			return 0, werr
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func (t *Follower) Close() error {
	t.watcher.Close()
	return t.f.Close()
}
