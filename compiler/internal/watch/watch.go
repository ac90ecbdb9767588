// Package watch wraps fsnotify for the rebuild-on-save loop of
// `pytoc build --watch`.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op is a bitmask of file operations observed on a watched path.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Event is one change notification.
type Event struct {
	Path string
	Op   Op
}

// Touched reports whether the event plausibly changed the file's contents;
// editors that write via rename show up as Create/Rename rather than Write.
func (e Event) Touched() bool {
	return e.Op&(OpCreate|OpWrite|OpRename) != 0
}

// Watcher forwards OS-native notifications onto typed channels.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{w: w, evC: make(chan Event, 64), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				close(fw.evC)
				return
			}
			var op Op
			if ev.Op&fsnotify.Create != 0 {
				op |= OpCreate
			}
			if ev.Op&fsnotify.Write != 0 {
				op |= OpWrite
			}
			if ev.Op&fsnotify.Remove != 0 {
				op |= OpRemove
			}
			if ev.Op&fsnotify.Rename != 0 {
				op |= OpRename
			}
			if op == 0 {
				continue // chmod-only noise
			}
			fw.evC <- Event{Path: ev.Name, Op: op}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

func (fw *Watcher) Events() <-chan Event { return fw.evC }
func (fw *Watcher) Errors() <-chan error { return fw.erC }
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }
func (fw *Watcher) Close() error          { return fw.w.Close() }
