// Package profile unifies the profiling api between Gio profiler and
// pkg/profile, so that programs can expose it as a single flag.
package profile

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Opt specifies the various profiling options.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	// Gio records per-frame timings of a Gio window into a CSV file.
	Gio Opt = "gio"
)

// Opts lists every option, None first.
var Opts = []Opt{None, CPU, Memory, Block, Goroutine, Mutex, Trace, Gio}

// GioFile is the name of the frame timing CSV written by the Gio option.
const GioFile = "gio.csv"

// Profiler is a running profile. The zero value profiles nothing.
type Profiler struct {
	Type Opt

	once     sync.Once
	stopper  func()
	recorder *profiling.CSVTimingRecorder
}

// mode maps an option onto its pkg/profile mode.
func (p Opt) mode() (func(*profile.Profile), error) {
	switch p {
	case "", None, Gio:
		return nil, nil
	case CPU:
		return profile.CPUProfile, nil
	case Memory:
		return profile.MemProfile, nil
	case Block:
		return profile.BlockProfile, nil
	case Goroutine:
		return profile.GoroutineProfile, nil
	case Mutex:
		return profile.MutexProfile, nil
	case Trace:
		return profile.TraceProfile, nil
	}
	return nil, fmt.Errorf("unknown profile %q, want one of %s", string(p), p.choices())
}

func (Opt) choices() string {
	names := make([]string, len(Opts))
	for ii, o := range Opts {
		names[ii] = string(o)
	}
	return strings.Join(names, ", ")
}

// Start profiling, writing into dir (the working directory when empty, or
// a temporary file for Gio).
func (p Opt) Start(dir string) (*Profiler, error) {
	mode, err := p.mode()
	if err != nil {
		return nil, err
	}
	pf := &Profiler{Type: p}
	switch {
	case p == Gio:
		var name *string
		if dir != "" {
			path := filepath.Join(dir, GioFile)
			name = &path
		}
		pf.recorder, err = profiling.NewRecorder(name)
		if err != nil {
			return nil, fmt.Errorf("starting profiler: %w", err)
		}
	case mode != nil:
		opts := []func(*profile.Profile){mode, profile.NoShutdownHook, profile.Quiet}
		if dir != "" {
			opts = append(opts, profile.ProfilePath(dir))
		}
		pf.stopper = profile.Start(opts...).Stop
	}
	return pf, nil
}

// Stop profiling and flush the output. Only the first call has any effect.
func (pf *Profiler) Stop() {
	if pf == nil {
		return
	}
	pf.once.Do(func() {
		if pf.stopper != nil {
			pf.stopper()
		}
		if pf.recorder != nil {
			if err := pf.recorder.Stop(); err != nil {
				log.Printf("stopping profiler: %v", err)
			}
		}
	})
}

// Record GUI stats per frame. It is a no-op unless profiling with Gio.
func (pf *Profiler) Record(gtx layout.Context) {
	if pf == nil || pf.recorder == nil {
		return
	}
	pf.recorder.Profile(gtx)
}
