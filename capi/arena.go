package capi

import (
	"log/slog"
	"sync"

	"github.com/reoring/urlkit"
)

// Handle addresses a URL in an Arena: slot index + 1 in the low 32 bits and
// the slot generation in the high 32 bits. Zero is the null handle.
type Handle uint64

func makeHandle(idx, gen uint32) Handle { return Handle(uint64(gen)<<32 | uint64(idx+1)) }

func (h Handle) split() (idx, gen uint32, ok bool) {
	lo := uint32(h)
	if lo == 0 {
		return 0, 0, false
	}
	return lo - 1, uint32(h >> 32), true
}

type slot struct {
	url *urlkit.URL
	gen uint32
}

// Arena owns the URLs handed out across the boundary. The slot table is
// guarded by a mutex; operations on a single handle assume one caller at a
// time.
type Arena struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
	live  int

	opts urlkit.ParseOpt
	log  *slog.Logger
}

// NewArena creates an arena that parses with cfg's limits. A nil logger
// discards all output.
func NewArena(cfg Config, logger *slog.Logger) *Arena {
	if logger == nil {
		logger = NewNope()
	}
	return &Arena{
		opts: urlkit.ParseOpt{MaxBytes: cfg.MaxSpecBytes},
		log:  logger,
	}
}

// New parses spec and returns a handle to the result, or 0 when parsing
// fails.
func (a *Arena) New(spec []byte) Handle {
	u, err := urlkit.New(spec, a.opts)
	if err != nil {
		a.log.Debug("spec rejected", "op", "new", "code", urlkit.CodeOf(err).String(), "len", len(spec), "error", err)
		return 0
	}
	return a.insert(u)
}

func (a *Arena) insert(u *urlkit.URL) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].url = u
		return makeHandle(idx, a.slots[idx].gen)
	}
	a.slots = append(a.slots, slot{url: u, gen: 1})
	return makeHandle(uint32(len(a.slots)-1), 1)
}

// Free releases the URL behind h. Freeing 0 is a no-op; freeing a stale
// handle is logged and otherwise ignored.
func (a *Arena) Free(h Handle) {
	if h == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	s, idx, ok := a.slotLocked(h)
	if !ok {
		a.log.Debug("stale handle", "op", "free", "handle", uint64(h))
		return
	}
	s.url.Free()
	s.url = nil
	s.gen++
	a.free = append(a.free, idx)
	a.live--
}

func (a *Arena) slotLocked(h Handle) (*slot, uint32, bool) {
	idx, gen, ok := h.split()
	if !ok || int(idx) >= len(a.slots) {
		return nil, 0, false
	}
	s := &a.slots[idx]
	if s.gen != gen || s.url == nil {
		return nil, 0, false
	}
	return s, idx, true
}

// Lookup returns the URL behind h. The URL stays owned by the arena.
func (a *Arena) Lookup(h Handle) (*urlkit.URL, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, _, ok := a.slotLocked(h)
	if !ok {
		return nil, false
	}
	return s.url, true
}

// Len reports the number of live handles.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.live
}

func (a *Arena) lookup(op string, h Handle) (*urlkit.URL, urlkit.Code) {
	u, ok := a.Lookup(h)
	if !ok {
		if h != 0 {
			a.log.Debug("stale handle", "op", op, "handle", uint64(h))
		}
		return nil, urlkit.CodeInvalidArg
	}
	return u, urlkit.CodeOK
}
