package pager

import "sync"

// Key identifies one page of one list, e.g. {"drug:12", 3}.
type Key struct {
	Resource string
	Page     int
}

// Group records which keys have a request outstanding. Unlike
// singleflight, a second caller for a busy key is turned away instead of
// waiting for the first result.
type Group struct {
	mu       sync.Mutex
	inflight map[Key]struct{}
}

func NewGroup() *Group {
	return &Group{inflight: make(map[Key]struct{})}
}

// TryStart claims key. It returns ok=false when key is already claimed;
// otherwise done must be called once the request completes.
func (g *Group) TryStart(key Key) (done func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return nil, false
	}
	g.inflight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, true
}

// InFlight reports whether key is claimed.
func (g *Group) InFlight(key Key) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inflight[key]
	return busy
}
