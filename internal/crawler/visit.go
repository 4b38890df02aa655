package crawler

import "sync"

// visitTracker provides thread-safe visited URL tracking scoped to a
// single crawl invocation. URLs are marked before dispatch so a batch can
// never race itself into a duplicate fetch.
type visitTracker struct {
	seen sync.Map
}

func newVisitTracker() *visitTracker {
	return &visitTracker{}
}

// MarkIfNew stores the URL if it has not been seen before and returns true.
func (t *visitTracker) MarkIfNew(url string) bool {
	if url == "" {
		return false
	}
	_, loaded := t.seen.LoadOrStore(url, struct{}{})
	return !loaded
}

// Seen reports whether the URL has already been marked.
func (t *visitTracker) Seen(url string) bool {
	_, ok := t.seen.Load(url)
	return ok
}
