package crawler

import "errors"

// ErrNoPages means every fetch failed: the domain is unreachable or
// serves nothing parseable, so there is nothing to analyze. Crawl itself
// returns an empty result; the pipeline wraps it in this error.
var ErrNoPages = errors.New("crawler: no pages could be fetched")
