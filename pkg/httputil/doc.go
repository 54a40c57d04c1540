// Package httputil provides the HTTP plumbing for the GitHub client:
// a file-based response cache and retry with exponential backoff.
//
// # Caching
//
// [Cache] stores JSON-marshaled responses in the filesystem
// (~/.cache/pacgrid/) with a TTL derived from file modification time.
// Caching spares the GitHub rate limit when the generator runs
// repeatedly, e.g. from a cron-driven profile workflow:
//
//	cache, err := httputil.NewCache("", 6*time.Hour)
//	var cal calendarResponse
//	if ok, _ := cache.Get("contrib:octocat:2025", &cal); !ok {
//	    cal = fetchFromAPI()
//	    cache.Set("contrib:octocat:2025", cal)
//	}
//
// The cache can be cleared via `pacgrid cache clear` or by deleting the
// directory.
//
// # Retry
//
// [Retry] re-runs an operation for transient failures (network errors,
// 5xx responses) with exponential backoff. Only errors wrapped in
// [RetryableError] are retried. Retrying never changes the tool's
// failure policy: a request that still fails afterwards degrades to
// synthetic data upstream rather than aborting the run.
package httputil
