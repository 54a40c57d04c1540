// Package github fetches contribution calendars from the GitHub
// GraphQL API.
//
// The API exposes each user's contribution calendar as 53 weeks of
// days, every day carrying a contribution count and a quartile level.
// The client maps those quartiles onto intensity levels 0 to 4 and
// returns plain [contrib.Record] values, so nothing downstream knows
// where the data came from.
//
// All requests require a token with read:user scope. Responses are
// cached on disk; pass refresh=true to bypass the cache.
package github
