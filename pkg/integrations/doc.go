// Package integrations provides shared HTTP plumbing for external data
// sources: a client with file-based caching, retry with exponential
// backoff, and JSON request helpers.
//
// The github subpackage builds on it to fetch contribution calendars
// from the GitHub GraphQL API.
package integrations
