// Package api exposes the movie store over a small read-only HTTP surface
// and defines the JSON view types it serves. Responses carry Chinese text, so
// encoding never escapes it into \u sequences.
package api
