// Package reconcile merges catalog detail records into stored movie rows.
//
// Rules apply per field, never all-or-nothing: a field already holding a
// non-empty value is never replaced by an empty incoming one, and a localized
// title that turns out to be English-looking is masked by the original title
// instead of being stored as a fake translation. The output is a typed patch
// listing only the fields the merge actually decided on.
package reconcile
