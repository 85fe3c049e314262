// Package logtail reads the tail of the catalog log file for the activity
// overlay.
//
// Lines keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays bounded no matter how large the log grows. Read decodes each
// line as a zap JSON record into an Entry. Lines that do not decode are kept
// as message-only entries rather than dropped.
//
// A missing log file is not an error: both functions return no lines.
package logtail
