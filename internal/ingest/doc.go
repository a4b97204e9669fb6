// Package ingest reads the tail of an existing log file into capture
// records, so the console starts populated with recent history instead of
// empty.
//
// Tail uses a ring buffer of size maxLines, scanning the file once in
// O(maxLines) memory regardless of file size, and returns lines in
// chronological order. Severity is inferred per line from conventional
// tokens (ERROR, WARN, FATAL); everything else is info. Records carry no
// timestamp so the store stamps them at insertion.
package ingest
