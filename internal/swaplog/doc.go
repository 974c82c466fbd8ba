// Package swaplog provides the append-only swap record log used by ndvec.
//
// Every positional exchange is appended as a Record with a sequence number.
// Undo is performed by replaying the log from the newest record to the oldest
// and applying each record's inverse.
//
// # Sequence Numbers
//
// Sequence numbers start at 1 and are never reused, not even after Reset.
//
// The log is not safe for concurrent use.
package swaplog
