package swaplog

import "fmt"

// Record is a single positional exchange of A and B.
type Record struct {
	Seq uint64
	A   int
	B   int
}

// Inverse returns the exchange that undoes r.
func (r Record) Inverse() Record {
	return Record{Seq: r.Seq, A: r.B, B: r.A}
}

func (r Record) String() string {
	return fmt.Sprintf("#%d(%d,%d)", r.Seq, r.A, r.B)
}

// Log is an append-only sequence of records.
type Log struct {
	records []Record
	nextSeq uint64
}

// New creates an empty log.
func New() *Log {
	return &Log{nextSeq: 1}
}

// Append records the exchange (a, b) and returns the stored record.
func (l *Log) Append(a, b int) Record {
	rec := Record{Seq: l.nextSeq, A: a, B: b}
	l.nextSeq++
	l.records = append(l.records, rec)

	return rec
}

// Len returns the number of records in the log.
func (l *Log) Len() int {
	return len(l.records)
}

// Records returns a copy of the log in chronological order.
func (l *Log) Records() []Record {
	if len(l.records) == 0 {
		return nil
	}

	out := make([]Record, len(l.records))
	copy(out, l.records)

	return out
}

// Last returns the newest record.
func (l *Log) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}

	return l.records[len(l.records)-1], true
}

// ReplayReverse calls fn for every record, newest first.
// It stops at the first error and reports how many records were applied.
func (l *Log) ReplayReverse(fn func(Record) error) (int, error) {
	applied := 0

	for i := len(l.records) - 1; i >= 0; i-- {
		rec := l.records[i]
		if err := fn(rec); err != nil {
			return applied, fmt.Errorf("failed to replay record %d: %w", rec.Seq, err)
		}
		applied++
	}

	return applied, nil
}

// Reset drops every record. Sequence numbers keep increasing.
func (l *Log) Reset() {
	l.records = l.records[:0]
}
