package docxedit

import (
	"sync"
	"sync/atomic"
)

// Document owns a document body and its segmented view. The body is the
// single source of truth: the run sequence is derived from it on demand and
// dropped whenever the body is replaced.
type Document struct {
	original string

	mu   sync.Mutex
	body string
	seq  *Sequence

	revision atomic.Int64
}

// New creates a document from the content of word/document.xml
func New(body string) *Document {
	return &Document{
		original: body,
		body:     body,
	}
}

// logger looks the global logger up on every call so level changes reach existing documents
func (d *Document) logger() *Logger {
	return GetLogger().WithField("component", "document")
}

// Original returns the body the document was created with, regardless of later edits
func (d *Document) Original() string {
	return d.original
}

// Body returns the current body
func (d *Document) Body() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.body
}

// String returns the current body
func (d *Document) String() string {
	return d.Body()
}

// Modified reports whether the body differs from the original
func (d *Document) Modified() bool {
	return d.Body() != d.original
}

// SetBody replaces the body and drops the cached run sequence in one step
func (d *Document) SetBody(body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.body = body
	d.seq = nil
}

// setSegmented replaces the body with a sequence already known to reassemble to it
func (d *Document) setSegmented(seq *Sequence) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.body = seq.String()
	d.seq = seq
}

// Sequence returns the segmented view of the current body, building it on
// first use. Callers get a copy and may modify it freely.
func (d *Document) Sequence() (*Sequence, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.seq == nil {
		seq, err := Segment(d.body)
		if err != nil {
			return nil, err
		}
		d.seq = seq
		if logger := d.logger(); logger.IsDebugMode() {
			logger.WithFields(Fields{
				"runs":  len(seq.Runs),
				"texts": seq.TextCount(),
			}).Debug("Segmented body")
		}
	}
	return d.seq.Clone(), nil
}

// Runs returns the runs of the current body
func (d *Document) Runs() ([]*Run, error) {
	seq, err := d.Sequence()
	if err != nil {
		return nil, err
	}
	return seq.Runs, nil
}

// nextRevision hands out revision ids 1, 2, 3, ...
func (d *Document) nextRevision() int {
	return int(d.revision.Add(1))
}
