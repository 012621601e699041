package moovm

import (
	"encoding/gob"
	"io"
	"log/slog"
)

func (r *Runner) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return nil
}

func (r *Runner) Restore(rd io.Reader) error {
	// gob merges into existing maps, so decode into a fresh value
	var decoded Runner
	dec := gob.NewDecoder(rd)
	if err := dec.Decode(&decoded); err != nil {
		return err
	}
	logger := r.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	*r = decoded
	r.logger = logger
	return nil
}
