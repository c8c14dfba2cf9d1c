package core

import "errors"

// ErrSourceUnreadable reports that the input file could not be loaded at
// all: missing, unreadable, oversized, or not parseable as a CSV table.
// It is fatal to the whole run; no rows are processed.
var ErrSourceUnreadable = errors.New("source unreadable")

// ErrStoreUnavailable reports that the database cannot be reached.
// Unlike a per-row insert failure it cannot be isolated to one row, so
// the batch aborts as soon as it surfaces.
var ErrStoreUnavailable = errors.New("store unavailable")
