// Package core implements the candidate ingest pipeline: loading an
// exported profile CSV, normalizing its wide flattened schema into the
// relational candidate model, and committing each row in its own
// transaction so one bad row never takes down the batch.
//
// This package has no CLI dependencies and can be driven by any frontend.
package core
