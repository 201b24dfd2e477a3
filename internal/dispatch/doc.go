// Package dispatch contains the batch notification pipeline: the wire types
// of the invocation envelope, envelope validation, message composition, and
// the processor that drives attachment resolution, delivery, and export.
//
// Records are processed strictly sequentially in input order. Each record
// independently reaches a terminal state; one record's delivery failure
// never affects another's. The enriched outcomes of all records, successes
// and failures alike, are handed to the exporter as a single collection, so
// the number of exported rows always equals the number of input records.
//
// The processor owns no connections and no global state. Storage access,
// delivery, and export are injected capabilities, which keeps the package
// testable with plain mocks.
package dispatch
