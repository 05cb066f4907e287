// Package plan executes YAML-described document-generation runs.
//
// A plan is the file form of one generated document: a seed and an
// ordered list of draws against the quest pools. Running a plan
// threads a single used-id set and a single seeded random source
// across every draw, which is exactly what gives a document its two
// core properties:
//
//   - same seed, same plan ⇒ same document
//   - no item repeats until the filtered pool is exhausted
//
// Plans can optionally bind to a store-backed session, so a document
// resumed in a later CLI invocation continues its non-repetition
// guarantee where it left off.
//
// Run results serialize to canonical JSON (sorted keys, NFC strings)
// so golden-file tests can assert byte-exact traces.
package plan
