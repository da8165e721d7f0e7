// Package staketax converts staking-reward ledger exports from exchanges and
// chain indexers into tax-import files.
//
// The package is a single linear pipeline:
//   - Source Parsers (subscan, subscan-json, kraken, staketax) turn one raw
//     export into a sequence of normalized RewardRecords.
//   - The date filter keeps only records whose calendar date falls in the
//     configured year and quarter.
//   - Output Renderers (bitcointax, cointracking) serialize the remaining
//     records into the target import format.
//
// Records are immutable once built: the pipeline only drops them or renders
// them, never mutates in place, and nothing is persisted between runs. Any
// malformed reward row aborts the whole run; partial tax reports are worse
// than no report.
//
// This package serves as the foundational logic for the `stx` command-line
// tool.
package staketax
