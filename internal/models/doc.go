// Package models holds the per-phone usage accumulator and the tally types
// shared by the bill parser, the extractor and the report writers.
package models
