// Package domain defines the core entities of the dataset pipeline: the Fact read
// from the source list and the DialogPair accumulated for the output dataset.
//
// The package has no dependencies on infrastructure. Entities validate
// themselves on construction so that every pair reaching the dataset writer has a
// non-empty instruction and answer.
package domain
