// Package project defines the project identity contract used by the registry,
// the path ordering, and a default Descriptor implementation.
package project
