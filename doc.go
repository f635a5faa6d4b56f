// Package gofeatures is a guided console tour of modern Go and GORM features.
//
// Each demonstration routine is a self-contained tutorial: it constructs toy
// input, exercises one language, standard-library, or ORM capability, and
// prints a narrated result. Routines are independent of each other and run in
// a fixed registration order.
//
// The module is organized into four packages plus the CLI:
//
//   - [github.com/Fcakiroglu16/gofeatures/tour]: routine registry, runner, styled printer
//   - [github.com/Fcakiroglu16/gofeatures/langfeat]: language and standard-library demos
//   - [github.com/Fcakiroglu16/gofeatures/ormfeat]: GORM feature demos over in-process sqlite
//   - [github.com/Fcakiroglu16/gofeatures/filterdsl]: search-filter mini-language compiled to SQL
//
// All packages compile and test without cgo or an external database; the ORM
// demos run against an in-memory sqlite backend.
package gofeatures
