// Package conduit implements a small streaming data-processing core built
// from three composable abstractions — Producer, Transformer, and Consumer —
// plus the operators that fuse them into pipelines, and a BufferedProducer
// adapter that makes a producer resumable across multiple connects.
//
// Producers are pull-driven, consumers are push-driven, and transformers sit
// between the two: pushing a value into a transformer may produce zero,
// one, or a burst of output values, and a transformer may keep emitting
// after its input has been exhausted (its "drain").
//
// Every value in this package is used linearly. Once a Producer yields its
// final Closed result, once a Consumer returns its result or is closed, or
// once a Transformer is pushed past Finished, that value must not be
// operated on again. Violating that contract panics rather than returning
// an error — it is a programmer error, not a recoverable condition.
package conduit
