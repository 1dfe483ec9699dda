// Package domain contains the core entities and value objects for the
// stack co-registration pipeline.
//
// This is the innermost layer: it has no dependencies on infrastructure
// concerns (exec, file system layout, logging) and contains only the
// types and rules the rest of the pipeline is built around.
//
// # Entities
//
//   - [Scene]: a single acquisition in the stack, keyed by its date token
//   - [OffsetEstimate]: the fitted range/azimuth offset between an
//     adjacent scene pair
//   - [AccumulatedOffset]: the reference-relative correction for a scene,
//     produced by folding pairwise estimates in date order
//   - [GridParameters]: the snapped output grid for one scene
//   - [ProductName]: the parsed fields of an ASF RTC product file name
package domain
