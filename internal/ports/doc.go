// Package ports defines the interfaces that connect the stack pipeline
// to its external SAR processing tools.
//
// The pipeline core (internal/stack) depends only on these interfaces.
// The exec adapter (internal/adapters/gamma) implements them by shelling
// out to the GAMMA toolchain. Tests substitute in-process fakes.
//
//   - [Ingestor]: multi-look amplitude grid creation
//   - [OffsetTool]: pair parameter creation, single-patch and
//     multi-patch offset estimation, polynomial fit
//   - [ProductGenerator]: RTC product generation for one scene
//
// All operations take an explicit working directory; no implementation
// may change the process working directory.
package ports
