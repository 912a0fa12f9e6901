// Package codegen assembles generated kernel source into a fixed region
// layout, drives the native toolchain, and loads the built artifact back
// into the process as a callable function.
//
// The pipeline for one kernel:
//   - Emit text into canonical regions through a scoped cursor
//   - Materialize the regions to a uniquely named cache source file
//   - Compile the source into a shared library with the host toolchain
//   - Bind exported kernel symbols to typed Go function variables
//
// Regions let generation code run as straight-line nested logic (outer
// loop preamble, inner loop preamble, body, unwind) while the serialized
// source always follows the canonical section order, so vectorized loop
// nests keep a fast main loop and a scalar residual loop regardless of
// emission order.
//
// A Unit is not safe for concurrent use. Independent Units may run
// concurrently: identifiers come from a synchronized sequence and every
// file path is derived from the unit's identifier.
package codegen
