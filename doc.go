// Package bespokefit provides the data schemas shared by the bespoke
// force-field fitting pipeline: reference-data records produced by
// quantum-chemistry collection workflows and the status values those
// workflows advance through.
//
// The core types are:
//
//   - [Status] tracks a collection stage through its lifecycle.
//   - [Molecule] is an opaque reference to the molecule being fit.
//   - [SingleResult] is one reference-data record returned by a
//     quantum-chemistry calculation.
//   - [Quantity] tags a raw geometry with its length unit.
//
// Collection workflows live in the
// [github.com/openforcefield/bespoke-fit/workflow] package and force-field
// editing in [github.com/openforcefield/bespoke-fit/forcefield].
package bespokefit
