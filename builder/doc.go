// Package builder generates grid graphs for the search engine: random grids
// with probabilistic straight and diagonal links, and empty labelled grids that
// graph files draw their links on.
//
// The package offers:
//
//   - Constructors:
//     – BuildGrid:  random links (straight 0.9, diagonal 0.2, weights 1..20),
//     start and goal at distinct random corners.
//     – EmptyGrid:  nodes only, start (0,0), goal (w-1,h-1).
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithWeightFn/WithUniformWeight,
//     WithStraightChance/WithDiagonalChance, WithStart/WithGoal,
//     WithLabelScheme and its shorthands.
//   - Label schemes (LabelFn): DefaultLabelFn, SymbolIDFn, DecimalIDFn,
//     ExcelColumnIDFn.
//   - Weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Guarantees:
//
//   - Fast-fail on nil option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrBadPosition) wrapped with the method name.
//   - A fixed seed reproduces the same graph.
//
// The search engine never calls this package; it is one of the external data
// providers a caller may use to obtain a graph.
package builder
