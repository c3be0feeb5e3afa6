// Package loess implements the local-regression backend used by the
// Smoother builder.
//
// Fitting records the data and neighborhood size; each prediction
// selects the span-nearest observations, weights them with the tricube
// kernel, and solves a weighted linear or quadratic fit centered on the
// query point. The linear algebra is delegated to gonum.
package loess
