// Package paramdata models the class parameter data files consumed by the
// parameters directive and exposes the loader contracts used to fetch them.
// Implementations of Loader live under internal/paramdata so callers only
// depend on the public types.
package paramdata
