// Package dubins plans and represents the paths followed by wheeled
// vehicles between two oriented configurations, under a bound on the
// curvature of the path and, optionally, on the derivative of the
// curvature.
//
// # Configurations
//
// [OrientedConfig] is the position of a vehicle's reference point together
// with the orientation of its main axis. [CurvConfig] adds the curvature of
// the path followed by the reference point, positive curvatures turning
// left. Configurations can be composed and projected, to go back and forth
// between a vehicle's local frame and the world frame.
//
// # Paths
//
// [Path] is the read-only contract shared by all paths: a start and an end
// configuration, a length, a deflection (the change of orientation along
// the path) and the configuration at any arc length.
//
// [LinCurvPath] is the elementary path, whose curvature varies linearly with
// arc length: line segments, circular arcs and clothoids. Clothoids are
// evaluated in closed form with the Fresnel integrals, see
// [FresnelIntegral].
//
// [Compound] paths are ordered sequences of elementary pieces. [ArrayPaths]
// is a general purpose compound path whose slots hold elementary or
// compound paths, and [DubinsLikePath] is the result of the planners.
//
// # Planners
//
// Dubins-like paths are made of three parts: a turn, a straight segment or
// a turn, and a final turn, giving six combinatorial [Type] values. Planners
// evaluate all of them between two configurations and keep the shortest.
//
//   - [Dubins] plans paths for vehicles that can change their curvature
//     instantaneously. Turns are arcs of maximum curvature.
//   - [FSC] plans paths whose curvature is continuous, with a bounded
//     derivative. Turns are made of clothoids and arcs.
//
// [Live] holds the current path of a vehicle that replans as it moves.
//
// # Errors and logging
//
// Precondition violations, such as an arc length outside of a path, are
// handled according to a [Mode]: the faulty value is always clamped, and
// either reported to the package logger or returned as a [*RangeError].
// See [SetLogger].
//
// # Literature
//
//   - [Shortest paths of bounded curvature] by L. E. Dubins
//   - [From Reeds and Shepp's to continuous-curvature paths] by Fraichard and Scheuer
//
// [Shortest paths of bounded curvature]: https://doi.org/10.2307/2372560
// [From Reeds and Shepp's to continuous-curvature paths]: https://doi.org/10.1109/TRO.2004.833789
package dubins
