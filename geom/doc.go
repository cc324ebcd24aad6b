// Package geom provides the pure geometric helpers the route-inspection
// pipeline needs when it turns graph edges into ordered coordinate
// sequences: initial bearings for direction indicators, orientation of
// stored polylines to the actual traversal direction, concatenation of
// consecutive edge geometries into a single path, and bounding boxes.
//
// Coordinates follow the github.com/paulmach/orb convention throughout:
// orb.Point is (lon, lat), distances are haversine metres.
//
// What:
//
//   - Bearing: initial great-circle bearing a→b, degrees in [0, 360).
//   - Reverse: non-mutating reversed copy of a LineString.
//   - DirectionalLineString: orient a stored edge polyline so that it
//     runs from the traversal's start vertex to its end vertex,
//     reversing when the stored orientation matches better backwards.
//   - MergePath: concatenate consecutive edge geometries into one
//     LineString, dropping duplicated joint points.
//   - PathBound: union bounding box of a set of LineStrings.
//
// All functions are allocation-conscious and side-effect free; input
// slices are never mutated.
package geom
