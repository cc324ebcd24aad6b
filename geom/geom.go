package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// orientTolerance is the coordinate-match slack (in metres) used when
// deciding whether a stored polyline already runs in traversal order.
const orientTolerance = 1.0

// Bearing returns the initial great-circle bearing from a to b in
// degrees, normalized to [0, 360). 0 is north, 90 east.
func Bearing(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(deg+360, 360)
}

// Reverse returns a reversed copy of the polyline. The input is not
// mutated.
func Reverse(ls orb.LineString) orb.LineString {
	out := make(orb.LineString, len(ls))
	for i, p := range ls {
		out[len(ls)-1-i] = p
	}

	return out
}

// DirectionalLineString orients a stored edge polyline to the traversal
// direction from→to.
//
// When the polyline's first point sits at from and its last at to
// (within tolerance) it is returned as-is; when it matches the other way
// round, a reversed copy is returned. If neither end matches exactly —
// loaders occasionally snap geometry a little off the intersection — the
// orientation whose endpoints sit closer overall wins.
func DirectionalLineString(ls orb.LineString, from, to orb.Point) orb.LineString {
	if len(ls) < 2 {
		return orb.LineString{from, to}
	}

	startToFrom := geo.Distance(ls[0], from)
	startToTo := geo.Distance(ls[0], to)
	endToFrom := geo.Distance(ls[len(ls)-1], from)
	endToTo := geo.Distance(ls[len(ls)-1], to)

	if startToFrom < orientTolerance && endToTo < orientTolerance {
		return ls // exact forward match, closed loops included
	}
	if startToTo < orientTolerance && endToFrom < orientTolerance {
		return Reverse(ls)
	}
	if startToFrom >= orientTolerance && endToTo >= orientTolerance &&
		startToTo+endToFrom < startToFrom+endToTo {
		return Reverse(ls)
	}

	return ls
}

// MergePath concatenates consecutive edge geometries into a single
// polyline. The joint point shared by lines[i] and lines[i+1] is kept
// once. Empty inputs yield an empty LineString.
func MergePath(lines []orb.LineString) orb.LineString {
	total := 0
	for _, ls := range lines {
		total += len(ls)
	}
	merged := make(orb.LineString, 0, total)
	for _, ls := range lines {
		for i, p := range ls {
			if i == 0 && len(merged) > 0 && merged[len(merged)-1] == p {
				continue // drop the duplicated joint
			}
			merged = append(merged, p)
		}
	}

	return merged
}

// Length returns the haversine length of a polyline in metres.
func Length(ls orb.LineString) float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += geo.Distance(ls[i-1], ls[i])
	}

	return total
}

// PathBound returns the union bounding box of the given polylines.
// The second return value is false when no polyline has any point.
func PathBound(lines []orb.LineString) (orb.Bound, bool) {
	var bound orb.Bound
	found := false
	for _, ls := range lines {
		if len(ls) == 0 {
			continue
		}
		if !found {
			bound = ls.Bound()
			found = true
			continue
		}
		bound = bound.Union(ls.Bound())
	}

	return bound, found
}
