package geo

import (
	"fmt"
	"math"

	"github.com/geosar-labs/stackrtc/internal/domain"
)

// WGS84 ellipsoid and transverse-Mercator constants.
const (
	semiMajor  = 6378137.0
	flattening = 1.0 / 298.257223563
	scale0     = 0.9996

	falseEasting       = 500000.0
	southFalseNorthing = 10000000.0

	// UTM is undefined poleward of 84N/80S; the polar stereographic
	// zones are out of scope here.
	maxLat = 84.0
	minLat = -80.0
)

// ZoneFor returns the UTM zone number covering the given longitude.
func ZoneFor(lon float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	return zone
}

// ProjectedExtent is a bounding box projected into one UTM zone.
type ProjectedExtent struct {
	Zone          int
	FalseNorthing float64
	XMin          float64
	XMax          float64
	YMin          float64
	YMax          float64
}

// ProjectBoundingBox projects the four corners of a geographic bounding
// box into the UTM zone of its centroid and returns the min/max of the
// projected coordinates. Returns domain.ErrGeometry for extents outside
// the UTM domain.
func ProjectBoundingBox(b BoundingBox) (ProjectedExtent, error) {
	if !b.valid() {
		return ProjectedExtent{}, fmt.Errorf("%w: invalid extent lat [%v, %v] lon [%v, %v]",
			domain.ErrGeometry, b.LatMin, b.LatMax, b.LonMin, b.LonMax)
	}
	if b.LatMax > maxLat || b.LatMin < minLat {
		return ProjectedExtent{}, fmt.Errorf("%w: latitude span [%v, %v] outside UTM domain",
			domain.ErrGeometry, b.LatMin, b.LatMax)
	}

	clat, clon := b.Center()
	zone := ZoneFor(clon)
	south := clat < 0

	ext := ProjectedExtent{
		Zone: zone,
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	if south {
		ext.FalseNorthing = southFalseNorthing
	}

	corners := [4][2]float64{
		{b.LatMin, b.LonMin},
		{b.LatMin, b.LonMax},
		{b.LatMax, b.LonMin},
		{b.LatMax, b.LonMax},
	}
	for _, c := range corners {
		x, y := Forward(c[0], c[1], zone, south)
		ext.XMin = math.Min(ext.XMin, x)
		ext.XMax = math.Max(ext.XMax, x)
		ext.YMin = math.Min(ext.YMin, y)
		ext.YMax = math.Max(ext.YMax, y)
	}
	return ext, nil
}

// Forward converts a WGS84 coordinate to UTM easting/northing in the
// given zone. Standard transverse-Mercator series (Snyder 1987).
func Forward(lat, lon float64, zone int, south bool) (easting, northing float64) {
	e2 := flattening * (2 - flattening)
	ep2 := e2 / (1 - e2)

	phi := lat * math.Pi / 180
	lam := lon * math.Pi / 180
	lam0 := float64(zone*6-183) * math.Pi / 180

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	n := semiMajor / math.Sqrt(1-e2*sinPhi*sinPhi)
	t := tanPhi * tanPhi
	c := ep2 * cosPhi * cosPhi
	a := cosPhi * (lam - lam0)

	m := semiMajor * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*phi -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*phi) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*phi) -
		(35*e2*e2*e2/3072)*math.Sin(6*phi))

	easting = scale0*n*(a+(1-t+c)*a*a*a/6+
		(5-18*t+t*t+72*c-58*ep2)*a*a*a*a*a/120) + falseEasting

	northing = scale0 * (m + n*tanPhi*(a*a/2+
		(5-t+9*c+4*c*c)*a*a*a*a/24+
		(61-58*t+t*t+600*c-330*ep2)*a*a*a*a*a*a/720))
	if south {
		northing += southFalseNorthing
	}
	return easting, northing
}
