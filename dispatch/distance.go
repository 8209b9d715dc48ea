package dispatch

import (
	"math"
	"sort"
)

const earthRadiusKM = 6371.0088

// Candidate is a restaurant whose address already resolved to coordinates.
type Candidate struct {
	ID        uint
	Name      string
	Latitude  float64
	Longitude float64
}

type RankedCandidate struct {
	Candidate
	DistanceKM float64
}

// Rank orders candidates by great-circle distance from the order location,
// closest first. Ties break on restaurant id so repeated runs agree. The
// comparison uses full precision; rounding for display happens elsewhere.
func Rank(orderLat, orderLon float64, candidates []Candidate) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, RankedCandidate{
			Candidate:  candidate,
			DistanceKM: HaversineKM(orderLat, orderLon, candidate.Latitude, candidate.Longitude),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKM != ranked[j].DistanceKM {
			return ranked[i].DistanceKM < ranked[j].DistanceKM
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// HaversineKM is the great-circle distance between two points in kilometers.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
