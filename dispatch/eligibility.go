package dispatch

import (
	"errors"
	"sort"
)

// ErrNoProducts means the caller passed an order with no line items. Order
// intake rejects those, so hitting this is a programmer error upstream.
var ErrNoProducts = errors.New("no products to match restaurants against")

// EligibleRestaurants intersects the per-product restaurant sets: a restaurant
// qualifies only if it has an available menu item for every product in the
// order. restaurantsByProduct maps product id to the ids of restaurants
// currently selling it; a product missing from the map sells nowhere and
// empties the whole result. The returned ids are sorted for determinism.
func EligibleRestaurants(restaurantsByProduct map[uint][]uint, productIDs []uint) ([]uint, error) {
	if len(productIDs) == 0 {
		return nil, ErrNoProducts
	}

	counts := make(map[uint]int)
	distinct := 0
	seenProducts := make(map[uint]bool, len(productIDs))
	for _, productID := range productIDs {
		if seenProducts[productID] {
			continue
		}
		seenProducts[productID] = true
		distinct++

		seenRestaurants := make(map[uint]bool)
		for _, restaurantID := range restaurantsByProduct[productID] {
			if seenRestaurants[restaurantID] {
				continue
			}
			seenRestaurants[restaurantID] = true
			counts[restaurantID]++
		}
	}

	eligible := make([]uint, 0, len(counts))
	for restaurantID, count := range counts {
		if count == distinct {
			eligible = append(eligible, restaurantID)
		}
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i] < eligible[j] })
	return eligible, nil
}
