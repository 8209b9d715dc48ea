package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibleRestaurants(t *testing.T) {
	// Restaurant 1 sells products 10 and 20, restaurant 2 sells only 10.
	index := map[uint][]uint{
		10: {1, 2},
		20: {1},
	}

	tests := []struct {
		name     string
		products []uint
		expected []uint
	}{
		{
			name:     "single_product_two_sellers",
			products: []uint{10},
			expected: []uint{1, 2},
		},
		{
			name:     "intersection_keeps_full_menu_restaurants_only",
			products: []uint{10, 20},
			expected: []uint{1},
		},
		{
			name:     "product_sold_nowhere_empties_result",
			products: []uint{10, 30},
			expected: []uint{},
		},
		{
			name:     "duplicate_products_count_once",
			products: []uint{10, 10, 20},
			expected: []uint{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eligible, err := EligibleRestaurants(index, tt.products)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, eligible)
		})
	}
}

func TestEligibleRestaurantsNoProducts(t *testing.T) {
	_, err := EligibleRestaurants(map[uint][]uint{}, nil)
	assert.ErrorIs(t, err, ErrNoProducts)
}

func TestEligibleRestaurantsDeterministicOrder(t *testing.T) {
	index := map[uint][]uint{10: {3, 1, 2}}
	for i := 0; i < 20; i++ {
		eligible, err := EligibleRestaurants(index, []uint{10})
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3}, eligible)
	}
}
