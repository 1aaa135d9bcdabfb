package maps

import (
	"testing"

	"keepposted/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"
)

func TestToPlacemark(t *testing.T) {
	tests := []struct {
		name       string
		components []maps.AddressComponent
		want       entity.Placemark
	}{
		{
			name: "postal town when no locality",
			components: []maps.AddressComponent{
				{LongName: "Baker Street", Types: []string{"route"}},
				{LongName: "London", Types: []string{"postal_town"}},
				{LongName: "England", ShortName: "England", Types: []string{"administrative_area_level_1"}},
			},
			want: entity.Placemark{Street: "Baker Street", City: "London", State: "England"},
		},
		{
			name: "locality wins over sublocality",
			components: []maps.AddressComponent{
				{LongName: "Brooklyn", Types: []string{"sublocality", "political"}},
				{LongName: "New York", Types: []string{"locality", "political"}},
				{LongName: "New York", ShortName: "NY", Types: []string{"administrative_area_level_1"}},
			},
			want: entity.Placemark{City: "New York", State: "NY"},
		},
		{
			name: "city state only",
			components: []maps.AddressComponent{
				{LongName: "Monaco", Types: []string{"locality"}},
			},
			want: entity.Placemark{City: "Monaco"},
		},
		{
			name: "nothing usable",
			want: entity.Placemark{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toPlacemark(tt.components))
		})
	}
}

func TestToGeolocationRequest_NilSignalsConsidersIP(t *testing.T) {
	req := toGeolocationRequest(nil)
	assert.True(t, req.ConsiderIP)
	assert.Empty(t, req.WiFiAccessPoints)
}
