package geo

import (
	"fmt"
)

// LatLng is a bare coordinate pair, distinct from models.Location which
// additionally carries a resolved address.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DecodePolyline expands an encoded route geometry string into its
// coordinate sequence. This is the standard polyline algorithm: each
// coordinate is a signed delta from the previous one, zigzag encoded in
// 5-bit groups offset by 63, at 1e-5 degree precision. Decoding is
// deterministic; an empty string yields an empty sequence.
func DecodePolyline(encoded string) ([]LatLng, error) {
	if encoded == "" {
		return []LatLng{}, nil
	}

	points := make([]LatLng, 0, len(encoded)/4)
	var lat, lng int64

	for i := 0; i < len(encoded); {
		dlat, n, err := decodeDelta(encoded[i:])
		if err != nil {
			return nil, fmt.Errorf("polyline offset %d: %w", i, err)
		}
		i += n

		if i >= len(encoded) {
			return nil, fmt.Errorf("polyline offset %d: missing longitude delta", i)
		}
		dlng, n, err := decodeDelta(encoded[i:])
		if err != nil {
			return nil, fmt.Errorf("polyline offset %d: %w", i, err)
		}
		i += n

		lat += dlat
		lng += dlng
		points = append(points, LatLng{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}

	return points, nil
}

// decodeDelta reads one zigzag encoded value and reports how many bytes
// it consumed.
func decodeDelta(s string) (int64, int, error) {
	var result int64
	var shift uint

	for i := 0; i < len(s); i++ {
		b := int64(s[i]) - 63
		if b < 0 {
			return 0, 0, fmt.Errorf("invalid character %q", s[i])
		}
		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			if result&1 != 0 {
				return ^(result >> 1), i + 1, nil
			}
			return result >> 1, i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("truncated value")
}
