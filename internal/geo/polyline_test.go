package geo

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDecodePolylineKnownSequence(t *testing.T) {
	got, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	if err != nil {
		t.Fatalf("DecodePolyline returned error: %v", err)
	}

	want := []LatLng{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i].Lat, want[i].Lat) || !almostEqual(got[i].Lng, want[i].Lng) {
			t.Fatalf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodePolylineDeterministic(t *testing.T) {
	const encoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

	first, err := DecodePolyline(encoded)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := DecodePolyline(encoded)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("decode lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("decode not deterministic at point %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDecodePolylineEmpty(t *testing.T) {
	got, err := DecodePolyline("")
	if err != nil {
		t.Fatalf("empty string should decode cleanly, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty string should yield an empty sequence, got %d points", len(got))
	}
}

func TestDecodePolylineMalformed(t *testing.T) {
	// A dangling continuation bit has no terminating group.
	if _, err := DecodePolyline("_p~iF~ps|U_"); err == nil {
		t.Fatalf("expected error for truncated polyline")
	}
	if _, err := DecodePolyline("\x1f"); err == nil {
		t.Fatalf("expected error for out-of-range character")
	}
}
