package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractDistrict pulls the district out of a comma separated address.
// Addresses come back from geocoding as "street, city, district, country";
// with three or more parts the district sits second to last. Shorter
// addresses degrade to whatever is available.
func ExtractDistrict(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}

	raw := strings.Split(address, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}

	if len(parts) >= 3 {
		return parts[len(parts)-2]
	}
	if len(parts) == 2 {
		return parts[1]
	}
	return parts[0]
}
