package inventory

import (
	"fmt"
	"regexp"
	"strconv"
)

// IDPrefix is the prefix of every product identifier.
const IDPrefix = "PROD-"

// FirstID is the identifier given to the first product of an empty inventory.
const FirstID = IDPrefix + "001"

var idPattern = regexp.MustCompile(`PROD-(\d+)`)

// FormatID formats a product sequence number, zero-padded to three digits.
func FormatID(n int) string { return fmt.Sprintf("%s%03d", IDPrefix, n) }

// idNumber extracts the sequence number of a product identifier.
// Identifiers that do not follow the PROD-NNN pattern count as 0.
func idNumber(id string) int {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// maxIDNumber returns the highest sequence number among products.
func maxIDNumber(products []Product) int {
	highest := 0
	for _, p := range products {
		if n := idNumber(p.ID); n > highest {
			highest = n
		}
	}
	return highest
}

// NextID derives the next product identifier from the inventory alone:
// the highest existing sequence number plus one.
func NextID(products []Product) string {
	if len(products) == 0 {
		return FirstID
	}
	return FormatID(maxIDNumber(products) + 1)
}

// nextSequence returns the next sequence number given the last issued one.
// Taking the maximum with the inventory keeps ids unique for data written
// before the counter existed, and the counter keeps deleted ids from being
// issued again.
func nextSequence(last int, products []Product) int {
	return max(last, maxIDNumber(products)) + 1
}
