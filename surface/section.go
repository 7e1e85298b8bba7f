// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// ActiveOffset is how far above a section's top the section already
// counts as active.
const ActiveOffset = 200

// Offset is the vertical position of a section on the page.
type Offset struct {
	ID  string  `json:"id"`
	Top float64 `json:"top"`
}

// ActiveSection returns the id of the last section whose top, less
// ActiveOffset, is at or above scrollY. It returns "" when no section
// qualifies.
func ActiveSection(offsets []Offset, scrollY float64) string {
	current := ""
	for _, o := range offsets {
		if scrollY >= o.Top-ActiveOffset {
			current = o.ID
		}
	}
	return current
}
