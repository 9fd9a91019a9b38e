package matrix

import (
	"sort"
	"strings"
)

// maxMergeGap is the largest horizontal gap, in grid cells, bridged when
// coalescing regions on the same row.
const maxMergeGap = 2

// MergeAdjacentRegions coalesces single-character regions into contiguous
// runs. Two regions merge when they share a row and height and the gap
// between their horizontal edges is at most maxMergeGap cells; merging is
// transitive within a pass, so a chain of adjacent characters collapses into
// one region. Fragment text is concatenated left to right by column. The
// operation is idempotent: merging an already-merged list returns it
// unchanged.
func MergeAdjacentRegions(regions []TextRegion) []TextRegion {
	if len(regions) == 0 {
		return nil
	}

	type fragment struct {
		col  int
		text string
	}

	merged := make([]TextRegion, 0, len(regions))
	processed := make([]bool, len(regions))

	for i := range regions {
		if processed[i] {
			continue
		}

		current := regions[i]
		processed[i] = true
		fragments := []fragment{{col: current.BBox.X, text: current.Text}}

		for absorbed := true; absorbed; {
			absorbed = false

			for j := range regions {
				if processed[j] {
					continue
				}

				other := regions[j]
				if other.BBox.Y != current.BBox.Y || other.BBox.Height != current.BBox.Height {
					continue
				}

				currentEnd := current.BBox.X + current.BBox.Width
				otherEnd := other.BBox.X + other.BBox.Width
				if absInt(other.BBox.X-currentEnd) > maxMergeGap && absInt(current.BBox.X-otherEnd) > maxMergeGap {
					continue
				}

				newX := minInt(current.BBox.X, other.BBox.X)
				newEnd := maxInt(currentEnd, otherEnd)
				current.BBox.X = newX
				current.BBox.Width = newEnd - newX
				fragments = append(fragments, fragment{col: other.BBox.X, text: other.Text})
				processed[j] = true
				absorbed = true
			}
		}

		sort.SliceStable(fragments, func(a, b int) bool {
			return fragments[a].col < fragments[b].col
		})
		var sb strings.Builder
		for _, f := range fragments {
			sb.WriteString(f.text)
		}
		current.Text = sb.String()

		merged = append(merged, current)
	}

	return merged
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
