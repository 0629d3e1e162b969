package pma

import "github.com/goodcleanfun/packed-memory-array/internal/bitutil"

// Density bounds for the leaf and root levels of the window tree. Every
// other level's band is a linear interpolation between these.
const (
	densityHighRoot = 0.75
	densityHighLeaf = 1.0
	densityLowRoot  = 0.5
	densityLowLeaf  = 0.25

	// largestMaxSparsity is 1/densityLowLeaf, the sparsity factor applied
	// when computing post-resize geometry: at the loosest allowed density,
	// an element needs up to 4 slots to itself.
	largestMaxSparsity = 4

	// LargestEmptySegment is the initial segment size in slots, and the
	// exponent of the default initial capacity (capacity = 2^segmentSize
	// = 2^4 = 16).
	LargestEmptySegment = largestMaxSparsity

	// maxCapacity is 2^56, the hard ceiling on total slot count.
	maxCapacity = uint64(1) << 56
)

// geometry is the derived shape of the gapped array: segment size and
// count, tree height, and the per-level density band slope.
type geometry struct {
	segmentSize     int
	numSegments     int
	height          int
	densityHighStep float64 // (densityHighLeaf - densityHighRoot) / height
	densityLowStep  float64 // (densityLowRoot - densityLowLeaf) / height
}

// initGeometry computes the minimum initial geometry: a capacity of 16
// slots split into segments of size LargestEmptySegment (4 segments of 4).
func initGeometry() geometry {
	segmentSize := LargestEmptySegment
	capacity := 1 << uint(segmentSize) // 2^4 = 16
	numSegments := capacity / segmentSize
	return newGeometry(segmentSize, numSegments)
}

// newGeometry builds a geometry from segment size and count, deriving
// height and the per-level density band slopes.
func newGeometry(segmentSize, numSegments int) geometry {
	height := int(bitutil.FloorLog2(uint64(numSegments))) + 1
	g := geometry{
		segmentSize: segmentSize,
		numSegments: numSegments,
		height:      height,
	}
	g.densityHighStep = (densityHighLeaf - densityHighRoot) / float64(height)
	g.densityLowStep = (densityLowRoot - densityLowLeaf) / float64(height)
	return g
}

// capacity returns N = segmentSize * numSegments.
func (g geometry) capacity() int {
	return g.segmentSize * g.numSegments
}

// high returns the upper density bound at level d (0 = leaf, height-1 = root).
func (g geometry) high(d int) float64 {
	return densityHighLeaf - float64(d)*g.densityHighStep
}

// low returns the lower density bound at level d.
func (g geometry) low(d int) float64 {
	return densityLowLeaf + float64(d)*g.densityLowStep
}

// resizeGeometry computes the post-resize geometry for count occupied
// elements. It returns the new geometry, or ok=false if the new capacity
// would exceed maxCapacity.
func resizeGeometry(count int) (g geometry, ok bool) {
	if count == 0 {
		return initGeometry(), true
	}

	segSize := int(bitutil.CeilLog2(uint64(count)))
	if segSize == 0 {
		segSize = 1
	}
	numSegments := int(bitutil.NextPow2(bitutil.CeilDiv(uint64(count), uint64(segSize))))
	segSize = int(bitutil.CeilDiv(uint64(count), uint64(numSegments)))

	newCapacity := uint64(largestMaxSparsity) * uint64(segSize) * uint64(numSegments)
	if newCapacity > maxCapacity {
		return geometry{}, false
	}

	segmentSize := largestMaxSparsity * segSize
	return newGeometry(segmentSize, numSegments), true
}
