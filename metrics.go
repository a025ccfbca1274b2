package vec

import "unsafe"

// SizeInUse returns the number of bytes held by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * int(unsafe.Sizeof(*new(T)))
}

// Reserved returns the total reserved storage in bytes, live or not.
func (v *Vector[T]) Reserved() int {
	return v.data.Bytes()
}

// Utilization returns the ratio of live to reserved slots (0.0 to 1.0).
// Returns 0.0 for a vector with no reserved storage.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocs returns how many times the vector replaced its storage block
// since creation. Doubling growth keeps this logarithmic in the number
// of appends.
func (v *Vector[T]) Reallocs() int {
	return v.reallocs
}

// RelocatedByMove returns the number of elements transferred to a new
// block by move across all reallocations.
func (v *Vector[T]) RelocatedByMove() int {
	return v.relocMoves
}

// RelocatedByCopy returns the number of elements transferred to a new
// block by deep copy across all reallocations.
func (v *Vector[T]) RelocatedByCopy() int {
	return v.relocCopies
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:             v.size,
		Cap:             v.data.Cap(),
		SizeInUse:       v.SizeInUse(),
		Reserved:        v.Reserved(),
		Utilization:     v.Utilization(),
		Reallocs:        v.reallocs,
		RelocatedByMove: v.relocMoves,
		RelocatedByCopy: v.relocCopies,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len             int     // Live elements
	Cap             int     // Reserved slots
	SizeInUse       int     // Bytes held by live elements
	Reserved        int     // Bytes reserved in total
	Utilization     float64 // Ratio of live to reserved slots (0.0-1.0)
	Reallocs        int     // Storage reallocations since creation
	RelocatedByMove int     // Elements moved during reallocations
	RelocatedByCopy int     // Elements deep-copied during reallocations
}
