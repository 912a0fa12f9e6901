package codegen

//go:generate go tool stringer -type=Region -linecomment -output=region_string.go

// Region names one slot in the canonical layout of generated kernel
// source. The declared order below is the serialization order and is
// part of the public contract: callers rely on it to structure
// vectorized loop nests with a fast main loop and a scalar residual
// loop, no matter in which order the regions were emitted to.
type Region int

const (
	RegionHeader                 Region = iota // header
	RegionExteriorSharedVarBegin               // exterior_shared_variable_begin
	RegionExteriorLoopBegin                    // exterior_loop_begin
	RegionInteriorSharedVarBegin               // interior_shared_variable_begin
	RegionInteriorLoopBegin                    // interior_loop_begin
	RegionBody                                 // body
	RegionInteriorLoopEnd                      // interior_loop_end
	RegionResidualBegin                        // residual_begin
	RegionResidualBody                         // residual_body
	RegionResidualEnd                          // residual_end
	RegionInteriorSharedVarEnd                 // interior_shared_variable_end
	RegionExteriorLoopEnd                      // exterior_loop_end
	RegionExteriorSharedVarEnd                 // exterior_shared_variable_end
	RegionTail                                 // tail

	// RegionTotal is the number of canonical regions.
	RegionTotal = int(iota)
)

// regionOrder is the explicit serialization order. Serialization walks
// this list, never map iteration order.
var regionOrder = [...]Region{
	RegionHeader,
	RegionExteriorSharedVarBegin,
	RegionExteriorLoopBegin,
	RegionInteriorSharedVarBegin,
	RegionInteriorLoopBegin,
	RegionBody,
	RegionInteriorLoopEnd,
	RegionResidualBegin,
	RegionResidualBody,
	RegionResidualEnd,
	RegionInteriorSharedVarEnd,
	RegionExteriorLoopEnd,
	RegionExteriorSharedVarEnd,
	RegionTail,
}

// CanonicalOrder returns the fixed serialization order of all regions.
func CanonicalOrder() []Region {
	order := make([]Region, len(regionOrder))
	copy(order, regionOrder[:])

	return order
}
