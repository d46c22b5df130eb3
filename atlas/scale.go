package atlas

import "github.com/tsawler/atlasdown/model"

// Compensate divides a spatial value by the page scale, truncating toward
// zero. A scale of exactly 1 returns value unchanged. A non-positive scale is
// treated as 1.
func Compensate(value int, scale float64) int {
	if scale == 1.0 || !(scale > 0) {
		return value
	}
	return int(float64(value) / scale)
}

// CompensateBorder applies Compensate to each edge independently.
func CompensateBorder(b model.Border, scale float64) model.Border {
	var out model.Border
	for i, v := range b {
		out[i] = Compensate(v, scale)
	}
	return out
}
