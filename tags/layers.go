package tags

import (
	"math/bits"
	"strconv"
)

// LayerCount is the number of collision layer bits carried by a bitmask.
const LayerCount = 32

var layerTags = func() [LayerCount]string {
	var out [LayerCount]string
	for i := range out {
		out[i] = ResolvLayerPrefix + strconv.Itoa(i+1)
	}
	return out
}()

// LayerTag returns the resolv tag for a 1-based layer number.
func LayerTag(layer int) string {
	return layerTags[layer-1]
}

// LayerTags returns the resolv tags for every bit set in mask, lowest first.
func LayerTags(mask uint32) []string {
	out := make([]string, 0, bits.OnesCount32(mask))
	for mask != 0 {
		i := bits.TrailingZeros32(mask)
		out = append(out, layerTags[i])
		mask &^= 1 << i
	}
	return out
}

// AllLayerTags returns the tag of every layer.
func AllLayerTags() []string {
	return layerTags[:]
}
