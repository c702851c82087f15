package constants

// IsEmptyItem returns true if the fourth word clears the slot.
func IsEmptyItem(fourth uint32) bool {
	return fourth == EmptyItem
}

// IsDIY returns true if the fourth word is the recipe marker.
func IsDIY(fourth uint32) bool {
	return fourth == DIYMarker
}

// HasFlowerGene returns true if the third word has the flower gene bit set (0x00800000).
func HasFlowerGene(third uint32) bool {
	return third&FlowerGeneFlag != 0
}

// IsStackCount returns true if the third word encodes a stack count (0x00..0x63).
func IsStackCount(third uint32) bool {
	return third <= MaxStackEncoding
}
