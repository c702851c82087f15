package imagename

import (
	"fmt"
	"strings"
)

// Asset paths, relative to the asset root.
const (
	ImageDir   = "img"
	ErrorImage = "ico/ERROR.png"
	DIYBadge   = "ico/DIY.png"
)

const (
	furniturePrefix = "Ftr"
	plantPrefix     = "Plt"
	flowerPrefix    = "Flw"
)

// VariantIndex is an optional color/pattern selector.
type VariantIndex struct {
	Index uint32
	Valid bool
}

// Variant returns a valid VariantIndex.
func Variant(i uint32) VariantIndex {
	return VariantIndex{Index: i, Valid: true}
}

// NoVariant is the absent selector.
var NoVariant = VariantIndex{}

// VariantFallbacks returns the indexes tried after the series/color path:
// the index itself, index>>5 when it is a non-zero multiple of 32, and index&7 when above 7.
func VariantFallbacks(index uint32) []uint32 {
	list := []uint32{index}
	if index >= 0x20 && index%0x20 == 0 {
		list = appendUnique(list, index>>5)
	}
	if index > 7 {
		list = appendUnique(list, index&0x7)
	}
	return list
}

func appendUnique(list []uint32, v uint32) []uint32 {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// NameForms returns the distinct names an asset may be stored under, most specific first:
// the name itself, its normalized form, the name without trailing digits, and for plants
// the flower-prefixed sibling with and without digits. Furniture names are used verbatim.
func NameForms(name string) []string {
	if name == "" {
		return nil
	}

	forms := []string{name}
	if !strings.HasPrefix(name, furniturePrefix) {
		forms = append(forms, Normalize(name), StripTrailingDigits(name))
		if strings.HasPrefix(name, plantPrefix) {
			flw := flowerPrefix + name[len(plantPrefix):]
			forms = append(forms, flw, StripTrailingDigits(flw))
		}
	}

	unique := make([]string, 0, len(forms))
	for _, f := range forms {
		if f == "" {
			continue
		}
		dup := false
		for _, u := range unique {
			if u == f {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, f)
		}
	}
	return unique
}

// Candidates returns image paths for name in the order they should be tried.
// The list always ends with ErrorImage, so it is never empty.
func Candidates(name string, v VariantIndex) []string {
	var list []string
	for _, form := range NameForms(name) {
		if v.Valid {
			series, color := v.Index/8, v.Index%8
			list = append(list, remakePath(form, series, color))
			for _, alt := range VariantFallbacks(v.Index) {
				list = append(list, remakePath(form, alt, 0), remakePath(form, 0, alt))
			}
		}
		list = append(list, ImageDir+"/"+form+".png", remakePath(form, 0, 0))
	}
	return append(list, ErrorImage)
}

func remakePath(name string, a, b uint32) string {
	return fmt.Sprintf("%s/%s_Remake_%d_%d.png", ImageDir, name, a, b)
}

// FirstExisting returns the first candidate for which exists reports true.
// Returns "", false when the list is exhausted.
func FirstExisting(candidates []string, exists func(path string) bool) (string, bool) {
	for _, c := range candidates {
		if exists(c) {
			return c, true
		}
	}
	return "", false
}
