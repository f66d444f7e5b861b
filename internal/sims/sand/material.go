package sand

import (
	"fmt"
	"strings"
)

// Material tags what a cell currently holds. The zero value is Empty.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Stone
	Fire

	numMaterials
)

// MaxMaterials bounds the number of distinct materials a RuleTable can hold.
const MaxMaterials = 32

var materialNames = [numMaterials]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Stone: "stone",
	Fire:  "fire",
}

// Materials lists the built-in materials in tool order.
func Materials() []Material {
	return []Material{Empty, Sand, Water, Stone, Fire}
}

// String returns the lower-case material name.
func (m Material) String() string {
	if m < numMaterials {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// Valid reports whether m is a built-in material.
func (m Material) Valid() bool { return m < numMaterials }

// ParseMaterial resolves a material by name. "eraser" is accepted for Empty.
func ParseMaterial(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "eraser" {
		return Empty, nil
	}
	for i, n := range materialNames {
		if n == key {
			return Material(i), nil
		}
	}
	return Empty, fmt.Errorf("%w %q", ErrUnknownMaterial, name)
}

// MaterialSet is a bitmask of materials, used for the cells a rule may
// displace.
type MaterialSet uint32

// SetOf builds a set from the given materials.
func SetOf(ms ...Material) MaterialSet {
	var s MaterialSet
	for _, m := range ms {
		if m < MaxMaterials {
			s |= 1 << m
		}
	}
	return s
}

// Has reports whether m is in the set.
func (s MaterialSet) Has(m Material) bool {
	return m < MaxMaterials && s&(1<<m) != 0
}
