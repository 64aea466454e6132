package message

import (
	"strconv"
	"strings"
)

// Resource type constants, also used as element types in PlayerElement.
const (
	ResClay    = 1
	ResOre     = 2
	ResSheep   = 3
	ResWheat   = 4
	ResWood    = 5
	ResUnknown = 6

	ResMin = ResClay
	ResMax = ResUnknown
)

var resNames = [...]string{"clay", "ore", "sheep", "wheat", "wood", "unknown"}

// ResourceSet holds an amount of each resource type. The zero value is an
// empty set.
type ResourceSet struct {
	amounts [6]int
}

// NewResourceSet builds a set from the five known amounts.
func NewResourceSet(clay, ore, sheep, wheat, wood int) ResourceSet {
	return ResourceSet{amounts: [6]int{clay, ore, sheep, wheat, wood, 0}}
}

// NewResourceSetWithUnknown builds a set including an unknown amount.
func NewResourceSetWithUnknown(clay, ore, sheep, wheat, wood, unknown int) ResourceSet {
	return ResourceSet{amounts: [6]int{clay, ore, sheep, wheat, wood, unknown}}
}

// Amount returns the amount of resource type rtype (ResClay..ResUnknown).
func (rs ResourceSet) Amount(rtype int) int {
	if rtype < ResMin || rtype > ResMax {
		return 0
	}
	return rs.amounts[rtype-1]
}

// SetAmount sets the amount of resource type rtype.
func (rs *ResourceSet) SetAmount(rtype, amount int) {
	if rtype >= ResMin && rtype <= ResMax {
		rs.amounts[rtype-1] = amount
	}
}

// Total returns the sum of all amounts, unknown included.
func (rs ResourceSet) Total() int {
	t := 0
	for _, a := range rs.amounts {
		t += a
	}
	return t
}

// String renders the set the way renderings embed it:
// "clay=0|ore=1|sheep=0|wheat=0|wood=2|unknown=0".
func (rs ResourceSet) String() string {
	var sb strings.Builder
	for i, name := range resNames {
		if i > 0 {
			sb.WriteByte(sepChar)
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(rs.amounts[i]))
	}
	return sb.String()
}

// known writes the five known amounts onto a command line.
func (rs ResourceSet) known(b *cmdBuilder) {
	for i := 0; i < 5; i++ {
		b.int(rs.amounts[i])
	}
}

// all writes all six amounts onto a command line.
func (rs ResourceSet) all(b *cmdBuilder) {
	for i := 0; i < 6; i++ {
		b.int(rs.amounts[i])
	}
}

// scanResourceSet reads clay..wood, plus unknown when withUnknown is set.
func scanResourceSet(fs *fieldScanner, withUnknown bool) ResourceSet {
	var rs ResourceSet
	n := 5
	if withUnknown {
		n = 6
	}
	for i := 0; i < n; i++ {
		rs.amounts[i] = fs.nextInt()
	}
	return rs
}
