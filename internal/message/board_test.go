package message

import (
	"reflect"
	"strings"
	"testing"
)

// The water and desert hex values swap with their wire encodings, so the
// old clients' constants stay readable. A layout holding the water
// sentinel must survive the trip.
func TestBoardLayoutHexRemap(t *testing.T) {
	var hl, nl [boardHexes]int
	for i := range hl {
		hl[i] = 1 // clay
		nl[i] = 8
	}
	hl[0] = HexWater
	hl[7] = HexDesert
	nl[7] = 0 // desert has no number

	m := NewBoardLayout("ga", hl, nl, 0x67)

	if m.HexLayout[0] != sentHexWater {
		t.Errorf("wire hex[0] = %d, want water sentinel %d", m.HexLayout[0], sentHexWater)
	}
	if m.HexLayout[7] != sentHexDesert {
		t.Errorf("wire hex[7] = %d, want desert sentinel %d", m.HexLayout[7], sentHexDesert)
	}

	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode = %#v, want %#v", got, m)
	}
	bl := got.(*BoardLayout)
	if back := bl.BoardHexLayout(); back != hl {
		t.Errorf("BoardHexLayout = %v, want %v", back, hl)
	}
	if back := bl.BoardNumberLayout(); back != nl {
		t.Errorf("BoardNumberLayout = %v, want %v", back, nl)
	}
}

func TestBoardLayoutShortArray(t *testing.T) {
	// 37 hexes + 37 numbers + robber; one int missing
	var sb strings.Builder
	sb.WriteString("1014|ga")
	for i := 0; i < 74; i++ {
		sb.WriteString(",1")
	}
	if got := Decode(sb.String()); got != nil {
		t.Errorf("Decode(short layout) = %#v, want nil", got)
	}
}

func TestBoardLayout2RoundTrip(t *testing.T) {
	m := &BoardLayout2{
		Game:     "ga",
		Encoding: 3,
		IntParts: map[string][]int{
			"HL": {sentHexWater, 1, 2, 3},
			"PL": {0x45, 0x67, 0x89},
		},
		Scalars: map[string]string{"RH": "2305"},
	}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}

	bl := got.(*BoardLayout2)
	if hl := bl.IntArrayPart("HL"); hl[0] != HexWater {
		t.Errorf("IntArrayPart(HL)[0] = %d, want %d", hl[0], HexWater)
	}
	if pl := bl.IntArrayPart("PL"); !reflect.DeepEqual(pl, []int{0x45, 0x67, 0x89}) {
		t.Errorf("IntArrayPart(PL) = %v", pl)
	}
	if rh := bl.IntPart("RH"); rh != 2305 {
		t.Errorf("IntPart(RH) = %d, want 2305", rh)
	}
	if added := bl.AddedParts(); added != nil {
		t.Errorf("AddedParts = %v, want nil", added)
	}
}

// The keyed layout's HL part carries the same water/desert swap as the
// classic layout; the constructor applies it so callers pass game values.
func TestNewBoardLayout2HexRemap(t *testing.T) {
	hl := []int{HexWater, 1, 2, HexDesert}
	m := NewBoardLayout2("ga", 3, map[string][]int{
		"HL": hl,
		"PL": {0x45, 0x67, 0x89},
	}, map[string]string{"RH": "2305"})

	if got := m.IntParts["HL"]; got[0] != sentHexWater || got[3] != sentHexDesert {
		t.Errorf("wire HL = %v, want sentinels %d and %d", got, sentHexWater, sentHexDesert)
	}
	if hl[0] != HexWater {
		t.Error("constructor mutated the caller's HL slice")
	}
	if back := m.IntArrayPart("HL"); !reflect.DeepEqual(back, hl) {
		t.Errorf("IntArrayPart(HL) = %v, want %v", back, hl)
	}

	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}
}

func TestBoardLayout2AddedParts(t *testing.T) {
	m := &BoardLayout2{
		Game:     "ga",
		Encoding: 3,
		IntParts: map[string][]int{"CE": {0x22, 0x33}},
		Scalars:  map[string]string{},
	}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode = %#v, want %#v", got, m)
	}
	added := got.(*BoardLayout2).AddedParts()
	if !reflect.DeepEqual(added, map[string][]int{"CE": {0x22, 0x33}}) {
		t.Errorf("AddedParts = %v", added)
	}
}

func TestPotentialSettlementsSimpleForm(t *testing.T) {
	m := &PotentialSettlements{Game: "ga", PlayerNumber: 2,
		PSNodes: []int{0x27, 0x38, 0x49}}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}
	if v := m.MinimumVersion(); v != 1000 {
		t.Errorf("MinimumVersion = %d, want 1000", v)
	}
}

func TestPotentialSettlementsLandAreas(t *testing.T) {
	m := &PotentialSettlements{
		Game:             "ga",
		PlayerNumber:     -1,
		PSNodes:          []int{0x27, 0x38},
		StartingLandArea: 1,
		LandAreas:        [][]int{nil, {0x27, 0x38}, {0x45, 0x46}},
		LegalSeaEdges:    [][]int{{0xc07, -0xc0b}, {}},
	}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}
	if v := m.MinimumVersion(); v != 2000 {
		t.Errorf("MinimumVersion = %d, want 2000", v)
	}
}

// Starting land area 0 means the potential nodes apply board-wide; no
// area's entry duplicates them, and index 0 stays unused.
func TestPotentialSettlementsNoStartingArea(t *testing.T) {
	m := &PotentialSettlements{
		Game:             "ga",
		PlayerNumber:     -1,
		PSNodes:          []int{0x27, 0x38, 0x45, 0x46},
		StartingLandArea: 0,
		LandAreas:        [][]int{nil, {0x27, 0x38}, {0x45, 0x46}},
	}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}
	if got.(*PotentialSettlements).LandAreas[0] != nil {
		t.Error("LandAreas[0] populated, want nil")
	}
}

// An all-empty edge list for the last seat must come back "present but
// empty", not vanish. The encoder pads it with a 0 on the wire.
func TestPotentialSettlementsTrailingEmptyEdges(t *testing.T) {
	withEmpty := &PotentialSettlements{
		Game:             "ga",
		PlayerNumber:     -1,
		PSNodes:          []int{0x27},
		StartingLandArea: 1,
		LandAreas:        [][]int{nil, {0x27}},
		LegalSeaEdges:    [][]int{{}},
	}
	line := withEmpty.Command()
	if !strings.HasSuffix(line, ",SE,0") {
		t.Errorf("Command() = %q, want trailing SE pad", line)
	}
	got := Decode(line)
	if !reflect.DeepEqual(got, withEmpty) {
		t.Fatalf("Decode(%q) = %#v, want %#v", line, got, withEmpty)
	}

	absent := &PotentialSettlements{
		Game:             "ga",
		PlayerNumber:     -1,
		PSNodes:          []int{0x27},
		StartingLandArea: 1,
		LandAreas:        [][]int{nil, {0x27}},
	}
	got = Decode(absent.Command())
	if !reflect.DeepEqual(got, absent) {
		t.Fatalf("Decode(%q) = %#v, want %#v", absent.Command(), got, absent)
	}
	if got.(*PotentialSettlements).LegalSeaEdges != nil {
		t.Error("absent edge lists decoded as present")
	}
}

func TestPotentialSettlementsMissingArea(t *testing.T) {
	// declares 2 land areas but defines only the starting one
	line := "1057|ga,-1,39,NA,2,PAN,1"
	if got := Decode(line); got != nil {
		t.Errorf("Decode(%q) = %#v, want nil", line, got)
	}
}

func TestLegalEdgesRoundTrip(t *testing.T) {
	m := &LegalEdges{Game: "ga", PlayerNumber: 3, EdgesAreShips: true,
		Edges: []int{0xc07, 0xc0b, 0xd05}}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}

	empty := &LegalEdges{Game: "ga", PlayerNumber: 0, EdgesAreShips: false}
	got = Decode(empty.Command())
	if !reflect.DeepEqual(got, empty) {
		t.Fatalf("Decode(%q) = %#v, want %#v", empty.Command(), got, empty)
	}
}
