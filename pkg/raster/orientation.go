package raster

import "fmt"

// Orientation is an element of the dihedral group of the square.
// It means: mirror horizontally first if Flipped, then rotate clockwise
// Rotations times. The zero value is the identity.
type Orientation struct {
	Rotations int  `json:"rotations"`
	Flipped   bool `json:"flipped"`
}

// Identity is the orientation that leaves a block unchanged.
var Identity = Orientation{}

// Orientations returns all eight orientations in search order: the four
// rotations of the unmirrored block, then the four rotations of the
// mirrored block.
func Orientations() []Orientation {
	out := make([]Orientation, 0, 8)
	for _, flipped := range []bool{false, true} {
		for r := 0; r < 4; r++ {
			out = append(out, Orientation{Rotations: r, Flipped: flipped})
		}
	}
	return out
}

// AfterRotate returns the orientation reached by rotating a block in
// orientation o once more clockwise.
func (o Orientation) AfterRotate() Orientation {
	return Orientation{Rotations: (o.normalized().Rotations + 1) % 4, Flipped: o.Flipped}
}

// AfterFlip returns the orientation reached by mirroring a block in
// orientation o. Mirroring reverses the sense of every earlier rotation.
func (o Orientation) AfterFlip() Orientation {
	return Orientation{Rotations: (4 - o.normalized().Rotations) % 4, Flipped: !o.Flipped}
}

// Degrees returns the clockwise rotation in degrees.
func (o Orientation) Degrees() int { return o.normalized().Rotations * 90 }

// String returns a compact form such as "rot90" or "rot270+flip".
func (o Orientation) String() string {
	s := fmt.Sprintf("rot%d", o.Degrees())
	if o.Flipped {
		s += "+flip"
	}
	return s
}

func (o Orientation) normalized() Orientation {
	o.Rotations = ((o.Rotations % 4) + 4) % 4
	return o
}
