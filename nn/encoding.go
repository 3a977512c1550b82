// Package nn provides a compact neural evaluator: a fixed 768-feature
// board encoding fed to a small quantized MLP. Inference is pure Go.
package nn

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Feature layout: 12 piece planes of 64 squares each. Planes 0-5 are
// the side to move's pawns, knights, bishops, rooks, queens, king;
// planes 6-11 are the opponent's in the same order. Squares are seen
// from the side to move, so black positions are vertically mirrored.
const (
	NumPlanes = 12
	InputSize = NumPlanes * 64 // 768
)

func planeBitboards(bb *dragontoothmg.Bitboards) [6]uint64 {
	return [6]uint64{bb.Pawns, bb.Knights, bb.Bishops, bb.Rooks, bb.Queens, bb.Kings}
}

// ActiveFeatures returns the indices of the set features for a
// position, grouped by plane. At most 32 features are active.
func ActiveFeatures(b *dragontoothmg.Board) []uint16 {
	var own, opp *dragontoothmg.Bitboards
	flip := uint8(0)
	if b.Wtomove {
		own, opp = &b.White, &b.Black
	} else {
		own, opp = &b.Black, &b.White
		flip = 56
	}

	features := make([]uint16, 0, 32)
	appendPlanes := func(bbs [6]uint64, base uint16) {
		for p, pieces := range bbs {
			plane := base + uint16(p)*64
			for pieces != 0 {
				sq := uint8(bits.TrailingZeros64(pieces))
				pieces &= pieces - 1
				features = append(features, plane+uint16(sq^flip))
			}
		}
	}
	appendPlanes(planeBitboards(own), 0)
	appendPlanes(planeBitboards(opp), 6*64)
	return features
}

// Encode expands the position into the dense 768-float input vector.
// Inference uses ActiveFeatures directly; this form exists for
// exporting training data.
func Encode(b *dragontoothmg.Board) [InputSize]float32 {
	var v [InputSize]float32
	for _, f := range ActiveFeatures(b) {
		v[f] = 1
	}
	return v
}
