package engine

import "github.com/dylhunn/dragontoothmg"

// Bound kinds for stored scores.
const (
	AlphaFlag = iota // upper bound: true score <= stored score
	BetaFlag         // lower bound: true score >= stored score
	ExactFlag
)

// Default table size in entries. Must be a power of two for mask indexing.
const DefaultTTSize = 1 << 22

// UnusableScore marks a probe that produced nothing.
const UnusableScore int32 = -32750

// TransTable is a fixed-size, open-addressed transposition table indexed by
// hash & mask. A store unconditionally overwrites the slot. The table is
// purely advisory: disabling it must not change any search score, only the
// number of nodes visited.
type TransTable struct {
	entries []TTEntry
	mask    uint64
}

type TTEntry struct {
	Hash  uint64
	Move  dragontoothmg.Move
	Score int32
	Depth int8
	Flag  int8
}

// NewTransTable allocates a table with the given entry count, which is
// rounded down to a power of two.
func NewTransTable(size int) *TransTable {
	if size < 2 {
		size = 2
	}
	n := 1
	for n*2 <= size {
		n *= 2
	}
	return &TransTable{
		entries: make([]TTEntry, n),
		mask:    uint64(n - 1),
	}
}

// Clear wipes every entry, for reuse across unrelated games.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// probe returns the slot for the hash and whether it matches. The hash
// comparison is the collision guard: a slot reused by another position is
// reported as a miss.
func (tt *TransTable) probe(hash uint64) (*TTEntry, bool) {
	entry := &tt.entries[hash&tt.mask]
	return entry, entry.Hash == hash
}

// useEntry decides whether a matching entry can answer the current node.
// Only entries searched at least as deep as requested are trusted; mate
// scores are normalized back from the storing ply.
func (tt *TransTable) useEntry(entry *TTEntry, depth int8, alpha, beta int32, ply int8) (bool, int32) {
	if entry.Depth < depth {
		return false, UnusableScore
	}
	score := entry.Score
	if score > Checkmate {
		score -= int32(ply)
	} else if score < -Checkmate {
		score += int32(ply)
	}
	switch entry.Flag {
	case ExactFlag:
		// The search is fail-hard, so an exact value re-used under a
		// narrower window must be clamped the way a re-search would be.
		return true, Clamp(score, alpha, beta)
	case AlphaFlag:
		if score <= alpha {
			return true, alpha
		}
	case BetaFlag:
		if score >= beta {
			return true, beta
		}
	}
	return false, UnusableScore
}

// storeEntry writes a result, overwriting whatever occupied the slot. Mate
// scores have the ply folded in so they stay distance-to-mate correct when
// read back at a different ply.
func (tt *TransTable) storeEntry(hash uint64, depth int8, ply int8, move dragontoothmg.Move, score int32, flag int8) {
	if score > Checkmate {
		score += int32(ply)
	} else if score < -Checkmate {
		score -= int32(ply)
	}
	tt.entries[hash&tt.mask] = TTEntry{
		Hash:  hash,
		Move:  move,
		Score: score,
		Depth: depth,
		Flag:  flag,
	}
}
