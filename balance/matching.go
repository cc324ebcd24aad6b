package balance

import (
	"context"
	"math"
	"math/bits"
)

// ctxCheckInterval is how many DP subsets are processed between
// cancellation checks; matching is the pipeline's only super-linear
// stage, so this is where a timeout has to bite.
const ctxCheckInterval = 1 << 12

// maxRefinePasses bounds the greedy pair-swap refinement; each pass is
// O(k²) and the improvement is monotone, so a small bound suffices.
const maxRefinePasses = 32

// exactMatching solves minimum-weight perfect matching on the complete
// cost graph by dynamic programming over vertex subsets.
//
// f[mask] is the minimum cost of perfectly matching the vertices in
// mask. For each even-cardinality mask the lowest set bit i is matched
// against every other member j, reducing to f[mask \ {i,j}]. O(k·2^k)
// time, O(2^k) space, provably optimal.
func exactMatching(ctx context.Context, cost [][]float64) ([][2]int, float64, error) {
	k := len(cost)
	if k == 0 {
		return nil, 0, nil
	}

	full := 1<<uint(k) - 1
	f := make([]float64, full+1)
	choice := make([]int16, full+1)
	for m := 1; m <= full; m++ {
		f[m] = math.Inf(1)
		choice[m] = -1
	}

	// 1) Fill the table over even-cardinality subsets in increasing order.
	for mask := 1; mask <= full; mask++ {
		if bits.OnesCount(uint(mask))&1 == 1 {
			continue
		}
		if mask&(ctxCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}

		i := bits.TrailingZeros(uint(mask))
		rest := mask &^ (1 << uint(i))
		for m := rest; m != 0; m &= m - 1 {
			j := bits.TrailingZeros(uint(m))
			if math.IsInf(cost[i][j], 1) {
				continue
			}
			prev := rest &^ (1 << uint(j))
			if cand := f[prev] + cost[i][j]; cand < f[mask] {
				f[mask] = cand
				choice[mask] = int16(j)
			}
		}
	}

	if math.IsInf(f[full], 1) {
		return nil, 0, ErrMatchingInfeasible
	}

	// 2) Reconstruct the pairing by replaying the recorded choices.
	pairs := make([][2]int, 0, k/2)
	for mask := full; mask != 0; {
		i := bits.TrailingZeros(uint(mask))
		j := int(choice[mask])
		pairs = append(pairs, [2]int{i, j})
		mask &^= (1 << uint(i)) | (1 << uint(j))
	}

	return pairs, f[full], nil
}

// greedyMatching pairs each remaining vertex (lowest index first) with
// its cheapest partner, then refines the pairing with pair-swap passes:
// for every two pairs (a,b) and (c,d), the cheaper of (a,c)+(b,d) and
// (a,d)+(b,c) replaces them when it improves the total. Deterministic,
// locally optimal, no global guarantee. O(k²) per pass.
func greedyMatching(ctx context.Context, cost [][]float64) ([][2]int, float64, error) {
	k := len(cost)
	if k == 0 {
		return nil, 0, nil
	}

	// 1) Nearest-partner construction: take the lowest
	//    remaining index and bind it to its cheapest partner.
	remaining := make([]int, k)
	for i := range remaining {
		remaining[i] = i
	}
	pairs := make([][2]int, 0, k/2)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]
		bestIdx, bestCost := -1, math.Inf(1)
		for idx, v := range remaining {
			if d := cost[u][v]; d < bestCost {
				bestIdx, bestCost = idx, d
			}
		}
		if bestIdx < 0 {
			return nil, 0, ErrMatchingInfeasible
		}
		pairs = append(pairs, [2]int{u, remaining[bestIdx]})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	// 2) Pair-swap refinement until a pass makes no improvement.
	for pass := 0; pass < maxRefinePasses; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		improved := false
		for p := 0; p < len(pairs); p++ {
			for q := p + 1; q < len(pairs); q++ {
				a, b := pairs[p][0], pairs[p][1]
				c, d := pairs[q][0], pairs[q][1]
				current := cost[a][b] + cost[c][d]
				if alt := cost[a][c] + cost[b][d]; alt < current {
					pairs[p] = [2]int{a, c}
					pairs[q] = [2]int{b, d}
					current = alt
					improved = true
					b, c = c, b
				}
				if alt := cost[a][d] + cost[b][c]; alt < current {
					pairs[p] = [2]int{a, d}
					pairs[q] = [2]int{b, c}
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	total := 0.0
	for _, p := range pairs {
		total += cost[p[0]][p[1]]
	}

	return pairs, total, nil
}
