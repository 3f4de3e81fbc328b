package equilibrium

import "math"

// Cycle detection tolerances: exact cycles must repeat payoffs to within
// payoffTolerance; oscillation allows each player's payoff to drift within
// oscillationRange when sampled at the same phase.
const (
	payoffTolerance  = 1e-6
	oscillationRange = 2.0
)

// CycleStats summarizes the detected cycle window per player.
type CycleStats struct {
	Length         int
	UniqueProfiles int
	Mean           [NumPlayers]float64
	Min            [NumPlayers]float64
	Max            [NumPlayers]float64
	Variance       [NumPlayers]float64
}

// detectCycle scans increasing period lengths for either an exact profile
// cycle or a payoff oscillation. It returns the window start and length.
func (g *Game) detectCycle() (int, int, bool) {
	n := len(g.history)
	if n < 2 {
		return 0, 0, false
	}
	for length := 2; length <= n/2; length++ {
		if g.isExactCycle(length) || g.isOscillating(length) {
			return n - length, length, true
		}
	}
	return 0, 0, false
}

// isExactCycle reports whether the last length entries repeat the preceding
// length entries: same profiles, payoffs within tolerance.
func (g *Game) isExactCycle(length int) bool {
	n := len(g.history)
	if n < length*2 {
		return false
	}
	for i := 0; i < length; i++ {
		curr := g.history[n-1-i]
		prev := g.history[n-1-i-length]
		if curr.profile != prev.profile {
			return false
		}
		for p := 0; p < NumPlayers; p++ {
			if math.Abs(curr.payoffs[p]-prev.payoffs[p]) > payoffTolerance {
				return false
			}
		}
	}
	return true
}

// isOscillating reports whether every player's payoff stays within a bounded
// range at each phase of the candidate period, over at least three
// repetitions.
func (g *Game) isOscillating(length int) bool {
	n := len(g.history)
	if n < length*3 {
		return false
	}
	window := g.history[n-length*3:]
	for p := 0; p < NumPlayers; p++ {
		for offset := 0; offset < length; offset++ {
			lo := math.Inf(1)
			hi := math.Inf(-1)
			for i := offset; i < len(window); i += length {
				v := window[i].payoffs[p]
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
			if hi-lo > oscillationRange {
				return false
			}
		}
	}
	return true
}

// analyzeCycle computes per-player payoff statistics over the cycle window.
func (g *Game) analyzeCycle(start, length int) *CycleStats {
	cycle := g.history[start : start+length]

	stats := &CycleStats{Length: length}
	seen := make(map[Profile]struct{}, length)
	for _, rec := range cycle {
		seen[rec.profile] = struct{}{}
	}
	stats.UniqueProfiles = len(seen)

	for p := 0; p < NumPlayers; p++ {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		sum := 0.0
		for _, rec := range cycle {
			v := rec.payoffs[p]
			sum += v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		mean := sum / float64(length)

		variance := 0.0
		for _, rec := range cycle {
			d := rec.payoffs[p] - mean
			variance += d * d
		}
		variance /= float64(length)

		stats.Mean[p] = mean
		stats.Min[p] = lo
		stats.Max[p] = hi
		stats.Variance[p] = variance
	}
	return stats
}

// bestProfileInCycle selects the cycle member maximizing an aggregate
// fairness score over its payoff vector:
// 0.4*mean + 0.4*min - 0.2*variance.
func (g *Game) bestProfileInCycle(start, length int) record {
	cycle := g.history[start : start+length]

	best := cycle[0]
	bestScore := math.Inf(-1)
	for _, rec := range cycle {
		if score := fairness(rec.payoffs); score > bestScore {
			bestScore = score
			best = rec
		}
	}
	return best
}

// fairness scores one payoff vector: population mean, minimum and variance
// across the four players.
func fairness(payoffs [NumPlayers]float64) float64 {
	sum := 0.0
	lo := math.Inf(1)
	for _, v := range payoffs {
		sum += v
		lo = math.Min(lo, v)
	}
	mean := sum / NumPlayers

	variance := 0.0
	for _, v := range payoffs {
		d := v - mean
		variance += d * d
	}
	variance /= NumPlayers

	return 0.4*mean + 0.4*lo - 0.2*variance
}
