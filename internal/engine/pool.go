package engine

// TokenPool is the bounded supply of plague tokens. Infection takes tokens
// out, curing puts them back; the pool running dry is a loss condition
// checked by the Game, not here.
type TokenPool struct {
	available map[Plague]int
	initial   int
}

// NewTokenPool creates a pool with perPlague tokens for each plague.
func NewTokenPool(plagues []Plague, perPlague int) *TokenPool {
	tp := &TokenPool{
		available: make(map[Plague]int, len(plagues)),
		initial:   perPlague,
	}
	for _, p := range plagues {
		tp.available[p] = perPlague
	}
	return tp
}

// Take removes one token from the pool. Returns false when none remain.
func (tp *TokenPool) Take(p Plague) bool {
	if tp.available[p] <= 0 {
		return false
	}
	tp.available[p]--
	return true
}

// Put returns one token to the pool.
func (tp *TokenPool) Put(p Plague) {
	tp.available[p]++
}

// Available returns the remaining tokens for a plague.
func (tp *TokenPool) Available(p Plague) int {
	return tp.available[p]
}

// InitialPerPlague returns the per-plague supply size the pool started with.
func (tp *TokenPool) InitialPerPlague() int {
	return tp.initial
}
