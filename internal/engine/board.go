package engine

// MaxTokensPerField is the saturation point of a field for one plague.
// Infecting a saturated field causes an outbreak instead of a fourth token.
const MaxTokensPerField = 3

// Field is one city instance within a running game: the mutable infection
// state layered over an immutable map slot.
type Field struct {
	Slot   int            `json:"slot"`
	Tokens map[Plague]int `json:"tokens"`
	HasLab bool           `json:"has_lab"`
}

// Board is the instantiated map: one Field per slot, addressed by index.
type Board struct {
	mapType MapType
	fields  []*Field
	index   map[string]int
}

// NewBoard instantiates a board for the given map type.
func NewBoard(mt MapType) *Board {
	b := &Board{
		mapType: mt,
		fields:  make([]*Field, len(mt.Slots)),
		index:   make(map[string]int, len(mt.Slots)),
	}
	for i, s := range mt.Slots {
		b.fields[i] = &Field{Slot: i, Tokens: make(map[Plague]int)}
		b.index[s.City.Name] = i
	}
	return b
}

// MapType returns the immutable topology the board was built from.
func (b *Board) MapType() MapType { return b.mapType }

// Size returns the number of fields.
func (b *Board) Size() int { return len(b.fields) }

// Field returns the field at index i.
func (b *Board) Field(i int) *Field { return b.fields[i] }

// FieldIndex resolves a city name to its field index.
func (b *Board) FieldIndex(city string) (int, error) {
	i, ok := b.index[city]
	if !ok {
		return 0, ErrFieldNotFound
	}
	return i, nil
}

// CityName returns the city name of the field at index i.
func (b *Board) CityName(i int) string {
	return b.mapType.Slots[i].City.Name
}

// Neighbors returns the field indices connected to field i.
func (b *Board) Neighbors(i int) []int {
	conns := b.mapType.Slots[i].Connections
	out := make([]int, 0, len(conns))
	for _, c := range conns {
		if j, ok := b.index[c]; ok {
			out = append(out, j)
		}
	}
	return out
}

// IsInfectable reports whether field i can take another token of p without
// outbreaking.
func (b *Board) IsInfectable(i int, p Plague) bool {
	return b.fields[i].Tokens[p] < MaxTokensPerField
}

// Infect places one token of p on field i, or resolves an outbreak cascade
// if the field is saturated. It returns the number of fields that outbroke
// (zero for a plain infection). ErrPoolExhausted means the token supply ran
// dry mid-infection; the caller treats that as a terminal loss.
func (b *Board) Infect(i int, p Plague, pool *TokenPool) (int, error) {
	f := b.fields[i]
	if f.Tokens[p] < MaxTokensPerField {
		if !pool.Take(p) {
			return 0, ErrPoolExhausted
		}
		f.Tokens[p]++
		return 0, nil
	}
	return b.outbreak(i, p, pool)
}

// InfectUpTo places up to n tokens of p on field i, capped at the per-field
// maximum. If the field would be pushed past the maximum, a single outbreak
// cascade resolves instead of the overflow. Used by epidemic resolution.
func (b *Board) InfectUpTo(i int, p Plague, n int, pool *TokenPool) (int, error) {
	f := b.fields[i]
	room := MaxTokensPerField - f.Tokens[p]
	if room >= n {
		for k := 0; k < n; k++ {
			if !pool.Take(p) {
				return 0, ErrPoolExhausted
			}
			f.Tokens[p]++
		}
		return 0, nil
	}
	for k := 0; k < room; k++ {
		if !pool.Take(p) {
			return 0, ErrPoolExhausted
		}
		f.Tokens[p]++
	}
	return b.outbreak(i, p, pool)
}

// outbreak resolves a cascade starting at origin. Every processed field
// counts as exactly one outbreak; saturated neighbors are enqueued for their
// own outbreak unless already enqueued in this cascade, which guarantees
// termination on cyclic maps.
func (b *Board) outbreak(origin int, p Plague, pool *TokenPool) (int, error) {
	queue := []int{origin}
	enqueued := map[int]bool{origin: true}
	outbreaks := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		outbreaks++

		for _, n := range b.Neighbors(cur) {
			if enqueued[n] {
				continue
			}
			nf := b.fields[n]
			if nf.Tokens[p] >= MaxTokensPerField {
				enqueued[n] = true
				queue = append(queue, n)
				continue
			}
			if !pool.Take(p) {
				return outbreaks, ErrPoolExhausted
			}
			nf.Tokens[p]++
		}
	}
	return outbreaks, nil
}

// Cure removes one token of p from field i back into the pool.
func (b *Board) Cure(i int, p Plague, pool *TokenPool) error {
	f := b.fields[i]
	if f.Tokens[p] <= 0 {
		return ErrNoTokens
	}
	f.Tokens[p]--
	pool.Put(p)
	return nil
}

// CureAll removes every token of p from field i back into the pool and
// returns how many were removed. Role abilities use this.
func (b *Board) CureAll(i int, p Plague, pool *TokenPool) int {
	f := b.fields[i]
	n := f.Tokens[p]
	for k := 0; k < n; k++ {
		pool.Put(p)
	}
	f.Tokens[p] = 0
	return n
}

// BuildLab places a research laboratory on field i. At most one per field.
func (b *Board) BuildLab(i int) error {
	if b.fields[i].HasLab {
		return ErrLabExists
	}
	b.fields[i].HasLab = true
	return nil
}

// RemoveLab clears the laboratory from field i. Event cards that relocate
// laboratories use this.
func (b *Board) RemoveLab(i int) {
	b.fields[i].HasLab = false
}

// LabCount returns the number of laboratories on the board.
func (b *Board) LabCount() int {
	n := 0
	for _, f := range b.fields {
		if f.HasLab {
			n++
		}
	}
	return n
}

// TokensOnBoard returns the total tokens of p across all fields.
func (b *Board) TokensOnBoard(p Plague) int {
	n := 0
	for _, f := range b.fields {
		n += f.Tokens[p]
	}
	return n
}
