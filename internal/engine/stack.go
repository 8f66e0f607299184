package engine

import "math/rand"

// Stack is a generic card stack. Index 0 is the top (next card drawn); the
// last element is the bottom (oldest insertion). Both decks and discard
// piles are Stacks; a stack belongs to exactly one game.
type Stack[T comparable] struct {
	cards []T
}

// NewStack creates a stack containing the given cards, top first.
func NewStack[T comparable](cards []T) *Stack[T] {
	s := &Stack[T]{cards: make([]T, len(cards))}
	copy(s.cards, cards)
	return s
}

// Push inserts a card on top.
func (s *Stack[T]) Push(c T) {
	s.cards = append([]T{c}, s.cards...)
}

// Pop removes and returns the top card.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.cards) == 0 {
		return zero, ErrEmptyStack
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c, nil
}

// RemoveFirst removes and returns the bottom card, the oldest one inserted.
// Infection mechanics draw epidemics from the bottom of the deck.
func (s *Stack[T]) RemoveFirst() (T, error) {
	var zero T
	if len(s.cards) == 0 {
		return zero, ErrEmptyStack
	}
	c := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return c, nil
}

// Remove takes a specific card out of the stack wherever it sits.
func (s *Stack[T]) Remove(c T) error {
	for i, x := range s.cards {
		if x == c {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return nil
		}
	}
	return ErrCardNotFound
}

// Len returns the number of cards in the stack.
func (s *Stack[T]) Len() int { return len(s.cards) }

// Peek returns the top n cards without removing them.
func (s *Stack[T]) Peek(n int) []T {
	if n > len(s.cards) {
		n = len(s.cards)
	}
	out := make([]T, n)
	copy(out, s.cards[:n])
	return out
}

// Shuffle randomizes the stack order.
func (s *Stack[T]) Shuffle() {
	rand.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Drain removes and returns all cards, top first.
func (s *Stack[T]) Drain() []T {
	out := s.cards
	s.cards = nil
	return out
}
