package actions

import (
	"fmt"

	"contagion/internal/engine"
)

// SendCard gives the current city's card to another player standing on the
// same field. The receiver must approve before the trade executes; its
// counterpart, ReceiveCard, is the same trade initiated from the other side.
type SendCard struct {
	params engine.ActionParams
	approval
}

func NewSendCard(p engine.ActionParams) *SendCard {
	return &SendCard{params: p, approval: approval{approver: p.TargetPlayer}}
}

func (a *SendCard) Kind() engine.ActionKind            { return engine.ActionSendCard }
func (a *SendCard) PlayerID() string                   { return a.params.Player }
func (a *SendCard) CounterpartKind() engine.ActionKind { return engine.ActionReceiveCard }

func (a *SendCard) RequestText(g *engine.Game) string {
	sender := g.GetPlayer(a.params.Player)
	if sender == nil {
		return ""
	}
	return fmt.Sprintf("%s offers you the %s card", sender.Name, g.Board.CityName(sender.Field))
}

func (a *SendCard) IsAvailable(g *engine.Game) bool {
	sender := g.GetPlayer(a.params.Player)
	if sender == nil {
		return false
	}
	if _, held := sender.CityCardFor(g.Board.CityName(sender.Field)); !held {
		return false
	}
	for _, p := range g.Players {
		if p.ID != sender.ID && p.Field == sender.Field {
			return true
		}
	}
	return false
}

func (a *SendCard) IsExecutable(g *engine.Game) bool {
	if !a.Approved() {
		return false
	}
	sender := g.GetPlayer(a.params.Player)
	receiver := g.GetPlayer(a.params.TargetPlayer)
	if sender == nil || receiver == nil || sender.ID == receiver.ID {
		return false
	}
	if sender.Field != receiver.Field {
		return false
	}
	_, held := sender.CityCardFor(g.Board.CityName(sender.Field))
	return held
}

func (a *SendCard) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	sender := g.GetPlayer(a.params.Player)
	receiver := g.GetPlayer(a.params.TargetPlayer)
	card, _ := sender.CityCardFor(g.Board.CityName(sender.Field))
	sender.RemoveFromHand(card)
	receiver.Hand = append(receiver.Hand, card)
	return []engine.Event{{Type: engine.EventCardTransferred, Player: sender.ID, Data: map[string]interface{}{
		"card": card.City,
		"from": sender.Name,
		"to":   receiver.Name,
	}}}, nil
}

// ReceiveCard takes the card for the initiator's current city out of
// another player's hand, with that player's approval. Counterpart of
// SendCard.
type ReceiveCard struct {
	params engine.ActionParams
	approval
}

func NewReceiveCard(p engine.ActionParams) *ReceiveCard {
	return &ReceiveCard{params: p, approval: approval{approver: p.TargetPlayer}}
}

func (a *ReceiveCard) Kind() engine.ActionKind            { return engine.ActionReceiveCard }
func (a *ReceiveCard) PlayerID() string                   { return a.params.Player }
func (a *ReceiveCard) CounterpartKind() engine.ActionKind { return engine.ActionSendCard }

func (a *ReceiveCard) RequestText(g *engine.Game) string {
	receiver := g.GetPlayer(a.params.Player)
	if receiver == nil {
		return ""
	}
	return fmt.Sprintf("%s asks you for the %s card", receiver.Name, g.Board.CityName(receiver.Field))
}

func (a *ReceiveCard) IsAvailable(g *engine.Game) bool {
	receiver := g.GetPlayer(a.params.Player)
	if receiver == nil {
		return false
	}
	city := g.Board.CityName(receiver.Field)
	for _, p := range g.Players {
		if p.ID == receiver.ID || p.Field != receiver.Field {
			continue
		}
		if _, held := p.CityCardFor(city); held {
			return true
		}
	}
	return false
}

func (a *ReceiveCard) IsExecutable(g *engine.Game) bool {
	if !a.Approved() {
		return false
	}
	receiver := g.GetPlayer(a.params.Player)
	giver := g.GetPlayer(a.params.TargetPlayer)
	if receiver == nil || giver == nil || receiver.ID == giver.ID {
		return false
	}
	if receiver.Field != giver.Field {
		return false
	}
	_, held := giver.CityCardFor(g.Board.CityName(receiver.Field))
	return held
}

func (a *ReceiveCard) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	receiver := g.GetPlayer(a.params.Player)
	giver := g.GetPlayer(a.params.TargetPlayer)
	card, _ := giver.CityCardFor(g.Board.CityName(receiver.Field))
	giver.RemoveFromHand(card)
	receiver.Hand = append(receiver.Hand, card)
	return []engine.Event{{Type: engine.EventCardTransferred, Player: receiver.ID, Data: map[string]interface{}{
		"card": card.City,
		"from": giver.Name,
		"to":   receiver.Name,
	}}}, nil
}
