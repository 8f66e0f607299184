// Package events implements the event cards: manual triggerables fired at
// their holder's discretion, mutating the game directly and reporting a
// stable effect summary for the notification layer.
package events

import "contagion/internal/engine"

// Register binds every event kind to its triggerable constructor.
func Register(r *engine.EventRegistry) {
	r.Register(engine.EventAirlift, func(holder string, card engine.PlayerCard, p engine.TriggerParams) engine.Triggerable {
		return &Airlift{holder: holder, params: p}
	})
	r.Register(engine.EventQuietNight, func(holder string, card engine.PlayerCard, p engine.TriggerParams) engine.Triggerable {
		return &QuietNight{holder: holder}
	})
	r.Register(engine.EventSubsidy, func(holder string, card engine.PlayerCard, p engine.TriggerParams) engine.Triggerable {
		return &Subsidy{holder: holder, params: p}
	})
	r.Register(engine.EventResilientStrain, func(holder string, card engine.PlayerCard, p engine.TriggerParams) engine.Triggerable {
		return &ResilientStrain{holder: holder, params: p}
	})
	r.Register(engine.EventForecast, func(holder string, card engine.PlayerCard, p engine.TriggerParams) engine.Triggerable {
		return &Forecast{holder: holder, params: p}
	})
}
