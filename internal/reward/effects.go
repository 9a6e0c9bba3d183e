package reward

import (
	"time"

	"gauntlet-service/internal/models"
)

const (
	effectDuration   = 5 * time.Minute
	blessingName     = "Feverish Focus"
	blessingModifier = 1.5
	curseName        = "Crippling Doubt"
	curseModifier    = 0.5
)

// GrantBlessing rewards a 5-answer streak with a 5-minute 1.5x XP effect.
func GrantBlessing(user *models.User, now time.Time) {
	user.ActiveEffect = &models.ActiveEffect{
		Type:      models.EffectBlessing,
		Name:      blessingName,
		Modifier:  blessingModifier,
		ExpiresAt: now.Add(effectDuration),
	}
}

// GrantCurse punishes a faltering run with a 5-minute 0.5x XP effect.
func GrantCurse(user *models.User, now time.Time) {
	user.ActiveEffect = &models.ActiveEffect{
		Type:      models.EffectCurse,
		Name:      curseName,
		Modifier:  curseModifier,
		ExpiresAt: now.Add(effectDuration),
	}
}
