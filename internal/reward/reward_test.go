package reward

import (
	"testing"
	"time"

	"gauntlet-service/internal/models"
)

func TestRankForLevel(t *testing.T) {
	testCases := []struct {
		level int
		want  string
	}{
		{1, "Novice"},
		{3, "Novice"},
		{5, "Code Imp"},
		{7, "Code Imp"},
		{10, "Byte Fiend"},
		{19, "Byte Fiend"},
		{20, "Code Devil"},
		{42, "Code Devil"},
	}
	for _, tc := range testCases {
		if got := RankForLevel(tc.level); got != tc.want {
			t.Errorf("RankForLevel(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestXPForAnswer(t *testing.T) {
	now := time.Now()
	blessing := &models.ActiveEffect{Type: models.EffectBlessing, Modifier: 1.5, ExpiresAt: now.Add(time.Minute)}
	curse := &models.ActiveEffect{Type: models.EffectCurse, Modifier: 0.5, ExpiresAt: now.Add(time.Minute)}
	expired := &models.ActiveEffect{Type: models.EffectBlessing, Modifier: 1.5, ExpiresAt: now.Add(-time.Minute)}

	testCases := []struct {
		name       string
		difficulty models.Difficulty
		effect     *models.ActiveEffect
		want       int
	}{
		{"easy base", models.DifficultyEasy, nil, 10},
		{"medium base", models.DifficultyMedium, nil, 25},
		{"hard base", models.DifficultyHard, nil, 50},
		{"medium with blessing rounds to 38", models.DifficultyMedium, blessing, 38},
		{"easy with curse", models.DifficultyEasy, curse, 5},
		{"hard with curse", models.DifficultyHard, curse, 25},
		{"expired effect is ignored", models.DifficultyMedium, expired, 25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := XPForAnswer(tc.difficulty, tc.effect, now); got != tc.want {
				t.Errorf("XPForAnswer = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAwardLevelsUpOnce(t *testing.T) {
	now := time.Now()
	user := &models.User{Level: 1, XP: 140, XPToNextLevel: 150, Rank: "Novice"}

	xp, leveled := Award(user, models.DifficultyEasy, now)
	if xp != 10 {
		t.Fatalf("xp = %d, want 10", xp)
	}
	if !leveled {
		t.Fatal("expected a level-up")
	}
	if user.Level != 2 {
		t.Errorf("level = %d, want 2", user.Level)
	}
	if user.XP != 0 {
		t.Errorf("xp after rollover = %d, want 0", user.XP)
	}
	if user.XPToNextLevel != 300 {
		t.Errorf("xpToNextLevel = %d, want 300", user.XPToNextLevel)
	}
}

func TestAwardOverflowRollsIntoNextLevel(t *testing.T) {
	now := time.Now()
	user := &models.User{Level: 1, XP: 140, XPToNextLevel: 150, Rank: "Novice"}

	xp, leveled := Award(user, models.DifficultyMedium, now)
	if xp != 25 {
		t.Fatalf("xp = %d, want 25", xp)
	}
	if !leveled {
		t.Fatal("expected a level-up")
	}
	if user.XP != 15 {
		t.Errorf("xp after rollover = %d, want 15", user.XP)
	}
	if user.XPToNextLevel != 300 {
		t.Errorf("xpToNextLevel = %d, want 300", user.XPToNextLevel)
	}
}

func TestAwardClearsExpiredEffectBeforeScoring(t *testing.T) {
	now := time.Now()
	user := &models.User{
		Level: 1, XP: 0, XPToNextLevel: 150,
		ActiveEffect: &models.ActiveEffect{Type: models.EffectBlessing, Modifier: 1.5, ExpiresAt: now.Add(-time.Second)},
	}

	xp, _ := Award(user, models.DifficultyMedium, now)
	if xp != 25 {
		t.Errorf("expired blessing must not modify XP, got %d", xp)
	}
	if user.ActiveEffect != nil {
		t.Error("expired effect must be lazily cleared")
	}
}

func TestAwardAppliesLiveModifier(t *testing.T) {
	now := time.Now()
	user := &models.User{Level: 1, XP: 0, XPToNextLevel: 150}
	GrantBlessing(user, now)

	xp, _ := Award(user, models.DifficultyMedium, now)
	if xp != 38 {
		t.Errorf("blessed medium answer = %d XP, want 38", xp)
	}
	if user.TotalXP != 38 {
		t.Errorf("lifetime XP = %d, want 38", user.TotalXP)
	}
}

func TestGrantEffects(t *testing.T) {
	now := time.Now()
	user := &models.User{}

	GrantBlessing(user, now)
	if user.ActiveEffect == nil || user.ActiveEffect.Type != models.EffectBlessing {
		t.Fatal("expected a blessing")
	}
	if user.ActiveEffect.Modifier != 1.5 {
		t.Errorf("blessing modifier = %v, want 1.5", user.ActiveEffect.Modifier)
	}
	if !user.ActiveEffect.ExpiresAt.Equal(now.Add(5 * time.Minute)) {
		t.Error("blessing should last 5 minutes")
	}

	GrantCurse(user, now)
	if user.ActiveEffect.Type != models.EffectCurse || user.ActiveEffect.Modifier != 0.5 {
		t.Error("expected a 0.5x curse")
	}
}
