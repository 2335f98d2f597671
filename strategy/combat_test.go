package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeCombatCriticalHPRetreatsExclusively(t *testing.T) {
	decisions := AnalyzeCombat(
		GridPos{X: 0, Y: 0},
		0.1,
		[]Enemy{{Pos: GridPos{X: 1, Y: 1}, HPPercent: 0.9}},
		nil,
		[]bool{true},
		false,
	)

	require.Len(t, decisions, 1)
	require.Equal(t, ActionRetreat, decisions[0].Action)
	require.Equal(t, 100, decisions[0].Priority)
	require.Equal(t, "HP critical, must retreat", decisions[0].Reason)
}

func TestAnalyzeCombatTowerRangeWithoutAlliesRetreatsExclusively(t *testing.T) {
	decisions := AnalyzeCombat(
		GridPos{X: 0, Y: 0},
		0.8,
		[]Enemy{{Pos: GridPos{X: 1, Y: 1}, HPPercent: 0.9}},
		nil,
		[]bool{true},
		true,
	)

	require.Len(t, decisions, 1)
	require.Equal(t, ActionRetreat, decisions[0].Action)
	require.Equal(t, 90, decisions[0].Priority)
	require.Equal(t, "In enemy tower range without allies", decisions[0].Reason)
}

func TestAnalyzeCombatTowerRangeWithAlliesDoesNotShortCircuit(t *testing.T) {
	decisions := AnalyzeCombat(
		GridPos{X: 0, Y: 0},
		0.8,
		nil,
		[]GridPos{{X: 2, Y: 2}},
		nil,
		true,
	)

	require.Len(t, decisions, 1)
	require.Equal(t, ActionWait, decisions[0].Action)
}

// Scenario matching spec section 8 scenario 6: self at 0.7 HP, one enemy
// at distance 2 with 0.8 HP (not killable, HP not below 0.30), skill 0
// ready and the enemy within its 6-cell range. The top decision must be
// UseSkill.
func TestAnalyzeCombatSkillReadyInRangeWins(t *testing.T) {
	self := GridPos{X: 0, Y: 0}
	enemy := GridPos{X: 2, Y: 0}

	decisions := AnalyzeCombat(
		self,
		0.7,
		[]Enemy{{Pos: enemy, HPPercent: 0.8}},
		nil,
		[]bool{true},
		false,
	)

	require.NotEmpty(t, decisions)
	require.Equal(t, ActionUseSkill, decisions[0].Action)
	require.Equal(t, 70, decisions[0].Priority)
	require.Equal(t, "Skill ready, enemy in range", decisions[0].Reason)
	require.NotNil(t, decisions[0].TargetPos)
	require.Equal(t, enemy, *decisions[0].TargetPos)
}

func TestAnalyzeCombatLowHPEnemyNearbyOutranksSkill(t *testing.T) {
	self := GridPos{X: 0, Y: 0}
	lowHPEnemy := GridPos{X: 1, Y: 0}

	decisions := AnalyzeCombat(
		self,
		0.7,
		[]Enemy{{Pos: lowHPEnemy, HPPercent: 0.2}},
		nil,
		[]bool{true},
		false,
	)

	require.GreaterOrEqual(t, len(decisions), 2)
	require.Equal(t, ActionAttack, decisions[0].Action)
	require.Equal(t, 80, decisions[0].Priority)
	require.Equal(t, ActionUseSkill, decisions[1].Action)
}

func TestAnalyzeCombatOutnumberedLowHPRetreats(t *testing.T) {
	decisions := AnalyzeCombat(
		GridPos{X: 0, Y: 0},
		0.4,
		[]Enemy{
			{Pos: GridPos{X: 10, Y: 10}, HPPercent: 1.0},
			{Pos: GridPos{X: 11, Y: 11}, HPPercent: 1.0},
			{Pos: GridPos{X: 12, Y: 12}, HPPercent: 1.0},
		},
		[]GridPos{{X: 0, Y: 1}},
		nil,
		false,
	)

	found := false
	for _, d := range decisions {
		if d.Action == ActionRetreat && d.Priority == 60 {
			found = true
			require.Equal(t, "Outnumbered with low HP", d.Reason)
		}
	}
	require.True(t, found)
}

func TestAnalyzeCombatDefaultsToWait(t *testing.T) {
	decisions := AnalyzeCombat(
		GridPos{X: 0, Y: 0},
		0.9,
		[]Enemy{{Pos: GridPos{X: 50, Y: 50}, HPPercent: 1.0}},
		nil,
		[]bool{false},
		false,
	)

	require.Len(t, decisions, 1)
	require.Equal(t, ActionWait, decisions[0].Action)
	require.Equal(t, 10, decisions[0].Priority)
	require.Equal(t, "No immediate action needed", decisions[0].Reason)
}

func TestAnalyzeCombatDecisionsSortedByPriorityDescending(t *testing.T) {
	decisions := AnalyzeCombat(
		GridPos{X: 0, Y: 0},
		0.4,
		[]Enemy{
			{Pos: GridPos{X: 1, Y: 0}, HPPercent: 0.2},
			{Pos: GridPos{X: 2, Y: 0}, HPPercent: 0.9},
			{Pos: GridPos{X: 3, Y: 0}, HPPercent: 0.9},
		},
		nil,
		[]bool{true},
		false,
	)

	for i := 1; i < len(decisions); i++ {
		require.GreaterOrEqual(t, decisions[i-1].Priority, decisions[i].Priority)
	}
}
