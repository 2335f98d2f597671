package strategy

import "sort"

// CombatAction is the kind of intent a combat decision recommends.
type CombatAction int

const (
	ActionAttack CombatAction = iota
	ActionUseSkill
	ActionRetreat
	ActionMoveToPosition
	ActionWait
)

// CombatDecision is one priority-ranked action intent.
type CombatDecision struct {
	Action    CombatAction
	TargetPos *GridPos
	Priority  int
	Reason    string
}

// Enemy is an opposing unit's position and HP fraction.
type Enemy struct {
	Pos       GridPos
	HPPercent float64
}

// AnalyzeCombat produces a priority-sorted list of action intents. Rules
// 1 and 2 are exclusive and short-circuit the rest.
func AnalyzeCombat(selfPos GridPos, selfHPPercent float64, enemies []Enemy, allies []GridPos, skillReady []bool, inTowerRange bool) []CombatDecision {
	if selfHPPercent < 0.20 {
		return []CombatDecision{{
			Action:   ActionRetreat,
			Priority: 100,
			Reason:   "HP critical, must retreat",
		}}
	}

	if inTowerRange && len(allies) == 0 {
		return []CombatDecision{{
			Action:   ActionRetreat,
			Priority: 90,
			Reason:   "In enemy tower range without allies",
		}}
	}

	var decisions []CombatDecision

	for _, e := range enemies {
		if e.HPPercent < 0.30 && selfPos.ManhattanDistance(e.Pos) < 5 {
			pos := e.Pos
			decisions = append(decisions, CombatDecision{
				Action:    ActionAttack,
				TargetPos: &pos,
				Priority:  80,
				Reason:    "Low HP enemy nearby",
			})
			break
		}
	}

	if len(skillReady) > 0 && skillReady[0] && len(enemies) > 0 {
		closest := enemies[0]
		for _, e := range enemies[1:] {
			if selfPos.ManhattanDistance(e.Pos) < selfPos.ManhattanDistance(closest.Pos) {
				closest = e
			}
		}
		if selfPos.ManhattanDistance(closest.Pos) < 6 {
			pos := closest.Pos
			decisions = append(decisions, CombatDecision{
				Action:    ActionUseSkill,
				TargetPos: &pos,
				Priority:  70,
				Reason:    "Skill ready, enemy in range",
			})
		}
	}

	if len(enemies) > len(allies)+1 && selfHPPercent < 0.5 {
		decisions = append(decisions, CombatDecision{
			Action:   ActionRetreat,
			Priority: 60,
			Reason:   "Outnumbered with low HP",
		})
	}

	if len(decisions) == 0 {
		decisions = append(decisions, CombatDecision{
			Action:   ActionWait,
			Priority: 10,
			Reason:   "No immediate action needed",
		})
	}

	sort.SliceStable(decisions, func(i, j int) bool {
		return decisions[i].Priority > decisions[j].Priority
	})

	return decisions
}

// CalculateKitePosition returns selfPos unchanged when its Manhattan
// distance to targetPos already equals attackRange. Otherwise it returns
// the in-bounds, unblocked 4-neighbour whose distance to targetPos is
// closest to attackRange; staying put is not a candidate in that case,
// even when every usable neighbour is farther from attackRange than
// selfPos. It returns false when no neighbour is usable. It is not
// called by AnalyzeCombat's rule engine; a host that wants kiting
// behaviour invokes it directly.
func CalculateKitePosition(selfPos, targetPos GridPos, attackRange int, obstacles blockedSet, width, height int) (GridPos, bool) {
	currentDist := selfPos.ManhattanDistance(targetPos)
	if currentDist == attackRange {
		return selfPos, true
	}

	var bestPos GridPos
	bestDiff := int(^uint(0) >> 1) // max int
	found := false

	for _, d := range fourDirections {
		newPos := GridPos{X: selfPos.X + d[0], Y: selfPos.Y + d[1]}
		if !inBounds(newPos, width, height) || obstacles.has(newPos) {
			continue
		}

		diff := absInt(newPos.ManhattanDistance(targetPos) - attackRange)
		if diff < bestDiff {
			bestDiff = diff
			bestPos = newPos
			found = true
		}
	}

	return bestPos, found
}
