package vision

import "github.com/flga/gamescope/color"

// ElementType tags the category of a detected screen element.
type ElementType int

const (
	ElementUnknown ElementType = iota
	ElementHealthBarEnemy
	ElementHealthBarAlly
	ElementHealthBarSelf
	ElementSkillButton
	ElementJoystick
	ElementEliminateChess
	ElementButton
	ElementTextArea
)

func (t ElementType) String() string {
	switch t {
	case ElementHealthBarEnemy:
		return "health_bar_enemy"
	case ElementHealthBarAlly:
		return "health_bar_ally"
	case ElementHealthBarSelf:
		return "health_bar_self"
	case ElementSkillButton:
		return "skill_button"
	case ElementJoystick:
		return "joystick"
	case ElementEliminateChess:
		return "eliminate_chess"
	case ElementButton:
		return "button"
	case ElementTextArea:
		return "text_area"
	default:
		return "unknown"
	}
}

// DetectedElement is a tagged record produced by a detector: its
// category, bounding rectangle, a confidence in [0,1], and an optional
// free-form annotation.
type DetectedElement struct {
	Type       ElementType
	Bounds     color.Rect
	Confidence float64
	Annotation string
}
