package game

import (
	"strconv"

	"github.com/ayusman/handrps/internal/gesture"
)

// MenuPrompt is shown while waiting for a round to start.
const MenuPrompt = "press [space = start]  [q = quit]"

// View is the render model for one frame. Fields that do not apply to the
// current phase are zero.
type View struct {
	Phase     Phase           `json:"phase"`
	Detected  gesture.Gesture `json:"detected"`
	Countdown int             `json:"countdown,omitempty"`
	Player    gesture.Gesture `json:"player,omitempty"`
	Bot       gesture.Gesture `json:"bot,omitempty"`
	Outcome   Outcome         `json:"outcome,omitempty"`
	RoundID   string          `json:"round_id,omitempty"`
	Score     Score           `json:"score"`
}

// Prompt is the menu instruction line, empty outside the menu.
func (v View) Prompt() string {
	if v.Phase != PhaseMenu {
		return ""
	}
	return MenuPrompt
}

// HUD is the detected-gesture line drawn every frame.
func (v View) HUD() string {
	return "Detected: " + v.Detected.String()
}

// ScoreLine is the scoreboard drawn every frame.
func (v View) ScoreLine() string {
	return v.Score.String()
}

// CountdownText is the number shown during the countdown.
func (v View) CountdownText() string {
	return strconv.Itoa(v.Countdown)
}

// PlayerLine describes the player's locked-in gesture.
func (v View) PlayerLine() string {
	return "User Picked: " + v.Player.String()
}

// BotLine describes the bot's gesture.
func (v View) BotLine() string {
	return "BOT: " + v.Bot.String()
}
