package render

import (
	"image"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/handrps/internal/detector"
	"github.com/ayusman/handrps/internal/game"
	"github.com/ayusman/handrps/internal/gesture"
)

func values(texts []Text) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = t.Value
	}
	return out
}

func TestOverlay_Layout(t *testing.T) {
	o := NewOverlay()
	score := game.Score{Wins: 1, Losses: 2, Draws: 3}

	tests := []struct {
		name string
		view game.View
		want []string
	}{
		{
			name: "menu",
			view: game.View{Phase: game.PhaseMenu, Detected: gesture.None, Score: score},
			want: []string{game.MenuPrompt, "Detected: NONE", "You: 1  Bot: 2  Draws: 3"},
		},
		{
			name: "countdown",
			view: game.View{Phase: game.PhaseCountdown, Detected: gesture.Rock, Countdown: 2, Score: score},
			want: []string{"2", "Detected: ROCK", "You: 1  Bot: 2  Draws: 3"},
		},
		{
			name: "result",
			view: game.View{
				Phase:    game.PhaseResult,
				Detected: gesture.Rock,
				Player:   gesture.Rock,
				Bot:      gesture.Paper,
				Outcome:  game.BotWins,
				Score:    score,
			},
			want: []string{
				"User Picked: ROCK",
				"BOT: PAPER",
				"BOT WINS",
				"Detected: ROCK",
				"You: 1  Bot: 2  Draws: 3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := values(o.Layout(tt.view, 640, 480))
			if len(got) != len(tt.want) {
				t.Fatalf("Layout() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("text %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOverlay_LayoutPositions(t *testing.T) {
	o := NewOverlay()

	texts := o.Layout(game.View{Phase: game.PhaseCountdown, Countdown: 3}, 640, 480)

	if texts[0].Origin != image.Pt(290, 240) {
		t.Errorf("countdown origin = %v, want (290,240)", texts[0].Origin)
	}
	if texts[0].Color != Green {
		t.Errorf("countdown color = %v, want green", texts[0].Color)
	}
	if texts[1].Origin != image.Pt(10, 30) {
		t.Errorf("HUD origin = %v, want (10,30)", texts[1].Origin)
	}
	if texts[2].Origin != image.Pt(10, 465) {
		t.Errorf("score origin = %v, want (10,465)", texts[2].Origin)
	}
}

func TestOverlay_MenuPromptCentered(t *testing.T) {
	o := NewOverlay()

	prompt := o.Layout(game.View{Phase: game.PhaseMenu}, 640, 480)[0]
	size := gocv.GetTextSize(game.MenuPrompt, font, prompt.Scale, prompt.Thickness)

	left := prompt.Origin.X
	right := 640 - (prompt.Origin.X + size.X)
	if diff := left - right; diff < -1 || diff > 1 {
		t.Errorf("prompt not centered: left margin %d, right margin %d", left, right)
	}
	if prompt.Origin.Y != 450 {
		t.Errorf("prompt baseline = %d, want 450", prompt.Origin.Y)
	}
}

func TestOverlay_Draw(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	o := NewOverlay()
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	hand := detector.OpenPalmLandmarks()
	o.Draw(&frame, game.View{Phase: game.PhaseMenu}, &hand)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	if gocv.CountNonZero(gray) == 0 {
		t.Error("expected overlay pixels on a blank frame")
	}
}

func TestOverlay_DrawNilFrame(t *testing.T) {
	o := NewOverlay()

	// Must not panic.
	o.Draw(nil, game.View{}, nil)
}

func TestPixel(t *testing.T) {
	got := pixel(detector.Point3D{X: 0.5, Y: 0.25}, 640, 480)
	if got != image.Pt(320, 120) {
		t.Errorf("pixel() = %v, want (320,120)", got)
	}
}
