// Package render draws the game view onto camera frames and presents them.
package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/handrps/internal/detector"
	"github.com/ayusman/handrps/internal/game"
)

// Colors used by the overlay.
var (
	Red    = color.RGBA{R: 255, A: 255}
	Green  = color.RGBA{G: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	Cyan   = color.RGBA{G: 255, B: 255, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	boneColor  = color.RGBA{R: 224, G: 224, B: 224, A: 255}
	jointColor = Red
)

const font = gocv.FontHersheySimplex

// Text is one string to draw.
type Text struct {
	Value     string
	Origin    image.Point
	Scale     float64
	Color     color.RGBA
	Thickness int
}

// Overlay draws views and hand skeletons.
type Overlay struct{}

// NewOverlay creates an Overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Layout places the view's text for a frame of the given size.
func (o *Overlay) Layout(v game.View, width, height int) []Text {
	var texts []Text

	switch v.Phase {
	case game.PhaseMenu:
		prompt := v.Prompt()
		size := gocv.GetTextSize(prompt, font, 0.6, 2)
		texts = append(texts, Text{
			Value:     prompt,
			Origin:    image.Pt((width-size.X)/2, height-30),
			Scale:     0.6,
			Color:     Red,
			Thickness: 2,
		})
	case game.PhaseCountdown:
		texts = append(texts, Text{
			Value:     v.CountdownText(),
			Origin:    image.Pt(width/2-30, height/2),
			Scale:     3,
			Color:     Green,
			Thickness: 6,
		})
	case game.PhaseResult:
		texts = append(texts,
			Text{Value: v.PlayerLine(), Origin: image.Pt(40, height/2), Scale: 0.8, Color: Red, Thickness: 2},
			Text{Value: v.BotLine(), Origin: image.Pt(40, height/2+40), Scale: 0.8, Color: Yellow, Thickness: 2},
			Text{Value: v.Outcome.String(), Origin: image.Pt(width/2-120, 100), Scale: 1.4, Color: Cyan, Thickness: 3},
		)
	}

	return append(texts,
		Text{Value: v.HUD(), Origin: image.Pt(10, 30), Scale: 0.6, Color: White, Thickness: 2},
		Text{Value: v.ScoreLine(), Origin: image.Pt(10, height-15), Scale: 0.6, Color: White, Thickness: 2},
	)
}

// Draw renders the hand skeleton, when present, and the view onto frame.
func (o *Overlay) Draw(frame *gocv.Mat, v game.View, hand *detector.HandLandmarks) {
	if frame == nil || frame.Empty() {
		return
	}
	width, height := frame.Cols(), frame.Rows()

	if hand != nil {
		o.drawHand(frame, hand, width, height)
	}

	for _, t := range o.Layout(v, width, height) {
		gocv.PutText(frame, t.Value, t.Origin, font, t.Scale, t.Color, t.Thickness)
	}
}

func (o *Overlay) drawHand(frame *gocv.Mat, hand *detector.HandLandmarks, width, height int) {
	for _, c := range detector.Connections {
		gocv.Line(frame, pixel(hand.Points[c[0]], width, height), pixel(hand.Points[c[1]], width, height), boneColor, 2)
	}
	for _, p := range hand.Points {
		gocv.Circle(frame, pixel(p, width, height), 3, jointColor, -1)
	}
}

// pixel maps a normalized landmark to frame coordinates.
func pixel(p detector.Point3D, width, height int) image.Point {
	return image.Pt(int(p.X*float64(width)), int(p.Y*float64(height)))
}
