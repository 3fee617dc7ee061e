package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseOff = "○"
	pulseOn  = "●"

	blinkFPS = UITicksPerSecond

	// Spring physics parameters
	blinkAngularFrequency = 8.0
	blinkDampingRatio     = 0.7

	// Pulse rhythm: on for blinkOnTicks, off for blinkOffTicks
	blinkOnTicks  = 3
	blinkOffTicks = 7

	blinkFrameThreshold = 0.5

	blinkPositionFull  = 1.0
	blinkPositionEmpty = 0.0
)

// Blink animates a pulsing dot with spring physics
type Blink struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
}

// NewBlink creates an inactive blink animator
func NewBlink() *Blink {
	return &Blink{
		spring: harmonica.NewSpring(harmonica.FPS(blinkFPS), blinkAngularFrequency, blinkDampingRatio),
	}
}

// Start begins the pulse
func (b *Blink) Start() {
	b.active = true
}

// Stop ends the pulse and resets to the off frame
func (b *Blink) Stop() {
	b.active = false
	b.target = blinkPositionEmpty
	b.position = blinkPositionEmpty
	b.velocity = blinkPositionEmpty
	b.tickCount = 0
}

// Update advances the animation by one UI tick
func (b *Blink) Update() {
	if !b.active {
		return
	}

	b.tickCount = (b.tickCount + 1) % (blinkOnTicks + blinkOffTicks)

	b.target = blinkPositionEmpty
	if b.tickCount < blinkOnTicks {
		b.target = blinkPositionFull
	}

	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)
}

// Frame returns the glyph for the current spring position
func (b *Blink) Frame() string {
	if !b.active || b.position < blinkFrameThreshold {
		return pulseOff
	}

	return pulseOn
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the animation is running
func (b *Blink) IsActive() bool {
	return b.active
}
