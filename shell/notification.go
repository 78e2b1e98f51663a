package shell

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/SeanAsby/rustboyui/shell/style"
)

// Notification displays temporary messages in the bottom-right corner.
// Show may be called from the file-dialog goroutine, hence the mutex.
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	// Reused background image to avoid per-frame allocations
	bg *ebiten.Image
}

func NewNotification() *Notification {
	return &Notification{}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with default 3 second duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// Draw renders the notification
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if n.message == "" || time.Since(n.startTime) >= n.duration {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	bounds := screen.Bounds()
	screenWidth := bounds.Dx()
	screenHeight := bounds.Dy()

	textWidth, textHeight := text.Measure(message, *style.FontFace(), 0)

	padding := style.OverlayPadding
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	margin := style.OverlayMargin
	bgX := screenWidth - bgWidth - margin
	bgY := screenHeight - bgHeight - margin

	if n.bg == nil || n.bg.Bounds().Dx() < bgWidth || n.bg.Bounds().Dy() < bgHeight {
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.bg.Clear()
	overlayBg := style.OverlayBackground
	overlayBg.A = 153 // 60% opacity
	n.bg.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, *style.FontFace(), textOpts)
}
