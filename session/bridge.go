package session

import (
	"github.com/SeanAsby/rustboyui/buttons"
	"github.com/SeanAsby/rustboyui/input"
)

// Bridge adapts the device registry's logical button events to one
// session's console-native buttons. Logical buttons the console family
// doesn't map produce no session call at all.
type Bridge struct {
	session *Session
}

// NewBridge creates a bridge for the given session.
func NewBridge(s *Session) *Bridge {
	return &Bridge{session: s}
}

// ButtonPressed implements input.Receiver.
func (b *Bridge) ButtonPressed(lb input.LogicalButton, slot int) {
	code, ok := buttons.Translate(b.session.Family(), lb)
	if !ok {
		return
	}
	b.session.ButtonPressed(code, slot)
}

// ButtonUnpressed implements input.Receiver.
func (b *Bridge) ButtonUnpressed(lb input.LogicalButton, slot int) {
	code, ok := buttons.Translate(b.session.Family(), lb)
	if !ok {
		return
	}
	b.session.ButtonUnpressed(code, slot)
}
