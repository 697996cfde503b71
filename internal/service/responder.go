package service

import "math/rand/v2"

// Responder produces the assistant side of a chat exchange.
type Responder interface {
	Reply(message string) string
}

// ResponderFunc adapts a plain function to Responder.
type ResponderFunc func(message string) string

func (f ResponderFunc) Reply(message string) string { return f(message) }

var cannedOpeners = []string{
	"I'd be happy to help you with that! Let me break it down for you.",
	"That's a great question! Here's what you need to know:",
	"Let me explain this concept step by step.",
	"I can help clarify that for you. Here's the key information:",
	"That's an important topic. Let me provide some guidance.",
}

const replyTrailer = "Based on your study materials, here are the key points to focus on."

type cannedResponder struct {
	pick func(n int) int
}

// NewCannedResponder answers with a random canned opener followed by a fixed trailer.
// The user's message is ignored.
func NewCannedResponder() Responder {
	return cannedResponder{pick: rand.IntN}
}

func (c cannedResponder) Reply(string) string {
	return cannedOpeners[c.pick(len(cannedOpeners))] + " " + replyTrailer
}
