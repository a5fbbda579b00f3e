package core

import (
	"testing"
	"time"
)

type sentMessage struct {
	Room string
	Text string
}

// fakeSender records outbound messages for assertions.
type fakeSender struct {
	messages chan sentMessage
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		messages: make(chan sentMessage, 32),
	}
}

func (s *fakeSender) SendGroupMessage(room, text string) {
	s.messages <- sentMessage{Room: room, Text: text}
}

func mustMessage(t *testing.T, s *fakeSender) sentMessage {
	t.Helper()

	select {
	case msg := <-s.messages:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("expected outbound message, got none")
		return sentMessage{}
	}
}

func mustNoMessage(t *testing.T, s *fakeSender) {
	t.Helper()

	select {
	case msg := <-s.messages:
		t.Fatalf("unexpected outbound message: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
