// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

type EventType string

const (
	EventNewQuestion     EventType = "new_question"
	EventQuestionUpdated EventType = "question_updated"
)

// Event is a broadcast payload. The set of implementations is closed:
// NewQuestionEvent and QuestionUpdatedEvent.
type Event interface {
	Type() EventType
	payload() any
}

type NewQuestionEvent struct {
	Question Question
}

func (NewQuestionEvent) Type() EventType { return EventNewQuestion }

func (e NewQuestionEvent) payload() any { return e.Question }

type QuestionUpdatedEvent struct {
	Update QuestionUpdate
}

func (QuestionUpdatedEvent) Type() EventType { return EventQuestionUpdated }

func (e QuestionUpdatedEvent) payload() any { return e.Update }

type eventEnvelope struct {
	Type     EventType `json:"type"`
	Question any       `json:"question"`
}

// EncodeEvent renders an event in its wire form:
//
//	{"type": "new_question", "question": {...}}
func EncodeEvent(e Event) ([]byte, error) {
	return json.Marshal(eventEnvelope{Type: e.Type(), Question: e.payload()})
}
