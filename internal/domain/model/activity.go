package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Activity is a read-only snapshot of one extracurricular offering as
// reported by the backend. The frontend never mutates it locally; every
// change goes through the backend followed by a full refetch.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity, never negative even if the
// backend reports more participants than the maximum.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// ActivityList is the activity snapshot in the order the backend sent it.
// The backend serves a JSON object keyed by activity name; a plain Go map
// would scramble that order, so the list decodes the object token by token.
// Order is whatever the backend produced and is not guaranteed stable
// across refetches.
type ActivityList []Activity

// UnmarshalJSON decodes the backend's name-keyed object while preserving
// key order.
func (l *ActivityList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode activities: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("decode activities: expected JSON object")
	}

	out := ActivityList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode activity name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return errors.New("decode activities: expected string key")
		}

		var activity Activity
		if decodeErr := dec.Decode(&activity); decodeErr != nil {
			return fmt.Errorf("decode activity %q: %w", name, decodeErr)
		}
		activity.Name = name
		out = append(out, activity)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("decode activities: %w", err)
	}

	*l = out
	return nil
}

// Names returns the activity names in list order.
func (l ActivityList) Names() []string {
	names := make([]string, 0, len(l))
	for _, a := range l {
		names = append(names, a.Name)
	}
	return names
}
