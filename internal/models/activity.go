package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Capacity formats current occupancy as "current/max". It is display-only.
func (a Activity) Capacity() string {
	return strconv.Itoa(len(a.Participants)) + "/" + strconv.Itoa(a.MaxParticipants)
}

// Roster is one snapshot of the activities collection, in the order the
// server listed them.
type Roster []Activity

// UnmarshalJSON decodes the upstream object keyed by activity name. The
// object's key order is kept; a repeated name keeps its first position and
// takes the last value.
func (r *Roster) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read roster: %w", err)
	}

	if tok == nil {
		*r = nil
		return nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("roster must be a JSON object, got %v", tok)
	}

	roster := Roster{}
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read activity name: %w", err)
		}

		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected activity key %v", keyTok)
		}

		var activity Activity
		if err = dec.Decode(&activity); err != nil {
			return fmt.Errorf("failed to decode activity %q: %w", name, err)
		}

		activity.Name = name

		if i, seen := index[name]; seen {
			roster[i] = activity
			continue
		}

		index[name] = len(roster)
		roster = append(roster, activity)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("failed to read roster: %w", err)
	}

	*r = roster

	return nil
}

// Names returns the activity names in roster order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for _, a := range r {
		names = append(names, a.Name)
	}

	return names
}
