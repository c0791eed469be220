package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterJSON = `{
	"Programming Class": {
		"description": "Learn programming fundamentals",
		"schedule": "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		"max_participants": 20,
		"participants": ["emma@mergington.edu", "sophia@mergington.edu"]
	},
	"Chess Club": {
		"description": "Learn strategies and compete in chess tournaments",
		"schedule": "Fridays, 3:30 PM - 5:00 PM",
		"max_participants": 12,
		"participants": []
	}
}`

func TestRosterUnmarshalKeepsOrder(t *testing.T) {
	t.Parallel()

	var roster Roster
	require.NoError(t, json.Unmarshal([]byte(rosterJSON), &roster))

	require.Len(t, roster, 2)
	assert.Equal(t, []string{"Programming Class", "Chess Club"}, roster.Names())
	assert.Equal(t, 20, roster[0].MaxParticipants)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", roster[1].Schedule)
	assert.Empty(t, roster[1].Participants)
}

func TestRosterUnmarshalDuplicateKeys(t *testing.T) {
	t.Parallel()

	data := `{
		"Chess Club": {"description": "first", "schedule": "Fridays", "max_participants": 1, "participants": []},
		"Gym Class": {"description": "sports", "schedule": "Mondays", "max_participants": 30, "participants": []},
		"Chess Club": {"description": "second", "schedule": "Fridays", "max_participants": 2, "participants": ["a@mergington.edu"]}
	}`

	var roster Roster
	require.NoError(t, json.Unmarshal([]byte(data), &roster))

	require.Len(t, roster, 2)
	assert.Equal(t, []string{"Chess Club", "Gym Class"}, roster.Names())
	assert.Equal(t, "second", roster[0].Description)
	assert.Equal(t, "1/2", roster[0].Capacity())
}

func TestRosterUnmarshalEmptyObject(t *testing.T) {
	t.Parallel()

	var roster Roster
	require.NoError(t, json.Unmarshal([]byte(`{}`), &roster))

	assert.NotNil(t, roster)
	assert.Empty(t, roster)
}

func TestRosterUnmarshalRejectsArray(t *testing.T) {
	t.Parallel()

	var roster Roster
	err := json.Unmarshal([]byte(`[{"description":"x"}]`), &roster)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster must be a JSON object")
}

func TestCapacity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		activity Activity
		expected string
	}{
		{
			name:     "Empty",
			activity: Activity{MaxParticipants: 12},
			expected: "0/12",
		},
		{
			name:     "Partially filled",
			activity: Activity{MaxParticipants: 20, Participants: []string{"a@x.edu", "b@x.edu"}},
			expected: "2/20",
		},
		{
			name:     "Over capacity is shown as is",
			activity: Activity{MaxParticipants: 1, Participants: []string{"a@x.edu", "b@x.edu"}},
			expected: "2/1",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.activity.Capacity())
		})
	}
}
