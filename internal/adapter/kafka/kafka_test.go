package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenseoul/urban-cooling-engine/internal/domain"
)

func testMission() domain.GeneratedMission {
	return domain.GeneratedMission{
		Title:         "광명시 옥상녹화 프로젝트",
		Description:   "Install a green roof in 광명시.",
		Solution:      domain.GreenRoof,
		PointsReward:  130,
		Difficulty:    4,
		CoolingEffect: 1.1,
		PriorityScore: 60.0,
		Justification: "광명시 shows severe heat accumulation.",
		Latitude:      37.4786,
		Longitude:     126.8644,
		District:      "광명시",
		GeneratedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSerializeToMessage(t *testing.T) {
	mission := testMission()

	msg, err := serializeToMessage(mission)
	require.NoError(t, err)

	assert.Contains(t, string(msg.Key), "green_roof-")
	assert.Contains(t, string(msg.Value), `"solution":"green_roof"`)
	assert.Contains(t, string(msg.Value), `"district":"광명시"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "solution", msg.Headers[0].Key)
	assert.Equal(t, []byte("green_roof"), msg.Headers[0].Value)
	assert.Equal(t, "generated_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2026-08-01T09:00:00Z"), msg.Headers[1].Value)
}

func TestMissionKey_Deterministic(t *testing.T) {
	mission := testMission()

	k1 := missionKey(mission)
	k2 := missionKey(mission)
	assert.Equal(t, k1, k2)

	other := mission
	other.District = "수원시"
	assert.NotEqual(t, k1, missionKey(other), "different districts should key differently")
}

func TestMissionKey_EmptySolution(t *testing.T) {
	mission := testMission()
	mission.Solution = ""

	key := missionKey(mission)
	assert.NotContains(t, key, "-")
	assert.Len(t, key, 16)
}
