// file: internals/features/school/timetable_settings/model/timetable_settings_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNormalizeBuildingNamesCanonicalArray(t *testing.T) {
	raw := datatypes.JSON(`[{"id":2,"name":"West"},{"id":1,"name":"East"}]`)

	names, legacy, err := NormalizeBuildingNames(raw)
	require.NoError(t, err)
	assert.False(t, legacy)
	assert.Equal(t, []BuildingName{{ID: 1, Name: "East"}, {ID: 2, Name: "West"}}, names)
}

func TestNormalizeBuildingNamesLegacyObject(t *testing.T) {
	raw := datatypes.JSON(`{"building2":"West","building1":"East"}`)

	names, legacy, err := NormalizeBuildingNames(raw)
	require.NoError(t, err)
	assert.True(t, legacy)
	assert.Equal(t, []BuildingName{{ID: 1, Name: "East"}, {ID: 2, Name: "West"}}, names)
}

func TestNormalizeBuildingNamesLegacyUnknownKeysSkipped(t *testing.T) {
	raw := datatypes.JSON(`{"building1":"East","note":"ignore me"}`)

	names, legacy, err := NormalizeBuildingNames(raw)
	require.NoError(t, err)
	assert.True(t, legacy)
	assert.Equal(t, []BuildingName{{ID: 1, Name: "East"}}, names)
}

func TestNormalizeBuildingNamesEmpty(t *testing.T) {
	for _, raw := range []datatypes.JSON{nil, datatypes.JSON(``), datatypes.JSON(`null`)} {
		names, legacy, err := NormalizeBuildingNames(raw)
		require.NoError(t, err)
		assert.False(t, legacy)
		assert.Empty(t, names)
	}
}

func TestSnapshotApplyToDerivesColumns(t *testing.T) {
	idA, idB := uuid.New(), uuid.New()
	name := "2026-spring"
	snap := TimetableSnapshot{
		OperatingDays: []string{"Mon"},
		TimeInterval:  "30m",
		DayTimes:      map[string]DayWindow{"Mon": {Start: "09:00", End: "18:00"}},
		TimetableName: &name,
		ClassroomIDs:  []uuid.UUID{idA, idB},
		BuildingNames: []BuildingName{{ID: 1, Name: "Main"}},
		BuildingClassrooms: map[string][]uuid.UUID{
			"1": {idA, idB},
		},
	}

	var m TimetableSettingsModel
	require.NoError(t, snap.ApplyTo(&m))

	assert.Equal(t, []string{"Mon"}, []string(m.TimetableSettingsOperatingDays))
	assert.Equal(t, "30m", m.TimetableSettingsTimeInterval)
	assert.Equal(t, []string{idA.String(), idB.String()}, []string(m.TimetableSettingsClassroomIDs))

	dayTimes, err := m.DayTimes()
	require.NoError(t, err)
	assert.Equal(t, DayWindow{Start: "09:00", End: "18:00"}, dayTimes["Mon"])

	names, err := m.BuildingNames()
	require.NoError(t, err)
	assert.Equal(t, []BuildingName{{ID: 1, Name: "Main"}}, names)

	bc, err := m.BuildingClassrooms()
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{idA, idB}, bc["1"])
}
