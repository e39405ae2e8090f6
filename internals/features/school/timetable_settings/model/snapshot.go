// file: internals/features/school/timetable_settings/model/snapshot.go
package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TimetableSnapshot is the fully-resolved configuration the reconciler hands
// to the settings store. ClassroomIDs is always the flattened concatenation of
// BuildingClassrooms values in building-then-slot order.
type TimetableSnapshot struct {
	OperatingDays      []string
	TimeInterval       string
	DayTimes           map[string]DayWindow
	TimetableName      *string
	ClassroomIDs       []uuid.UUID
	BuildingNames      []BuildingName
	BuildingClassrooms map[string][]uuid.UUID
}

// ApplyTo writes the snapshot onto a settings row, marshalling the JSON
// columns.
func (snap TimetableSnapshot) ApplyTo(m *TimetableSettingsModel) error {
	dayTimes := snap.DayTimes
	if dayTimes == nil {
		dayTimes = map[string]DayWindow{}
	}
	dayTimesJSON, err := json.Marshal(dayTimes)
	if err != nil {
		return err
	}

	namesJSON, err := MarshalBuildingNames(snap.BuildingNames)
	if err != nil {
		return err
	}

	buildingClassrooms := make(map[string][]string, len(snap.BuildingClassrooms))
	for key, ids := range snap.BuildingClassrooms {
		strs := make([]string, 0, len(ids))
		for _, id := range ids {
			strs = append(strs, id.String())
		}
		buildingClassrooms[key] = strs
	}
	buildingClassroomsJSON, err := json.Marshal(buildingClassrooms)
	if err != nil {
		return err
	}

	operatingDays := snap.OperatingDays
	if operatingDays == nil {
		operatingDays = []string{}
	}
	flat := make(pq.StringArray, 0, len(snap.ClassroomIDs))
	for _, id := range snap.ClassroomIDs {
		flat = append(flat, id.String())
	}

	m.TimetableSettingsOperatingDays = pq.StringArray(operatingDays)
	m.TimetableSettingsTimeInterval = snap.TimeInterval
	m.TimetableSettingsDayTimes = datatypes.JSON(dayTimesJSON)
	m.TimetableSettingsTimetableName = snap.TimetableName
	m.TimetableSettingsClassroomIDs = flat
	m.TimetableSettingsBuildingNames = namesJSON
	m.TimetableSettingsBuildingClassrooms = datatypes.JSON(buildingClassroomsJSON)
	return nil
}
