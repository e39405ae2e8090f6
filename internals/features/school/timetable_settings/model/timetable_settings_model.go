// file: internals/features/school/timetable_settings/model/timetable_settings_model.go
package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* =======================================================
   TimetableSettingsModel: maps to table timetable_settings
   One row per academy, keyed on timetable_settings_academy_id.
   ======================================================= */

type TimetableSettingsModel struct {
	// PK
	TimetableSettingID uuid.UUID `json:"timetable_setting_id" gorm:"type:uuid;primaryKey;column:timetable_setting_id;default:gen_random_uuid()"`

	// Tenant / scope (unique: the row is upserted, never multiplied)
	TimetableSettingsAcademyID uuid.UUID `json:"timetable_settings_academy_id" gorm:"type:uuid;not null;uniqueIndex;column:timetable_settings_academy_id"`

	// Weekday tokens, closed 7-value enum, no duplicates
	TimetableSettingsOperatingDays pq.StringArray `json:"timetable_settings_operating_days" gorm:"type:text[];column:timetable_settings_operating_days"`

	TimetableSettingsTimeInterval string `json:"timetable_settings_time_interval" gorm:"type:varchar(10);not null;column:timetable_settings_time_interval"`

	// map weekday token → {start,end} "HH:MM"
	TimetableSettingsDayTimes datatypes.JSON `json:"timetable_settings_day_times" gorm:"type:jsonb;column:timetable_settings_day_times"`

	TimetableSettingsTimetableName *string `json:"timetable_settings_timetable_name,omitempty" gorm:"type:varchar(100);column:timetable_settings_timetable_name"`

	// Derived, denormalized union of building_classrooms in building-then-slot
	// order. Kept for backward-compatible readers only; never edited on its own.
	TimetableSettingsClassroomIDs pq.StringArray `json:"timetable_settings_classroom_ids" gorm:"type:uuid[];column:timetable_settings_classroom_ids"`

	// Canonical array form [{id,name}]. Legacy rows may still hold the old
	// object form {"building1": "..."}: migrated on read, see NormalizeBuildingNames.
	TimetableSettingsBuildingNames datatypes.JSON `json:"timetable_settings_building_names" gorm:"type:jsonb;column:timetable_settings_building_names"`

	// map stringified building id → ordered uuid array
	TimetableSettingsBuildingClassrooms datatypes.JSON `json:"timetable_settings_building_classrooms" gorm:"type:jsonb;column:timetable_settings_building_classrooms"`

	TimetableSettingsCreatedAt time.Time `json:"timetable_settings_created_at" gorm:"column:timetable_settings_created_at;not null;autoCreateTime"`
	TimetableSettingsUpdatedAt time.Time `json:"timetable_settings_updated_at" gorm:"column:timetable_settings_updated_at;not null;autoUpdateTime"`
}

func (TimetableSettingsModel) TableName() string {
	return "timetable_settings"
}

/* =======================================================
   JSON column shapes
   ======================================================= */

type BuildingName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

/* =======================================================
   Typed accessors over the JSON columns
   ======================================================= */

func (m *TimetableSettingsModel) DayTimes() (map[string]DayWindow, error) {
	out := map[string]DayWindow{}
	if len(m.TimetableSettingsDayTimes) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(m.TimetableSettingsDayTimes, &out); err != nil {
		return nil, fmt.Errorf("day_times: %w", err)
	}
	return out, nil
}

func (m *TimetableSettingsModel) BuildingNames() ([]BuildingName, error) {
	names, _, err := NormalizeBuildingNames(m.TimetableSettingsBuildingNames)
	return names, err
}

func (m *TimetableSettingsModel) BuildingClassrooms() (map[string][]uuid.UUID, error) {
	out := map[string][]uuid.UUID{}
	if len(m.TimetableSettingsBuildingClassrooms) == 0 {
		return out, nil
	}
	raw := map[string][]string{}
	if err := json.Unmarshal(m.TimetableSettingsBuildingClassrooms, &raw); err != nil {
		return nil, fmt.Errorf("building_classrooms: %w", err)
	}
	for k, ids := range raw {
		parsed := make([]uuid.UUID, 0, len(ids))
		for _, s := range ids {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("building_classrooms[%s]: %w", k, err)
			}
			parsed = append(parsed, id)
		}
		out[k] = parsed
	}
	return out, nil
}

/* =======================================================
   Legacy building_names migration
   ======================================================= */

// NormalizeBuildingNames accepts both the canonical array shape
// [{"id":1,"name":"A"}] and the legacy object shape
// {"building1":"A","building2":"B"} and returns the canonical slice ordered by
// id. The second return reports whether the input was in the legacy shape and
// should be rewritten.
func NormalizeBuildingNames(raw datatypes.JSON) ([]BuildingName, bool, error) {
	if len(raw) == 0 {
		return []BuildingName{}, false, nil
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []BuildingName{}, false, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var names []BuildingName
		if err := json.Unmarshal(raw, &names); err != nil {
			return nil, false, fmt.Errorf("building_names: %w", err)
		}
		sort.SliceStable(names, func(i, j int) bool { return names[i].ID < names[j].ID })
		return names, false, nil
	}

	// legacy object form: {"building1": "A", "building2": "B", ...}
	legacy := map[string]string{}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, false, fmt.Errorf("building_names (legacy): %w", err)
	}
	names := make([]BuildingName, 0, len(legacy))
	for key, name := range legacy {
		id := 0
		if _, err := fmt.Sscanf(key, "building%d", &id); err != nil || id <= 0 {
			continue // unknown key, skip rather than fail the read
		}
		names = append(names, BuildingName{ID: id, Name: name})
	}
	sort.SliceStable(names, func(i, j int) bool { return names[i].ID < names[j].ID })
	return names, true, nil
}

// MarshalBuildingNames renders the canonical array shape.
func MarshalBuildingNames(names []BuildingName) (datatypes.JSON, error) {
	if names == nil {
		names = []BuildingName{}
	}
	b, err := json.Marshal(names)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
