// file: internals/features/school/timetable_settings/repository/settings_store.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/school/timetable_settings/model"
)

/* =======================================================
   GormSettingsStore: one settings row per academy,
   get-or-create-then-update keyed on academy_id
   ======================================================= */

type GormSettingsStore struct {
	DB *gorm.DB
}

func NewGormSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{DB: db}
}

// GetByAcademy returns (nil, nil) when the tenant has never saved. Legacy rows
// holding the old {"building1": ...} object shape are migrated to the
// canonical array form here, so callers only ever see one shape.
func (s *GormSettingsStore) GetByAcademy(ctx context.Context, academyID uuid.UUID) (*model.TimetableSettingsModel, error) {
	var m model.TimetableSettingsModel
	err := s.DB.WithContext(ctx).
		Where("timetable_settings_academy_id = ?", academyID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	names, legacy, err := model.NormalizeBuildingNames(m.TimetableSettingsBuildingNames)
	if err != nil {
		return nil, err
	}
	if legacy {
		canonical, err := model.MarshalBuildingNames(names)
		if err != nil {
			return nil, err
		}
		m.TimetableSettingsBuildingNames = canonical
		// one-time rewrite; a failure here is not fatal for the read
		_ = s.DB.WithContext(ctx).
			Model(&model.TimetableSettingsModel{}).
			Where("timetable_setting_id = ?", m.TimetableSettingID).
			Update("timetable_settings_building_names", canonical).Error
	}

	return &m, nil
}

// Upsert never creates a second row for an existing tenant and never needs the
// row's own id from the caller.
func (s *GormSettingsStore) Upsert(ctx context.Context, academyID uuid.UUID, snap model.TimetableSnapshot) (model.TimetableSettingsModel, error) {
	db := s.DB.WithContext(ctx)

	var m model.TimetableSettingsModel
	err := db.Where("timetable_settings_academy_id = ?", academyID).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = model.TimetableSettingsModel{TimetableSettingsAcademyID: academyID}
		if err := snap.ApplyTo(&m); err != nil {
			return model.TimetableSettingsModel{}, err
		}
		if err := db.Create(&m).Error; err != nil {
			return model.TimetableSettingsModel{}, err
		}
		return m, nil
	case err != nil:
		return model.TimetableSettingsModel{}, err
	}

	if err := snap.ApplyTo(&m); err != nil {
		return model.TimetableSettingsModel{}, err
	}
	if err := db.Model(&model.TimetableSettingsModel{}).
		Where("timetable_setting_id = ?", m.TimetableSettingID).
		Updates(map[string]interface{}{
			"timetable_settings_operating_days":      m.TimetableSettingsOperatingDays,
			"timetable_settings_time_interval":       m.TimetableSettingsTimeInterval,
			"timetable_settings_day_times":           m.TimetableSettingsDayTimes,
			"timetable_settings_timetable_name":      m.TimetableSettingsTimetableName,
			"timetable_settings_classroom_ids":       m.TimetableSettingsClassroomIDs,
			"timetable_settings_building_names":      m.TimetableSettingsBuildingNames,
			"timetable_settings_building_classrooms": m.TimetableSettingsBuildingClassrooms,
		}).Error; err != nil {
		return model.TimetableSettingsModel{}, err
	}

	// reread so the caller gets the stored timestamps
	if err := db.Where("timetable_setting_id = ?", m.TimetableSettingID).First(&m).Error; err != nil {
		return model.TimetableSettingsModel{}, err
	}
	return m, nil
}
