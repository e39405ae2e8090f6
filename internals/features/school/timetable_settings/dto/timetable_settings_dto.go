// file: internals/features/school/timetable_settings/dto/timetable_settings_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/school/timetable_settings/model"
	"akademiku_backend/internals/features/school/timetable_settings/service"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type DayWindowRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type SlotRequest struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Name string     `json:"name,omitempty"`
}

type BuildingRequest struct {
	ID         int           `json:"id" validate:"required,min=1"`
	Name       string        `json:"name" validate:"required,min=1,max=100"`
	Classrooms []SlotRequest `json:"classrooms" validate:"required,min=1"`
}

type SaveTimetableSettingsRequest struct {
	OperatingDays []string                    `json:"operating_days" validate:"max=7"`
	TimeInterval  string                      `json:"time_interval" validate:"required"`
	DayTimes      map[string]DayWindowRequest `json:"day_time_settings"`
	TimetableName *string                     `json:"timetable_name,omitempty" validate:"omitempty,max=100"`
	Buildings     []BuildingRequest           `json:"buildings" validate:"required,min=1,dive"`
}

func (r *SaveTimetableSettingsRequest) Normalize() {
	for i := range r.OperatingDays {
		r.OperatingDays[i] = strings.TrimSpace(r.OperatingDays[i])
	}
	r.TimeInterval = strings.TrimSpace(r.TimeInterval)
	if r.TimetableName != nil {
		v := strings.TrimSpace(*r.TimetableName)
		if v == "" {
			r.TimetableName = nil
		} else {
			r.TimetableName = &v
		}
	}
	for i := range r.Buildings {
		r.Buildings[i].Name = strings.TrimSpace(r.Buildings[i].Name)
		for j := range r.Buildings[i].Classrooms {
			r.Buildings[i].Classrooms[j].Name = strings.TrimSpace(r.Buildings[i].Classrooms[j].Name)
		}
	}
}

// ToSaveInput maps the wire payload onto the reconciler's input.
func (r *SaveTimetableSettingsRequest) ToSaveInput() service.SaveInput {
	dayTimes := make(map[string]model.DayWindow, len(r.DayTimes))
	for day, win := range r.DayTimes {
		dayTimes[day] = model.DayWindow{Start: win.Start, End: win.End}
	}

	buildings := make([]service.BuildingInput, 0, len(r.Buildings))
	for _, b := range r.Buildings {
		slots := make([]service.SlotInput, 0, len(b.Classrooms))
		for _, s := range b.Classrooms {
			slots = append(slots, service.SlotInput{ClassroomID: s.ID, Name: s.Name})
		}
		buildings = append(buildings, service.BuildingInput{ID: b.ID, Name: b.Name, Classrooms: slots})
	}

	return service.SaveInput{
		OperatingDays: r.OperatingDays,
		TimeInterval:  r.TimeInterval,
		DayTimes:      dayTimes,
		TimetableName: r.TimetableName,
		Buildings:     buildings,
	}
}

/* =======================================================
   RESPONSE DTOs: wire shape of the persisted settings
   ======================================================= */

type TimetableSettingsResponse struct {
	ID                 uuid.UUID                  `json:"id"`
	AcademyID          uuid.UUID                  `json:"academy_id"`
	OperatingDays      []string                   `json:"operating_days"`
	TimeInterval       string                     `json:"time_interval"`
	DayTimes           map[string]model.DayWindow `json:"day_time_settings"`
	TimetableName      *string                    `json:"timetable_name"`
	ClassroomIDs       []string                   `json:"classroom_ids"`
	BuildingNames      []model.BuildingName       `json:"building_names"`
	BuildingClassrooms map[string][]string        `json:"building_classrooms"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

func ToTimetableSettingsResponse(m model.TimetableSettingsModel) (TimetableSettingsResponse, error) {
	dayTimes, err := m.DayTimes()
	if err != nil {
		return TimetableSettingsResponse{}, err
	}
	names, err := m.BuildingNames()
	if err != nil {
		return TimetableSettingsResponse{}, err
	}
	buildingClassrooms, err := m.BuildingClassrooms()
	if err != nil {
		return TimetableSettingsResponse{}, err
	}

	asStrings := make(map[string][]string, len(buildingClassrooms))
	for key, ids := range buildingClassrooms {
		strs := make([]string, 0, len(ids))
		for _, id := range ids {
			strs = append(strs, id.String())
		}
		asStrings[key] = strs
	}

	operatingDays := []string(m.TimetableSettingsOperatingDays)
	if operatingDays == nil {
		operatingDays = []string{}
	}
	classroomIDs := []string(m.TimetableSettingsClassroomIDs)
	if classroomIDs == nil {
		classroomIDs = []string{}
	}

	return TimetableSettingsResponse{
		ID:                 m.TimetableSettingID,
		AcademyID:          m.TimetableSettingsAcademyID,
		OperatingDays:      operatingDays,
		TimeInterval:       m.TimetableSettingsTimeInterval,
		DayTimes:           dayTimes,
		TimetableName:      m.TimetableSettingsTimetableName,
		ClassroomIDs:       classroomIDs,
		BuildingNames:      names,
		BuildingClassrooms: asStrings,
		CreatedAt:          m.TimetableSettingsCreatedAt,
		UpdatedAt:          m.TimetableSettingsUpdatedAt,
	}, nil
}

type SaveTimetableSettingsResponse struct {
	Settings            TimetableSettingsResponse `json:"settings"`
	CreatedClassroomIDs []string                  `json:"created_classroom_ids"`
	RemovedNames        []string                  `json:"removed_names"`
	Warnings            []string                  `json:"warnings"`
}

func ToSaveTimetableSettingsResponse(res service.SaveResult) (SaveTimetableSettingsResponse, error) {
	settings, err := ToTimetableSettingsResponse(res.Settings)
	if err != nil {
		return SaveTimetableSettingsResponse{}, err
	}

	created := make([]string, 0, len(res.CreatedClassroomIDs))
	for _, id := range res.CreatedClassroomIDs {
		created = append(created, id.String())
	}
	removed := res.RemovedNames
	if removed == nil {
		removed = []string{}
	}
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return SaveTimetableSettingsResponse{
		Settings:            settings,
		CreatedClassroomIDs: created,
		RemovedNames:        removed,
		Warnings:            warnings,
	}, nil
}
