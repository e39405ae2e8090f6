// file: internals/features/school/timetable_settings/service/reconciler.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/constants"
	classroomModel "akademiku_backend/internals/features/school/classrooms/model"
	"akademiku_backend/internals/features/school/timetable_settings/model"
)

/* =======================================================
   STORE CONTRACTS (injected, never a package-level DB)
   ======================================================= */

type ClassroomStore interface {
	// ListByAcademy returns the tenant's alive classrooms.
	ListByAcademy(ctx context.Context, academyID uuid.UUID) ([]classroomModel.ClassroomModel, error)
	Create(ctx context.Context, academyID uuid.UUID, name string, capacity int) (classroomModel.ClassroomModel, error)
}

type SettingsStore interface {
	// GetByAcademy returns (nil, nil) when the tenant has never saved.
	GetByAcademy(ctx context.Context, academyID uuid.UUID) (*model.TimetableSettingsModel, error)
	// Upsert is get-or-create-then-update keyed strictly on academy_id.
	Upsert(ctx context.Context, academyID uuid.UUID, snap model.TimetableSnapshot) (model.TimetableSettingsModel, error)
}

/* =======================================================
   SERVICE
   ======================================================= */

type Service struct {
	Classrooms ClassroomStore
	Settings   SettingsStore
}

func NewService(classrooms ClassroomStore, settings SettingsStore) *Service {
	return &Service{Classrooms: classrooms, Settings: settings}
}

/* =======================================================
   INPUT / OUTPUT
   ======================================================= */

// SlotInput is one position inside a building: either a previously selected
// classroom id, a free-text name for a new/existing classroom, or empty.
type SlotInput struct {
	ClassroomID *uuid.UUID
	Name        string
}

type BuildingInput struct {
	ID         int
	Name       string
	Classrooms []SlotInput
}

type SaveInput struct {
	OperatingDays []string
	TimeInterval  string
	DayTimes      map[string]model.DayWindow
	TimetableName *string
	Buildings     []BuildingInput
}

type SaveResult struct {
	Settings            model.TimetableSettingsModel
	CreatedClassroomIDs []uuid.UUID
	RemovedNames        []string
	Warnings            []string
}

/* =======================================================
   OPERATIONS
   ======================================================= */

// Load returns the tenant's saved configuration, nil when never saved.
func (s *Service) Load(ctx context.Context, academyID uuid.UUID) (*model.TimetableSettingsModel, error) {
	row, err := s.Settings.GetByAcademy(ctx, academyID)
	if err != nil {
		return nil, &PersistenceError{Op: "settings.get", Err: err}
	}
	return row, nil
}

// Save reconciles the caller's buildings against the tenant's classrooms,
// creates missing rows, and persists one settings snapshot. Fully-resolved
// input saved twice produces zero creations and an identical row.
func (s *Service) Save(ctx context.Context, academyID uuid.UUID, in SaveInput) (SaveResult, error) {
	var res SaveResult

	if err := validateSaveInput(in); err != nil {
		return res, err
	}

	// Known classrooms are fetched fresh every pass: never from a cache.
	known, err := s.Classrooms.ListByAcademy(ctx, academyID)
	if err != nil {
		return res, &PersistenceError{Op: "classrooms.list", Err: err}
	}
	byID := make(map[uuid.UUID]classroomModel.ClassroomModel, len(known))
	byName := make(map[string]classroomModel.ClassroomModel, len(known))
	for _, room := range known {
		byID[room.ClassroomID] = room
		if _, dup := byName[room.ClassroomsName]; !dup {
			byName[room.ClassroomsName] = room
		}
	}

	// Previous snapshot, for the orphan report.
	previous, err := s.Settings.GetByAcademy(ctx, academyID)
	if err != nil {
		return res, &PersistenceError{Op: "settings.get", Err: err}
	}

	buildingClassrooms := make(map[string][]uuid.UUID, len(in.Buildings))
	buildingNames := make([]model.BuildingName, 0, len(in.Buildings))
	flatIDs := make([]uuid.UUID, 0)
	created := make([]uuid.UUID, 0)
	warnings := make([]string, 0)

	for _, b := range in.Buildings {
		resolved := make([]uuid.UUID, 0, len(b.Classrooms))

		for slotIdx, slot := range b.Classrooms {
			name := strings.TrimSpace(slot.Name)

			if slot.ClassroomID != nil {
				if _, ok := byID[*slot.ClassroomID]; ok {
					resolved = append(resolved, *slot.ClassroomID)
					continue
				}
				// Stale reference (deleted out-of-band). Recover by the cached
				// name when possible; otherwise drop the slot instead of
				// failing the whole save.
				if name != "" {
					if room, ok := byName[name]; ok {
						resolved = append(resolved, room.ClassroomID)
						warnings = append(warnings, fmt.Sprintf(
							"building %d slot %d: stale classroom id %s recovered by name %q",
							b.ID, slotIdx+1, slot.ClassroomID, name))
						continue
					}
				}
				warnings = append(warnings, fmt.Sprintf(
					"building %d slot %d: stale classroom id %s dropped",
					b.ID, slotIdx+1, slot.ClassroomID))
				continue
			}

			if name == "" {
				continue // unfilled slot
			}

			// Typing an existing classroom's exact name selects it, it is not
			// a duplicate.
			if room, ok := byName[name]; ok {
				resolved = append(resolved, room.ClassroomID)
				continue
			}

			room, err := s.Classrooms.Create(ctx, academyID, name, constants.DefaultClassroomCapacity)
			if err != nil {
				// Abort before the upsert so the snapshot never references an
				// id that does not exist.
				return SaveResult{}, &PersistenceError{Op: "classrooms.create", Err: err}
			}
			byID[room.ClassroomID] = room
			byName[room.ClassroomsName] = room // later slots with the same new name reuse this row
			created = append(created, room.ClassroomID)
			resolved = append(resolved, room.ClassroomID)
		}

		key := strconv.Itoa(b.ID)
		buildingClassrooms[key] = resolved
		buildingNames = append(buildingNames, model.BuildingName{ID: b.ID, Name: strings.TrimSpace(b.Name)})
		flatIDs = append(flatIDs, resolved...)
	}

	// Orphan report: ids referenced by the previous save but absent now.
	// Advisory only: nothing is deleted and the save is never blocked.
	removedNames := make([]string, 0)
	if previous != nil {
		newSet := make(map[uuid.UUID]struct{}, len(flatIDs))
		for _, id := range flatIDs {
			newSet[id] = struct{}{}
		}
		seen := make(map[uuid.UUID]struct{})
		for _, raw := range previous.TimetableSettingsClassroomIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			if _, ok := newSet[id]; ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if room, ok := byID[id]; ok {
				removedNames = append(removedNames, room.ClassroomsName)
			}
			// hard-deleted classrooms have no resolvable name and are
			// excluded from the report rather than surfaced as raw ids
		}
	}

	snap := model.TimetableSnapshot{
		OperatingDays:      in.OperatingDays,
		TimeInterval:       in.TimeInterval,
		DayTimes:           in.DayTimes,
		TimetableName:      in.TimetableName,
		ClassroomIDs:       flatIDs,
		BuildingNames:      buildingNames,
		BuildingClassrooms: buildingClassrooms,
	}

	saved, err := s.Settings.Upsert(ctx, academyID, snap)
	if err != nil {
		return SaveResult{}, &PersistenceError{Op: "settings.upsert", Err: err}
	}

	res.Settings = saved
	res.CreatedClassroomIDs = created
	res.RemovedNames = removedNames
	res.Warnings = warnings
	return res, nil
}

/* =======================================================
   VALIDATION
   ======================================================= */

func validateSaveInput(in SaveInput) error {
	if len(in.Buildings) == 0 {
		return invalidInputf("at least one building is required")
	}

	seenBuilding := make(map[int]struct{}, len(in.Buildings))
	for _, b := range in.Buildings {
		if b.ID <= 0 {
			return invalidInputf("building id %d must be positive", b.ID)
		}
		if _, dup := seenBuilding[b.ID]; dup {
			return invalidInputf("duplicate building id %d", b.ID)
		}
		seenBuilding[b.ID] = struct{}{}

		if len(b.Classrooms) == 0 {
			return invalidInputf("building %d has no slots", b.ID)
		}
		filled := 0
		for _, slot := range b.Classrooms {
			if slot.ClassroomID != nil || strings.TrimSpace(slot.Name) != "" {
				filled++
			}
		}
		// edit-time constraint, re-checked here rather than trusted
		if filled > constants.MaxClassroomsPerBuilding {
			return invalidInputf("building %d has %d filled slots, max %d",
				b.ID, filled, constants.MaxClassroomsPerBuilding)
		}
	}

	seenDay := make(map[string]struct{}, len(in.OperatingDays))
	for _, day := range in.OperatingDays {
		if !constants.IsWeekdayToken(day) {
			return invalidInputf("unknown weekday token %q", day)
		}
		if _, dup := seenDay[day]; dup {
			return invalidInputf("duplicate weekday token %q", day)
		}
		seenDay[day] = struct{}{}
	}

	if !constants.IsTimeIntervalToken(in.TimeInterval) {
		return invalidInputf("unknown time interval %q", in.TimeInterval)
	}

	for day, win := range in.DayTimes {
		if !constants.IsWeekdayToken(day) {
			return invalidInputf("day_time_settings: unknown weekday token %q", day)
		}
		if _, err := time.Parse("15:04", win.Start); err != nil {
			return invalidInputf("day_time_settings[%s]: bad start %q", day, win.Start)
		}
		if _, err := time.Parse("15:04", win.End); err != nil {
			return invalidInputf("day_time_settings[%s]: bad end %q", day, win.End)
		}
	}

	return nil
}
