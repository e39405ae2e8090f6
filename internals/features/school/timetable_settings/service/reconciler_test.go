// file: internals/features/school/timetable_settings/service/reconciler_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classroomModel "akademiku_backend/internals/features/school/classrooms/model"
	"akademiku_backend/internals/features/school/timetable_settings/model"
)

/* =======================================================
   In-memory fake stores
   ======================================================= */

type fakeClassroomStore struct {
	rooms      []classroomModel.ClassroomModel
	createCnt  int
	failCreate error
	failList   error
}

func (f *fakeClassroomStore) ListByAcademy(_ context.Context, academyID uuid.UUID) ([]classroomModel.ClassroomModel, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	out := make([]classroomModel.ClassroomModel, 0, len(f.rooms))
	for _, r := range f.rooms {
		if r.ClassroomsAcademyID == academyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeClassroomStore) Create(_ context.Context, academyID uuid.UUID, name string, capacity int) (classroomModel.ClassroomModel, error) {
	if f.failCreate != nil {
		return classroomModel.ClassroomModel{}, f.failCreate
	}
	f.createCnt++
	m := classroomModel.ClassroomModel{
		ClassroomID:         uuid.New(),
		ClassroomsAcademyID: academyID,
		ClassroomsName:      name,
		ClassroomsCapacity:  capacity,
	}
	f.rooms = append(f.rooms, m)
	return m, nil
}

func (f *fakeClassroomStore) add(academyID uuid.UUID, name string) classroomModel.ClassroomModel {
	m := classroomModel.ClassroomModel{
		ClassroomID:         uuid.New(),
		ClassroomsAcademyID: academyID,
		ClassroomsName:      name,
	}
	f.rooms = append(f.rooms, m)
	return m
}

type fakeSettingsStore struct {
	rows       map[uuid.UUID]*model.TimetableSettingsModel
	upsertCnt  int
	failUpsert error
	failGet    error
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{rows: map[uuid.UUID]*model.TimetableSettingsModel{}}
}

func (f *fakeSettingsStore) GetByAcademy(_ context.Context, academyID uuid.UUID) (*model.TimetableSettingsModel, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	row, ok := f.rows[academyID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeSettingsStore) Upsert(_ context.Context, academyID uuid.UUID, snap model.TimetableSnapshot) (model.TimetableSettingsModel, error) {
	if f.failUpsert != nil {
		return model.TimetableSettingsModel{}, f.failUpsert
	}
	f.upsertCnt++
	row, ok := f.rows[academyID]
	if !ok {
		row = &model.TimetableSettingsModel{
			TimetableSettingID:         uuid.New(),
			TimetableSettingsAcademyID: academyID,
		}
		f.rows[academyID] = row
	}
	if err := snap.ApplyTo(row); err != nil {
		return model.TimetableSettingsModel{}, err
	}
	return *row, nil
}

/* =======================================================
   Helpers
   ======================================================= */

func newTestService() (*Service, *fakeClassroomStore, *fakeSettingsStore) {
	rooms := &fakeClassroomStore{}
	settings := newFakeSettingsStore()
	return NewService(rooms, settings), rooms, settings
}

func baseInput(buildings ...BuildingInput) SaveInput {
	return SaveInput{
		OperatingDays: []string{"Mon", "Tue"},
		TimeInterval:  "1h",
		DayTimes: map[string]model.DayWindow{
			"Mon": {Start: "09:00", End: "22:00"},
			"Tue": {Start: "09:00", End: "22:00"},
		},
		Buildings: buildings,
	}
}

func namedSlot(name string) SlotInput { return SlotInput{Name: name} }

func idSlot(id uuid.UUID, name string) SlotInput {
	return SlotInput{ClassroomID: &id, Name: name}
}

/* =======================================================
   Tests
   ======================================================= */

func TestSaveFirstConfiguration(t *testing.T) {
	svc, rooms, settings := newTestService()
	academyID := uuid.New()

	in := baseInput(BuildingInput{
		ID:         1,
		Name:       "Bldg-A",
		Classrooms: []SlotInput{namedSlot("101"), namedSlot("102")},
	})

	res, err := svc.Save(context.Background(), academyID, in)
	require.NoError(t, err)

	assert.Len(t, res.CreatedClassroomIDs, 2)
	assert.Equal(t, 2, rooms.createCnt)
	assert.Empty(t, res.RemovedNames)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 1, settings.upsertCnt)

	bc, err := res.Settings.BuildingClassrooms()
	require.NoError(t, err)
	require.Len(t, bc["1"], 2)
	assert.Equal(t, res.CreatedClassroomIDs[0], bc["1"][0])
	assert.Equal(t, res.CreatedClassroomIDs[1], bc["1"][1])

	require.Len(t, res.Settings.TimetableSettingsClassroomIDs, 2)
	assert.Equal(t, res.CreatedClassroomIDs[0].String(), res.Settings.TimetableSettingsClassroomIDs[0])
	assert.Equal(t, res.CreatedClassroomIDs[1].String(), res.Settings.TimetableSettingsClassroomIDs[1])

	assert.Equal(t, []string{"Mon", "Tue"}, []string(res.Settings.TimetableSettingsOperatingDays))
	assert.Equal(t, "1h", res.Settings.TimetableSettingsTimeInterval)
}

func TestSaveIsIdempotentForResolvedInput(t *testing.T) {
	svc, rooms, _ := newTestService()
	academyID := uuid.New()

	first, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID:         1,
		Name:       "Bldg-A",
		Classrooms: []SlotInput{namedSlot("101"), namedSlot("102")},
	}))
	require.NoError(t, err)
	require.Len(t, first.CreatedClassroomIDs, 2)

	// replay with the ids the first save resolved
	resolved := baseInput(BuildingInput{
		ID:   1,
		Name: "Bldg-A",
		Classrooms: []SlotInput{
			idSlot(first.CreatedClassroomIDs[0], "101"),
			idSlot(first.CreatedClassroomIDs[1], "102"),
		},
	})

	second, err := svc.Save(context.Background(), academyID, resolved)
	require.NoError(t, err)

	assert.Empty(t, second.CreatedClassroomIDs)
	assert.Equal(t, 2, rooms.createCnt) // unchanged
	assert.Empty(t, second.RemovedNames)
	assert.Equal(t, first.Settings.TimetableSettingsClassroomIDs, second.Settings.TimetableSettingsClassroomIDs)
	assert.Equal(t, first.Settings.TimetableSettingsBuildingClassrooms, second.Settings.TimetableSettingsBuildingClassrooms)
	assert.Equal(t, first.Settings.TimetableSettingsBuildingNames, second.Settings.TimetableSettingsBuildingNames)
}

func TestClassroomIDsDerivedFromBuildingOrder(t *testing.T) {
	svc, rooms, _ := newTestService()
	academyID := uuid.New()

	a := rooms.add(academyID, "A")
	b := rooms.add(academyID, "B")

	res, err := svc.Save(context.Background(), academyID, baseInput(
		BuildingInput{ID: 1, Name: "East", Classrooms: []SlotInput{idSlot(b.ClassroomID, "B"), namedSlot("C")}},
		BuildingInput{ID: 2, Name: "West", Classrooms: []SlotInput{idSlot(a.ClassroomID, "A")}},
	))
	require.NoError(t, err)

	bc, err := res.Settings.BuildingClassrooms()
	require.NoError(t, err)

	// flat list = building 1 slots then building 2 slots
	want := make([]string, 0)
	for _, id := range bc["1"] {
		want = append(want, id.String())
	}
	for _, id := range bc["2"] {
		want = append(want, id.String())
	}
	assert.Equal(t, want, []string(res.Settings.TimetableSettingsClassroomIDs))
	assert.Equal(t, b.ClassroomID, bc["1"][0])
	assert.Equal(t, a.ClassroomID, bc["2"][0])
}

func TestNewNameDedupWithinOneSave(t *testing.T) {
	svc, rooms, _ := newTestService()
	academyID := uuid.New()

	res, err := svc.Save(context.Background(), academyID, baseInput(
		BuildingInput{ID: 1, Name: "East", Classrooms: []SlotInput{namedSlot("Room X")}},
		BuildingInput{ID: 2, Name: "West", Classrooms: []SlotInput{namedSlot("Room X")}},
	))
	require.NoError(t, err)

	assert.Equal(t, 1, rooms.createCnt)
	require.Len(t, res.CreatedClassroomIDs, 1)

	bc, err := res.Settings.BuildingClassrooms()
	require.NoError(t, err)
	require.Len(t, bc["1"], 1)
	require.Len(t, bc["2"], 1)
	assert.Equal(t, bc["1"][0], bc["2"][0])
}

func TestTypingExistingNameSelectsNotDuplicates(t *testing.T) {
	svc, rooms, _ := newTestService()
	academyID := uuid.New()

	existing := rooms.add(academyID, "101")

	res, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID: 1, Name: "Bldg-A", Classrooms: []SlotInput{namedSlot("101")},
	}))
	require.NoError(t, err)

	assert.Zero(t, rooms.createCnt)
	assert.Empty(t, res.CreatedClassroomIDs)

	bc, err := res.Settings.BuildingClassrooms()
	require.NoError(t, err)
	assert.Equal(t, existing.ClassroomID, bc["1"][0])
}

func TestStaleIDRecoveredByName(t *testing.T) {
	svc, rooms, _ := newTestService()
	academyID := uuid.New()

	current := rooms.add(academyID, "205")
	staleID := uuid.New() // not in the known set

	res, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID: 1, Name: "Bldg-A", Classrooms: []SlotInput{idSlot(staleID, "205")},
	}))
	require.NoError(t, err)

	assert.Zero(t, rooms.createCnt) // recovery never creates
	bc, err := res.Settings.BuildingClassrooms()
	require.NoError(t, err)
	require.Len(t, bc["1"], 1)
	assert.Equal(t, current.ClassroomID, bc["1"][0])
	assert.NotEqual(t, staleID, bc["1"][0])
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "recovered by name")
}

func TestUnrecoverableStaleSlotIsDropped(t *testing.T) {
	svc, rooms, _ := newTestService()
	academyID := uuid.New()

	keep := rooms.add(academyID, "101")
	staleID := uuid.New()

	res, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID:   1,
		Name: "Bldg-A",
		Classrooms: []SlotInput{
			idSlot(keep.ClassroomID, "101"),
			idSlot(staleID, ""), // no usable name
		},
	}))
	require.NoError(t, err)

	bc, err := res.Settings.BuildingClassrooms()
	require.NoError(t, err)
	require.Len(t, bc["1"], 1)
	assert.Equal(t, keep.ClassroomID, bc["1"][0])
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "dropped")
}

func TestOrphanReporting(t *testing.T) {
	svc, rooms, _ := newTestService()
	academyID := uuid.New()

	a := rooms.add(academyID, "A")
	b := rooms.add(academyID, "B")
	c := rooms.add(academyID, "C")

	_, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: []SlotInput{
			idSlot(a.ClassroomID, "A"), idSlot(b.ClassroomID, "B"), idSlot(c.ClassroomID, "C"),
		},
	}))
	require.NoError(t, err)

	res, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: []SlotInput{
			idSlot(a.ClassroomID, "A"), idSlot(b.ClassroomID, "B"),
		},
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"C"}, res.RemovedNames)
	// C's row is untouched
	left, err := rooms.ListByAcademy(context.Background(), academyID)
	require.NoError(t, err)
	assert.Len(t, left, 3)
}

func TestOrphanWithUnresolvableNameIsExcluded(t *testing.T) {
	svc, rooms, settings := newTestService()
	academyID := uuid.New()

	a := rooms.add(academyID, "A")
	ghost := uuid.New() // referenced by the previous save, row hard-deleted since

	prev := model.TimetableSnapshot{
		TimeInterval:       "1h",
		ClassroomIDs:       []uuid.UUID{a.ClassroomID, ghost},
		BuildingNames:      []model.BuildingName{{ID: 1, Name: "Main"}},
		BuildingClassrooms: map[string][]uuid.UUID{"1": {a.ClassroomID, ghost}},
	}
	_, err := settings.Upsert(context.Background(), academyID, prev)
	require.NoError(t, err)

	res, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: []SlotInput{idSlot(a.ClassroomID, "A")},
	}))
	require.NoError(t, err)

	// the ghost id has no resolvable name → silently excluded
	assert.Empty(t, res.RemovedNames)
}

func TestEmptyConfigurationSave(t *testing.T) {
	svc, _, _ := newTestService()
	academyID := uuid.New()

	res, err := svc.Save(context.Background(), academyID, baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: []SlotInput{{}, {}},
	}))
	require.NoError(t, err)

	assert.Empty(t, res.Settings.TimetableSettingsClassroomIDs)
	bc, err := res.Settings.BuildingClassrooms()
	require.NoError(t, err)
	require.Contains(t, bc, "1")
	assert.Empty(t, bc["1"])

	// distinguishable from "never saved"
	row, err := svc.Load(context.Background(), academyID)
	require.NoError(t, err)
	require.NotNil(t, row)
}

func TestLoadNeverSavedReturnsNil(t *testing.T) {
	svc, _, _ := newTestService()

	row, err := svc.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestZeroBuildingsRejected(t *testing.T) {
	svc, _, settings := newTestService()

	_, err := svc.Save(context.Background(), uuid.New(), baseInput())
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, settings.upsertCnt)
}

func TestBuildingWithoutSlotsRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Save(context.Background(), uuid.New(), baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: nil,
	}))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestTooManyFilledSlotsRejected(t *testing.T) {
	svc, _, _ := newTestService()

	slots := make([]SlotInput, 0, 7)
	for i := 0; i < 7; i++ {
		slots = append(slots, namedSlot("Room "+string(rune('A'+i))))
	}
	_, err := svc.Save(context.Background(), uuid.New(), baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: slots,
	}))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestBadTokensRejected(t *testing.T) {
	svc, _, _ := newTestService()
	academyID := uuid.New()
	b := BuildingInput{ID: 1, Name: "Main", Classrooms: []SlotInput{namedSlot("101")}}

	in := baseInput(b)
	in.OperatingDays = []string{"Mon", "Funday"}
	_, err := svc.Save(context.Background(), academyID, in)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)

	in = baseInput(b)
	in.OperatingDays = []string{"Mon", "Mon"}
	_, err = svc.Save(context.Background(), academyID, in)
	require.ErrorAs(t, err, &invalid)

	in = baseInput(b)
	in.TimeInterval = "45m"
	_, err = svc.Save(context.Background(), academyID, in)
	require.ErrorAs(t, err, &invalid)

	in = baseInput(b)
	in.DayTimes = map[string]model.DayWindow{"Mon": {Start: "9am", End: "22:00"}}
	_, err = svc.Save(context.Background(), academyID, in)
	require.ErrorAs(t, err, &invalid)
}

func TestCreateFailureAbortsBeforeUpsert(t *testing.T) {
	svc, rooms, settings := newTestService()
	rooms.failCreate = errors.New("connection reset")

	_, err := svc.Save(context.Background(), uuid.New(), baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: []SlotInput{namedSlot("101")},
	}))

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "classrooms.create", pe.Op)
	assert.Zero(t, settings.upsertCnt) // no settings write after a failed create
}

func TestUpsertFailureSurfacesPersistenceError(t *testing.T) {
	svc, rooms, settings := newTestService()
	settings.failUpsert = errors.New("statement timeout")

	_, err := svc.Save(context.Background(), uuid.New(), baseInput(BuildingInput{
		ID: 1, Name: "Main", Classrooms: []SlotInput{namedSlot("101")},
	}))

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "settings.upsert", pe.Op)
	// the classroom row created before the failure is not rolled back
	assert.Equal(t, 1, rooms.createCnt)
}
