// file: internals/features/parents/service/link_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parentModel "akademiku_backend/internals/features/parents/model"
	studentModel "akademiku_backend/internals/features/school/students/model"
)

/* ---------- fakes ---------- */

type fakeParentStore struct {
	parents      map[string]parentModel.ParentModel // keyed by phone
	academyLinks map[string]bool
	studentLinks map[string]bool
	createCnt    int

	failFind   error
	failCreate error
	failLink   error
}

func newFakeParentStore() *fakeParentStore {
	return &fakeParentStore{
		parents:      map[string]parentModel.ParentModel{},
		academyLinks: map[string]bool{},
		studentLinks: map[string]bool{},
	}
}

func (f *fakeParentStore) FindByPhone(_ context.Context, phone string) (*parentModel.ParentModel, error) {
	if f.failFind != nil {
		return nil, f.failFind
	}
	if p, ok := f.parents[phone]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeParentStore) Create(_ context.Context, name, phone string) (parentModel.ParentModel, error) {
	if f.failCreate != nil {
		return parentModel.ParentModel{}, f.failCreate
	}
	f.createCnt++
	p := parentModel.ParentModel{ParentID: uuid.New(), ParentsName: name, ParentsPhone: phone}
	f.parents[phone] = p
	return p, nil
}

func (f *fakeParentStore) EnsureAcademyLink(_ context.Context, parentID, academyID uuid.UUID) (bool, error) {
	if f.failLink != nil {
		return false, f.failLink
	}
	k := parentID.String() + "/" + academyID.String()
	if f.academyLinks[k] {
		return false, nil
	}
	f.academyLinks[k] = true
	return true, nil
}

func (f *fakeParentStore) EnsureStudentLink(_ context.Context, parentID, studentID uuid.UUID) (bool, error) {
	if f.failLink != nil {
		return false, f.failLink
	}
	k := parentID.String() + "/" + studentID.String()
	if f.studentLinks[k] {
		return false, nil
	}
	f.studentLinks[k] = true
	return true, nil
}

type fakeStudentStore struct {
	students map[uuid.UUID]studentModel.StudentModel
	failGet  error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[uuid.UUID]studentModel.StudentModel{}}
}

func (f *fakeStudentStore) add(academyID uuid.UUID, name string) uuid.UUID {
	id := uuid.New()
	f.students[id] = studentModel.StudentModel{
		StudentID:         id,
		StudentsAcademyID: academyID,
		StudentsName:      name,
	}
	return id
}

func (f *fakeStudentStore) GetByID(_ context.Context, academyID, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	st, ok := f.students[studentID]
	if !ok || st.StudentsAcademyID != academyID {
		return nil, nil
	}
	cp := st
	return &cp, nil
}

/* ---------- tests ---------- */

func TestLinkCreatesParentOnFirstCall(t *testing.T) {
	parents := newFakeParentStore()
	students := newFakeStudentStore()
	academyID := uuid.New()
	studentID := students.add(academyID, "김민준")

	svc := NewLinkService(parents, students)
	res, err := svc.LinkByPhone(context.Background(), academyID, LinkInput{
		Phone:      "010-1234-5678",
		ParentName: "김학부모",
		StudentID:  studentID,
	})
	require.NoError(t, err)

	assert.True(t, res.ParentCreated)
	assert.True(t, res.AcademyLinked)
	assert.True(t, res.StudentLinked)
	assert.Equal(t, "01012345678", res.Parent.ParentsPhone)
	assert.Equal(t, "김학부모", res.Parent.ParentsName)
}

func TestLinkIsIdempotent(t *testing.T) {
	parents := newFakeParentStore()
	students := newFakeStudentStore()
	academyID := uuid.New()
	studentID := students.add(academyID, "김민준")

	svc := NewLinkService(parents, students)
	in := LinkInput{Phone: "01012345678", ParentName: "김학부모", StudentID: studentID}

	first, err := svc.LinkByPhone(context.Background(), academyID, in)
	require.NoError(t, err)

	second, err := svc.LinkByPhone(context.Background(), academyID, in)
	require.NoError(t, err)

	assert.False(t, second.ParentCreated)
	assert.False(t, second.AcademyLinked)
	assert.False(t, second.StudentLinked)
	assert.Equal(t, first.Parent.ParentID, second.Parent.ParentID)
	assert.Equal(t, 1, parents.createCnt)
}

func TestLinkDedupesAcrossPhoneFormats(t *testing.T) {
	parents := newFakeParentStore()
	students := newFakeStudentStore()
	academyID := uuid.New()
	firstChild := students.add(academyID, "김민준")
	secondChild := students.add(academyID, "김서연")

	svc := NewLinkService(parents, students)

	_, err := svc.LinkByPhone(context.Background(), academyID, LinkInput{
		Phone: "010-1234-5678", ParentName: "김학부모", StudentID: firstChild,
	})
	require.NoError(t, err)

	res, err := svc.LinkByPhone(context.Background(), academyID, LinkInput{
		Phone: "+82 10 1234 5678", ParentName: "김학부모", StudentID: secondChild,
	})
	require.NoError(t, err)

	assert.False(t, res.ParentCreated, "same number in international form must reuse the parent")
	assert.True(t, res.StudentLinked, "second child still gets a fresh link")
	assert.Equal(t, 1, parents.createCnt)
}

func TestLinkSameParentSecondAcademy(t *testing.T) {
	parents := newFakeParentStore()
	students := newFakeStudentStore()
	academyA := uuid.New()
	academyB := uuid.New()
	childA := students.add(academyA, "김민준")
	childB := students.add(academyB, "김민준")

	svc := NewLinkService(parents, students)
	_, err := svc.LinkByPhone(context.Background(), academyA, LinkInput{
		Phone: "01012345678", ParentName: "김학부모", StudentID: childA,
	})
	require.NoError(t, err)

	res, err := svc.LinkByPhone(context.Background(), academyB, LinkInput{
		Phone: "01012345678", ParentName: "김학부모", StudentID: childB,
	})
	require.NoError(t, err)

	assert.False(t, res.ParentCreated)
	assert.True(t, res.AcademyLinked, "new academy association for the existing parent")
	assert.True(t, res.StudentLinked)
}

func TestLinkFallsBackToChildNameWhenParentNameEmpty(t *testing.T) {
	parents := newFakeParentStore()
	students := newFakeStudentStore()
	academyID := uuid.New()
	studentID := students.add(academyID, "김민준")

	svc := NewLinkService(parents, students)
	res, err := svc.LinkByPhone(context.Background(), academyID, LinkInput{
		Phone: "01012345678", StudentID: studentID,
	})
	require.NoError(t, err)
	assert.Equal(t, "김민준 학부모", res.Parent.ParentsName)
}

func TestLinkRejectsShortPhone(t *testing.T) {
	svc := NewLinkService(newFakeParentStore(), newFakeStudentStore())
	_, err := svc.LinkByPhone(context.Background(), uuid.New(), LinkInput{
		Phone: "123", StudentID: uuid.New(),
	})
	var inv *InvalidInputError
	require.ErrorAs(t, err, &inv)
}

func TestLinkRejectsUnknownStudent(t *testing.T) {
	parents := newFakeParentStore()
	students := newFakeStudentStore()
	otherAcademy := uuid.New()
	studentID := students.add(otherAcademy, "김민준")

	svc := NewLinkService(parents, students)
	_, err := svc.LinkByPhone(context.Background(), uuid.New(), LinkInput{
		Phone: "01012345678", StudentID: studentID,
	})
	var inv *InvalidInputError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, 0, parents.createCnt, "no parent row for a rejected request")
}

func TestLinkSurfacesStoreFailure(t *testing.T) {
	parents := newFakeParentStore()
	parents.failCreate = errors.New("connection reset")
	students := newFakeStudentStore()
	academyID := uuid.New()
	studentID := students.add(academyID, "김민준")

	svc := NewLinkService(parents, students)
	_, err := svc.LinkByPhone(context.Background(), academyID, LinkInput{
		Phone: "01012345678", StudentID: studentID,
	})
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "parents.create", pe.Op)
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"010-1234-5678":    "01012345678",
		"01012345678":      "01012345678",
		"+82 10 1234 5678": "01012345678",
		"(02) 345-6789":    "023456789",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizePhone(raw), raw)
	}
}
