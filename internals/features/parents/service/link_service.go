// file: internals/features/parents/service/link_service.go
package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"

	parentModel "akademiku_backend/internals/features/parents/model"
	studentModel "akademiku_backend/internals/features/school/students/model"
)

/* =======================================================
   Store interfaces (injected, never the global DB)
   ======================================================= */

type ParentStore interface {
	// FindByPhone returns (nil, nil) when no parent carries the phone.
	FindByPhone(ctx context.Context, phone string) (*parentModel.ParentModel, error)
	Create(ctx context.Context, name, phone string) (parentModel.ParentModel, error)
	// EnsureAcademyLink / EnsureStudentLink report whether a new row was written.
	EnsureAcademyLink(ctx context.Context, parentID, academyID uuid.UUID) (bool, error)
	EnsureStudentLink(ctx context.Context, parentID, studentID uuid.UUID) (bool, error)
}

type StudentStore interface {
	// GetByID returns (nil, nil) when the student does not exist in the academy.
	GetByID(ctx context.Context, academyID, studentID uuid.UUID) (*studentModel.StudentModel, error)
}

/* =======================================================
   LinkService: phone-driven parent dedup and linking
   ======================================================= */

type LinkService struct {
	Parents  ParentStore
	Students StudentStore
}

func NewLinkService(parents ParentStore, students StudentStore) *LinkService {
	return &LinkService{Parents: parents, Students: students}
}

type LinkInput struct {
	Phone      string
	ParentName string
	StudentID  uuid.UUID
}

type LinkResult struct {
	Parent        parentModel.ParentModel
	ParentCreated bool
	AcademyLinked bool
	StudentLinked bool
}

// LinkByPhone finds or creates the parent carrying the phone number, then
// associates it with the academy and the student. Re-running the same request
// changes nothing: the parent is matched by phone and the link rows are upserts.
func (s *LinkService) LinkByPhone(ctx context.Context, academyID uuid.UUID, in LinkInput) (LinkResult, error) {
	var res LinkResult

	phone := NormalizePhone(in.Phone)
	if err := validatePhone(phone); err != nil {
		return res, err
	}

	student, err := s.Students.GetByID(ctx, academyID, in.StudentID)
	if err != nil {
		return res, &PersistenceError{Op: "students.get", Err: err}
	}
	if student == nil {
		return res, invalidInputf("student %s not found", in.StudentID)
	}

	parent, err := s.Parents.FindByPhone(ctx, phone)
	if err != nil {
		return res, &PersistenceError{Op: "parents.find", Err: err}
	}
	if parent == nil {
		name := strings.TrimSpace(in.ParentName)
		if name == "" {
			// fall back to the child's name so the row is never anonymous
			name = student.StudentsName + " 학부모"
		}
		created, err := s.Parents.Create(ctx, name, phone)
		if err != nil {
			return res, &PersistenceError{Op: "parents.create", Err: err}
		}
		parent = &created
		res.ParentCreated = true
	}
	res.Parent = *parent

	res.AcademyLinked, err = s.Parents.EnsureAcademyLink(ctx, parent.ParentID, academyID)
	if err != nil {
		return res, &PersistenceError{Op: "parents.link_academy", Err: err}
	}

	res.StudentLinked, err = s.Parents.EnsureStudentLink(ctx, parent.ParentID, in.StudentID)
	if err != nil {
		return res, &PersistenceError{Op: "parents.link_student", Err: err}
	}

	return res, nil
}

/* =======================================================
   Phone normalization
   ======================================================= */

// NormalizePhone strips separators and national prefixes so that
// "010-1234-5678", "01012345678" and "+82 10 1234 5678" dedupe to one parent.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	// +82 10 ... → 010 ...
	if strings.HasPrefix(digits, "82") && len(digits) > 2 && digits[2] != '0' {
		digits = "0" + digits[2:]
	}
	return digits
}

func validatePhone(normalized string) error {
	if len(normalized) < 7 {
		return invalidInputf("phone number %q is too short", normalized)
	}
	if len(normalized) > 15 {
		return invalidInputf("phone number %q is too long", normalized)
	}
	return nil
}
