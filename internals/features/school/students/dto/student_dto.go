// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	studentModel "akademiku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
)

type CreateStudentRequest struct {
	StudentsName        string     `json:"students_name" validate:"required,min=1,max=100"`
	StudentsGrade       *string    `json:"students_grade,omitempty" validate:"omitempty,max=30"`
	StudentsPhone       *string    `json:"students_phone,omitempty" validate:"omitempty,max=30"`
	StudentsParentPhone *string    `json:"students_parent_phone,omitempty" validate:"omitempty,max=30"`
	StudentsClassID     *uuid.UUID `json:"students_class_id,omitempty"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentsName = strings.TrimSpace(r.StudentsName)
	trim := func(p **string) {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	trim(&r.StudentsGrade)
	trim(&r.StudentsPhone)
	trim(&r.StudentsParentPhone)
}

type UpdateStudentRequest struct {
	StudentsName        *string    `json:"students_name,omitempty" validate:"omitempty,min=1,max=100"`
	StudentsGrade       *string    `json:"students_grade,omitempty" validate:"omitempty,max=30"`
	StudentsPhone       *string    `json:"students_phone,omitempty" validate:"omitempty,max=30"`
	StudentsParentPhone *string    `json:"students_parent_phone,omitempty" validate:"omitempty,max=30"`
	StudentsClassID     *uuid.UUID `json:"students_class_id,omitempty"`
	StudentsIsActive    *bool      `json:"students_is_active,omitempty"`
}

func (r *UpdateStudentRequest) Normalize() {
	trim := func(p **string) {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	trim(&r.StudentsName)
	trim(&r.StudentsGrade)
	trim(&r.StudentsPhone)
	trim(&r.StudentsParentPhone)
}

type StudentResponse struct {
	StudentID           uuid.UUID  `json:"student_id"`
	StudentsAcademyID   uuid.UUID  `json:"students_academy_id"`
	StudentsName        string     `json:"students_name"`
	StudentsGrade       *string    `json:"students_grade,omitempty"`
	StudentsPhone       *string    `json:"students_phone,omitempty"`
	StudentsParentPhone *string    `json:"students_parent_phone,omitempty"`
	StudentsClassID     *uuid.UUID `json:"students_class_id,omitempty"`
	StudentsIsActive    bool       `json:"students_is_active"`
	StudentsCreatedAt   time.Time  `json:"students_created_at"`
	StudentsUpdatedAt   time.Time  `json:"students_updated_at"`
}

func ToStudentResponse(m studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:           m.StudentID,
		StudentsAcademyID:   m.StudentsAcademyID,
		StudentsName:        m.StudentsName,
		StudentsGrade:       m.StudentsGrade,
		StudentsPhone:       m.StudentsPhone,
		StudentsParentPhone: m.StudentsParentPhone,
		StudentsClassID:     m.StudentsClassID,
		StudentsIsActive:    m.StudentsIsActive,
		StudentsCreatedAt:   m.StudentsCreatedAt,
		StudentsUpdatedAt:   m.StudentsUpdatedAt,
	}
}
