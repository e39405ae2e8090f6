// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	classModel "akademiku_backend/internals/features/school/classes/model"

	"github.com/google/uuid"
)

type CreateClassRequest struct {
	ClassesName        string     `json:"classes_name" validate:"required,min=1,max=100"`
	ClassesTeacherID   *uuid.UUID `json:"classes_teacher_id,omitempty"`
	ClassesClassroomID *uuid.UUID `json:"classes_classroom_id,omitempty"`
	ClassesDayOfWeek   *int       `json:"classes_day_of_week,omitempty" validate:"omitempty,min=1,max=7"`
	ClassesStartTime   *string    `json:"classes_start_time,omitempty" validate:"omitempty,len=5"`
	ClassesEndTime     *string    `json:"classes_end_time,omitempty" validate:"omitempty,len=5"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassesName = strings.TrimSpace(r.ClassesName)
}

type UpdateClassRequest struct {
	ClassesName        *string    `json:"classes_name,omitempty" validate:"omitempty,min=1,max=100"`
	ClassesTeacherID   *uuid.UUID `json:"classes_teacher_id,omitempty"`
	ClassesClassroomID *uuid.UUID `json:"classes_classroom_id,omitempty"`
	ClassesDayOfWeek   *int       `json:"classes_day_of_week,omitempty" validate:"omitempty,min=1,max=7"`
	ClassesStartTime   *string    `json:"classes_start_time,omitempty" validate:"omitempty,len=5"`
	ClassesEndTime     *string    `json:"classes_end_time,omitempty" validate:"omitempty,len=5"`
	ClassesIsActive    *bool      `json:"classes_is_active,omitempty"`
}

func (r *UpdateClassRequest) Normalize() {
	if r.ClassesName != nil {
		v := strings.TrimSpace(*r.ClassesName)
		r.ClassesName = &v
	}
}

type ClassResponse struct {
	ClassID            uuid.UUID  `json:"class_id"`
	ClassesAcademyID   uuid.UUID  `json:"classes_academy_id"`
	ClassesName        string     `json:"classes_name"`
	ClassesTeacherID   *uuid.UUID `json:"classes_teacher_id,omitempty"`
	ClassesClassroomID *uuid.UUID `json:"classes_classroom_id,omitempty"`
	ClassesDayOfWeek   *int       `json:"classes_day_of_week,omitempty"`
	ClassesStartTime   *string    `json:"classes_start_time,omitempty"`
	ClassesEndTime     *string    `json:"classes_end_time,omitempty"`
	ClassesIsActive    bool       `json:"classes_is_active"`
	ClassesCreatedAt   time.Time  `json:"classes_created_at"`
	ClassesUpdatedAt   time.Time  `json:"classes_updated_at"`
}

func ToClassResponse(m classModel.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:            m.ClassID,
		ClassesAcademyID:   m.ClassesAcademyID,
		ClassesName:        m.ClassesName,
		ClassesTeacherID:   m.ClassesTeacherID,
		ClassesClassroomID: m.ClassesClassroomID,
		ClassesDayOfWeek:   m.ClassesDayOfWeek,
		ClassesStartTime:   m.ClassesStartTime,
		ClassesEndTime:     m.ClassesEndTime,
		ClassesIsActive:    m.ClassesIsActive,
		ClassesCreatedAt:   m.ClassesCreatedAt,
		ClassesUpdatedAt:   m.ClassesUpdatedAt,
	}
}
