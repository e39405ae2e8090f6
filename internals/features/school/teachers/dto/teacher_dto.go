// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	teacherModel "akademiku_backend/internals/features/school/teachers/model"

	"github.com/google/uuid"
)

type CreateTeacherRequest struct {
	TeachersName    string  `json:"teachers_name" validate:"required,min=1,max=100"`
	TeachersPhone   *string `json:"teachers_phone,omitempty" validate:"omitempty,max=30"`
	TeachersSubject *string `json:"teachers_subject,omitempty" validate:"omitempty,max=100"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.TeachersName = strings.TrimSpace(r.TeachersName)
	if r.TeachersPhone != nil {
		v := strings.TrimSpace(*r.TeachersPhone)
		r.TeachersPhone = &v
	}
	if r.TeachersSubject != nil {
		v := strings.TrimSpace(*r.TeachersSubject)
		r.TeachersSubject = &v
	}
}

type UpdateTeacherRequest struct {
	TeachersName     *string `json:"teachers_name,omitempty" validate:"omitempty,min=1,max=100"`
	TeachersPhone    *string `json:"teachers_phone,omitempty" validate:"omitempty,max=30"`
	TeachersSubject  *string `json:"teachers_subject,omitempty" validate:"omitempty,max=100"`
	TeachersIsActive *bool   `json:"teachers_is_active,omitempty"`
}

func (r *UpdateTeacherRequest) Normalize() {
	if r.TeachersName != nil {
		v := strings.TrimSpace(*r.TeachersName)
		r.TeachersName = &v
	}
	if r.TeachersPhone != nil {
		v := strings.TrimSpace(*r.TeachersPhone)
		r.TeachersPhone = &v
	}
	if r.TeachersSubject != nil {
		v := strings.TrimSpace(*r.TeachersSubject)
		r.TeachersSubject = &v
	}
}

type TeacherResponse struct {
	TeacherID         uuid.UUID `json:"teacher_id"`
	TeachersAcademyID uuid.UUID `json:"teachers_academy_id"`
	TeachersName      string    `json:"teachers_name"`
	TeachersPhone     *string   `json:"teachers_phone,omitempty"`
	TeachersSubject   *string   `json:"teachers_subject,omitempty"`
	TeachersIsActive  bool      `json:"teachers_is_active"`
	TeachersCreatedAt time.Time `json:"teachers_created_at"`
	TeachersUpdatedAt time.Time `json:"teachers_updated_at"`
}

func ToTeacherResponse(m teacherModel.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:         m.TeacherID,
		TeachersAcademyID: m.TeachersAcademyID,
		TeachersName:      m.TeachersName,
		TeachersPhone:     m.TeachersPhone,
		TeachersSubject:   m.TeachersSubject,
		TeachersIsActive:  m.TeachersIsActive,
		TeachersCreatedAt: m.TeachersCreatedAt,
		TeachersUpdatedAt: m.TeachersUpdatedAt,
	}
}
