// file: internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	classroomModel "akademiku_backend/internals/features/school/classrooms/model"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateClassroomRequest struct {
	ClassroomsName     string `json:"classrooms_name" validate:"required,min=1,max=100"`
	ClassroomsCapacity *int   `json:"classrooms_capacity,omitempty" validate:"omitempty,min=0"`
}

func (r *CreateClassroomRequest) Normalize() {
	r.ClassroomsName = strings.TrimSpace(r.ClassroomsName)
}

type UpdateClassroomRequest struct {
	ClassroomsName     *string `json:"classrooms_name,omitempty" validate:"omitempty,min=1,max=100"`
	ClassroomsCapacity *int    `json:"classrooms_capacity,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateClassroomRequest) Normalize() {
	if r.ClassroomsName != nil {
		v := strings.TrimSpace(*r.ClassroomsName)
		r.ClassroomsName = &v
	}
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type ClassroomResponse struct {
	ClassroomID         uuid.UUID  `json:"classroom_id"`
	ClassroomsAcademyID uuid.UUID  `json:"classrooms_academy_id"`
	ClassroomsName      string     `json:"classrooms_name"`
	ClassroomsCapacity  int        `json:"classrooms_capacity"`
	ClassroomsCreatedAt time.Time  `json:"classrooms_created_at"`
	ClassroomsUpdatedAt time.Time  `json:"classrooms_updated_at"`
	ClassroomsDeletedAt *time.Time `json:"classrooms_deleted_at,omitempty"`
}

func ToClassroomResponse(m classroomModel.ClassroomModel) ClassroomResponse {
	var deletedAt *time.Time
	if m.ClassroomsDeletedAt.Valid {
		deletedAt = &m.ClassroomsDeletedAt.Time
	}

	return ClassroomResponse{
		ClassroomID:         m.ClassroomID,
		ClassroomsAcademyID: m.ClassroomsAcademyID,
		ClassroomsName:      m.ClassroomsName,
		ClassroomsCapacity:  m.ClassroomsCapacity,
		ClassroomsCreatedAt: m.ClassroomsCreatedAt,
		ClassroomsUpdatedAt: m.ClassroomsUpdatedAt,
		ClassroomsDeletedAt: deletedAt,
	}
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListClassroomsQuery struct {
	Search string `query:"search"`
	Sort   string `query:"sort"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

func (q *ListClassroomsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}
