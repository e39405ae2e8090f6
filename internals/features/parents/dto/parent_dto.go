// file: internals/features/parents/dto/parent_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/parents/model"
)

/* ---------- requests ---------- */

type LinkParentRequest struct {
	Phone      string    `json:"phone" validate:"required,min=7,max=30"`
	ParentName string    `json:"parent_name" validate:"omitempty,max=100"`
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
}

func (r *LinkParentRequest) Normalize() {
	r.Phone = strings.TrimSpace(r.Phone)
	r.ParentName = strings.TrimSpace(r.ParentName)
}

/* ---------- responses ---------- */

type ParentResponse struct {
	ParentID     uuid.UUID `json:"parent_id"`
	ParentsName  string    `json:"parents_name"`
	ParentsPhone string    `json:"parents_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToParentResponse(m model.ParentModel) ParentResponse {
	return ParentResponse{
		ParentID:     m.ParentID,
		ParentsName:  m.ParentsName,
		ParentsPhone: m.ParentsPhone,
		CreatedAt:    m.ParentsCreatedAt,
	}
}

type LinkParentResponse struct {
	Parent        ParentResponse `json:"parent"`
	ParentCreated bool           `json:"parent_created"`
	AcademyLinked bool           `json:"academy_linked"`
	StudentLinked bool           `json:"student_linked"`
}
