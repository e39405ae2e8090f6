// file: internals/features/academy/academies/dto/academy_dto.go
package dto

import (
	"strings"
	"time"

	academyModel "akademiku_backend/internals/features/academy/academies/model"

	"github.com/google/uuid"
)

type CreateAcademyRequest struct {
	AcademiesName    string  `json:"academies_name" validate:"required,min=2,max=100"`
	AcademiesPhone   *string `json:"academies_phone,omitempty" validate:"omitempty,max=30"`
	AcademiesAddress *string `json:"academies_address,omitempty"`
}

func (r *CreateAcademyRequest) Normalize() {
	r.AcademiesName = strings.TrimSpace(r.AcademiesName)
	if r.AcademiesPhone != nil {
		v := strings.TrimSpace(*r.AcademiesPhone)
		r.AcademiesPhone = &v
	}
}

type UpdateAcademyRequest struct {
	AcademiesName     *string `json:"academies_name,omitempty" validate:"omitempty,min=2,max=100"`
	AcademiesPhone    *string `json:"academies_phone,omitempty" validate:"omitempty,max=30"`
	AcademiesAddress  *string `json:"academies_address,omitempty"`
	AcademiesIsActive *bool   `json:"academies_is_active,omitempty"`
}

func (r *UpdateAcademyRequest) Normalize() {
	if r.AcademiesName != nil {
		v := strings.TrimSpace(*r.AcademiesName)
		r.AcademiesName = &v
	}
	if r.AcademiesPhone != nil {
		v := strings.TrimSpace(*r.AcademiesPhone)
		r.AcademiesPhone = &v
	}
}

type AcademyResponse struct {
	AcademyID          uuid.UUID `json:"academy_id"`
	AcademiesName      string    `json:"academies_name"`
	AcademiesPhone     *string   `json:"academies_phone,omitempty"`
	AcademiesAddress   *string   `json:"academies_address,omitempty"`
	AcademiesIsActive  bool      `json:"academies_is_active"`
	AcademiesCreatedAt time.Time `json:"academies_created_at"`
	AcademiesUpdatedAt time.Time `json:"academies_updated_at"`
}

func ToAcademyResponse(m academyModel.AcademyModel) AcademyResponse {
	return AcademyResponse{
		AcademyID:          m.AcademyID,
		AcademiesName:      m.AcademiesName,
		AcademiesPhone:     m.AcademiesPhone,
		AcademiesAddress:   m.AcademiesAddress,
		AcademiesIsActive:  m.AcademiesIsActive,
		AcademiesCreatedAt: m.AcademiesCreatedAt,
		AcademiesUpdatedAt: m.AcademiesUpdatedAt,
	}
}
