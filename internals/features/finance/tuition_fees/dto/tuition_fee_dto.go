// file: internals/features/finance/tuition_fees/dto/tuition_fee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/finance/tuition_fees/model"
)

/* ---------- requests ---------- */

type CreateTuitionFeeRequest struct {
	StudentID    uuid.UUID  `json:"student_id" validate:"required"`
	BillingMonth string     `json:"billing_month" validate:"required,len=7"` // "2026-03"
	Amount       int        `json:"amount" validate:"required,gt=0"`
	Title        string     `json:"title" validate:"required,max=120"`
	Memo         *string    `json:"memo,omitempty" validate:"omitempty,max=2000"`
	DueAt        *time.Time `json:"due_at,omitempty"`
}

func (r *CreateTuitionFeeRequest) Normalize() {
	r.BillingMonth = strings.TrimSpace(r.BillingMonth)
	r.Title = strings.TrimSpace(r.Title)
	if r.Memo != nil {
		m := strings.TrimSpace(*r.Memo)
		if m == "" {
			r.Memo = nil
		} else {
			r.Memo = &m
		}
	}
}

type UpdateTuitionFeeRequest struct {
	Amount *int       `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Title  *string    `json:"title,omitempty" validate:"omitempty,max=120"`
	Memo   *string    `json:"memo,omitempty" validate:"omitempty,max=2000"`
	Status *string    `json:"status,omitempty" validate:"omitempty,oneof=unpaid pending paid waived"`
	DueAt  *time.Time `json:"due_at,omitempty"`
}

func (r *UpdateTuitionFeeRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
}

type SnapTokenRequest struct {
	PayerName  string `json:"payer_name" validate:"omitempty,max=100"`
	PayerEmail string `json:"payer_email" validate:"omitempty,email"`
	PayerPhone string `json:"payer_phone" validate:"omitempty,max=30"`
}

/* ---------- responses ---------- */

type TuitionFeeResponse struct {
	TuitionFeeID uuid.UUID  `json:"tuition_fee_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	BillingMonth string     `json:"billing_month"`
	Amount       int        `json:"amount"`
	Title        string     `json:"title"`
	Memo         *string    `json:"memo,omitempty"`
	Status       string     `json:"status"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	OrderID      *string    `json:"order_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToTuitionFeeResponse(m model.TuitionFeeModel) TuitionFeeResponse {
	return TuitionFeeResponse{
		TuitionFeeID: m.TuitionFeeID,
		StudentID:    m.TuitionFeesStudentID,
		BillingMonth: m.TuitionFeesBillingMonth,
		Amount:       m.TuitionFeesAmount,
		Title:        m.TuitionFeesTitle,
		Memo:         m.TuitionFeesMemo,
		Status:       m.TuitionFeesStatus,
		DueAt:        m.TuitionFeesDueAt,
		PaidAt:       m.TuitionFeesPaidAt,
		OrderID:      m.TuitionFeesOrderID,
		CreatedAt:    m.TuitionFeesCreatedAt,
		UpdatedAt:    m.TuitionFeesUpdatedAt,
	}
}

type SnapTokenResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
	OrderID     string `json:"order_id"`
}
