// file: internals/features/finance/tuition_fees/model/tuition_fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TuitionFeeModel: maps to table tuition_fees
   One row per student per billing month.
   ======================================================= */

const (
	TuitionStatusUnpaid  = "unpaid"
	TuitionStatusPending = "pending" // snap token issued, awaiting settlement
	TuitionStatusPaid    = "paid"
	TuitionStatusWaived  = "waived"
)

type TuitionFeeModel struct {
	TuitionFeeID uuid.UUID `json:"tuition_fee_id" gorm:"type:uuid;primaryKey;column:tuition_fee_id;default:gen_random_uuid()"`

	TuitionFeesAcademyID uuid.UUID `json:"tuition_fees_academy_id" gorm:"type:uuid;not null;uniqueIndex:uq_tuition_fee_month;column:tuition_fees_academy_id"`
	TuitionFeesStudentID uuid.UUID `json:"tuition_fees_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_tuition_fee_month;column:tuition_fees_student_id"`
	// "2026-03" form, one invoice per student per month
	TuitionFeesBillingMonth string `json:"tuition_fees_billing_month" gorm:"type:varchar(7);not null;uniqueIndex:uq_tuition_fee_month;column:tuition_fees_billing_month"`

	TuitionFeesAmount int     `json:"tuition_fees_amount" gorm:"type:integer;not null;column:tuition_fees_amount"`
	TuitionFeesTitle  string  `json:"tuition_fees_title" gorm:"type:varchar(120);not null;column:tuition_fees_title"`
	TuitionFeesMemo   *string `json:"tuition_fees_memo,omitempty" gorm:"type:text;column:tuition_fees_memo"`

	TuitionFeesStatus string     `json:"tuition_fees_status" gorm:"type:varchar(20);not null;default:'unpaid';column:tuition_fees_status"`
	TuitionFeesDueAt  *time.Time `json:"tuition_fees_due_at,omitempty" gorm:"column:tuition_fees_due_at"`
	TuitionFeesPaidAt *time.Time `json:"tuition_fees_paid_at,omitempty" gorm:"column:tuition_fees_paid_at"`

	// gateway bookkeeping
	TuitionFeesOrderID     *string `json:"tuition_fees_order_id,omitempty" gorm:"type:varchar(64);uniqueIndex;column:tuition_fees_order_id"`
	TuitionFeesSnapToken   *string `json:"tuition_fees_snap_token,omitempty" gorm:"type:varchar(120);column:tuition_fees_snap_token"`
	TuitionFeesRedirectURL *string `json:"tuition_fees_redirect_url,omitempty" gorm:"type:text;column:tuition_fees_redirect_url"`

	TuitionFeesCreatedAt time.Time      `json:"tuition_fees_created_at" gorm:"column:tuition_fees_created_at;not null;autoCreateTime"`
	TuitionFeesUpdatedAt time.Time      `json:"tuition_fees_updated_at" gorm:"column:tuition_fees_updated_at;not null;autoUpdateTime"`
	TuitionFeesDeletedAt gorm.DeletedAt `json:"tuition_fees_deleted_at" gorm:"column:tuition_fees_deleted_at;index"`
}

func (TuitionFeeModel) TableName() string {
	return "tuition_fees"
}

func IsTuitionStatus(s string) bool {
	switch s {
	case TuitionStatusUnpaid, TuitionStatusPending, TuitionStatusPaid, TuitionStatusWaived:
		return true
	}
	return false
}
