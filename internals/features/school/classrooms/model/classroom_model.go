// file: internals/features/school/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassroomModel: maps to table classrooms
   ======================================================= */

type ClassroomModel struct {
	// PK
	ClassroomID uuid.UUID `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassroomsAcademyID uuid.UUID `json:"classrooms_academy_id" gorm:"type:uuid;not null;column:classrooms_academy_id"`

	ClassroomsName     string `json:"classrooms_name" gorm:"type:varchar(100);not null;column:classrooms_name"`
	ClassroomsCapacity int    `json:"classrooms_capacity" gorm:"type:int;not null;default:0;column:classrooms_capacity"`

	// Timestamps (auto create/update)
	ClassroomsCreatedAt time.Time      `json:"classrooms_created_at" gorm:"column:classrooms_created_at;not null;autoCreateTime"`
	ClassroomsUpdatedAt time.Time      `json:"classrooms_updated_at" gorm:"column:classrooms_updated_at;not null;autoUpdateTime"`
	ClassroomsDeletedAt gorm.DeletedAt `json:"classrooms_deleted_at" gorm:"column:classrooms_deleted_at;index"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
