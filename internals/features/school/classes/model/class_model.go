// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassesAcademyID uuid.UUID `json:"classes_academy_id" gorm:"type:uuid;not null;column:classes_academy_id"`

	ClassesName      string     `json:"classes_name" gorm:"type:varchar(100);not null;column:classes_name"`
	ClassesTeacherID *uuid.UUID `json:"classes_teacher_id,omitempty" gorm:"type:uuid;column:classes_teacher_id"`
	// Classroom assignment, nullable; the timetable reconciler owns classroom
	// creation, this is only a reference.
	ClassesClassroomID *uuid.UUID `json:"classes_classroom_id,omitempty" gorm:"type:uuid;column:classes_classroom_id"`

	ClassesDayOfWeek *int    `json:"classes_day_of_week,omitempty" gorm:"type:int;column:classes_day_of_week"` // 1..7
	ClassesStartTime *string `json:"classes_start_time,omitempty" gorm:"type:varchar(5);column:classes_start_time"`
	ClassesEndTime   *string `json:"classes_end_time,omitempty" gorm:"type:varchar(5);column:classes_end_time"`

	ClassesIsActive bool `json:"classes_is_active" gorm:"type:boolean;not null;default:true;column:classes_is_active"`

	ClassesCreatedAt time.Time      `json:"classes_created_at" gorm:"column:classes_created_at;not null;autoCreateTime"`
	ClassesUpdatedAt time.Time      `json:"classes_updated_at" gorm:"column:classes_updated_at;not null;autoUpdateTime"`
	ClassesDeletedAt gorm.DeletedAt `json:"classes_deleted_at" gorm:"column:classes_deleted_at;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
