// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	// Tenant / scope
	TeachersAcademyID uuid.UUID `json:"teachers_academy_id" gorm:"type:uuid;not null;column:teachers_academy_id"`

	TeachersName    string  `json:"teachers_name" gorm:"type:varchar(100);not null;column:teachers_name"`
	TeachersPhone   *string `json:"teachers_phone,omitempty" gorm:"type:varchar(30);column:teachers_phone"`
	TeachersSubject *string `json:"teachers_subject,omitempty" gorm:"type:varchar(100);column:teachers_subject"`

	TeachersIsActive bool `json:"teachers_is_active" gorm:"type:boolean;not null;default:true;column:teachers_is_active"`

	TeachersCreatedAt time.Time      `json:"teachers_created_at" gorm:"column:teachers_created_at;not null;autoCreateTime"`
	TeachersUpdatedAt time.Time      `json:"teachers_updated_at" gorm:"column:teachers_updated_at;not null;autoUpdateTime"`
	TeachersDeletedAt gorm.DeletedAt `json:"teachers_deleted_at" gorm:"column:teachers_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
