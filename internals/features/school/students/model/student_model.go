// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	// Tenant / scope
	StudentsAcademyID uuid.UUID `json:"students_academy_id" gorm:"type:uuid;not null;column:students_academy_id"`

	StudentsName  string  `json:"students_name" gorm:"type:varchar(100);not null;column:students_name"`
	StudentsGrade *string `json:"students_grade,omitempty" gorm:"type:varchar(30);column:students_grade"`
	StudentsPhone *string `json:"students_phone,omitempty" gorm:"type:varchar(30);column:students_phone"`
	// Parent phone as typed at registration; drives the parent linking workflow
	StudentsParentPhone *string `json:"students_parent_phone,omitempty" gorm:"type:varchar(30);column:students_parent_phone"`

	StudentsClassID *uuid.UUID `json:"students_class_id,omitempty" gorm:"type:uuid;column:students_class_id"`

	StudentsIsActive bool `json:"students_is_active" gorm:"type:boolean;not null;default:true;column:students_is_active"`

	StudentsCreatedAt time.Time      `json:"students_created_at" gorm:"column:students_created_at;not null;autoCreateTime"`
	StudentsUpdatedAt time.Time      `json:"students_updated_at" gorm:"column:students_updated_at;not null;autoUpdateTime"`
	StudentsDeletedAt gorm.DeletedAt `json:"students_deleted_at" gorm:"column:students_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
