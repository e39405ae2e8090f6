// file: internals/features/parents/model/parent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ParentModel: maps to table parents
   One row per phone number across all academies; the same
   parent account is shared by both parent apps.
   ======================================================= */

type ParentModel struct {
	ParentID uuid.UUID `json:"parent_id" gorm:"type:uuid;primaryKey;column:parent_id;default:gen_random_uuid()"`

	ParentsName string `json:"parents_name" gorm:"type:varchar(100);not null;column:parents_name"`
	// normalized digits-only form, unique across tenants
	ParentsPhone string `json:"parents_phone" gorm:"type:varchar(30);not null;uniqueIndex;column:parents_phone"`

	ParentsCreatedAt time.Time      `json:"parents_created_at" gorm:"column:parents_created_at;not null;autoCreateTime"`
	ParentsUpdatedAt time.Time      `json:"parents_updated_at" gorm:"column:parents_updated_at;not null;autoUpdateTime"`
	ParentsDeletedAt gorm.DeletedAt `json:"parents_deleted_at" gorm:"column:parents_deleted_at;index"`
}

func (ParentModel) TableName() string {
	return "parents"
}

/* =======================================================
   Join rows
   ======================================================= */

// ParentAcademyModel: which academies a parent is associated with.
type ParentAcademyModel struct {
	ParentAcademyID uuid.UUID `json:"parent_academy_id" gorm:"type:uuid;primaryKey;column:parent_academy_id;default:gen_random_uuid()"`

	ParentAcademiesParentID  uuid.UUID `json:"parent_academies_parent_id" gorm:"type:uuid;not null;uniqueIndex:uq_parent_academy;column:parent_academies_parent_id"`
	ParentAcademiesAcademyID uuid.UUID `json:"parent_academies_academy_id" gorm:"type:uuid;not null;uniqueIndex:uq_parent_academy;column:parent_academies_academy_id"`

	ParentAcademiesCreatedAt time.Time `json:"parent_academies_created_at" gorm:"column:parent_academies_created_at;not null;autoCreateTime"`
}

func (ParentAcademyModel) TableName() string {
	return "parent_academies"
}

// ParentStudentModel: parent ↔ child linkage.
type ParentStudentModel struct {
	ParentStudentID uuid.UUID `json:"parent_student_id" gorm:"type:uuid;primaryKey;column:parent_student_id;default:gen_random_uuid()"`

	ParentStudentsParentID  uuid.UUID `json:"parent_students_parent_id" gorm:"type:uuid;not null;uniqueIndex:uq_parent_student;column:parent_students_parent_id"`
	ParentStudentsStudentID uuid.UUID `json:"parent_students_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_parent_student;column:parent_students_student_id"`

	ParentStudentsCreatedAt time.Time `json:"parent_students_created_at" gorm:"column:parent_students_created_at;not null;autoCreateTime"`
}

func (ParentStudentModel) TableName() string {
	return "parent_students"
}
