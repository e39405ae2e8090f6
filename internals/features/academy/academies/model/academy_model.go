// file: internals/features/academy/academies/model/academy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademyModel struct {
	AcademyID uuid.UUID `json:"academy_id" gorm:"type:uuid;primaryKey;column:academy_id;default:gen_random_uuid()"`

	AcademiesName    string  `json:"academies_name" gorm:"type:varchar(100);not null;column:academies_name"`
	AcademiesPhone   *string `json:"academies_phone,omitempty" gorm:"type:varchar(30);column:academies_phone"`
	AcademiesAddress *string `json:"academies_address,omitempty" gorm:"type:text;column:academies_address"`

	AcademiesIsActive bool `json:"academies_is_active" gorm:"type:boolean;not null;default:true;column:academies_is_active"`

	AcademiesCreatedAt time.Time      `json:"academies_created_at" gorm:"column:academies_created_at;not null;autoCreateTime"`
	AcademiesUpdatedAt time.Time      `json:"academies_updated_at" gorm:"column:academies_updated_at;not null;autoUpdateTime"`
	AcademiesDeletedAt gorm.DeletedAt `json:"academies_deleted_at" gorm:"column:academies_deleted_at;index"`
}

func (AcademyModel) TableName() string {
	return "academies"
}
