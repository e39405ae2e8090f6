// file: internals/features/school/timetable_settings/repository/classroom_store.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "akademiku_backend/internals/features/school/classrooms/model"
)

/* =======================================================
   GormClassroomStore: classroom repository contract used
   by the reconciler (list + create only, no update/delete)
   ======================================================= */

type GormClassroomStore struct {
	DB *gorm.DB
}

func NewGormClassroomStore(db *gorm.DB) *GormClassroomStore {
	return &GormClassroomStore{DB: db}
}

func (s *GormClassroomStore) ListByAcademy(ctx context.Context, academyID uuid.UUID) ([]classroomModel.ClassroomModel, error) {
	var rows []classroomModel.ClassroomModel
	err := s.DB.WithContext(ctx).
		Where("classrooms_academy_id = ? AND classrooms_deleted_at IS NULL", academyID).
		Order("classrooms_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormClassroomStore) Create(ctx context.Context, academyID uuid.UUID, name string, capacity int) (classroomModel.ClassroomModel, error) {
	m := classroomModel.ClassroomModel{
		ClassroomsAcademyID: academyID,
		ClassroomsName:      name,
		ClassroomsCapacity:  capacity,
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return classroomModel.ClassroomModel{}, err
	}
	return m, nil
}
