// file: internals/features/parents/repository/parent_store.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	parentModel "akademiku_backend/internals/features/parents/model"
	studentModel "akademiku_backend/internals/features/school/students/model"
)

/* =======================================================
   GormParentStore
   ======================================================= */

type GormParentStore struct {
	DB *gorm.DB
}

func NewGormParentStore(db *gorm.DB) *GormParentStore {
	return &GormParentStore{DB: db}
}

func (s *GormParentStore) FindByPhone(ctx context.Context, phone string) (*parentModel.ParentModel, error) {
	var row parentModel.ParentModel
	err := s.DB.WithContext(ctx).
		Where("parents_phone = ?", phone).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormParentStore) Create(ctx context.Context, name, phone string) (parentModel.ParentModel, error) {
	row := parentModel.ParentModel{
		ParentsName:  name,
		ParentsPhone: phone,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return parentModel.ParentModel{}, err
	}
	return row, nil
}

func (s *GormParentStore) EnsureAcademyLink(ctx context.Context, parentID, academyID uuid.UUID) (bool, error) {
	row := parentModel.ParentAcademyModel{
		ParentAcademiesParentID:  parentID,
		ParentAcademiesAcademyID: academyID,
	}
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "parent_academies_parent_id"}, {Name: "parent_academies_academy_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormParentStore) EnsureStudentLink(ctx context.Context, parentID, studentID uuid.UUID) (bool, error) {
	row := parentModel.ParentStudentModel{
		ParentStudentsParentID:  parentID,
		ParentStudentsStudentID: studentID,
	}
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "parent_students_parent_id"}, {Name: "parent_students_student_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

/* =======================================================
   GormStudentStore (read side for the link workflow)
   ======================================================= */

type GormStudentStore struct {
	DB *gorm.DB
}

func NewGormStudentStore(db *gorm.DB) *GormStudentStore {
	return &GormStudentStore{DB: db}
}

func (s *GormStudentStore) GetByID(ctx context.Context, academyID, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var row studentModel.StudentModel
	err := s.DB.WithContext(ctx).
		Where("student_id = ? AND students_academy_id = ?", studentID, academyID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
