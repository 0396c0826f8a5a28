package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// updateFields applies a partial update and reloads the row. An empty field set
// only reloads, so callers can treat "nothing to change" as a read.
func updateFields[T any](db *gorm.DB, id uuid.UUID, fields map[string]interface{}, preloads ...string) (*T, error) {
	if len(fields) > 0 {
		res := db.Model(new(T)).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return findByID[T](db, id, preloads...)
}

func findByID[T any](db *gorm.DB, id uuid.UUID, preloads ...string) (*T, error) {
	q := db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var out T
	if err := q.First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// deleteByID soft deletes a row and reports gorm.ErrRecordNotFound when nothing matched.
func deleteByID[T any](db *gorm.DB, id uuid.UUID) error {
	res := db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
