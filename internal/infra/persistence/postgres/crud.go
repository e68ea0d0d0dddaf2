package postgres

import (
	"context"

	"gorm.io/gorm"
)

// crudRepository is the generic CRUD base shared by every entity repository.
// It operates on persistence models; the embedding repository is responsible
// for mapping models to domain entities and database errors to domain errors.
type crudRepository[M any] struct {
	db *gorm.DB
}

// first fetches a single record by primary key. gorm.ErrRecordNotFound
// passes through untranslated.
func (r *crudRepository[M]) first(ctx context.Context, id uint) (*M, error) {
	var m M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}

	return &m, nil
}

// page fetches a window over all records in insertion order.
func (r *crudRepository[M]) page(ctx context.Context, skip, limit int) ([]*M, error) {
	var models []*M
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	return models, nil
}

// insert persists a new record. Generated ID and timestamps are written back
// onto the model by gorm.
func (r *crudRepository[M]) insert(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// updateByID overwrites only the given columns and returns the fresh record.
// An empty field map is a no-op returning the current state. Omitted fields
// are never touched; callers express "leave unchanged" by omission.
func (r *crudRepository[M]) updateByID(ctx context.Context, id uint, fields map[string]any) (*M, error) {
	m, err := r.first(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return m, nil
	}

	if err := r.db.WithContext(ctx).Model(m).Updates(fields).Error; err != nil {
		return nil, err
	}

	// Re-read so server-assigned values (updated_at) are reflected.
	return r.first(ctx, id)
}

// deleteByID removes a record permanently. Returns false when no row matched.
func (r *crudRepository[M]) deleteByID(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
