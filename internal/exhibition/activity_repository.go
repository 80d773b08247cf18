package exhibition

import (
	"context"

	"github.com/artfriendly/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityRepository persists likes, hopes and views
type ActivityRepository struct{}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) FindLike(ctx context.Context, db *gorm.DB, memberID, exhibitionID uint32) (*model.ExhibitionLike, error) {
	var like model.ExhibitionLike
	err := db.WithContext(ctx).
		Where("member_id = ? AND exhibition_id = ?", memberID, exhibitionID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *ActivityRepository) CreateLike(ctx context.Context, db *gorm.DB, like *model.ExhibitionLike) error {
	return db.WithContext(ctx).Create(like).Error
}

func (r *ActivityRepository) DeleteLike(ctx context.Context, db *gorm.DB, like *model.ExhibitionLike) error {
	return db.WithContext(ctx).Delete(like).Error
}

func (r *ActivityRepository) CountLikes(ctx context.Context, db *gorm.DB, exhibitionID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.ExhibitionLike{}).
		Where("exhibition_id = ?", exhibitionID).
		Count(&count).Error
	return count, err
}

// LikedExhibitionIDs returns the subset of exhibitionIDs liked by memberID
func (r *ActivityRepository) LikedExhibitionIDs(ctx context.Context, db *gorm.DB, memberID uint32, exhibitionIDs []uint32) (map[uint32]bool, error) {
	liked := make(map[uint32]bool, len(exhibitionIDs))
	if len(exhibitionIDs) == 0 {
		return liked, nil
	}

	var ids []uint32
	err := db.WithContext(ctx).
		Model(&model.ExhibitionLike{}).
		Where("member_id = ? AND exhibition_id IN ?", memberID, exhibitionIDs).
		Pluck("exhibition_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *ActivityRepository) FindHope(ctx context.Context, db *gorm.DB, memberID, exhibitionID uint32) (*model.ExhibitionHope, error) {
	var hope model.ExhibitionHope
	err := db.WithContext(ctx).
		Where("member_id = ? AND exhibition_id = ?", memberID, exhibitionID).
		First(&hope).Error
	if err != nil {
		return nil, err
	}
	return &hope, nil
}

func (r *ActivityRepository) CreateHope(ctx context.Context, db *gorm.DB, hope *model.ExhibitionHope) error {
	return db.WithContext(ctx).Create(hope).Error
}

func (r *ActivityRepository) UpdateHope(ctx context.Context, db *gorm.DB, hope *model.ExhibitionHope, value model.Hope) error {
	return db.WithContext(ctx).Model(hope).Update("hope", value).Error
}

func (r *ActivityRepository) DeleteHope(ctx context.Context, db *gorm.DB, hope *model.ExhibitionHope) error {
	return db.WithContext(ctx).Delete(hope).Error
}

func (r *ActivityRepository) HopesOf(ctx context.Context, db *gorm.DB, exhibitionID uint32) ([]model.Hope, error) {
	var hopes []model.Hope
	err := db.WithContext(ctx).
		Model(&model.ExhibitionHope{}).
		Where("exhibition_id = ?", exhibitionID).
		Pluck("hope", &hopes).Error
	return hopes, err
}

// CreateViewIfAbsent inserts the view and reports whether a new row was written
func (r *ActivityRepository) CreateViewIfAbsent(ctx context.Context, db *gorm.DB, view *model.ExhibitionView) (bool, error) {
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(view)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ActivityRepository) CountViews(ctx context.Context, db *gorm.DB, exhibitionID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.ExhibitionView{}).
		Where("exhibition_id = ?", exhibitionID).
		Count(&count).Error
	return count, err
}

// ExhibitionIDsTouchedBy returns every exhibition the member liked, hoped or viewed
func (r *ActivityRepository) ExhibitionIDsTouchedBy(ctx context.Context, db *gorm.DB, memberID uint32) ([]uint32, error) {
	seen := map[uint32]struct{}{}
	var ids []uint32

	for _, m := range []any{&model.ExhibitionLike{}, &model.ExhibitionHope{}, &model.ExhibitionView{}} {
		var found []uint32
		err := db.WithContext(ctx).
			Model(m).
			Where("member_id = ?", memberID).
			Pluck("exhibition_id", &found).Error
		if err != nil {
			return nil, err
		}
		for _, id := range found {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *ActivityRepository) DeleteByMember(ctx context.Context, db *gorm.DB, memberID uint32) error {
	for _, m := range []any{&model.ExhibitionLike{}, &model.ExhibitionHope{}, &model.ExhibitionView{}} {
		if err := db.WithContext(ctx).Where("member_id = ?", memberID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
