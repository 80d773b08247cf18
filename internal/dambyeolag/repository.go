package dambyeolag

import (
	"context"

	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

const bookmarkCountExpr = "(SELECT COUNT(*) FROM dambyeolag_bookmark WHERE dambyeolag_bookmark.dambyeolag_id = dambyeolag.id)"

type DambyeolagRepository struct{}

func NewDambyeolagRepository() *DambyeolagRepository {
	return &DambyeolagRepository{}
}

func (r *DambyeolagRepository) Create(ctx context.Context, db *gorm.DB, dambyeolag *model.Dambyeolag) error {
	return db.WithContext(ctx).Omit("Member", "Exhibition").Create(dambyeolag).Error
}

// FindByID loads the writer with image and the exhibition with info
func (r *DambyeolagRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Dambyeolag, error) {
	var dambyeolag model.Dambyeolag
	err := db.WithContext(ctx).
		Preload("Member.Image").
		Preload("Exhibition.Info").
		Where("id = ?", ID).
		First(&dambyeolag).Error
	if err != nil {
		return nil, err
	}
	return &dambyeolag, nil
}

// FindPage lists an exhibition's walls ordered by sortType
func (r *DambyeolagRepository) FindPage(ctx context.Context, db *gorm.DB, exhibitionID uint32, sortType string, offset, limit int) ([]model.Dambyeolag, int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&model.Dambyeolag{}).
		Where("exhibition_id = ?", exhibitionID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).
		Preload("Member.Image").
		Where("exhibition_id = ?", exhibitionID)
	if sortType == validator.SortPopular {
		query = query.Order(bookmarkCountExpr + " DESC")
	}

	var dambyeolags []model.Dambyeolag
	err = query.
		Order("dambyeolag.created_at DESC").
		Order("dambyeolag.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&dambyeolags).Error
	if err != nil {
		return nil, 0, err
	}
	return dambyeolags, total, nil
}

// FindBookmarkedBy returns walls bookmarked by memberID, most recent bookmark first
func (r *DambyeolagRepository) FindBookmarkedBy(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.Dambyeolag, error) {
	var dambyeolags []model.Dambyeolag
	err := db.WithContext(ctx).
		Model(&model.Dambyeolag{}).
		Select("dambyeolag.*").
		Joins("JOIN dambyeolag_bookmark ON dambyeolag_bookmark.dambyeolag_id = dambyeolag.id").
		Where("dambyeolag_bookmark.member_id = ?", memberID).
		Preload("Member.Image").
		Order("dambyeolag_bookmark.created_at DESC").
		Order("dambyeolag_bookmark.id DESC").
		Find(&dambyeolags).Error
	return dambyeolags, err
}

func (r *DambyeolagRepository) FindIDsByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]uint32, error) {
	var ids []uint32
	err := db.WithContext(ctx).
		Model(&model.Dambyeolag{}).
		Where("member_id = ?", memberID).
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteByIDs removes the walls and every bookmark on them
func (r *DambyeolagRepository) DeleteByIDs(ctx context.Context, db *gorm.DB, ids []uint32) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Where("dambyeolag_id IN ?", ids).Delete(&model.DambyeolagBookmark{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Dambyeolag{}).Error
}

func (r *DambyeolagRepository) FindBookmark(ctx context.Context, db *gorm.DB, memberID, dambyeolagID uint32) (*model.DambyeolagBookmark, error) {
	var bookmark model.DambyeolagBookmark
	err := db.WithContext(ctx).
		Where("member_id = ? AND dambyeolag_id = ?", memberID, dambyeolagID).
		First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *DambyeolagRepository) CreateBookmark(ctx context.Context, db *gorm.DB, bookmark *model.DambyeolagBookmark) error {
	return db.WithContext(ctx).Create(bookmark).Error
}

func (r *DambyeolagRepository) DeleteBookmark(ctx context.Context, db *gorm.DB, bookmark *model.DambyeolagBookmark) error {
	return db.WithContext(ctx).Delete(bookmark).Error
}

func (r *DambyeolagRepository) DeleteBookmarksByMember(ctx context.Context, db *gorm.DB, memberID uint32) (int64, error) {
	result := db.WithContext(ctx).Where("member_id = ?", memberID).Delete(&model.DambyeolagBookmark{})
	return result.RowsAffected, result.Error
}

// BookmarkCounts returns the bookmark count per wall; walls without bookmarks are absent
func (r *DambyeolagRepository) BookmarkCounts(ctx context.Context, db *gorm.DB, ids []uint32) (map[uint32]int64, error) {
	counts := make(map[uint32]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		DambyeolagID uint32
		Count        int64
	}
	err := db.WithContext(ctx).
		Model(&model.DambyeolagBookmark{}).
		Select("dambyeolag_id, COUNT(*) AS count").
		Where("dambyeolag_id IN ?", ids).
		Group("dambyeolag_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.DambyeolagID] = row.Count
	}
	return counts, nil
}
