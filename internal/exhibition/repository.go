package exhibition

import (
	"context"
	"time"

	"github.com/artfriendly/go-api-server/internal/model"
	"gorm.io/gorm"
)

const joinInfo = "JOIN exhibition_info ON exhibition_info.exhibition_id = exhibition.id"

type ExhibitionRepository struct{}

func NewExhibitionRepository() *ExhibitionRepository {
	return &ExhibitionRepository{}
}

func (r *ExhibitionRepository) Create(ctx context.Context, db *gorm.DB, exhibition *model.Exhibition) error {
	return db.WithContext(ctx).Create(exhibition).Error
}

func (r *ExhibitionRepository) ExistsByID(ctx context.Context, db *gorm.DB, ID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Exhibition{}).
		Where("id = ?", ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ExhibitionRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Exhibition, error) {
	var exhibition model.Exhibition
	err := db.WithContext(ctx).Preload("Info").Where("id = ?", ID).First(&exhibition).Error
	if err != nil {
		return nil, err
	}
	return &exhibition, nil
}

// FindInfosBySeqs returns infos keyed by seq
func (r *ExhibitionRepository) FindInfosBySeqs(ctx context.Context, db *gorm.DB, seqs []string) (map[string]*model.ExhibitionInfo, error) {
	result := make(map[string]*model.ExhibitionInfo, len(seqs))
	if len(seqs) == 0 {
		return result, nil
	}

	var infos []model.ExhibitionInfo
	if err := db.WithContext(ctx).Where("seq IN ?", seqs).Find(&infos).Error; err != nil {
		return nil, err
	}
	for i := range infos {
		result[infos[i].Seq] = &infos[i]
	}
	return result, nil
}

func (r *ExhibitionRepository) SaveInfo(ctx context.Context, db *gorm.DB, info *model.ExhibitionInfo) error {
	return db.WithContext(ctx).Save(info).Error
}

func (r *ExhibitionRepository) UpdateTemperature(ctx context.Context, db *gorm.DB, ID uint32, temperature float64) error {
	return db.WithContext(ctx).
		Model(&model.Exhibition{}).
		Where("id = ?", ID).
		Update("temperature", temperature).Error
}

// notEnded limits the query to exhibitions whose end date is today or later
func notEnded(db *gorm.DB, today time.Time) *gorm.DB {
	return db.Model(&model.Exhibition{}).
		Joins(joinInfo).
		Where("exhibition_info.end_date >= ?", today)
}

// FindPageByTemperature returns not-ended exhibitions ordered by temperature desc
func (r *ExhibitionRepository) FindPageByTemperature(ctx context.Context, db *gorm.DB, today time.Time, offset, limit int) ([]model.Exhibition, int64, error) {
	var total int64
	if err := notEnded(db.WithContext(ctx), today).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exhibitions []model.Exhibition
	err := notEnded(db.WithContext(ctx), today).
		Select("exhibition.*").
		Preload("Info").
		Order("exhibition.temperature DESC").
		Order("exhibition.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&exhibitions).Error
	if err != nil {
		return nil, 0, err
	}
	return exhibitions, total, nil
}

func (r *ExhibitionRepository) FindTopByTemperature(ctx context.Context, db *gorm.DB, today time.Time, limit int) ([]model.Exhibition, error) {
	var exhibitions []model.Exhibition
	err := notEnded(db.WithContext(ctx), today).
		Select("exhibition.*").
		Preload("Info").
		Order("exhibition.temperature DESC").
		Order("exhibition.id ASC").
		Limit(limit).
		Find(&exhibitions).Error
	return exhibitions, err
}

func (r *ExhibitionRepository) FindTopByEndDate(ctx context.Context, db *gorm.DB, today time.Time, limit int) ([]model.Exhibition, error) {
	var exhibitions []model.Exhibition
	err := notEnded(db.WithContext(ctx), today).
		Select("exhibition.*").
		Preload("Info").
		Order("exhibition_info.end_date ASC").
		Order("exhibition.id ASC").
		Limit(limit).
		Find(&exhibitions).Error
	return exhibitions, err
}

// FindLikedBy returns exhibitions liked by memberID, most recent like first
func (r *ExhibitionRepository) FindLikedBy(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.Exhibition, error) {
	var exhibitions []model.Exhibition
	err := db.WithContext(ctx).
		Model(&model.Exhibition{}).
		Select("exhibition.*").
		Joins("JOIN exhibition_like ON exhibition_like.exhibition_id = exhibition.id").
		Where("exhibition_like.member_id = ?", memberID).
		Preload("Info").
		Order("exhibition_like.created_at DESC").
		Order("exhibition_like.id DESC").
		Find(&exhibitions).Error
	return exhibitions, err
}
