package member

import (
	"context"

	"github.com/artfriendly/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) ExistsByID(ctx context.Context, db *gorm.DB, ID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", ID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create inserts the member together with its image
func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Preload("Image").Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Preload("Image").Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) UpdateNickname(ctx context.Context, db *gorm.DB, ID uint32, nickname string) error {
	return db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", ID).
		Update("nickname", nickname).Error
}

func (m *MemberRepository) UpdateImage(ctx context.Context, db *gorm.DB, memberID uint32, fileName, imageURL string) error {
	return db.WithContext(ctx).
		Model(&model.MemberImage{}).
		Where("member_id = ?", memberID).
		Updates(map[string]any{"file_name": fileName, "image_url": imageURL}).Error
}

// Delete removes the member and its image row
func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, ID uint32) error {
	if err := db.WithContext(ctx).Where("member_id = ?", ID).Delete(&model.MemberImage{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&model.Member{}, ID).Error
}
