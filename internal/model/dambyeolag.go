package model

import "time"

// Dambyeolag is a wall post left on an exhibition
type Dambyeolag struct {
	ID           uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID     uint32 `gorm:"column:member_id;not null;index"`
	ExhibitionID uint32 `gorm:"column:exhibition_id;not null;index"`
	Content      string `gorm:"column:content;size:2000;not null"` // 500자 * utf8 최대 4바이트

	Member     Member               `gorm:"foreignKey:MemberID"`
	Exhibition Exhibition           `gorm:"foreignKey:ExhibitionID"`
	Bookmarks  []DambyeolagBookmark `gorm:"foreignKey:DambyeolagID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

func (*Dambyeolag) TableName() string {
	return "dambyeolag"
}

// IsOwnedBy reports whether memberID wrote the post
func (d *Dambyeolag) IsOwnedBy(memberID uint32) bool {
	return d.MemberID == memberID
}

// DambyeolagBookmark is unique per (member, dambyeolag)
type DambyeolagBookmark struct {
	ID           uint32    `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID     uint32    `gorm:"column:member_id;not null;uniqueIndex:idx_bookmark_member_dambyeolag"`
	DambyeolagID uint32    `gorm:"column:dambyeolag_id;not null;uniqueIndex:idx_bookmark_member_dambyeolag;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (*DambyeolagBookmark) TableName() string {
	return "dambyeolag_bookmark"
}
