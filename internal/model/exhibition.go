package model

import "time"

// Exhibition is the aggregate root for likes, hopes and views
type Exhibition struct {
	ID          uint32  `gorm:"column:id;primaryKey;autoIncrement"`
	Temperature float64 `gorm:"column:temperature;not null;default:0;index:idx_exhibition_temperature"`

	Info  ExhibitionInfo   `gorm:"foreignKey:ExhibitionID;constraint:OnDelete:CASCADE"`
	Likes []ExhibitionLike `gorm:"foreignKey:ExhibitionID;constraint:OnDelete:CASCADE"`
	Hopes []ExhibitionHope `gorm:"foreignKey:ExhibitionID;constraint:OnDelete:CASCADE"`
	Views []ExhibitionView `gorm:"foreignKey:ExhibitionID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

func (*Exhibition) TableName() string {
	return "exhibition"
}

// ExhibitionInfo holds descriptive data; Seq is the identifier of the upstream catalogue
type ExhibitionInfo struct {
	ID           uint32    `gorm:"column:id;primaryKey;autoIncrement"`
	ExhibitionID uint32    `gorm:"column:exhibition_id;not null;uniqueIndex:idx_exhibition_info_exhibition"`
	Seq          string    `gorm:"column:seq;size:50;not null;uniqueIndex:idx_exhibition_info_seq"`
	Title        string    `gorm:"column:title;size:500;not null"`
	Place        string    `gorm:"column:place;size:255"`
	Area         string    `gorm:"column:area;size:100"`
	Realm        string    `gorm:"column:realm;size:100"`
	Price        string    `gorm:"column:price;size:255"`
	Phone        string    `gorm:"column:phone;size:50"`
	ImageURL     string    `gorm:"column:image_url;size:1000"`
	DetailURL    string    `gorm:"column:detail_url;size:1000"`
	StartDate    time.Time `gorm:"column:start_date;not null"`
	EndDate      time.Time `gorm:"column:end_date;not null;index:idx_exhibition_info_end_date"`

	BaseEntity
}

func (*ExhibitionInfo) TableName() string {
	return "exhibition_info"
}

// UpdateFrom copies descriptive fields from src, keeping identity columns
func (i *ExhibitionInfo) UpdateFrom(src ExhibitionInfo) {
	i.Title = src.Title
	i.Place = src.Place
	i.Area = src.Area
	i.Realm = src.Realm
	i.Price = src.Price
	i.Phone = src.Phone
	i.ImageURL = src.ImageURL
	i.DetailURL = src.DetailURL
	i.StartDate = src.StartDate
	i.EndDate = src.EndDate
}

// ExhibitionLike is unique per (member, exhibition)
type ExhibitionLike struct {
	ID           uint32    `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID     uint32    `gorm:"column:member_id;not null;uniqueIndex:idx_like_member_exhibition"`
	ExhibitionID uint32    `gorm:"column:exhibition_id;not null;uniqueIndex:idx_like_member_exhibition;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (*ExhibitionLike) TableName() string {
	return "exhibition_like"
}

// ExhibitionHope is unique per (member, exhibition)
type ExhibitionHope struct {
	ID           uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID     uint32 `gorm:"column:member_id;not null;uniqueIndex:idx_hope_member_exhibition"`
	ExhibitionID uint32 `gorm:"column:exhibition_id;not null;uniqueIndex:idx_hope_member_exhibition;index"`
	Hope         Hope   `gorm:"column:hope;size:20;not null"`

	BaseEntity
}

func (*ExhibitionHope) TableName() string {
	return "exhibition_hope"
}

// ExhibitionView records the first visit of a member; unique per (member, exhibition)
type ExhibitionView struct {
	ID           uint32    `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID     uint32    `gorm:"column:member_id;not null;uniqueIndex:idx_view_member_exhibition"`
	ExhibitionID uint32    `gorm:"column:exhibition_id;not null;uniqueIndex:idx_view_member_exhibition;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (*ExhibitionView) TableName() string {
	return "exhibition_view"
}
