package model

// Member roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// DefaultImageFileName marks the provider/default profile image that is not stored in object storage
const DefaultImageFileName = "Default_Image"

// Member represents a user in the system
type Member struct {
	ID       uint32  `gorm:"column:id;primaryKey;autoIncrement"`
	Email    string  `gorm:"column:email;size:255;not null;uniqueIndex:idx_member_email"`
	Nickname string  `gorm:"column:nickname;size:100;not null"`
	Role     string  `gorm:"column:role;size:20;not null;default:USER"`
	Password *string `gorm:"column:password;size:60"` // 관리자 계정만 bcrypt 해시 보유

	Image MemberImage `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a member with the USER role and the default profile image
func NewMember(email, nickname, defaultImageURL string) *Member {
	return &Member{
		Email:    email,
		Nickname: nickname,
		Role:     RoleUser,
		Image: MemberImage{
			FileName: DefaultImageFileName,
			ImageURL: defaultImageURL,
		},
	}
}

// IsAdmin reports whether the member holds the ADMIN role
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// MemberImage is a member's profile image; FileName is the object storage key
type MemberImage struct {
	ID       uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID uint32 `gorm:"column:member_id;not null;uniqueIndex:idx_member_image_member"`
	FileName string `gorm:"column:file_name;size:255;not null"`
	ImageURL string `gorm:"column:image_url;size:1000;not null"`

	BaseEntity
}

func (*MemberImage) TableName() string {
	return "member_image"
}

// IsDefault reports whether the image is the default one (nothing to delete from storage)
func (i *MemberImage) IsDefault() bool {
	return i.FileName == "" || i.FileName == DefaultImageFileName
}
