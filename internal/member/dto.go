package member

import "github.com/artfriendly/go-api-server/internal/model"

type MemberDetailsResponse struct {
	ID       uint32 `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	ImageURL string `json:"imageUrl"`
	Role     string `json:"role"`
}

type ProfileResponse struct {
	Nickname string `json:"nickname"`
	ImageURL string `json:"imageUrl"`
}

type UpdateMemberRequest struct {
	Nickname string `json:"nickname" binding:"required,nickname"`
}

// OAuth2Attributes are the user attributes returned by an OAuth2 provider
type OAuth2Attributes struct {
	Provider string
	Email    string
	Nickname string
}

type OAuth2LoginResult struct {
	Member     *model.Member
	IsExisting bool
}

func toMemberDetailsResponse(m *model.Member) *MemberDetailsResponse {
	return &MemberDetailsResponse{
		ID:       m.ID,
		Email:    m.Email,
		Nickname: m.Nickname,
		ImageURL: m.Image.ImageURL,
		Role:     m.Role,
	}
}

func toProfileResponse(m *model.Member) *ProfileResponse {
	return &ProfileResponse{
		Nickname: m.Nickname,
		ImageURL: m.Image.ImageURL,
	}
}
