package member

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	"github.com/artfriendly/go-api-server/internal/shared/logger"
	"github.com/artfriendly/go-api-server/internal/shared/storage"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	imageDir      = "members"
	adminNickname = "관리자"
)

// ActivityRemover deletes what a member left in another aggregate before the member row goes away.
// Runs inside the withdrawal transaction.
type ActivityRemover interface {
	RemoveMemberActivity(ctx context.Context, tx *gorm.DB, memberID uint32) error
}

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	storage          storage.Storage
	defaultImageURL  string
	removers         []ActivityRemover
}

func NewMemberService(
	db *gorm.DB,
	memberRepository *MemberRepository,
	storage storage.Storage,
	profile config.ProfileConfig,
	removers ...ActivityRemover,
) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		storage:          storage,
		defaultImageURL:  profile.DefaultImageURL,
		removers:         removers,
	}
}

// OAuth2Login finds the member by email, creating a USER with the default image on first login.
func (s *MemberService) OAuth2Login(ctx context.Context, attrs OAuth2Attributes) (*OAuth2LoginResult, error) {
	log := logger.FromContext(ctx)

	var result *OAuth2LoginResult
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.memberRepository.FindByEmail(ctx, tx, attrs.Email)
		if err == nil {
			result = &OAuth2LoginResult{Member: found, IsExisting: true}
			return nil
		}
		if !database.IsNotFound(err) {
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		created, err := s.createMember(ctx, tx, attrs.Email, nicknameOrDefault(attrs), s.defaultImageURL)
		if err != nil {
			return err
		}
		result = &OAuth2LoginResult{Member: created, IsExisting: false}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("OAuth2 로그인",
		"provider", attrs.Provider,
		"email", logger.MaskEmail(attrs.Email),
		"existing", result.IsExisting,
	)
	return result, nil
}

func (s *MemberService) CreateMember(ctx context.Context, email, nickname, imageURL string) (*model.Member, error) {
	var created *model.Member
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		created, err = s.createMember(ctx, tx, email, nickname, imageURL)
		return err
	})
	return created, err
}

func (s *MemberService) createMember(ctx context.Context, tx *gorm.DB, email, nickname, imageURL string) (*model.Member, error) {
	member := model.NewMember(email, nickname, imageURL)
	if err := s.memberRepository.Create(ctx, tx, member); err != nil {
		return nil, fmt.Errorf("회원 생성 실패: %w", err)
	}
	return member, nil
}

func (s *MemberService) FindByID(ctx context.Context, memberID uint32) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}

func (s *MemberService) GetMemberDetails(ctx context.Context, memberID uint32) (*MemberDetailsResponse, error) {
	member, err := s.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toMemberDetailsResponse(member), nil
}

func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*ProfileResponse, error) {
	member, err := s.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(member), nil
}

func (s *MemberService) UpdateMember(ctx context.Context, memberID uint32, request *UpdateMemberRequest) (*ProfileResponse, error) {
	var response *ProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		if err := s.memberRepository.UpdateNickname(ctx, tx, memberID, request.Nickname); err != nil {
			return fmt.Errorf("닉네임 변경 실패: %w", err)
		}

		member.Nickname = request.Nickname
		response = toProfileResponse(member)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// UpdateMemberImage uploads file as the new profile image and removes the previous object unless it was the default.
func (s *MemberService) UpdateMemberImage(ctx context.Context, memberID uint32, file *multipart.FileHeader) (*ProfileResponse, error) {
	log := logger.FromContext(ctx)

	if file == nil || file.Size == 0 {
		return nil, fmt.Errorf("빈 이미지 파일 %w", ErrInvalidImageFile)
	}

	member, err := s.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("이미지 파일 열기 실패: %w", err)
	}
	defer src.Close()

	mtype, err := detectImage(src)
	if err != nil {
		return nil, err
	}

	previous := member.Image
	key := s.storage.GenerateKey(imageDir, imageExt(file.Filename, mtype))
	imageURL, err := s.storage.Upload(ctx, key, src, mtype.String())
	if err != nil {
		return nil, fmt.Errorf("이미지 업로드 실패: %w", err)
	}

	if err := s.memberRepository.UpdateImage(ctx, s.db, memberID, key, imageURL); err != nil {
		// DB 반영 실패 시 방금 올린 객체를 정리
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Warn("업로드 이미지 정리 실패", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("프로필 이미지 저장 실패: %w", err)
	}

	if !previous.IsDefault() {
		if err := s.storage.Delete(ctx, previous.FileName); err != nil {
			log.Warn("이전 프로필 이미지 삭제 실패", "key", previous.FileName, "error", err)
		}
	}

	log.Info("프로필 이미지 변경", "member_id", memberID, "key", key)

	member.Image.FileName = key
	member.Image.ImageURL = imageURL
	return toProfileResponse(member), nil
}

// Withdraw deletes the member and everything the member left behind.
func (s *MemberService) Withdraw(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	var image model.MemberImage
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}
		image = member.Image

		for _, remover := range s.removers {
			if err := remover.RemoveMemberActivity(ctx, tx, memberID); err != nil {
				return fmt.Errorf("회원 활동 삭제 실패: %w", err)
			}
		}

		if err := s.memberRepository.Delete(ctx, tx, memberID); err != nil {
			return fmt.Errorf("회원 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !image.IsDefault() {
		if err := s.storage.Delete(ctx, image.FileName); err != nil {
			log.Warn("탈퇴 회원 프로필 이미지 삭제 실패", "key", image.FileName, "error", err)
		}
	}

	log.Info("회원 탈퇴 완료", "member_id", memberID)
	return nil
}

// EnsureAdmin creates the admin account when it does not exist yet.
func (s *MemberService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" {
		return nil
	}

	log := logger.FromContext(ctx)
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		_, err := s.memberRepository.FindByEmail(ctx, tx, email)
		if err == nil {
			log.Debug("관리자 계정 존재", "email", logger.MaskEmail(email))
			return nil
		}
		if !database.IsNotFound(err) {
			return fmt.Errorf("관리자 조회 실패: %w", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hashedPassword := string(hashed)

		admin := model.NewMember(email, adminNickname, s.defaultImageURL)
		admin.Role = model.RoleAdmin
		admin.Password = &hashedPassword
		if err := s.memberRepository.Create(ctx, tx, admin); err != nil {
			return fmt.Errorf("관리자 생성 실패: %w", err)
		}

		log.Info("관리자 계정 생성", "email", logger.MaskEmail(email))
		return nil
	})
}

func nicknameOrDefault(attrs OAuth2Attributes) string {
	if nickname := strings.TrimSpace(attrs.Nickname); nickname != "" {
		return nickname
	}
	local, _, _ := strings.Cut(attrs.Email, "@")
	return local
}

func detectImage(src multipart.File) (*mimetype.MIME, error) {
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, fmt.Errorf("이미지 파일 읽기 실패: %w", err)
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("content-type=%s %w", mtype.String(), ErrInvalidImageFile)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("이미지 파일 읽기 실패: %w", err)
	}
	return mtype, nil
}

func imageExt(filename string, mtype *mimetype.MIME) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	return mtype.Extension()
}
