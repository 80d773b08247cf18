package dambyeolag_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/artfriendly/go-api-server/internal/dambyeolag"
	"github.com/artfriendly/go-api-server/internal/exhibition"
	"github.com/artfriendly/go-api-server/internal/member"
	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db           *gorm.DB
	service      *dambyeolag.DambyeolagService
	writerID     uint32
	readerID     uint32
	exhibitionID uint32
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	service := dambyeolag.NewDambyeolagService(
		db,
		dambyeolag.NewDambyeolagRepository(),
		exhibition.NewExhibitionRepository(),
		member.NewMemberRepository(),
		nil,
	)

	writer := model.NewMember("writer@example.com", "작성자", "https://img/writer.png")
	reader := model.NewMember("reader@example.com", "독자", "https://img/reader.png")
	require.NoError(t, db.Create(writer).Error)
	require.NoError(t, db.Create(reader).Error)

	e := &model.Exhibition{Info: model.ExhibitionInfo{
		Seq:       "S1",
		Title:     "모네展",
		StartDate: time.Now().UTC().AddDate(0, 0, -1),
		EndDate:   time.Now().UTC().AddDate(0, 1, 0),
	}}
	require.NoError(t, db.Create(e).Error)

	return &fixture{db: db, service: service, writerID: writer.ID, readerID: reader.ID, exhibitionID: e.ID}
}

func (f *fixture) write(t *testing.T, memberID uint32, content string) uint32 {
	t.Helper()

	created, err := f.service.Create(context.Background(), memberID, &dambyeolag.CreateDambyeolagRequest{
		ExhibitionID: f.exhibitionID,
		Content:      content,
	})
	require.NoError(t, err)
	return created.ID
}

func TestCreate_UnknownExhibition(t *testing.T) {
	f := setupFixture(t)

	_, err := f.service.Create(context.Background(), f.writerID, &dambyeolag.CreateDambyeolagRequest{
		ExhibitionID: f.exhibitionID + 1,
		Content:      "hello",
	})

	assert.ErrorIs(t, err, exhibition.ErrExhibitionNotFound)
}

func TestGetDetails(t *testing.T) {
	// Given
	f := setupFixture(t)
	ctx := context.Background()
	id := f.write(t, f.writerID, "인상주의 최고")
	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, id))

	// When
	asWriter, err := f.service.GetDetails(ctx, f.writerID, id)
	require.NoError(t, err)
	asReader, err := f.service.GetDetails(ctx, f.readerID, id)
	require.NoError(t, err)

	// Then
	assert.Equal(t, "인상주의 최고", asWriter.Content)
	assert.Equal(t, "작성자", asWriter.Writer.Nickname)
	assert.Equal(t, "https://img/writer.png", asWriter.Writer.ImageURL)
	assert.Equal(t, "모네展", asWriter.ExhibitionTitle)
	assert.Equal(t, int64(1), asWriter.BookmarkCount)
	assert.True(t, asWriter.IsMine)
	assert.False(t, asWriter.IsBookmarked)

	assert.False(t, asReader.IsMine)
	assert.True(t, asReader.IsBookmarked)
}

func TestGetDetails_NotFound(t *testing.T) {
	f := setupFixture(t)

	_, err := f.service.GetDetails(context.Background(), f.writerID, 123)

	assert.ErrorIs(t, err, dambyeolag.ErrDambyeolagNotFound)
}

func TestGetPage_SortTypes(t *testing.T) {
	// Given: 12 walls, the oldest one bookmarked twice
	f := setupFixture(t)
	ctx := context.Background()
	var ids []uint32
	for i := 0; i < 12; i++ {
		ids = append(ids, f.write(t, f.writerID, fmt.Sprintf("글 %d", i)))
	}
	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, ids[0]))
	require.NoError(t, f.service.AddBookmark(ctx, f.writerID, ids[0]))
	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, ids[5]))

	// When
	latest, err := f.service.GetPage(ctx, &dambyeolag.PageRequest{Page: 0, ExhibitionID: f.exhibitionID})
	require.NoError(t, err)
	popular, err := f.service.GetPage(ctx, &dambyeolag.PageRequest{Page: 0, ExhibitionID: f.exhibitionID, SortType: "popular"})
	require.NoError(t, err)
	second, err := f.service.GetPage(ctx, &dambyeolag.PageRequest{Page: 1, ExhibitionID: f.exhibitionID})
	require.NoError(t, err)

	// Then
	assert.Equal(t, int64(12), latest.TotalElements)
	require.Len(t, latest.Content, 10)
	assert.Len(t, second.Content, 2)
	assert.Equal(t, ids[11], latest.Content[0].ID)

	require.Len(t, popular.Content, 10)
	assert.Equal(t, ids[0], popular.Content[0].ID)
	assert.Equal(t, int64(2), popular.Content[0].BookmarkCount)
	assert.Equal(t, ids[5], popular.Content[1].ID)
	assert.Equal(t, int64(1), popular.Content[1].BookmarkCount)
}

func TestDelete_OwnerOnly(t *testing.T) {
	// Given
	f := setupFixture(t)
	ctx := context.Background()
	id := f.write(t, f.writerID, "지울 글")
	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, id))

	// When & Then
	assert.ErrorIs(t, f.service.Delete(ctx, f.readerID, id), dambyeolag.ErrNotDambyeolagOwner)
	require.NoError(t, f.service.Delete(ctx, f.writerID, id))
	assert.ErrorIs(t, f.service.Delete(ctx, f.writerID, id), dambyeolag.ErrDambyeolagNotFound)

	var bookmarks int64
	f.db.Model(&model.DambyeolagBookmark{}).Count(&bookmarks)
	assert.Zero(t, bookmarks)
}

func TestBookmarks(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	id := f.write(t, f.writerID, "북마크할 글")

	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, id))
	assert.ErrorIs(t, f.service.AddBookmark(ctx, f.readerID, id), dambyeolag.ErrExistBookmark)
	assert.ErrorIs(t, f.service.AddBookmark(ctx, f.readerID, id+100), dambyeolag.ErrDambyeolagNotFound)

	// unknown member must not leave a bookmark behind
	assert.ErrorIs(t, f.service.AddBookmark(ctx, f.readerID+100, id), member.ErrMemberNotFound)
	var orphans int64
	require.NoError(t, f.db.Model(&model.DambyeolagBookmark{}).Where("member_id = ?", f.readerID+100).Count(&orphans).Error)
	assert.Zero(t, orphans)
	details, err := f.service.GetDetails(ctx, f.readerID+100, id)
	require.NoError(t, err)
	assert.False(t, details.IsBookmarked)

	bookmarked, err := f.service.GetBookmarked(ctx, f.readerID)
	require.NoError(t, err)
	require.Len(t, bookmarked, 1)
	assert.Equal(t, id, bookmarked[0].ID)

	require.NoError(t, f.service.DeleteBookmark(ctx, f.readerID, id))
	assert.ErrorIs(t, f.service.DeleteBookmark(ctx, f.readerID, id), dambyeolag.ErrBookmarkNotFound)
}

func TestDeleteBookmarksByMember(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	first := f.write(t, f.writerID, "a")
	second := f.write(t, f.writerID, "b")
	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, first))
	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, second))
	require.NoError(t, f.service.AddBookmark(ctx, f.writerID, first))

	require.NoError(t, f.service.DeleteBookmarksByMember(ctx, f.readerID))

	bookmarked, err := f.service.GetBookmarked(ctx, f.readerID)
	require.NoError(t, err)
	assert.Empty(t, bookmarked)

	bookmarked, err = f.service.GetBookmarked(ctx, f.writerID)
	require.NoError(t, err)
	assert.Len(t, bookmarked, 1)
}

func TestRemoveMemberActivity(t *testing.T) {
	// Given
	f := setupFixture(t)
	ctx := context.Background()
	writerWall := f.write(t, f.writerID, strings.Repeat("가", 500))
	readerWall := f.write(t, f.readerID, "독자의 글")
	require.NoError(t, f.service.AddBookmark(ctx, f.readerID, writerWall))
	require.NoError(t, f.service.AddBookmark(ctx, f.writerID, readerWall))

	// When: writer leaves
	err := f.db.Transaction(func(tx *gorm.DB) error {
		return f.service.RemoveMemberActivity(ctx, tx, f.writerID)
	})

	// Then
	require.NoError(t, err)
	_, err = f.service.GetDetails(ctx, f.readerID, writerWall)
	assert.ErrorIs(t, err, dambyeolag.ErrDambyeolagNotFound)

	details, err := f.service.GetDetails(ctx, f.readerID, readerWall)
	require.NoError(t, err)
	assert.Zero(t, details.BookmarkCount)

	var bookmarks int64
	f.db.Model(&model.DambyeolagBookmark{}).Count(&bookmarks)
	assert.Zero(t, bookmarks)
}
