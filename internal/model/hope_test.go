package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHopeFromIndex(t *testing.T) {
	cases := []struct {
		index int
		want  Hope
	}{
		{1, HopeWantToSee},
		{2, HopeGood},
		{3, HopeInteresting},
		{4, HopeSoSo},
		{5, HopeNotGood},
	}
	for _, tc := range cases {
		got, ok := HopeFromIndex(tc.index)
		assert.True(t, ok)
		assert.Equal(t, tc.want, got)
	}

	for _, index := range []int{0, 6, -1} {
		_, ok := HopeFromIndex(index)
		assert.False(t, ok, index)
	}
}

func TestHope_MessagesAndWeightsDefined(t *testing.T) {
	for _, h := range Hopes() {
		assert.NotEmpty(t, h.Message(), h)
		assert.NotZero(t, h.Weight(), h)
	}
	assert.Greater(t, HopeWantToSee.Weight(), HopeNotGood.Weight())
}

func TestMemberImage_IsDefault(t *testing.T) {
	assert.True(t, (&MemberImage{FileName: DefaultImageFileName}).IsDefault())
	assert.True(t, (&MemberImage{}).IsDefault())
	assert.False(t, (&MemberImage{FileName: "members/2024/01/a.png"}).IsDefault())
}

func TestNewMember(t *testing.T) {
	m := NewMember("a@b.com", "미술친구", "https://cdn/default.png")

	assert.Equal(t, RoleUser, m.Role)
	assert.False(t, m.IsAdmin())
	assert.Equal(t, DefaultImageFileName, m.Image.FileName)
	assert.Equal(t, "https://cdn/default.png", m.Image.ImageURL)
}
