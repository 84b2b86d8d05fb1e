package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementLifecycle(t *testing.T) {
	b := NewAnnouncementBoard()

	a, err := b.Create(Announcement{Title: "Sports Day", Content: "Friday on the main field"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, AnnouncementDraft, a.Status)

	a, err = b.Update(a.ID, Announcement{Status: AnnouncementPublished})
	require.NoError(t, err)
	assert.Equal(t, AnnouncementPublished, a.Status)
	assert.Equal(t, "Sports Day", a.Title)

	got, err := b.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	require.NoError(t, b.Delete(a.ID))
	_, err = b.Get(a.ID)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(b.Delete(a.ID)))
}

func TestAnnouncementValidation(t *testing.T) {
	b := NewAnnouncementBoard()

	_, err := b.Create(Announcement{Title: "   "})
	assert.True(t, IsValidation(err))

	_, err = b.Create(Announcement{Title: "x", Status: "PENDING"})
	assert.True(t, IsValidation(err))

	a, err := b.Create(Announcement{Title: "x"})
	require.NoError(t, err)
	_, err = b.Update(a.ID, Announcement{Status: "LIVE"})
	assert.True(t, IsValidation(err))

	_, err = b.Update("nope", Announcement{Title: "y"})
	assert.True(t, IsNotFound(err))
}

func TestAnnouncementListNewestFirst(t *testing.T) {
	b := NewAnnouncementBoard()

	first, err := b.Create(Announcement{Title: "first"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := b.Create(Announcement{Title: "second"})
	require.NoError(t, err)

	list := b.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
