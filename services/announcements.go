package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	AnnouncementDraft     = "DRAFT"
	AnnouncementPublished = "PUBLISHED"
	AnnouncementArchived  = "ARCHIVED"
)

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Audience  string    `json:"audience"`
	Status    string    `json:"status"` // DRAFT | PUBLISHED | ARCHIVED
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnnouncementBoard keeps announcements in memory only; they do not survive
// a restart.
type AnnouncementBoard struct {
	mu    sync.RWMutex
	items map[string]Announcement
}

func NewAnnouncementBoard() *AnnouncementBoard {
	return &AnnouncementBoard{items: make(map[string]Announcement)}
}

func validAnnouncementStatus(s string) bool {
	switch s {
	case AnnouncementDraft, AnnouncementPublished, AnnouncementArchived:
		return true
	}
	return false
}

func (b *AnnouncementBoard) Create(a Announcement) (Announcement, error) {
	if strings.TrimSpace(a.Title) == "" {
		return Announcement{}, Validationf("title is required")
	}
	if a.Status == "" {
		a.Status = AnnouncementDraft
	}
	if !validAnnouncementStatus(a.Status) {
		return Announcement{}, Validationf("unknown status %q", a.Status)
	}
	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	b.mu.Lock()
	b.items[a.ID] = a
	b.mu.Unlock()
	return a, nil
}

func (b *AnnouncementBoard) Get(id string) (Announcement, error) {
	b.mu.RLock()
	a, ok := b.items[id]
	b.mu.RUnlock()
	if !ok {
		return Announcement{}, ErrNotFound
	}
	return a, nil
}

// List returns announcements newest first.
func (b *AnnouncementBoard) List() []Announcement {
	b.mu.RLock()
	out := make([]Announcement, 0, len(b.items))
	for _, a := range b.items {
		out = append(out, a)
	}
	b.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (b *AnnouncementBoard) Update(id string, in Announcement) (Announcement, error) {
	if in.Status != "" && !validAnnouncementStatus(in.Status) {
		return Announcement{}, Validationf("unknown status %q", in.Status)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.items[id]
	if !ok {
		return Announcement{}, ErrNotFound
	}
	if in.Title != "" {
		a.Title = in.Title
	}
	if in.Content != "" {
		a.Content = in.Content
	}
	if in.Type != "" {
		a.Type = in.Type
	}
	if in.Priority != "" {
		a.Priority = in.Priority
	}
	if in.Audience != "" {
		a.Audience = in.Audience
	}
	if in.Status != "" {
		a.Status = in.Status
	}
	a.UpdatedAt = time.Now().UTC()
	b.items[id] = a
	return a, nil
}

func (b *AnnouncementBoard) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.items[id]; !ok {
		return ErrNotFound
	}
	delete(b.items, id)
	return nil
}
