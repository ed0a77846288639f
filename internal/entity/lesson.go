package entity

import "time"

type AccessLevel string

const (
	AccessFree    AccessLevel = "Free"
	AccessPremium AccessLevel = "Premium"
)

type Privacy string

const (
	PrivacyPublic  Privacy = "Public"
	PrivacyPrivate Privacy = "Private"
)

type Lesson struct {
	ID             string      `json:"id"`
	CreatorEmail   string      `json:"creator_email"`
	CreatorName    string      `json:"creator_name"`
	CreatorPhoto   string      `json:"creator_photo"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	EmotionalTone  string      `json:"emotional_tone"`
	ImageURL       string      `json:"image_url"`
	Privacy        Privacy     `json:"privacy"`
	AccessLevel    AccessLevel `json:"access_level"`
	IsFeatured     bool        `json:"is_featured"`
	LikesCount     int64       `json:"likes_count"`
	FavoritesCount int64       `json:"favorites_count"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (l *Lesson) IsOwnedBy(email string) bool {
	return email != "" && l.CreatorEmail == email
}
