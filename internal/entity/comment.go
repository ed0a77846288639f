package entity

import "time"

type Comment struct {
	ID        string    `json:"id"`
	LessonID  string    `json:"lesson_id"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	UserPhoto string    `json:"user_photo"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
