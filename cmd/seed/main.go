package main

import (
	"fmt"

	"lifelessons/internal/entity"
	"lifelessons/internal/model"
	"lifelessons/internal/repo/persistent"
	"lifelessons/pkg/config"
	"lifelessons/pkg/database"
	"lifelessons/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email   string
		name    string
		role    entity.UserRole
		premium bool
	}{
		{"admin@test.com", "Admin", entity.RoleAdmin, true},
		{"alice@test.com", "Alice", entity.RoleUser, true},
		{"bob@test.com", "Bob", entity.RoleUser, false},
		{"charlie@test.com", "Charlie", entity.RoleUser, false},
	}

	emails := make([]string, 0, len(testUsers))
	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

		var existing model.UserModel
		if err := db.Where("email = ?", userData.email).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", userData.email)
			emails = append(emails, existing.Email)
			continue
		}

		user := &model.UserModel{
			Email:     userData.email,
			Name:      userData.name,
			Password:  string(hashedPassword),
			Role:      string(userData.role),
			IsPremium: userData.premium,
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", userData.email, err)
			continue
		}

		log.Info("Created user: %s (%s)", userData.name, userData.email)
		emails = append(emails, user.Email)
	}

	seedLessons := []struct {
		creator     string
		title       string
		description string
		category    string
		tone        string
		privacy     string
		accessLevel string
	}{
		{"alice@test.com", "Saying no without guilt", "It took me a decade to learn that declining a request is not a betrayal.", "relationships", "hopeful", "Public", "Free"},
		{"alice@test.com", "What burnout actually taught me", "The full story of my worst year and the systems that got me out.", "career", "reflective", "Public", "Premium"},
		{"bob@test.com", "Moving abroad with no plan", "Everything I wish someone had told me before the one-way flight.", "adventure", "excited", "Public", "Free"},
		{"charlie@test.com", "A letter to my younger self", "Not ready to share this one yet.", "growth", "somber", "Private", "Free"},
	}

	lessonRepo := persistent.NewLessonRepository(db)
	for _, data := range seedLessons {
		lesson := &entity.Lesson{
			CreatorEmail:  data.creator,
			Title:         data.title,
			Description:   data.description,
			Category:      data.category,
			EmotionalTone: data.tone,
			Privacy:       entity.Privacy(data.privacy),
			AccessLevel:   entity.AccessLevel(data.accessLevel),
		}
		if err := lessonRepo.Create(lesson); err != nil {
			log.Error("Failed to create lesson %q: %v", data.title, err)
			continue
		}
		log.Info("Created lesson: %s", data.title)
	}

	log.Info("Seeded %d users and %d lessons", len(emails), len(seedLessons))
	return nil
}
