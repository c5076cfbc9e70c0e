package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/vee-grants/vee-api/model"
	"github.com/vee-grants/vee-api/utils/auth"
	"gorm.io/gorm"
)

const (
	DemoUserEmail    = "demo@example.com"
	DemoUserPassword = "demo123"
)

// Seeder handles database seeding operations
type Seeder struct {
	db         *gorm.DB
	bcryptCost int
	now        func() time.Time
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, bcryptCost int) *Seeder {
	return &Seeder{db: db, bcryptCost: bcryptCost, now: time.Now}
}

// SeedSummary reports what a seeding run created.
type SeedSummary struct {
	Skipped     bool
	Users       int
	Foundations int
	Grants      int
	Feedbacks   int
}

type seedGrant struct {
	name     string
	amount   int
	days     int
	location string
	area     string
}

type seedFeedback struct {
	grant    int
	reaction model.Reaction
	comment  string
}

var demoGrants = []seedGrant{
	{"AI Research Grant 2024", 50000, 60, "San Francisco, CA", "Artificial Intelligence"},
	{"Green Tech Innovation Fund", 75000, 90, "Seattle, WA", "Environmental Technology"},
	{"EdTech Development Grant", 30000, 45, "Austin, TX", "Education Technology"},
	{"Healthcare Innovation Award", 100000, 120, "Boston, MA", "Healthcare"},
	{"Blockchain Research Initiative", 60000, 75, "New York, NY", "Blockchain & Cryptocurrency"},
}

var demoFeedbacks = []seedFeedback{
	{0, model.ReactionLike, "This looks like a perfect fit for our AI research project!"},
	{1, model.ReactionLike, "Great opportunity for sustainable tech development."},
	{2, model.ReactionDislike, "The amount seems too low for our project scope."},
	{3, model.ReactionLike, "Excellent funding amount and timeline. Will definitely apply!"},
}

// SeedAll creates a demo user, a foundation, grants and feedback in one transaction.
// It is a no-op when the demo user already exists.
func (s *Seeder) SeedAll() (*SeedSummary, error) {
	log.Info("🌱 Starting database seeding...")

	var existing model.User
	err := s.db.Where("email = ?", DemoUserEmail).First(&existing).Error
	if err == nil {
		log.Info("⏭️  Demo user already exists, skipping...")
		return &SeedSummary{Skipped: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := auth.HashPasswordWithCost(DemoUserPassword, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	summary := &SeedSummary{}
	now := s.now().UTC()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			Base:     model.Base{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001")},
			Name:     "Demo User",
			Email:    DemoUserEmail,
			Password: passwordHash,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		summary.Users++

		logoURL := "https://example.com/logos/tech-innovation.png"
		foundation := model.Foundation{
			Base:    model.Base{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002")},
			Name:    "Tech Innovation Foundation",
			LogoURL: &logoURL,
		}
		if err := tx.Create(&foundation).Error; err != nil {
			return fmt.Errorf("failed to seed foundation: %w", err)
		}
		summary.Foundations++

		grants := make([]model.Grant, 0, len(demoGrants))
		for i, g := range demoGrants {
			area := g.area
			grant := model.Grant{
				Base:         model.Base{ID: uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-0000000000%d", 10+i))},
				FoundationID: foundation.ID,
				Name:         g.name,
				Amount:       g.amount,
				Deadline:     now.AddDate(0, 0, g.days),
				Location:     g.location,
				Area:         &area,
			}
			if err := tx.Create(&grant).Error; err != nil {
				return fmt.Errorf("failed to seed grant %q: %w", g.name, err)
			}
			grants = append(grants, grant)
			summary.Grants++
		}

		for _, f := range demoFeedbacks {
			comment := f.comment
			feedback := model.GrantFeedback{
				GrantID:  grants[f.grant].ID,
				UserID:   user.ID,
				Reaction: f.reaction,
				Comment:  &comment,
			}
			if err := tx.Create(&feedback).Error; err != nil {
				return fmt.Errorf("failed to seed feedback: %w", err)
			}
			summary.Feedbacks++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("✅ Database seeding completed successfully!")
	return summary, nil
}

// Clear drops every table the application owns.
func (s *Seeder) Clear() error {
	log.Info("🧹 Clearing database...")

	tables := model.All()
	// Children first so foreign keys never block a drop
	for i := len(tables) - 1; i >= 0; i-- {
		if err := s.db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop %T: %w", tables[i], err)
		}
	}

	log.Info("✅ Database cleared")
	return nil
}
