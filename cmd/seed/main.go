package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/database"
	"github.com/radianceacademy/radiance-backend/internal/logger"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
)

// Seeds the database with the default super-admin and sample site content.
// Safe to run repeatedly: existing documents are left alone.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	client, db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	adminRepo := repository.NewAdminRepository(db)

	const adminEmail = "admin@radianceacademy.com"
	_, err = adminRepo.GetByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		log.Info().Str("email", adminEmail).Msg("Super admin already exists, skipping")
	case errors.Is(err, repository.ErrNotFound):
		password := seedPassword()
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}

		admin := &model.Admin{
			Name:        "Super Admin",
			Email:       adminEmail,
			Password:    string(hash),
			Role:        model.RoleSuperAdmin,
			Permissions: model.AllPermissions,
			IsActive:    true,
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("Failed to create super admin")
		}
		log.Info().Str("email", adminEmail).Msg("Super admin created")
	default:
		log.Fatal().Err(err).Msg("Failed to look up super admin")
	}

	seedHomeSections(ctx, repository.NewHomeRepository(db), log)
	seedCourses(ctx, repository.NewCourseRepository(db), log)
	seedToppers(ctx, repository.NewTopperRepository(db), log)
	seedAchievements(ctx, repository.NewAchievementRepository(db), log)
	seedGallery(ctx, repository.NewGalleryRepository(db), log)

	log.Info().Msg("Seeding complete")
}

// seedPassword resolves the super-admin password: the SEED_ADMIN_PASSWORD
// variable wins, then a hidden terminal prompt, then the documented default.
func seedPassword() string {
	if p := os.Getenv("SEED_ADMIN_PASSWORD"); p != "" {
		return p
	}

	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Print("Super admin password (blank for default): ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err == nil && len(raw) >= 6 {
			return string(raw)
		}
	}

	return "admin123"
}

type homeRepo interface {
	GetBySection(ctx context.Context, section string) (*model.HomeSection, error)
	Create(ctx context.Context, sec *model.HomeSection) error
}

func seedHomeSections(ctx context.Context, repo homeRepo, log zerolog.Logger) {
	sections := []model.HomeSectionRequest{
		{
			Section:    model.SectionHero,
			Title:      "Welcome to Radiance Academy",
			Subtitle:   "Shaping Bright Futures",
			Content:    "Premier coaching institute for academic excellence and competitive exam preparation.",
			ButtonText: "Explore Courses",
			ButtonLink: "/courses",
			Order:      1,
		},
		{
			Section: model.SectionAbout,
			Title:   "About Us",
			Content: "Radiance Academy has guided students toward their goals for over a decade with experienced faculty and a personal approach to learning.",
			Order:   2,
		},
		{
			Section: model.SectionStats,
			Title:   "Our Numbers",
			Content: "Results that speak for themselves.",
			Stats: []model.Stat{
				{Label: "Students Trained", Value: "5000+", Icon: "users"},
				{Label: "Success Rate", Value: "95%", Icon: "trophy"},
				{Label: "Expert Faculty", Value: "50+", Icon: "academic-cap"},
			},
			Order: 3,
		},
	}

	for i := range sections {
		req := &sections[i]
		if _, err := repo.GetBySection(ctx, req.Section); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Fatal().Err(err).Str("section", req.Section).Msg("Failed to look up home section")
		}
		if err := repo.Create(ctx, req.Document()); err != nil {
			log.Fatal().Err(err).Str("section", req.Section).Msg("Failed to seed home section")
		}
		log.Info().Str("section", req.Section).Msg("Home section seeded")
	}
}

type courseRepo interface {
	List(ctx context.Context, f repository.CourseFilter, page, limit int) ([]model.Course, int64, error)
	Create(ctx context.Context, course *model.Course) error
}

func seedCourses(ctx context.Context, repo courseRepo, log zerolog.Logger) {
	_, total, err := repo.List(ctx, repository.CourseFilter{}, 1, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count courses")
	}
	if total > 0 {
		return
	}

	price := func(v float64) *float64 { return &v }
	courses := []model.CourseRequest{
		{
			Title:            "Class 10 Board Excellence",
			Description:      "Complete preparation for class 10 board exams covering Mathematics, Science and English with weekly tests.",
			ShortDescription: "Board exam preparation for class 10 students.",
			Image:            "https://res.cloudinary.com/demo/image/upload/radiance-academy/sample-course.jpg",
			Duration:         "10 months",
			Level:            model.LevelIntermediate,
			Category:         "Academic",
			Features:         []string{"Weekly tests", "Doubt sessions", "Study material"},
			Price:            price(15000),
			Instructor:       model.Instructor{Name: "R. Sharma", Qualification: "M.Sc. Mathematics", Experience: "12 years"},
		},
		{
			Title:            "JEE Foundation",
			Description:      "Early foundation program for engineering aspirants in classes 9 and 10 building concepts in Physics, Chemistry and Mathematics.",
			ShortDescription: "Foundation program for future JEE aspirants.",
			Image:            "https://res.cloudinary.com/demo/image/upload/radiance-academy/sample-jee.jpg",
			Duration:         "12 months",
			Level:            model.LevelBeginner,
			Category:         "Competitive",
			Features:         []string{"Concept building", "Olympiad exposure", "Monthly assessments"},
			Price:            price(25000),
			Instructor:       model.Instructor{Name: "A. Verma", Qualification: "B.Tech IIT Delhi", Experience: "8 years"},
		},
	}

	for i := range courses {
		if err := repo.Create(ctx, courses[i].Document()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed course")
		}
	}
	log.Info().Int("count", len(courses)).Msg("Courses seeded")
}

type topperRepo interface {
	List(ctx context.Context, f repository.TopperFilter, page, limit int) ([]model.Topper, int64, error)
	Create(ctx context.Context, topper *model.Topper) error
}

func seedToppers(ctx context.Context, repo topperRepo, log zerolog.Logger) {
	_, total, err := repo.List(ctx, repository.TopperFilter{}, 1, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count toppers")
	}
	if total > 0 {
		return
	}

	toppers := []model.TopperRequest{
		{
			Name:        "Priya Singh",
			Photo:       "https://res.cloudinary.com/demo/image/upload/radiance-academy/sample-topper.jpg",
			Achievement: "School topper in class 10 board exams",
			Exam:        "CBSE Class 10",
			Year:        time.Now().Year(),
			Score:       "98.4%",
			Rank:        "1",
			Course:      "Class 10 Board Excellence",
			Featured:    true,
		},
	}

	for i := range toppers {
		if err := repo.Create(ctx, toppers[i].Document()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed topper")
		}
	}
	log.Info().Int("count", len(toppers)).Msg("Toppers seeded")
}

type achievementRepo interface {
	List(ctx context.Context, f repository.AchievementFilter, page, limit int) ([]model.Achievement, int64, error)
	Create(ctx context.Context, achievement *model.Achievement) error
}

func seedAchievements(ctx context.Context, repo achievementRepo, log zerolog.Logger) {
	_, total, err := repo.List(ctx, repository.AchievementFilter{}, 1, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count achievements")
	}
	if total > 0 {
		return
	}

	achievements := []model.AchievementRequest{
		{
			Title:       "Best Coaching Institute Award",
			Description: "Recognized as the best coaching institute in the district for outstanding board results.",
			Image:       "https://res.cloudinary.com/demo/image/upload/radiance-academy/sample-award.jpg",
			Date:        time.Date(time.Now().Year()-1, time.December, 15, 0, 0, 0, 0, time.UTC),
			Category:    "Institute Recognition",
			Featured:    true,
			Priority:    10,
		},
	}

	for i := range achievements {
		if err := repo.Create(ctx, achievements[i].Document()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed achievement")
		}
	}
	log.Info().Int("count", len(achievements)).Msg("Achievements seeded")
}

type galleryRepo interface {
	List(ctx context.Context, f repository.GalleryFilter, page, limit int) ([]model.GalleryItem, int64, error)
	Create(ctx context.Context, item *model.GalleryItem) error
}

func seedGallery(ctx context.Context, repo galleryRepo, log zerolog.Logger) {
	_, total, err := repo.List(ctx, repository.GalleryFilter{}, 1, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count gallery items")
	}
	if total > 0 {
		return
	}

	items := []model.GalleryRequest{
		{
			Title:    "Annual Day Celebration",
			Image:    "https://res.cloudinary.com/demo/image/upload/radiance-academy/sample-annual-day.jpg",
			Category: "Functions",
			Date:     time.Date(time.Now().Year()-1, time.November, 20, 0, 0, 0, 0, time.UTC),
			Tags:     []string{"annual day", "celebration"},
			Featured: true,
			Order:    1,
		},
	}

	for i := range items {
		if err := repo.Create(ctx, items[i].Document()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed gallery item")
		}
	}
	log.Info().Int("count", len(items)).Msg("Gallery seeded")
}
