// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"fixando/internal/middleware"
	"fixando/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers        int
	PostsPerUser    int
	CommentsPerPost int
	ShouldClean     bool
}

// DefaultOptions returns a small but realistic data set.
func DefaultOptions() Options {
	return Options{
		NumUsers:        10,
		PostsPerUser:    3,
		CommentsPerPost: 2,
	}
}

// Run populates the database with fake users, posts, comments and
// reactions. Every seeded user logs in with the password "secret123".
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("user%d@%s", i+1, gofakeit.DomainName()),
			Password: string(hashed),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		users = append(users, user)
	}

	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				Title:   gofakeit.Sentence(5),
				Content: gofakeit.Paragraph(1, 3, 5, "\n"),
				UserID:  user.ID,
				// realistic created_at spread over the last 90 days
				CreatedAt: time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour),
			}
			if r.Intn(3) == 0 {
				post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
			}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("seeding post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			comment := &models.Comment{
				Content: gofakeit.Sentence(8),
				UserID:  users[r.Intn(len(users))].ID,
				PostID:  post.ID,
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("seeding comment: %w", err)
			}
		}

		// A random subset of users reacts to each post; the unique index
		// keeps one reaction per (user, post).
		for _, user := range users {
			if r.Intn(3) != 0 {
				continue
			}
			like := &models.Like{
				UserID: user.ID,
				PostID: post.ID,
				IsLike: r.Intn(4) != 0,
			}
			if err := db.Create(like).Error; err != nil {
				return fmt.Errorf("seeding reaction: %w", err)
			}
		}
	}

	middleware.Logger.Info("seed complete",
		"users", len(users),
		"posts", len(posts),
	)
	return nil
}

// clean removes all seeded rows. Hard deletes, including soft-deleted rows.
func clean(db *gorm.DB) error {
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.RevokedToken{},
		&models.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
