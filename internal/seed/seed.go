// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"chirp/internal/models"
	"chirp/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var topics = []string{
	"golang", "coffee", "running", "music", "movies", "gaming",
	"cooking", "travel", "photography", "books", "fitness", "art",
	"devops", "startups", "homelab", "ai",
}

// Seed populates the database with test data. Posts, hearts, bookmarks, and
// comments are written through the repositories so hashtag indexing and the
// engagement counters stay consistent with production behavior.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	ctx := context.Background()
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	followRepo := repository.NewFollowRepository(db)

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := createPosts(ctx, postRepo, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createFollows(ctx, followRepo, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Println("✓ follow graph created")

	if err := createEngagement(ctx, engagementRepo, users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("✓ hearts and bookmarks created")

	if err := createComments(ctx, commentRepo, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Println("✓ comments created")

	log.Println("🌱 Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents
	tables := []string{"comments", "hearts", "bookmarks", "post_hashtags", "follows", "posts", "hashtags", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			ID:        uuid.NewString(),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(ctx context.Context, repo repository.PostRepository, users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		post := &models.Post{
			UserID:  author.ID,
			Content: postContent(),
		}
		tags := repository.ExtractTags(post.Content)
		if err := repo.Create(ctx, post, tags); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// postContent produces a short sentence with zero to three hashtags appended.
func postContent() string {
	content := gofakeit.Sentence(8 + rand.Intn(8))
	numTags := rand.Intn(4)
	if numTags == 0 {
		return content
	}
	tags := make([]string, 0, numTags)
	for i := 0; i < numTags; i++ {
		tags = append(tags, "#"+topics[rand.Intn(len(topics))])
	}
	return content + " " + strings.Join(tags, " ")
}

func createFollows(ctx context.Context, repo repository.FollowRepository, users []*models.User) error {
	for _, follower := range users {
		// each user follows roughly a third of the others
		for _, followee := range users {
			if follower.ID == followee.ID || rand.Intn(3) != 0 {
				continue
			}
			if err := repo.Create(ctx, follower.ID, followee.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func createEngagement(ctx context.Context, repo repository.EngagementRepository, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for _, user := range users {
			if rand.Intn(4) == 0 {
				if _, err := repo.SetHeart(ctx, post.ID, user.ID, true); err != nil {
					return err
				}
			}
			if rand.Intn(8) == 0 {
				if _, err := repo.SetBookmark(ctx, post.ID, user.ID, true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func createComments(ctx context.Context, repo repository.CommentRepository, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		numComments := rand.Intn(4)
		for i := 0; i < numComments; i++ {
			comment := &models.Comment{
				PostID:  post.ID,
				UserID:  users[rand.Intn(len(users))].ID,
				Content: gofakeit.Sentence(5 + rand.Intn(10)),
			}
			if err := repo.Create(ctx, comment); err != nil {
				return err
			}
		}
	}
	return nil
}
