package postrepo_test

import (
	"context"
	"testing"
	"time"

	"scribeassist/internal/adapters/out/postgres/postrepo"
	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testPostBody = "Start every essay with a question your reader actually cares about, " +
	"then spend each paragraph earning the answer you promised in the introduction."

// PostRepositoryIntegrationTestSuite verifies post persistence behavior
// against a real PostgreSQL instance.
type PostRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *postrepo.GormPostRepository
}

func (suite *PostRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&postrepo.PostDTO{}))
}

func (suite *PostRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE posts").Error)
	suite.repository = postrepo.NewGormPostRepository(suite.db)
}

func (suite *PostRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PostRepositoryIntegrationTestSuite) TestAdd_Get_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestPost("essay-hooks")
	publishedAt := time.Now().UTC().Truncate(time.Second)
	original.Publish(publishedAt)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Title(), retrieved.Title())
	suite.Equal(original.Slug(), retrieved.Slug())
	suite.Equal(original.Excerpt(), retrieved.Excerpt())
	suite.Equal(original.Content(), retrieved.Content())
	suite.Equal(original.Category(), retrieved.Category())
	suite.Equal(original.Tags(), retrieved.Tags())
	suite.Equal(original.AuthorID(), retrieved.AuthorID())
	suite.True(retrieved.IsPublished())
	suite.Require().NotNil(retrieved.PublishedAt())
	suite.WithinDuration(publishedAt, *retrieved.PublishedAt(), time.Second)
}

func (suite *PostRepositoryIntegrationTestSuite) TestAdd_DuplicateSlug_ReturnsConflict() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPost("essay-hooks")))

	err := suite.repository.Add(ctx, suite.createTestPost("essay-hooks"))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *PostRepositoryIntegrationTestSuite) TestGetBySlug() {
	ctx := context.Background()

	original := suite.createTestPost("essay-hooks")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetBySlug(ctx, content.Slug("essay-hooks"))
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	_, err = suite.repository.GetBySlug(ctx, content.Slug("missing-slug"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostRepositoryIntegrationTestSuite) TestSlugExists() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPost("essay-hooks")))

	taken, err := suite.repository.SlugExists(ctx, content.Slug("essay-hooks"))
	suite.Require().NoError(err)
	suite.True(taken)

	free, err := suite.repository.SlugExists(ctx, content.Slug("essay-hooks-1"))
	suite.Require().NoError(err)
	suite.False(free)
}

func (suite *PostRepositoryIntegrationTestSuite) TestUpdate_RetitlePersistsNewSlug() {
	ctx := context.Background()

	post := suite.createTestPost("essay-hooks")
	suite.Require().NoError(suite.repository.Add(ctx, post))

	suite.Require().NoError(post.Retitle("Hooks That Keep Readers Going", content.Slug("hooks-that-keep-readers-going")))
	suite.Require().NoError(suite.repository.Update(ctx, post))

	retrieved, err := suite.repository.GetBySlug(ctx, content.Slug("hooks-that-keep-readers-going"))
	suite.Require().NoError(err)
	suite.Equal(post.ID(), retrieved.ID())

	_, err = suite.repository.GetBySlug(ctx, content.Slug("essay-hooks"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostRepositoryIntegrationTestSuite) createTestPost(slug string) *content.Post {
	post, err := content.NewPost(
		kernel.NewUUID(),
		"How to Hook a Reader",
		content.Slug(slug),
		"Openings decide whether anyone reads paragraph two.",
		testPostBody,
		"writing-tips",
		[]string{"essay", "structure"},
		kernel.NewUUID(),
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)

	return post
}

func TestPostRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PostRepositoryIntegrationTestSuite))
}
