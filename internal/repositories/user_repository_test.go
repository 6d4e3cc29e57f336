package repositories

import (
	"context"
	"testing"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/stretchr/testify/suite"
)

type UserRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreate_NormalizesEmail() {
	user := &models.User{Email: "  John@Example.com ", FirstName: "John", LastName: "Doe"}

	s.Require().NoError(s.repo.Create(s.ctx, user))

	s.NotZero(user.ID)
	s.Equal("john@example.com", user.Email)
	s.False(user.CreatedAt.IsZero())
}

func (s *UserRepositorySuite) TestCreate_Duplicate() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.User{Email: "john@example.com", FirstName: "John", LastName: "Doe"}))

	err := s.repo.Create(s.ctx, &models.User{Email: "JOHN@example.com", FirstName: "Johnny", LastName: "Doe"})

	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *UserRepositorySuite) TestGetters() {
	first := database.CreateTestUser(s.T(), s.db, "first@example.com")
	database.CreateTestUser(s.T(), s.db, "second@example.com")

	byID, err := s.repo.GetByID(s.ctx, first.ID)
	s.NoError(err)
	s.Equal("first@example.com", byID.Email)

	byEmail, err := s.repo.GetByEmail(s.ctx, "FIRST@example.com")
	s.NoError(err)
	s.Equal(first.ID, byEmail.ID)

	primary, err := s.repo.GetPrimary(s.ctx)
	s.NoError(err)
	s.Equal(first.ID, primary.ID)
}

func (s *UserRepositorySuite) TestNotFound() {
	_, err := s.repo.GetPrimary(s.ctx)
	s.ErrorIs(err, ErrUserNotFound)

	_, err = s.repo.GetByID(s.ctx, 3)
	s.ErrorIs(err, ErrUserNotFound)

	_, err = s.repo.GetByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}
