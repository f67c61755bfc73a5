package repository

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	. "todoapi/pkg/test"
	factory "todoapi/pkg/test/factory"
)

type UserRepositorySuite struct {
	suite.Suite
	DB   *sqlite.DB
	Repo port.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.DB = InitTestDB()
	s.Repo = NewUserRepository(s.DB, nil)
}

func (s *UserRepositorySuite) TearDownTest() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func TestUserRepositorySuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreate() {
	user, err := s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "alice@example.com",
	}))
	s.Require().NoError(err)

	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Email).To(Equal("alice@example.com"))
	Expect(user.EncryptedPassword).To(Not(BeEmpty()))
}

func (s *UserRepositorySuite) TestCreateDuplicateEmail() {
	_, err := s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "alice@example.com",
	}))
	s.Require().NoError(err)

	_, err = s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "alice@example.com",
	}))

	Expect(err).To(HaveOccurred())
}

func (s *UserRepositorySuite) TestGetByEmail() {
	created, err := s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "alice@example.com",
	}))
	s.Require().NoError(err)

	found, err := s.Repo.GetByEmail(ctx, "alice@example.com")
	s.Require().NoError(err)

	Expect(found.ID).To(Equal(created.ID))
	Expect(found.UUID).To(Equal(created.UUID))
}

func (s *UserRepositorySuite) TestGetByEmailUnknown() {
	_, err := s.Repo.GetByEmail(ctx, "ghost@example.com")

	Expect(domain.IsNotFound(err)).To(BeTrue())
}
