//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/repository"
)

type OperatorRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.OperatorRepo
}

func (s *OperatorRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewOperatorRepo(tcPool)
}

func (s *OperatorRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE operator RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *OperatorRepositorySuite) createOperator(first, last string) *domain.Operator {
	s.T().Helper()

	created, err := s.repo.Create(context.Background(), &domain.Operator{
		FirstName:       first,
		LastName:        last,
		CertificationID: "CERT-001",
		ContactNumber:   "+15550000001",
	})
	s.Require().NoError(err)
	s.Require().NotNil(created)
	return created
}

func (s *OperatorRepositorySuite) TestCreate_DerivesFullName() {
	created := s.createOperator("Ann", "Lee")

	s.Positive(created.ID)
	s.Equal("Ann", created.FirstName)
	s.Equal("Lee", created.LastName)
	s.Equal("Ann Lee", created.FullName)
}

func (s *OperatorRepositorySuite) TestList() {
	s.createOperator("Ann", "Lee")
	s.createOperator("Bob", "Ray")

	list, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.True(list[0].ID < list[1].ID)
	s.Equal("Ann Lee", list[0].FullName)
	s.Equal("Bob Ray", list[1].FullName)
}

func (s *OperatorRepositorySuite) TestUpdatePartial() {
	ctx := context.Background()
	created := s.createOperator("Ann", "Lee")

	newLast := "Grey"
	newContact := "+15550000099"
	updated, err := s.repo.UpdatePartial(ctx, domain.PartialOperatorUpdate{
		ID:            created.ID,
		LastName:      &newLast,
		ContactNumber: &newContact,
	})
	s.Require().NoError(err)
	s.Require().NotNil(updated)

	s.Equal("Ann", updated.FirstName, "untouched field keeps its value")
	s.Equal("Grey", updated.LastName)
	s.Equal("Ann Grey", updated.FullName, "fullname follows the update")
	s.Equal("+15550000099", updated.ContactNumber)
	s.Equal(created.CertificationID, updated.CertificationID)
}

func (s *OperatorRepositorySuite) TestUpdatePartial_NotFound() {
	newName := "Ghost"
	updated, err := s.repo.UpdatePartial(context.Background(), domain.PartialOperatorUpdate{
		ID:        9999,
		FirstName: &newName,
	})
	s.Require().NoError(err)
	s.Nil(updated)
}

func (s *OperatorRepositorySuite) TestDelete_ReturnsRow() {
	ctx := context.Background()
	created := s.createOperator("Ann", "Lee")

	deleted, err := s.repo.Delete(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(deleted)
	s.Equal(*created, *deleted)

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *OperatorRepositorySuite) TestDelete_NotFound() {
	deleted, err := s.repo.Delete(context.Background(), 9999)
	s.Require().NoError(err)
	s.Nil(deleted)
}

func (s *OperatorRepositorySuite) TestList_ContextCanceled_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list, err := s.repo.List(ctx)
	s.Nil(list)
	s.Error(err)
	s.ErrorIs(err, context.Canceled)
}

func TestOperatorRepositorySuite(t *testing.T) {
	suite.Run(t, new(OperatorRepositorySuite))
}
