package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userhub/user-service/internal/users"
	"github.com/userhub/user-service/internal/users/repository"
)

// Service encapsulates the business operations on user records. Validation
// happens here, at the persistence boundary; repositories only store what the
// service has already accepted.
type Service struct {
	repo repository.Repository
}

func NewService(r repository.Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]users.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*users.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the submitted fields and persists a new record. The
// repository assigns the id and both timestamps.
func (s *Service) Create(ctx context.Context, in users.Input) (*users.User, error) {
	in = in.Trimmed()
	if ve := users.ValidateInput(in); ve != nil {
		return nil, ve
	}
	u := &users.User{
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		CompanyName: in.CompanyName,
	}
	return s.repo.Insert(ctx, u)
}

// Update applies a full or partial set of business fields to an existing
// record. The merged record is validated before anything is written, so a
// partial update can never leave an invalid record behind.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, p repository.Patch) (*users.User, error) {
	p = trimPatch(p)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := users.Input{
		Name:        existing.Name,
		Address:     existing.Address,
		PhoneNumber: existing.PhoneNumber,
		CompanyName: existing.CompanyName,
	}
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Address != nil {
		merged.Address = *p.Address
	}
	if p.PhoneNumber != nil {
		merged.PhoneNumber = *p.PhoneNumber
	}
	if p.CompanyName != nil {
		merged.CompanyName = *p.CompanyName
	}
	if ve := users.ValidateInput(merged); ve != nil {
		return nil, ve
	}

	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func trimPatch(p repository.Patch) repository.Patch {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	return repository.Patch{
		Name:        trim(p.Name),
		Address:     trim(p.Address),
		PhoneNumber: trim(p.PhoneNumber),
		CompanyName: trim(p.CompanyName),
	}
}
