package service

import (
	"context"
	"log/slog"

	"github.com/foodlist/service/internal/apperr"
	"github.com/foodlist/service/internal/auth"
	"github.com/foodlist/service/internal/relation"
	"github.com/foodlist/service/internal/storage"
	"github.com/foodlist/service/internal/transfer"
)

// UserService exposes CRUD operations for users.
type UserService struct {
	store    storage.Store
	resolver *relation.Resolver
}

// NewUserService creates a UserService over the given store.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store, resolver: relation.NewResolver(store)}
}

// Add creates a user from the record. The plaintext password is hashed and
// discarded; the supplied household identifier, if any, must resolve.
func (s *UserService) Add(ctx context.Context, rec transfer.UserRecord) (transfer.UserRecord, error) {
	if rec.Username == "" {
		return transfer.UserRecord{}, &apperr.Validation{Field: "username", Reason: "must not be empty"}
	}
	if err := auth.ValidatePassword(rec.Password); err != nil {
		return transfer.UserRecord{}, &apperr.Validation{Field: "password", Reason: err.Error()}
	}

	household, err := s.resolver.Household(ctx, rec.HouseholdID)
	if err != nil {
		return transfer.UserRecord{}, err
	}

	draft := transfer.RecordToUser(rec)
	draft.ID = 0
	hash, err := auth.HashPassword(rec.Password)
	if err != nil {
		return transfer.UserRecord{}, err
	}
	draft.PasswordHash = hash

	if err := s.store.SaveUser(ctx, draft); err != nil {
		return transfer.UserRecord{}, err
	}
	if household != nil {
		relation.AttachUser(household, draft)
	}

	slog.Info("user created", "user_id", draft.ID, "username", draft.Username)
	return transfer.UserToRecord(draft), nil
}

// GetAll returns all users.
func (s *UserService) GetAll(ctx context.Context) ([]transfer.UserRecord, error) {
	users, err := s.store.FindAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]transfer.UserRecord, len(users))
	for i, u := range users {
		recs[i] = transfer.UserToRecord(u)
	}
	return recs, nil
}

// GetByID returns the user with the identifier.
func (s *UserService) GetByID(ctx context.Context, id int64) (transfer.UserRecord, error) {
	u, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		return transfer.UserRecord{}, err
	}
	if u == nil {
		return transfer.UserRecord{}, &apperr.NotFound{Entity: "user", ID: id}
	}
	return transfer.UserToRecord(u), nil
}

// Update copies the record's scalar fields onto the existing user and
// re-points the household reference (nil identifier clears it). The
// credential and the creation timestamp are never touched here; password
// changes belong to a dedicated flow.
func (s *UserService) Update(ctx context.Context, rec transfer.UserRecord) (transfer.UserRecord, error) {
	existing, err := s.store.FindUserByID(ctx, rec.ID)
	if err != nil {
		return transfer.UserRecord{}, err
	}
	if existing == nil {
		return transfer.UserRecord{}, &apperr.NotFound{Entity: "user", ID: rec.ID}
	}
	if rec.Username == "" {
		return transfer.UserRecord{}, &apperr.Validation{Field: "username", Reason: "must not be empty"}
	}

	household, err := s.resolver.Household(ctx, rec.HouseholdID)
	if err != nil {
		return transfer.UserRecord{}, err
	}

	existing.Username = rec.Username
	existing.Name = rec.Name
	existing.Enabled = rec.Enabled
	if household != nil {
		relation.AttachUser(household, existing)
	} else {
		existing.HouseholdID = nil
	}

	if err := s.store.SaveUser(ctx, existing); err != nil {
		return transfer.UserRecord{}, err
	}

	slog.Info("user updated", "user_id", existing.ID)
	return transfer.UserToRecord(existing), nil
}

// DeleteByID deletes the user. Items the user added survive with their adder
// reference nulled; both steps run in one transaction.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		exists, err := tx.UserExists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return &apperr.NotFound{Entity: "user", ID: id}
		}
		return deleteUserCascade(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("user deleted", "user_id", id)
	return nil
}
