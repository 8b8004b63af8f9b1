package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"mockadmin/internal/collection"
	"mockadmin/internal/common"
	"mockadmin/internal/logging"
	"mockadmin/internal/models"
	"mockadmin/internal/query"
	"mockadmin/internal/storage"
)

// ListUsersParams is the list descriptor for users: the common query
// parameters plus the exact-match status filter. A nil Active means the
// field is not filtered.
type ListUsersParams struct {
	query.Params
	Active *bool
}

var userSchema = query.Schema[models.User]{
	SearchText: func(u models.User) string { return u.Username },
	SortFields: map[string]func(a, b models.User) int{
		"username":  func(a, b models.User) int { return query.CompareStrings(a.Username, b.Username) },
		"active":    func(a, b models.User) int { return query.CompareBools(a.Active, b.Active) },
		"createdAt": func(a, b models.User) int { return query.CompareTimes(a.CreatedAt, b.CreatedAt) },
	},
}

// Users exposes the CRUD operations of the user collection.
type Users struct {
	col   *collection.Store[models.User]
	delay *Latency
	log   logging.Logger
}

// NewUsers binds the user collection to a storage medium.
func NewUsers(st storage.Store, delay *Latency, log logging.Logger) *Users {
	return &Users{
		col:   collection.NewStore(st, usersKey, SeedUsers),
		delay: delay,
		log:   log,
	}
}

// List returns one page of the collection after search, filtering, and
// sorting. There is no failure mode for an empty match.
func (s *Users) List(ctx context.Context, p ListUsersParams) (*query.Result[models.User], error) {
	s.delay.Wait()

	users, err := s.col.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load users", "error", err.Error())
		return nil, err
	}

	var statusFilter func(models.User) bool
	if p.Active != nil {
		want := *p.Active
		statusFilter = func(u models.User) bool { return u.Active == want }
	}

	res := query.Run(users, p.Params, userSchema, statusFilter)
	for i := range res.Data {
		res.Data[i] = res.Data[i].Public()
	}
	return &res, nil
}

// Create validates the input, enforces username uniqueness against the
// current snapshot, and persists a new record with a freshly allocated id.
// The password is hashed and stored write-only.
func (s *Users) Create(ctx context.Context, in models.UserCreate) (*models.User, error) {
	s.delay.Wait()

	if err := validateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	users, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == in.Username {
			return nil, fmt.Errorf("username %q: %w", in.Username, common.ErrorAlreadyExists)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           nextID(users, userID),
		Username:     in.Username,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: string(hash),
	}

	users = append(users, user)
	if err := s.col.Save(ctx, users); err != nil {
		s.log.Error(ctx, "failed to save users", "error", err.Error())
		return nil, err
	}

	s.log.Info(ctx, "user created", "id", user.ID, "username", user.Username)

	pub := user.Public()
	return &pub, nil
}

// Update applies a patch to an existing record, keeping its id and creation
// time. Renaming into another record's username fails before anything is
// persisted.
func (s *Users) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	s.delay.Wait()

	if patch.Username != nil {
		if err := validateUsername(*patch.Username); err != nil {
			return nil, err
		}
	}
	if patch.Password != nil {
		if err := validatePassword(*patch.Password); err != nil {
			return nil, err
		}
	}

	users, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(users, userID, id)
	if idx < 0 {
		return nil, fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
	}

	if patch.Username != nil {
		for _, u := range users {
			if u.Username == *patch.Username && u.ID != id {
				return nil, fmt.Errorf("username %q: %w", *patch.Username, common.ErrorAlreadyExists)
			}
		}
		users[idx].Username = *patch.Username
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		users[idx].PasswordHash = string(hash)
	}
	if patch.Active != nil {
		users[idx].Active = *patch.Active
	}

	if err := s.col.Save(ctx, users); err != nil {
		s.log.Error(ctx, "failed to save users", "error", err.Error())
		return nil, err
	}

	s.log.Info(ctx, "user updated", "id", id)

	pub := users[idx].Public()
	return &pub, nil
}

// ToggleStatus flips the record's active flag.
func (s *Users) ToggleStatus(ctx context.Context, id int) (*models.User, error) {
	s.delay.Wait()

	users, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(users, userID, id)
	if idx < 0 {
		return nil, fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
	}

	users[idx].Active = !users[idx].Active

	if err := s.col.Save(ctx, users); err != nil {
		s.log.Error(ctx, "failed to save users", "error", err.Error())
		return nil, err
	}

	pub := users[idx].Public()
	return &pub, nil
}

// Delete removes the record; its id is permanently retired.
func (s *Users) Delete(ctx context.Context, id int) error {
	s.delay.Wait()

	users, err := s.col.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(users, userID, id)
	if idx < 0 {
		return fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
	}

	users = append(users[:idx], users[idx+1:]...)
	if err := s.col.Save(ctx, users); err != nil {
		s.log.Error(ctx, "failed to save users", "error", err.Error())
		return err
	}

	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}

func userID(u models.User) int { return u.ID }

func validateUsername(username string) error {
	if utf8.RuneCountInString(username) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters", common.ErrorValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", common.ErrorValidation)
	}
	return nil
}
