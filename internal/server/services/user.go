// Package services contains the account business logic. UserService combines
// input normalization, the account repository, password hashing and avatar
// storage into the operations exposed over RPC.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bloghub/internal/common"
	"github.com/dmitrijs2005/bloghub/internal/server/models"
	"github.com/dmitrijs2005/bloghub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloghub/internal/server/repositories/users"
	"github.com/dmitrijs2005/bloghub/internal/validation"
)

// DeletedMessage is returned by Delete on success.
const DeletedMessage = "User successfully deleted"

var (
	ErrNicknameTaken    = fmt.Errorf("%w: nickname already taken", common.ErrorAlreadyExists)
	ErrAlreadyFollowing = fmt.Errorf("%w: already following", common.ErrorAlreadyExists)
	ErrNotFollowing     = fmt.Errorf("%w: not following", common.ErrorNotFound)

	ErrCurrentPasswordIncorrect error = &validation.Error{Field: "current_password", Message: "Current password is incorrect."}
	ErrNotAnImage               error = &validation.Error{Field: "content_type", Message: "Content type must be an image."}
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) error
}

type AvatarStorage interface {
	PresignAvatarUpload(ctx context.Context, accountID int64, contentType string) (*models.AvatarUpload, error)
}

// CreateUserInput is a registration request. Nickname and password are
// normalized by Create.
type CreateUserInput struct {
	Name            string `json:"name" validate:"required"`
	Nickname        string `json:"nickname" validate:"required"`
	Password        string `json:"password" validate:"required"`
	About           string `json:"about"`
	ProfileImageURL string `json:"profile_img_url"`
}

// UpdateUserInput is a partial update. Empty fields keep the stored value.
// NewPassword is applied only together with the correct CurrentPassword.
type UpdateUserInput struct {
	Name            string
	Nickname        string
	About           string
	ProfileImageURL string
	CurrentPassword string
	NewPassword     string
}

type UserService struct {
	users     users.Repository
	passwords PasswordHasher
	avatars   AvatarStorage
}

func NewUserService(m repomanager.RepositoryManager, passwords PasswordHasher, avatars AvatarStorage) *UserService {
	return &UserService{users: m.Users(), passwords: passwords, avatars: avatars}
}

// Create registers a new account. The stored record is returned with the
// password hash cleared.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.CheckRequiredFields(in); err != nil {
		return nil, err
	}

	name, err := validation.NormalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	nickname, err := validation.NormalizeNickname(in.Nickname)
	if err != nil {
		return nil, err
	}

	password, err := validation.NormalizePassword(in.Password)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNicknameFree(ctx, nickname); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	imageURL := strings.TrimSpace(in.ProfileImageURL)
	if imageURL == "" {
		imageURL = common.DefaultProfileImageURL
	}

	created, err := s.users.Insert(ctx, &models.Account{
		Name:            name,
		Nickname:        nickname,
		PasswordHash:    hash,
		About:           strings.TrimSpace(in.About),
		ProfileImageURL: imageURL,
	})
	if err != nil {
		return nil, nicknameConflict(err)
	}

	return public(created), nil
}

func (s *UserService) Get(ctx context.Context, nickname string) (*models.Account, error) {
	a, err := s.findByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	return public(a), nil
}

func (s *UserService) List(ctx context.Context) ([]*models.Account, error) {
	all, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Account, 0, len(all))
	for _, a := range all {
		out = append(out, public(a))
	}
	return out, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*models.Account, error) {
	current, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var patch models.AccountPatch

	if strings.TrimSpace(in.Name) != "" {
		name, err := validation.NormalizeName(in.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = models.Some(name)
	}

	if strings.TrimSpace(in.Nickname) != "" {
		nickname, err := validation.NormalizeNickname(in.Nickname)
		if err != nil {
			return nil, err
		}
		if nickname != current.Nickname {
			if err := s.ensureNicknameFree(ctx, nickname); err != nil {
				return nil, err
			}
			patch.Nickname = models.Some(nickname)
		}
	}

	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, ErrCurrentPasswordIncorrect
		}
		if err := s.passwords.Verify(current.PasswordHash, in.CurrentPassword); err != nil {
			if errors.Is(err, common.ErrorInvalidCredentials) {
				return nil, ErrCurrentPasswordIncorrect
			}
			return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}

		password, err := validation.NormalizePassword(in.NewPassword)
		if err != nil {
			return nil, err
		}

		hash, err := s.passwords.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
		patch.PasswordHash = models.Some(hash)
	}

	if about := strings.TrimSpace(in.About); about != "" {
		patch.About = models.Some(about)
	}

	if imageURL := strings.TrimSpace(in.ProfileImageURL); imageURL != "" {
		patch.ProfileImageURL = models.Some(imageURL)
	}

	if patch.Empty() {
		return public(current), nil
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, nicknameConflict(err)
	}

	return public(updated), nil
}

// Delete removes the account and, through the schema, all its follows.
func (s *UserService) Delete(ctx context.Context, nickname string) (string, error) {
	a, err := s.findByNickname(ctx, nickname)
	if err != nil {
		return "", err
	}

	if err := s.users.Delete(ctx, a.ID); err != nil {
		return "", err
	}

	return DeletedMessage, nil
}

// Login checks the credentials and returns the authenticated account. Minting
// a session token is left to the caller.
func (s *UserService) Login(ctx context.Context, nickname, password string) (*models.Account, error) {
	a, err := s.findByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}

	if err := s.passwords.Verify(a.PasswordHash, strings.TrimSpace(password)); err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	return public(a), nil
}

// Follow makes follower follow followed and returns the followed account with
// refreshed counts.
func (s *UserService) Follow(ctx context.Context, follower, followed string) (*models.Account, error) {
	from, to, err := s.followPair(ctx, follower, followed)
	if err != nil {
		return nil, err
	}

	if err := s.users.Follow(ctx, from.ID, to.ID); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	return s.refreshed(ctx, to.ID)
}

func (s *UserService) Unfollow(ctx context.Context, follower, followed string) (*models.Account, error) {
	from, to, err := s.followPair(ctx, follower, followed)
	if err != nil {
		return nil, err
	}

	if err := s.users.Unfollow(ctx, from.ID, to.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrNotFollowing
		}
		return nil, err
	}

	return s.refreshed(ctx, to.ID)
}

// AvatarUploadURL presigns an upload of a new profile image for nickname.
func (s *UserService) AvatarUploadURL(ctx context.Context, nickname, contentType string) (*models.AvatarUpload, error) {
	contentType = strings.TrimSpace(contentType)
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	a, err := s.findByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}

	if s.avatars == nil {
		return nil, fmt.Errorf("%w: avatar storage is not configured", common.ErrorInternal)
	}

	up, err := s.avatars.PresignAvatarUpload(ctx, a.ID, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return up, nil
}

// --- helpers below ---

func (s *UserService) findByNickname(ctx context.Context, raw string) (*models.Account, error) {
	nickname, err := validation.NormalizeNickname(raw)
	if err != nil {
		return nil, err
	}
	return s.users.FindByNickname(ctx, nickname)
}

func (s *UserService) ensureNicknameFree(ctx context.Context, nickname string) error {
	taken, err := s.users.ExistsByNickname(ctx, nickname)
	if err != nil {
		return err
	}
	if taken {
		return ErrNicknameTaken
	}
	return nil
}

func (s *UserService) followPair(ctx context.Context, follower, followed string) (*models.Account, *models.Account, error) {
	from, err := s.findByNickname(ctx, follower)
	if err != nil {
		return nil, nil, err
	}

	to, err := s.findByNickname(ctx, followed)
	if err != nil {
		return nil, nil, err
	}

	if from.ID == to.ID {
		return nil, nil, common.ErrorSelfFollow
	}
	return from, to, nil
}

func (s *UserService) refreshed(ctx context.Context, id int64) (*models.Account, error) {
	a, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return public(a), nil
}

// nicknameConflict turns a unique violation raised by the store into
// ErrNicknameTaken.
func nicknameConflict(err error) error {
	if errors.Is(err, common.ErrorAlreadyExists) {
		return ErrNicknameTaken
	}
	return err
}

// public returns a copy of a without the password hash.
func public(a *models.Account) *models.Account {
	c := *a
	c.PasswordHash = ""
	return &c
}
