package service

import (
	"ReflectAI/internal/api/dto"
	"ReflectAI/internal/model"
	"ReflectAI/internal/pkg/security"
	"ReflectAI/internal/repository"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) error
	Login(ctx context.Context, req *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id string) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileDTO) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	cache    Cache
}

func NewUserService(userRepo repository.UserRepo, cache Cache) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserUsernameExist
	}

	user := &model.User{}
	if err := copier.Copy(user, req); err != nil {
		return err
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return err
	}
	user.Password = &passwordHash

	return s.userRepo.Create(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout 将 token 签名写入黑名单，过期时间与 token 生命周期同级
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return s.cache.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileDTO) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := copier.CopyWithOption(user, req, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	return s.userRepo.UpdateProfile(ctx, user)
}
