package service

import (
	"context"
	"errors"

	"github.com/alimikegami/bdseller-service/config"
	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/repository"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
	now    func() int64
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config, now: utils.NowMillis}
}

// CreateToken re-issues a token for email, which must come from a token the
// caller already holds. The payload may carry extra claims but never a
// different email.
func (s *UserServiceImpl) CreateToken(ctx context.Context, email string, payload map[string]interface{}) (resp dto.TokenResponse, err error) {
	if email == "" {
		return resp, errs.ErrForbidden
	}
	if claimed, ok := payload["email"]; ok && claimed != email {
		log.Ctx(ctx).Warn().Str("component", "CreateToken").Str("email", email).Msg("token requested for another email")
		return resp, errs.ErrForbidden
	}

	claims := make(map[string]interface{}, len(payload)+1)
	for key, value := range payload {
		claims[key] = value
	}
	claims["email"] = email

	resp.Token, err = s.signToken(ctx, claims)
	return
}

func (s *UserServiceImpl) signToken(ctx context.Context, claims map[string]interface{}) (string, error) {
	token, err := utils.CreateJWTToken(claims, s.config.JWTSecret)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "signToken").Msg("")
		return "", err
	}

	return token, nil
}

// AddUser registers a new email and returns its first token. The email is
// unique, so registration cannot be used to obtain a token for an existing
// account.
func (s *UserServiceImpl) AddUser(ctx context.Context, req dto.UserRequest) (resp dto.RegistrationResponse, err error) {
	_, err = s.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return resp, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	id, err := s.repo.AddUser(ctx, domain.User{
		Name:        req.Name,
		Email:       req.Email,
		Image:       req.Image,
		Role:        role,
		UserCreated: s.now(),
	})
	if err != nil {
		return
	}

	token, err := s.signToken(ctx, map[string]interface{}{"email": req.Email, "name": req.Name})
	if err != nil {
		return
	}

	return dto.RegistrationResponse{InsertResponse: insertResponse(id), Token: token}, nil
}

// GetUsers filters by role only when it names a known role; anything else
// lists every user.
func (s *UserServiceImpl) GetUsers(ctx context.Context, role string) (users []domain.User, err error) {
	if !domain.IsValidRole(role) {
		role = ""
	}

	return s.repo.GetUsers(ctx, role)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, email string) (resp dto.DeleteResponse, err error) {
	if email == "" {
		return resp, errs.ErrMissingQueryParam
	}

	return s.repo.DeleteUserByEmail(ctx, email)
}

func (s *UserServiceImpl) CheckAdmin(ctx context.Context, email string) (resp dto.AdminStatusResponse, err error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return
	}

	resp.IsAdmin = user != nil && user.Role == domain.RoleAdmin
	return
}

func (s *UserServiceImpl) CheckSeller(ctx context.Context, email string) (resp dto.SellerStatusResponse, err error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return
	}

	if user != nil && user.Role == domain.RoleSeller {
		resp.IsSeller = true
		resp.SellerID = user.ID.Hex()
	}
	return
}

func (s *UserServiceImpl) CheckBuyer(ctx context.Context, email string) (resp dto.BuyerStatusResponse, err error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return
	}

	resp.IsBuyer = user != nil && user.Role == domain.RoleUser
	return
}

func (s *UserServiceImpl) GetSellerVerification(ctx context.Context, sellerID string) (resp dto.SellerVerificationResponse, err error) {
	if sellerID == "" {
		return resp, errs.ErrMissingQueryParam
	}

	user, err := s.repo.GetUserByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return resp, nil
		}
		return
	}

	resp.IsVerified = user.IsVerified
	return
}

func (s *UserServiceImpl) VerifySeller(ctx context.Context, id string, req dto.SellerVerificationRequest) (resp dto.UpdateResponse, err error) {
	if req.IsVerified == nil {
		return resp, errs.ErrEmptyUpdate
	}

	return s.repo.UpdateUser(ctx, id, bson.M{"isVerified": *req.IsVerified})
}

// GetRole returns an empty role for unknown emails.
func (s *UserServiceImpl) GetRole(ctx context.Context, email string) (role string, err error) {
	user, err := s.findUser(ctx, email)
	if err != nil || user == nil {
		return
	}

	return user.Role, nil
}

// findUser returns nil, not an error, when no user has the email.
func (s *UserServiceImpl) findUser(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
