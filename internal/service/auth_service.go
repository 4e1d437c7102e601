package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/auth"
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/domain"
	"github.com/spec-kit/catalog-admin/internal/session"
	"github.com/spec-kit/catalog-admin/internal/store"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

// successChangePass is the translation key the admin frontend shows after a
// password change.
const successChangePass = "resources.users.success.successChangePass"

// AuthService owns the credential and token session lifecycle: login,
// refresh, registration, the password-change protocol and access token
// verification for protected routes.
type AuthService struct {
	store      store.Gateway
	sessions   session.Store
	tokens     *auth.TokenManager
	bcryptCost int
	webConfig  domain.WebConfig
	now        func() time.Time
}

// AuthDependencies bundles the collaborators the auth service needs.
type AuthDependencies struct {
	Store    store.Gateway
	Sessions session.Store
	Tokens   *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		store:      deps.Store,
		sessions:   deps.Sessions,
		tokens:     deps.Tokens,
		bcryptCost: cfg.BcryptCost,
		webConfig:  domain.DefaultWebConfig(),
		now:        time.Now,
	}
}

// SessionResult is the login and refresh response payload. The access token
// is additionally exposed through the X-Access-Token header by the output
// transform.
type SessionResult struct {
	Token        string           `json:"token"`
	RefreshToken string           `json:"refreshToken"`
	ExpiresIn    int64            `json:"expiresIn"`
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Permissions  []string         `json:"permissions"`
	WebConfigs   domain.WebConfig `json:"webConfigs"`
}

// ChangePasswordResult acknowledges a successful password change.
type ChangePasswordResult struct {
	Message string `json:"message"`
}

// Login verifies the credential pair and issues a fresh token pair. The
// refresh token is registered in the session store for the refresh lifetime.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*SessionResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, util.NewValidation("email and password are required")
	}
	var user domain.User
	err := s.store.FindOne(ctx, domain.EntityUser, bson.M{"email": req.Email}, nil, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, util.New(util.NameEmailNotFound)
	}
	if err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return nil, util.New(util.NameInValidPassword)
	}
	return s.issueSession(ctx, user.Snapshot())
}

// Refresh exchanges a registered refresh token for a new token pair. The old
// token is rotated out of the session store; a token absent from the store
// is invalid regardless of its signature.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*SessionResult, error) {
	if _, err := s.tokens.ParseRefreshToken(req.RefreshToken); err != nil {
		return nil, util.Wrap(util.NameInvalidRefreshToken, err)
	}
	identity, ok, err := s.sessions.Get(ctx, req.RefreshToken)
	if err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	if !ok {
		return nil, util.New(util.NameInvalidRefreshToken)
	}
	if err := s.sessions.Delete(ctx, req.RefreshToken); err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return s.issueSession(ctx, identity)
}

func (s *AuthService) issueSession(ctx context.Context, identity domain.IdentitySnapshot) (*SessionResult, error) {
	accessToken, _, err := s.tokens.GenerateAccessToken(identity)
	if err != nil {
		return nil, util.Wrap(util.NameInternalError, err)
	}
	refreshToken, _, err := s.tokens.GenerateRefreshToken(identity)
	if err != nil {
		return nil, util.Wrap(util.NameInternalError, err)
	}
	if err := s.sessions.Put(ctx, refreshToken, identity, s.tokens.RefreshTTL()); err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &SessionResult{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
		ID:           identity.ID,
		Name:         identity.Name,
		Permissions:  identity.Permissions,
		WebConfigs:   s.webConfig,
	}, nil
}

// Verify checks an access token and returns the identity it asserts. It
// implements the dispatcher's token verification for protected routes.
func (s *AuthService) Verify(raw string) (domain.IdentitySnapshot, error) {
	claims, err := s.tokens.ParseAccessToken(raw)
	if err != nil {
		return domain.IdentitySnapshot{}, err
	}
	return claims.Identity, nil
}

// Register creates a new user. Email uniqueness is enforced by the store's
// unique index. Registration never issues tokens.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	if req.Email == "" {
		return nil, util.NewValidation("email is required")
	}
	if req.Password == "" {
		return nil, util.NewValidation("password is required")
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, util.Wrap(util.NameInternalError, err)
	}
	if err := auth.ComparePassword(hash, req.VerifiedPassword); err != nil {
		return nil, util.New(util.NameVerifiedPasswordRegister)
	}

	gender := req.Gender
	if gender == "" {
		gender = domain.GenderUnknown
	}
	permissions := req.Permissions
	if len(permissions) == 0 {
		permissions = []string{domain.RoleUser}
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           store.NewID(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Gender:       gender,
		Avatar:       req.Avatar,
		PasswordHash: hash,
		Permissions:  permissions,
		CreatedAt:    now,
		CreatedBy:    systemActor,
		UpdatedAt:    now,
		UpdatedBy:    systemActor,
	}
	if err := s.store.Create(ctx, domain.EntityUser, user); err != nil {
		if store.IsDuplicate(err) {
			return nil, util.New(util.NameDuplicateEmailRegister)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return user, nil
}

// ChangePassword re-verifies the current password, checks the double-entry
// confirmation against the new hash and persists the new credential.
// Previously issued refresh tokens stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) (*ChangePasswordResult, error) {
	var user domain.User
	err := s.store.FindOne(ctx, domain.EntityUser,
		bson.M{"_id": req.UserID},
		bson.M{"password": 1},
		&user,
	)
	if errors.Is(err, store.ErrNotFound) {
		return nil, util.New(util.NameNotFoundDocument)
	}
	if err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	if err := auth.ComparePassword(user.PasswordHash, req.CurrentPassword); err != nil {
		return nil, util.New(util.NameInvalidCurrentPassword)
	}

	if req.NewPassword == "" {
		return nil, util.NewValidation("newPassword is required")
	}
	newHash, err := auth.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return nil, util.Wrap(util.NameInternalError, err)
	}
	if err := auth.ComparePassword(newHash, req.VerifiedNewPassword); err != nil {
		return nil, util.New(util.NameInvalidVerifiedNewPassword)
	}

	fields := bson.M{
		"password":  newHash,
		"updatedAt": s.now().UTC(),
		"updatedBy": systemActor,
	}
	var updated domain.User
	if err := s.store.Update(ctx, domain.EntityUser, req.UserID, fields, &updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.New(util.NameNotFoundDocument)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &ChangePasswordResult{Message: successChangePass}, nil
}
