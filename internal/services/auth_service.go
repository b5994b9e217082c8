package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/pkg/utils"
)

type AuthServiceInterface interface {
	Authenticate(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenResponse, error)
	SendResetPasswordEmail(ctx context.Context, email string) error
	VerifyResetToken(ctx context.Context, token string) (db_models.Account, error)
	ResetPassword(ctx context.Context, req request_models.ResetPasswordWithTokenRequest) error
	AccountHasPermission(ctx context.Context, accountKind, accountID, permissionName string) (bool, error)
}

// accountKindHandle adapts one typed account service to the kind-agnostic
// calls the authentication flows need.
type accountKindHandle struct {
	kind          db_models.AccountKind
	byID          func(ctx context.Context, id string) (db_models.Account, error)
	byEmail       func(ctx context.Context, email string) (db_models.Account, error)
	byResetToken  func(ctx context.Context, token string) (db_models.Account, error)
	issueToken    func(ctx context.Context, id string) (string, error)
	resetPassword func(ctx context.Context, req request_models.ResetPasswordRequest) error
}

func handleFor[T any, PT accountPointer[T]](kind db_models.AccountKind, svc AccountServiceInterface[T]) accountKindHandle {
	return accountKindHandle{
		kind: kind,
		byID: func(ctx context.Context, id string) (db_models.Account, error) {
			return asAccount[T, PT](svc.FindOne(ctx, id))
		},
		byEmail: func(ctx context.Context, email string) (db_models.Account, error) {
			return asAccount[T, PT](svc.FindByEmail(ctx, email, false))
		},
		byResetToken: func(ctx context.Context, token string) (db_models.Account, error) {
			return asAccount[T, PT](svc.FindByResetToken(ctx, token))
		},
		issueToken: svc.GenerateResetPasswordToken,
		resetPassword: func(ctx context.Context, req request_models.ResetPasswordRequest) error {
			_, err := svc.ResetPassword(ctx, req)
			return err
		},
	}
}

// asAccount keeps a nil *T from turning into a non-nil interface.
func asAccount[T any, PT accountPointer[T]](account *T, err error) (db_models.Account, error) {
	if err != nil || account == nil {
		return nil, err
	}
	return PT(account), nil
}

type AuthService struct {
	admins     AdminServiceInterface
	organizers OrganizerServiceInterface
	users      UserServiceInterface
	roles      RoleServiceInterface
	mail       IMailService
	issuer     *utils.TokenIssuer
	logger     *zap.Logger
	kinds      []accountKindHandle
}

func NewAuthService(
	admins AdminServiceInterface,
	organizers OrganizerServiceInterface,
	users UserServiceInterface,
	roles RoleServiceInterface,
	mail IMailService,
	issuer *utils.TokenIssuer,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		admins:     admins,
		organizers: organizers,
		users:      users,
		roles:      roles,
		mail:       mail,
		issuer:     issuer,
		logger:     logger,
		kinds: []accountKindHandle{
			handleFor[db_models.Admin](db_models.AdminKind, admins),
			handleFor[db_models.Organizer](db_models.OrganizerKind, organizers),
			handleFor[db_models.User](db_models.UserKind, users),
		},
	}
}

// Authenticate tries organizer by email, admin by username, then user by
// email. The first account found decides the outcome.
func (s *AuthService) Authenticate(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenResponse, error) {
	organizer, err := s.organizers.FindByEmail(ctx, req.Username, true)
	if err != nil {
		return nil, err
	}
	if organizer != nil {
		return s.issueSession(organizer, req.Password)
	}

	admin, err := s.admins.FindByUsername(ctx, req.Username, true)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		return s.issueSession(admin, req.Password)
	}

	user, err := s.users.FindByEmail(ctx, req.Username, true)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return s.issueSession(user, req.Password)
	}

	s.logger.Warn("login failed", zap.String("reason", "unknown identifier"))
	return nil, utils.ErrIncorrectUsername
}

func (s *AuthService) issueSession(account db_models.Account, password string) (*response_models.TokenResponse, error) {
	base := account.Base()
	if base.PasswordHash == "" || utils.ComparePasswords(base.PasswordHash, password) != nil {
		s.logger.Warn("login failed",
			zap.String("reason", "password mismatch"),
			zap.String("account_kind", string(account.Kind())),
			zap.String("account_id", base.ID.String()))
		return nil, utils.ErrIncorrectPassword
	}

	token, err := s.issuer.CreateToken(utils.TokenPayload{
		UserID:   base.ID.String(),
		UserType: string(account.Kind()),
		RoleID:   base.RoleID.String(),
	})
	if err != nil {
		return nil, err
	}
	return &response_models.TokenResponse{Token: token, UserType: string(account.Kind())}, nil
}

// SendResetPasswordEmail issues a token for the first account holding email,
// checking admins, organizers and users in that order, and mails the link.
func (s *AuthService) SendResetPasswordEmail(ctx context.Context, email string) error {
	for _, k := range s.kinds {
		account, err := k.byEmail(ctx, email)
		if err != nil {
			return err
		}
		if account == nil {
			continue
		}

		token, err := k.issueToken(ctx, account.Base().ID.String())
		if err != nil {
			return err
		}
		if err := s.mail.SendMailToResetPassword(ctx, email, token); err != nil {
			s.logger.Error("reset password mail failed", zap.String("account_kind", string(k.kind)), zap.Error(err))
			return err
		}
		return nil
	}
	return utils.ErrIncorrectUsername
}

// AccountHasPermission checks the role the account holds now, so a role
// change or a deleted account takes effect before the session token expires.
func (s *AuthService) AccountHasPermission(ctx context.Context, accountKind, accountID, permissionName string) (bool, error) {
	for _, k := range s.kinds {
		if string(k.kind) != accountKind {
			continue
		}
		account, err := k.byID(ctx, accountID)
		if errors.Is(err, utils.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if account == nil {
			return false, nil
		}
		return s.roles.HasPermission(ctx, account.Base().RoleID.String(), permissionName)
	}
	return false, nil
}

func (s *AuthService) VerifyResetToken(ctx context.Context, token string) (db_models.Account, error) {
	_, account, err := s.tokenHolder(ctx, token)
	return account, err
}

func (s *AuthService) tokenHolder(ctx context.Context, token string) (*accountKindHandle, db_models.Account, error) {
	for i := range s.kinds {
		account, err := s.kinds[i].byResetToken(ctx, token)
		if errors.Is(err, utils.ErrResetTokenNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		return &s.kinds[i], account, nil
	}
	return nil, nil, utils.ErrResetTokenNotFound
}

// ResetPassword verifies the token and consumes it.
func (s *AuthService) ResetPassword(ctx context.Context, req request_models.ResetPasswordWithTokenRequest) error {
	k, account, err := s.tokenHolder(ctx, req.Token)
	if err != nil {
		return err
	}

	base := account.Base()
	reset := request_models.ResetPasswordRequest{
		ID:       base.ID.String(),
		Password: req.Password,
	}
	if base.ResetPasswordRequestID != nil {
		reset.ResetPasswordRequestID = *base.ResetPasswordRequestID
	}
	if err := k.resetPassword(ctx, reset); err != nil {
		return err
	}

	s.logger.Info("password reset", zap.String("account_kind", string(k.kind)), zap.String("account_id", base.ID.String()))
	return nil
}
