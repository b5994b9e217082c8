package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

// AccountConfig carries the per-kind settings resolved at startup.
type AccountConfig struct {
	DefaultRoleID   string
	ResetTokenTTL   time.Duration
	ResetTokenBytes int
}

// AccountServiceInterface is the contract shared by admins, organizers and users.
type AccountServiceInterface[T any] interface {
	FindAll(ctx context.Context, p request_models.PaginationRequest) ([]T, int64, error)
	FindOne(ctx context.Context, id string) (*T, error)
	FindByEmail(ctx context.Context, email string, withPassword bool) (*T, error)
	FindByResetPasswordRequestID(ctx context.Context, requestID string) (*T, error)
	FindByResetToken(ctx context.Context, token string) (*T, error)
	UpdateRole(ctx context.Context, req request_models.UpdateRoleRequest) (*T, error)
	UpdatePassword(ctx context.Context, req request_models.UpdatePasswordRequest) (*T, error)
	GenerateResetPasswordToken(ctx context.Context, id string) (string, error)
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) (*T, error)
}

type accountPointer[T any] interface {
	*T
	db_models.Account
}

// accountService implements every account operation once; the typed
// services only add creation and profile updates.
type accountService[T any, PT accountPointer[T]] struct {
	repo        repositories.AccountRepository[T]
	roleService RoleServiceInterface
	tx          repositories.TransactionManager
	kind        db_models.AccountKind
	notFound    error
	cfg         AccountConfig
	logger      *zap.Logger
	now         func() time.Time
}

func newAccountService[T any, PT accountPointer[T]](
	repo repositories.AccountRepository[T],
	roleService RoleServiceInterface,
	tx repositories.TransactionManager,
	notFound error,
	cfg AccountConfig,
	logger *zap.Logger,
) *accountService[T, PT] {
	var zero T
	kind := PT(&zero).Kind()
	return &accountService[T, PT]{
		repo:        repo,
		roleService: roleService,
		tx:          tx,
		kind:        kind,
		notFound:    notFound,
		cfg:         cfg,
		logger:      logger.With(zap.String("account_kind", string(kind))),
		now:         time.Now,
	}
}

func (s *accountService[T, PT]) FindAll(ctx context.Context, p request_models.PaginationRequest) ([]T, int64, error) {
	return findPage(ctx, s.logger, p, s.repo.CountAll, s.repo.FindPage)
}

func (s *accountService[T, PT]) FindOne(ctx context.Context, id string) (*T, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.dbError("find account", err)
	}
	if account == nil {
		return nil, s.notFound
	}
	return account, nil
}

func (s *accountService[T, PT]) FindByEmail(ctx context.Context, email string, withPassword bool) (*T, error) {
	return s.findByField(ctx, repositories.FieldEmail, email, withPassword)
}

func (s *accountService[T, PT]) FindByResetPasswordRequestID(ctx context.Context, requestID string) (*T, error) {
	return s.findByField(ctx, repositories.FieldResetPasswordRequestID, requestID, false)
}

func (s *accountService[T, PT]) findByField(ctx context.Context, field string, value any, withPassword bool) (*T, error) {
	account, err := s.repo.FindByField(ctx, field, value, withPassword)
	if err != nil {
		return nil, s.dbError("find account by "+field, err)
	}
	return account, nil
}

// ensureUnique fails with inUse when any account of this kind holds value.
func (s *accountService[T, PT]) ensureUnique(ctx context.Context, field string, value any, inUse error) error {
	holder, err := s.findByField(ctx, field, value, false)
	if err != nil {
		return err
	}
	if holder != nil {
		return inUse
	}
	return nil
}

// create hashes password, attaches the account to its role and stores both
// in one transaction.
func (s *accountService[T, PT]) create(ctx context.Context, account PT, password, roleID string) (*T, error) {
	if roleID == "" {
		roleID = s.cfg.DefaultRoleID
	}
	if roleID == "" {
		return nil, utils.ErrRoleIDNotProvided
	}
	role, err := s.roleService.FindOne(ctx, roleID, false)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	base := account.Base()
	base.ID = uuid.New()
	base.PasswordHash = hash
	base.RoleID = role.ID
	base.Role = nil

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, (*T)(account)); err != nil {
			return s.dbError("create account", err)
		}
		_, err := s.roleService.AddMembers(ctx, s.kind, role.ID.String(), []string{base.ID.String()})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created", zap.String("account_id", base.ID.String()), zap.String("role_id", role.ID.String()))
	return s.FindOne(ctx, base.ID.String())
}

// save persists a fully loaded account and returns it re-read.
func (s *accountService[T, PT]) save(ctx context.Context, account PT) (*T, error) {
	account.Base().Role = nil
	if err := s.repo.Update(ctx, (*T)(account)); err != nil {
		return nil, s.dbError("update account", err)
	}
	return s.FindOne(ctx, account.Base().ID.String())
}

// UpdateRole moves the account from its current role's membership set to
// the target role's set and repoints the account, all in one transaction.
func (s *accountService[T, PT]) UpdateRole(ctx context.Context, req request_models.UpdateRoleRequest) (*T, error) {
	if req.RoleID == "" {
		return nil, utils.ErrRoleIDNotProvided
	}

	account, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	role, err := s.roleService.FindOne(ctx, req.RoleID, false)
	if err != nil {
		return nil, err
	}

	base := PT(account).Base()
	accountID := []string{base.ID.String()}
	previous := base.RoleID

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if previous != uuid.Nil {
			_, err := s.roleService.RemoveMembers(ctx, s.kind, previous.String(), accountID)
			if err != nil && !errors.Is(err, utils.ErrRoleNotFound) {
				return err
			}
		}
		if _, err := s.roleService.AddMembers(ctx, s.kind, role.ID.String(), accountID); err != nil {
			return err
		}

		base.RoleID = role.ID
		base.Role = nil
		if err := s.repo.Update(ctx, account); err != nil {
			return s.dbError("update account role", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account role changed",
		zap.String("account_id", base.ID.String()),
		zap.String("from_role_id", previous.String()),
		zap.String("to_role_id", role.ID.String()))
	return s.FindOne(ctx, base.ID.String())
}

func (s *accountService[T, PT]) UpdatePassword(ctx context.Context, req request_models.UpdatePasswordRequest) (*T, error) {
	if req.Password == "" {
		return nil, utils.ErrPasswordMustBeProvided
	}

	account, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	base := PT(account).Base()

	if req.OldPassword == "" || utils.ComparePasswords(base.PasswordHash, req.OldPassword) != nil {
		return nil, utils.ErrIncorrectOldPassword
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	base.PasswordHash = hash
	return s.save(ctx, account)
}

// GenerateResetPasswordToken issues a fresh token, invalidating any earlier one.
func (s *accountService[T, PT]) GenerateResetPasswordToken(ctx context.Context, id string) (string, error) {
	account, err := s.FindOne(ctx, id)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateSecureToken(s.cfg.ResetTokenBytes)
	if err != nil {
		return "", err
	}

	base := PT(account).Base()
	requestID := ulid.Make().String()
	base.IssueResetToken(token, s.now().Add(s.cfg.ResetTokenTTL), requestID)
	if _, err := s.save(ctx, account); err != nil {
		return "", err
	}

	s.logger.Info("reset password token issued",
		zap.String("account_id", base.ID.String()),
		zap.String("reset_password_request_id", requestID))
	return token, nil
}

// FindByResetToken returns the holder of a live token. Expiry is checked
// here only; nothing sweeps stale tokens.
func (s *accountService[T, PT]) FindByResetToken(ctx context.Context, token string) (*T, error) {
	if token == "" {
		return nil, utils.ErrResetTokenNotFound
	}

	holder, err := s.findByField(ctx, repositories.FieldResetToken, token, false)
	if err != nil {
		return nil, err
	}
	if holder == nil {
		return nil, utils.ErrResetTokenNotFound
	}
	if PT(holder).Base().ResetTokenExpired(s.now()) {
		return nil, utils.ErrTokenExpired
	}

	account, err := s.FindByEmail(ctx, PT(holder).Base().Email, false)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, s.notFound
	}
	return account, nil
}

// ResetPassword stores a new password without checking the old one and
// consumes the reset token.
func (s *accountService[T, PT]) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) (*T, error) {
	if req.Password == "" {
		return nil, utils.ErrPasswordMustBeProvided
	}

	account, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	base := PT(account).Base()
	base.PasswordHash = hash
	base.ClearResetToken()
	base.ResetPasswordRequestID = nil
	if req.ResetPasswordRequestID != "" {
		requestID := req.ResetPasswordRequestID
		base.ResetPasswordRequestID = &requestID
	}
	return s.save(ctx, account)
}

func (s *accountService[T, PT]) dbError(op string, err error) error {
	s.logger.Error("account repository failure", zap.String("op", op), zap.Error(err))
	return utils.DatabaseError(err)
}
