package services

import (
	"context"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

type OrganizerServiceInterface interface {
	AccountServiceInterface[db_models.Organizer]
	Create(ctx context.Context, req request_models.CreateOrganizerRequest) (*db_models.Organizer, error)
	Update(ctx context.Context, req request_models.UpdateOrganizerRequest) (*db_models.Organizer, error)
}

type OrganizerService struct {
	*accountService[db_models.Organizer, *db_models.Organizer]
}

func NewOrganizerService(
	repo repositories.AccountRepository[db_models.Organizer],
	roleService RoleServiceInterface,
	tx repositories.TransactionManager,
	cfg AccountConfig,
	logger *zap.Logger,
) OrganizerServiceInterface {
	return &OrganizerService{
		accountService: newAccountService[db_models.Organizer, *db_models.Organizer](repo, roleService, tx, utils.ErrOrganizerNotFound, cfg, logger),
	}
}

// phoneNumber rejects numbers without digits: their normalized value would
// be empty and collide with every other such number.
func phoneNumber(req request_models.PhoneNumberRequest) (db_models.PhoneNumber, error) {
	value := utils.NormalizePhoneNumber(req.Phone, req.CountryCode)
	if value == "" {
		return db_models.PhoneNumber{}, utils.ErrInvalidCompanyNumber
	}
	return db_models.PhoneNumber{
		Phone:       req.Phone,
		Value:       value,
		IsoCode:     req.IsoCode,
		CountryCode: req.CountryCode,
	}, nil
}

func (s *OrganizerService) Create(ctx context.Context, req request_models.CreateOrganizerRequest) (*db_models.Organizer, error) {
	if err := s.ensureUnique(ctx, repositories.FieldEmail, req.Email, utils.ErrEmailAlreadyInUse); err != nil {
		return nil, err
	}
	number, err := phoneNumber(req.CompanyNumber)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, repositories.FieldCompanyNumberValue, number.Value, utils.ErrCompanyNumberAlreadyInUse); err != nil {
		return nil, err
	}

	organizer := &db_models.Organizer{
		AccountBase:    db_models.AccountBase{Email: req.Email},
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		CompanyArea:    req.CompanyArea,
		CompanyNumber:  number,
	}
	return s.create(ctx, organizer, req.Password, req.RoleID)
}

func (s *OrganizerService) Update(ctx context.Context, req request_models.UpdateOrganizerRequest) (*db_models.Organizer, error) {
	organizer, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := s.ensureUnique(ctx, repositories.FieldEmail, *req.Email, utils.ErrEmailAlreadyInUse); err != nil {
			return nil, err
		}
		organizer.Email = *req.Email
	}
	if req.CompanyNumber != nil {
		number, err := phoneNumber(*req.CompanyNumber)
		if err != nil {
			return nil, err
		}
		if err := s.ensureUnique(ctx, repositories.FieldCompanyNumberValue, number.Value, utils.ErrCompanyNumberAlreadyInUse); err != nil {
			return nil, err
		}
		organizer.CompanyNumber = number
	}
	setIfPresent(&organizer.FirstName, req.FirstName)
	setIfPresent(&organizer.LastName, req.LastName)
	setIfPresent(&organizer.CompanyName, req.CompanyName)
	setIfPresent(&organizer.CompanyAddress, req.CompanyAddress)
	setIfPresent(&organizer.CompanyArea, req.CompanyArea)

	return s.save(ctx, organizer)
}

func setIfPresent[V any](dst *V, v *V) {
	if v != nil {
		*dst = *v
	}
}
