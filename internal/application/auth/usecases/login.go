package usecases

import (
	"context"
	"strings"
	"time"

	"kontor/internal/domain/access"
	"kontor/internal/domain/user"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	ClientIP string
}

type LoginResult struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	UserID     uint      `json:"user_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Kind       string    `json:"kind"`
	CustomerID *uint     `json:"customer_id"`
}

// LoginUseCase authenticates staff and consumer accounts. Staff
// addresses are tried first; the failure message never reveals which
// side missed.
type LoginUseCase struct {
	staffRepo    user.StaffRepository
	consumerRepo user.ConsumerRepository
	hasher       PasswordHasher
	issuer       TokenIssuer
	publisher    EventPublisher
	logger       logger.Interface
}

func NewLoginUseCase(
	staffRepo user.StaffRepository,
	consumerRepo user.ConsumerRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	publisher EventPublisher,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		staffRepo:    staffRepo,
		consumerRepo: consumerRepo,
		hasher:       hasher,
		issuer:       issuer,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}
	email := strings.ToLower(cmd.Email)

	staff, err := uc.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if staff != nil {
		return uc.loginStaff(ctx, staff, cmd)
	}

	consumer, err := uc.consumerRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if consumer != nil {
		return uc.loginConsumer(ctx, consumer, cmd)
	}

	uc.logger.Warnw("login attempt for unknown email", "ip", cmd.ClientIP)
	return nil, errors.NewBadRequestError("invalid credentials")
}

func (uc *LoginUseCase) loginStaff(ctx context.Context, u *user.StaffUser, cmd LoginCommand) (*LoginResult, error) {
	if err := uc.hasher.Compare(u.HashedPassword(), cmd.Password); err != nil {
		uc.logger.Warnw("failed staff login", "user_id", u.ID(), "ip", cmd.ClientIP)
		return nil, errors.NewBadRequestError("invalid credentials")
	}
	if !u.CanLogin() {
		return nil, errors.NewForbiddenError("not allowed")
	}

	principal := access.Principal{
		ID:   u.ID(),
		Role: u.Role(),
		Kind: authorization.KindStaff,
	}
	token, expiresAt, err := uc.issuer.Issue(principal, u.Email(), u.Name())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	u.RecordLogin()
	if err := uc.staffRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record staff login", "user_id", u.ID(), "error", err)
	}

	publishAuthEvent(uc.publisher, uc.logger, "LOGIN", access.EntityStaffUser, u.ID(), cmd.ClientIP)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    u.ID(),
		Name:      u.Name(),
		Role:      string(u.Role()),
		Kind:      string(authorization.KindStaff),
	}, nil
}

func (uc *LoginUseCase) loginConsumer(ctx context.Context, u *user.ConsumerUser, cmd LoginCommand) (*LoginResult, error) {
	if err := uc.hasher.Compare(u.HashedPassword(), cmd.Password); err != nil {
		uc.logger.Warnw("failed consumer login", "user_id", u.ID(), "ip", cmd.ClientIP)
		return nil, errors.NewBadRequestError("invalid credentials")
	}
	if !u.CanLogin() {
		return nil, errors.NewForbiddenError("not allowed")
	}

	customerID := u.CustomerID()
	principal := access.Principal{
		ID:         u.ID(),
		Role:       authorization.RoleKunde,
		Kind:       authorization.KindConsumer,
		CustomerID: &customerID,
	}
	token, expiresAt, err := uc.issuer.Issue(principal, u.Email(), u.Name())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	u.RecordLogin()
	if err := uc.consumerRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record consumer login", "user_id", u.ID(), "error", err)
	}

	publishAuthEvent(uc.publisher, uc.logger, "LOGIN", access.EntityConsumerUser, u.ID(), cmd.ClientIP)

	return &LoginResult{
		Token:      token,
		ExpiresAt:  expiresAt,
		UserID:     u.ID(),
		Name:       u.Name(),
		Role:       string(authorization.RoleKunde),
		Kind:       string(authorization.KindConsumer),
		CustomerID: &customerID,
	}, nil
}
