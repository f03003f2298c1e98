package usecase

import (
	"context"
	"errors"
	"time"

	"petclinic-api/internal/converter"
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/delivery/http/middleware"
	"petclinic-api/internal/domain/entity"
	"petclinic-api/internal/domain/repository"
	"petclinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentNotPending = errors.New("payment is not pending")
)

type PaymentUsecase interface {
	SettlePayment(ctx context.Context, id uuid.UUID, req *dto.SettlePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	GetAllPayments(ctx context.Context, status string, page, limit int) ([]dto.PaymentResponse, int64, error)
}

type paymentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	paymentRepo  repository.PaymentRepository
	auditService service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:           db,
		log:          log,
		paymentRepo:  paymentRepo,
		auditService: auditService,
	}
}

// SettlePayment marks a pending payment as completed. The conditional update
// keeps two cashiers from settling the same bill twice.
func (u *paymentUsecase) SettlePayment(ctx context.Context, id uuid.UUID, req *dto.SettlePaymentRequest) (*dto.PaymentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	paidAt := time.Now()

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.paymentRepo.Settle(tx, id, req.Method, paidAt)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrPaymentNotPending
		}

		return u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionPaymentSettle, "payment", id.String(),
			payment.Status, entity.PaymentStatusCompleted)
	})
	if err != nil {
		if !errors.Is(err, ErrPaymentNotPending) {
			u.log.Warnf("Failed to settle payment %s: %+v", id, err)
		}
		return nil, err
	}

	settled, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || settled == nil {
		u.log.Warnf("Failed to reload payment %s: %+v", id, err)
		return nil, ErrPaymentNotFound
	}

	u.log.Infof("Payment settled: id=%s, method=%s, amount=%s", id, req.Method, settled.Amount)
	return converter.PaymentToResponse(settled), nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetAllPayments(ctx context.Context, status string, page, limit int) ([]dto.PaymentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	payments, total, err := u.paymentRepo.FindAll(u.db.WithContext(ctx), entity.PaymentStatus(status), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find payments: %+v", err)
		return nil, 0, err
	}

	return converter.PaymentsToResponses(payments), total, nil
}
