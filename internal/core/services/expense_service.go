package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	accountSvc  portssvc.ChartOfAccountsSvcFacade
	postingSvc  portssvc.PostingSvcFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	accountSvc portssvc.ChartOfAccountsSvcFacade,
	postingSvc portssvc.PostingSvcFacade,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		accountSvc:  accountSvc,
		postingSvc:  postingSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense persists the expense and posts its journal entry immediately.
// The category picks the debit account, the payment mode the credit account.
// Posting failure deletes the expense row again.
func (s *expenseService) CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expenseDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	paymentMode := req.PaymentMode
	if paymentMode == "" {
		paymentMode = domain.PayCash
	}

	debitCode, err := s.accountSvc.AccountForExpenseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	creditCode, err := s.accountSvc.AccountForPaymentMode(paymentMode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		BusinessID:    businessID,
		ExpenseNumber: documentNumber("EXP", now),
		Category:      req.Category,
		VendorName:    req.VendorName,
		Amount:        req.Amount,
		Description:   req.Description,
		ExpenseDate:   expenseDate,
		PaymentMode:   paymentMode,
		Reference:     req.Reference,
		Notes:         req.Notes,
		Status:        domain.ExpensePending,
		CreatedBy:     creatorUserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, err
	}

	_, err = s.postingSvc.PostJournalEntry(ctx, businessID, portssvc.PostJournalEntryInput{
		Date:          expenseDate,
		Description:   fmt.Sprintf("Expense %s: %s", expense.ExpenseNumber, req.Description),
		ReferenceType: domain.RefExpense,
		ReferenceID:   expense.ExpenseID,
		Lines: []portssvc.JournalLineInput{
			{AccountCode: debitCode, Debit: req.Amount},
			{AccountCode: creditCode, Credit: req.Amount},
		},
	})
	if err != nil {
		if delErr := s.expenseRepo.DeleteExpense(ctx, businessID, expense.ExpenseID); delErr != nil {
			logger.Error("Failed to roll back expense after posting failure",
				slog.String("expense_id", expense.ExpenseID),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("failed to post expense journal entry: %w", err)
	}

	logger.Info("Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("expense_number", expense.ExpenseNumber),
		slog.String("category", string(expense.Category)))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListExpensesResponse, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, businessID, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.expenseRepo.CountExpenses(ctx, businessID)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		data[i] = dto.ToExpenseResponse(&expenses[i])
	}
	return &dto.ListExpensesResponse{
		Data:       data,
		Pagination: dto.NewPagination(params, total),
	}, nil
}

// UpdateExpense edits a pending expense. Amount, category or payment mode
// changes re-post the journal entry so the ledger tracks the new values.
func (s *expenseService) UpdateExpense(ctx context.Context, businessID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, businessID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpensePending {
		return nil, fmt.Errorf("%w: only pending expenses can be edited", apperrors.ErrValidation)
	}
	original := *expense

	repost := false
	if req.Category != nil && *req.Category != expense.Category {
		expense.Category = *req.Category
		repost = true
	}
	if req.Amount != nil && !req.Amount.Equal(expense.Amount) {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
		repost = true
	}
	if req.PaymentMode != nil && *req.PaymentMode != expense.PaymentMode {
		expense.PaymentMode = *req.PaymentMode
		repost = true
	}
	if req.ExpenseDate != nil {
		expenseDate, err := time.Parse("2006-01-02", *req.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: expenseDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		if !expenseDate.Equal(expense.ExpenseDate) {
			expense.ExpenseDate = expenseDate
			repost = true
		}
	}
	if req.VendorName != nil {
		expense.VendorName = *req.VendorName
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Reference != nil {
		expense.Reference = *req.Reference
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.UpdatedAt = time.Now().UTC()

	if !repost {
		if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
			return nil, err
		}
		return expense, nil
	}

	debitCode, err := s.accountSvc.AccountForExpenseCategory(expense.Category)
	if err != nil {
		return nil, err
	}
	creditCode, err := s.accountSvc.AccountForPaymentMode(expense.PaymentMode)
	if err != nil {
		return nil, err
	}

	// The row is written before the ledger is touched so a posting failure can
	// restore it. After a successful reversal the original entry is posted back,
	// keeping row and ledger in step whichever call fails.
	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, err
	}

	if err := s.postingSvc.ReverseByReference(ctx, businessID, domain.RefExpense, expense.ExpenseID); err != nil {
		s.restoreExpenseRow(ctx, original)
		return nil, fmt.Errorf("failed to reverse expense journal entry: %w", err)
	}
	_, err = s.postingSvc.PostJournalEntry(ctx, businessID, portssvc.PostJournalEntryInput{
		Date:          expense.ExpenseDate,
		Description:   fmt.Sprintf("Expense %s: %s", expense.ExpenseNumber, expense.Description),
		ReferenceType: domain.RefExpense,
		ReferenceID:   expense.ExpenseID,
		Lines: []portssvc.JournalLineInput{
			{AccountCode: debitCode, Debit: expense.Amount},
			{AccountCode: creditCode, Credit: expense.Amount},
		},
	})
	if err != nil {
		s.restoreExpenseRow(ctx, original)
		if postErr := s.postExpenseEntry(ctx, businessID, original); postErr != nil {
			logger := middleware.GetLoggerFromCtx(ctx)
			logger.Error("Failed to restore journal entry after re-post failure",
				slog.String("expense_id", original.ExpenseID),
				slog.String("error", postErr.Error()))
		}
		return nil, fmt.Errorf("failed to re-post expense journal entry: %w", err)
	}
	return expense, nil
}

// restoreExpenseRow writes the pre-edit row back after a ledger failure.
func (s *expenseService) restoreExpenseRow(ctx context.Context, expense domain.Expense) {
	if err := s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Failed to restore expense after posting failure",
			slog.String("expense_id", expense.ExpenseID),
			slog.String("error", err.Error()))
	}
}

// postExpenseEntry posts the entry for an expense as it stands.
func (s *expenseService) postExpenseEntry(ctx context.Context, businessID string, expense domain.Expense) error {
	debitCode, err := s.accountSvc.AccountForExpenseCategory(expense.Category)
	if err != nil {
		return err
	}
	creditCode, err := s.accountSvc.AccountForPaymentMode(expense.PaymentMode)
	if err != nil {
		return err
	}
	_, err = s.postingSvc.PostJournalEntry(ctx, businessID, portssvc.PostJournalEntryInput{
		Date:          expense.ExpenseDate,
		Description:   fmt.Sprintf("Expense %s: %s", expense.ExpenseNumber, expense.Description),
		ReferenceType: domain.RefExpense,
		ReferenceID:   expense.ExpenseID,
		Lines: []portssvc.JournalLineInput{
			{AccountCode: debitCode, Debit: expense.Amount},
			{AccountCode: creditCode, Credit: expense.Amount},
		},
	})
	return err
}

// DeleteExpense removes a pending expense together with its journal entries.
func (s *expenseService) DeleteExpense(ctx context.Context, businessID, expenseID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, businessID, expenseID)
	if err != nil {
		return err
	}
	if expense.Status != domain.ExpensePending {
		return fmt.Errorf("%w: only pending expenses can be deleted", apperrors.ErrValidation)
	}

	if err := s.postingSvc.ReverseByReference(ctx, businessID, domain.RefExpense, expenseID); err != nil {
		return err
	}
	return s.expenseRepo.DeleteExpense(ctx, businessID, expenseID)
}

// ApproveExpense moves a pending expense to approved. The journal entry was
// posted at creation, so approval only flips workflow state.
func (s *expenseService) ApproveExpense(ctx context.Context, businessID, expenseID, approverUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, businessID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpensePending {
		return nil, fmt.Errorf("%w: expense is %s, only pending expenses can be approved", apperrors.ErrValidation, expense.Status)
	}

	now := time.Now().UTC()
	expense.Status = domain.ExpenseApproved
	expense.ApprovedBy = approverUserID
	expense.ApprovedAt = &now
	expense.UpdatedAt = now

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// RejectExpense flips a pending expense to rejected and reverses its journal
// entries so the ledger no longer carries the cost.
func (s *expenseService) RejectExpense(ctx context.Context, businessID, expenseID, rejecterUserID, reason string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, businessID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpensePending {
		return nil, fmt.Errorf("%w: expense is %s, only pending expenses can be rejected", apperrors.ErrValidation, expense.Status)
	}

	now := time.Now().UTC()
	expense.Status = domain.ExpenseRejected
	expense.RejectedBy = rejecterUserID
	expense.RejectedAt = &now
	expense.RejectionReason = reason
	expense.UpdatedAt = now

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, err
	}

	// Rejection stands even when the ledger cleanup fails.
	if err := s.postingSvc.ReverseByReference(ctx, businessID, domain.RefExpense, expenseID); err != nil {
		logger.Error("Failed to reverse journal entries for rejected expense",
			slog.String("expense_id", expenseID),
			slog.String("error", err.Error()))
	}

	logger.Info("Expense rejected",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("expense_number", expense.ExpenseNumber))
	return expense, nil
}
