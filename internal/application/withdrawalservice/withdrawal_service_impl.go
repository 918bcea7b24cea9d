package withdrawalservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/verification"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain/interfaces"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/withdrawalrepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/currency"
)

const (
	verificationSubject = "King Charmer Withdrawal Verification Code"
	withdrawalSubject   = "Withdrawal Request - %s"
)

const verificationBody = `<div style="font-family: Poppins, sans-serif; background:#f9f9ff; padding:20px; border-radius:10px;">
  <h2 style="color:#00b7ff;">Verification Code</h2>
  <h1 style="letter-spacing:5px; background:#000; color:#00ffff; padding:10px 20px; border-radius:10px; display:inline-block;">%s</h1>
  <p>Expires in %d minutes.</p>
</div>`

type withdrawalService struct {
	codes          *verification.Store
	mailer         interfaces.Mailer
	withdrawalRepo withdrawalrepo.IWithdrawalRepository
	companyEmail   string
	ttlMinutes     int
	currency       *currency.CurrencyUtils
	logger         zerolog.Logger
}

func New(
	codes *verification.Store,
	mailer interfaces.Mailer,
	withdrawalRepo withdrawalrepo.IWithdrawalRepository,
	companyEmail string,
	ttlMinutes int,
	logger zerolog.Logger,
) IWithdrawalService {
	return &withdrawalService{
		codes:          codes,
		mailer:         mailer,
		withdrawalRepo: withdrawalRepo,
		companyEmail:   companyEmail,
		ttlMinutes:     ttlMinutes,
		currency:       currency.NewCurrencyUtils(),
		logger:         logger,
	}
}

func (s *withdrawalService) SendVerificationCode(ctx context.Context, identifier, code string) error {
	if identifier == "" {
		return domain.NewValidationError("identifier")
	}
	if code == "" {
		return domain.NewValidationError("code")
	}

	// Store first. A failed delivery does not roll the code back; the caller
	// sees the error and may retry, and a later consume with this code inside
	// the window is still honored.
	s.codes.Issue(identifier, code)

	body := fmt.Sprintf(verificationBody, code, s.ttlMinutes)
	if err := s.mailer.SendHTML(ctx, identifier, verificationSubject, body); err != nil {
		return fmt.Errorf("failed to deliver verification code: %v", err)
	}

	s.logger.Info().Str("identifier", identifier).Msg("Verification code issued")
	return nil
}

func (s *withdrawalService) RequestWithdrawal(ctx context.Context, req *domain.WithdrawalRequest) error {
	if req.Identifier == "" {
		return domain.NewValidationError("identifier")
	}

	// Check-and-delete happens before dispatch: two concurrent requests with
	// the same valid code must not both send an email.
	if err := s.codes.Consume(req.Identifier, req.Code); err != nil {
		s.logger.Warn().Str("identifier", req.Identifier).Msg("Withdrawal blocked by invalid or expired code")
		return err
	}

	target := req.NotifyTarget
	if target == "" {
		target = s.companyEmail
	}

	subject := fmt.Sprintf(withdrawalSubject, req.Provider)
	if err := s.mailer.Send(ctx, target, subject, s.withdrawalBody(req)); err != nil {
		return fmt.Errorf("failed to deliver withdrawal request: %v", err)
	}

	s.logger.Info().
		Str("identifier", req.Identifier).
		Str("provider", req.Provider).
		Float64("amount", req.Amount).
		Msg("Withdrawal request dispatched")

	s.audit(ctx, req)
	return nil
}

func (s *withdrawalService) withdrawalBody(req *domain.WithdrawalRequest) string {
	return fmt.Sprintf(`Withdrawal Request

Provider: %s
Requested By: %s
Bank Name: %s
Account Number: %s
Phone: %s
Email: %s
Amount: %s
Current Balance: %s
`,
		req.Provider,
		req.AccountName,
		req.BankName,
		req.AccountNumber,
		req.Phone,
		req.Identifier,
		s.currency.FormatNGN(req.Amount),
		s.currency.FormatNGN(req.CurrentBalance),
	)
}

// audit records the dispatched request. The email already went out, so a
// storage failure here is logged rather than surfaced to the caller.
func (s *withdrawalService) audit(ctx context.Context, req *domain.WithdrawalRequest) {
	if s.withdrawalRepo == nil {
		return
	}

	// The raw body is kept for reconciliation, minus the consumed code.
	clean := *req
	clean.Code = ""
	payload, err := json.Marshal(&clean)
	if err != nil {
		payload = nil
	}

	withdrawal := &domain.Withdrawal{
		Provider:       req.Provider,
		AccountName:    req.AccountName,
		AccountNumber:  req.AccountNumber,
		BankName:       req.BankName,
		Phone:          req.Phone,
		Email:          req.Identifier,
		Amount:         req.Amount,
		CurrentBalance: req.CurrentBalance,
		Payload:        payload,
	}
	if err := s.withdrawalRepo.Create(ctx, withdrawal); err != nil {
		s.logger.Err(err).Str("provider", req.Provider).Msg("Failed to record withdrawal request audit row")
	}
}
