package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/sl"
	libsmtp "github.com/magabrotheeeer/telecom-registry/internal/lib/smtp"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// SenderService рассылает письма о просроченных долгах из очереди
// debts.overdue на ящик дежурной смены.
type SenderService struct {
	transport libsmtp.TransportInterface
	mailbox   string
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport libsmtp.TransportInterface, mailbox string, log *slog.Logger) *SenderService {
	return &SenderService{
		transport: transport,
		mailbox:   mailbox,
		log:       log,
	}
}

// SendOverdueDebtNotice разбирает сообщение из очереди и отправляет
// письмо с данными должника.
func (s *SenderService) SendOverdueDebtNotice(body []byte) error {
	var message models.OverdueDebt
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	subject := "Просроченная задолженность абонента"
	bodyText := fmt.Sprintf("Абонент %s %s %s имеет просроченный долг %.2f грн.\nСрок погашения истёк %s.\nНомер долга: %d.",
		message.Lastname, message.Firstname, message.Middlename,
		message.Amount, message.Deadline.Format("2006-01-02"), message.DebtID)

	return s.sendEmail([]string{s.mailbox}, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}
