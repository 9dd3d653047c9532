package services

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/smtp"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *MockTransport) GetSMTPUser() string {
	args := m.Called()
	return args.String(0)
}

type MockSMTPClient struct {
	mock.Mock
}

func (m *MockSMTPClient) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *MockSMTPClient) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *MockSMTPClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *MockSMTPClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSMTPClient) Quit() error {
	args := m.Called()
	return args.Error(0)
}

type MockSMTPWriter struct {
	mock.Mock
}

func (m *MockSMTPWriter) Write(p []byte) (n int, err error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockSMTPWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func overdueBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(models.OverdueDebt{
		DebtID:     3,
		Lastname:   "Коваленко",
		Firstname:  "Іван",
		Middlename: "Петрович",
		Amount:     150.50,
		Deadline:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	return body
}

func TestSenderService_SendOverdueDebtNotice(t *testing.T) {
	transport := new(MockTransport)
	client := new(MockSMTPClient)
	writer := new(MockSMTPWriter)
	log := testLogger()

	transport.On("GetSMTPUser").Return("noreply@example.com")
	transport.On("Connect").Return(client, nil).Once()
	client.On("Mail", "noreply@example.com").Return(nil).Once()
	client.On("Rcpt", "billing@example.com").Return(nil).Once()
	client.On("Data").Return(writer, nil).Once()
	writer.On("Write", mock.MatchedBy(func(p []byte) bool {
		return len(p) > 0
	})).Return(1, nil).Once()
	writer.On("Close").Return(nil).Once()
	client.On("Quit").Return(nil).Once()
	client.On("Close").Return(nil).Once()

	svc := NewSenderService(transport, "billing@example.com", log)
	err := svc.SendOverdueDebtNotice(overdueBody(t))

	assert.NoError(t, err)
	transport.AssertExpectations(t)
	client.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestSenderService_SendOverdueDebtNotice_BadBody(t *testing.T) {
	transport := new(MockTransport)
	log := testLogger()

	svc := NewSenderService(transport, "billing@example.com", log)
	err := svc.SendOverdueDebtNotice([]byte("not json"))

	assert.Error(t, err)
	transport.AssertNotCalled(t, "Connect")
}

func TestSenderService_SendOverdueDebtNotice_ConnectError(t *testing.T) {
	transport := new(MockTransport)
	log := testLogger()

	transport.On("GetSMTPUser").Return("noreply@example.com")
	transport.On("Connect").Return(nil, errors.New("dial tcp: refused")).Once()

	svc := NewSenderService(transport, "billing@example.com", log)
	err := svc.SendOverdueDebtNotice(overdueBody(t))

	assert.Error(t, err)
	transport.AssertExpectations(t)
}
