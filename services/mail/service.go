package mail

import (
	"fmt"

	"github.com/wneessen/go-mail"
	"github.com/yoursport/admin-api/config"
	"github.com/yoursport/admin-api/services/logging"
	"go.uber.org/zap"
)

// Service delivers transactional mail over SMTP. It is optional: when mail is
// disabled in config the service is nil-valued and Send is a no-op, so the
// reset flow still works with token-in-response parity behavior.
type Service struct {
	config *config.MailConfig
	client *mail.Client
	logger *logging.Service
}

func NewService(cfg *config.MailConfig, logger *logging.Service) (*Service, error) {
	if !cfg.Enabled {
		if logger != nil {
			logger.Info("mail service disabled")
		}
		return nil, nil
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("YS_MAIL_HOST is required when mail is enabled")
	}

	clientOpts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username))
	}
	if cfg.Password != "" {
		clientOpts = append(clientOpts, mail.WithPassword(cfg.Password))
	}

	client, err := mail.NewClient(cfg.Host, clientOpts...)
	if err != nil {
		if logger != nil {
			logger.Error("failed to create mail client", zap.Error(err), zap.String("host", cfg.Host))
		}
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	if logger != nil {
		logger.Info("mail service initialized", zap.String("host", cfg.Host), zap.Int("port", cfg.Port))
	}

	return &Service{
		config: cfg,
		client: client,
		logger: logger,
	}, nil
}

func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *Service) Send(to, subject, body string) error {
	if !s.Enabled() {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(s.config.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := s.client.DialAndSend(msg); err != nil {
		if s.logger != nil {
			s.logger.Error("failed to send mail", zap.Error(err), zap.String("to", to))
		}
		return fmt.Errorf("failed to send mail: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	}
	return nil
}
