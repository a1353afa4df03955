package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tzt-server/internal/domain"
	"tzt-server/internal/repository"
	"tzt-server/internal/storage"
)

// ContactService accepts contact-form submissions and optionally mirrors
// accepted messages to object storage.
type ContactService interface {
	Accept(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)
}

type contactService struct {
	messages repository.ContactMessageRepository
	archive  storage.Service
	opts     storage.ArchiveOptions
	logger   *logrus.Logger
}

// NewContactService builds a ContactService. archive may be nil, in which
// case messages are kept only in the database.
func NewContactService(messages repository.ContactMessageRepository, archive storage.Service, opts storage.ArchiveOptions, logger *logrus.Logger) ContactService {
	return &contactService{
		messages: messages,
		archive:  archive,
		opts:     opts,
		logger:   logger,
	}
}

func (s *contactService) Accept(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	message = strings.TrimSpace(message)

	if len(name) < 2 {
		return nil, domain.NewValidationError("name", "name must be at least 2 characters")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(message) < 10 {
		return nil, domain.NewValidationError("message", "message must be at least 10 characters")
	}

	msg := &domain.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.archive != nil {
		go s.archiveMessage(*msg)
	}

	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx)
}

// archiveMessage mirrors an accepted message to the archive bucket.
// Archival is best effort; a failure never surfaces to the submitter.
func (s *contactService) archiveMessage(msg domain.ContactMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body, err := json.Marshal(msg)
	if err != nil {
		s.logger.Warnf("marshal contact message %s for archive: %v", msg.ID, err)
		return
	}

	key := fmt.Sprintf("%s/%s.json", strings.Trim(s.opts.KeyPrefix, "/"), msg.ID)
	if err := s.archive.PutObject(ctx, s.opts.Bucket, key, body, "application/json"); err != nil {
		s.logger.Warnf("archive contact message %s: %v", msg.ID, err)
	}
}
