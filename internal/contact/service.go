package contact

import (
	"context"

	"go.uber.org/zap"

	"foodiexpress/internal/domain"
)

type contactService struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &contactService{
		repo:   repo,
		logger: logger,
	}
}

func (s *contactService) Create(ctx context.Context, req CreateContactRequest) (*ContactDTO, error) {
	contact := domain.Contact{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		Newsletter: req.Newsletter,
	}

	id, err := s.repo.Insert(ctx, contact)
	if err != nil {
		return nil, err
	}

	s.logger.Info("contact message received",
		zap.String("email", contact.Email),
		zap.String("subject", contact.Subject),
		zap.Uint("id", id),
	)

	return s.GetByID(ctx, id)
}

func (s *contactService) GetAll(ctx context.Context) ([]ContactDTO, error) {
	contacts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapContacts(contacts), nil
}

func (s *contactService) GetByID(ctx context.Context, id uint) (*ContactDTO, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapped := mapContact(*contact)
	return &mapped, nil
}

func (s *contactService) GetUnread(ctx context.Context) ([]ContactDTO, error) {
	contacts, err := s.repo.FindUnread(ctx)
	if err != nil {
		return nil, err
	}
	return mapContacts(contacts), nil
}

func (s *contactService) MarkRead(ctx context.Context, id uint) (*ContactDTO, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.SetRead(ctx, id); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *contactService) MarkResolved(ctx context.Context, id uint) (*ContactDTO, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.SetResolved(ctx, id); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("contact deleted", zap.Uint("id", id))
	return nil
}

func mapContact(contact domain.Contact) ContactDTO {
	return ContactDTO{
		ID:         contact.ID,
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Subject:    contact.Subject,
		Message:    contact.Message,
		Newsletter: contact.Newsletter,
		IsRead:     contact.IsRead,
		IsResolved: contact.IsResolved,
		CreatedAt:  contact.CreatedAt,
	}
}

func mapContacts(contacts []domain.Contact) []ContactDTO {
	result := make([]ContactDTO, 0, len(contacts))
	for _, contact := range contacts {
		result = append(result, mapContact(contact))
	}
	return result
}
