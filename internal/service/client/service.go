package client

import (
	"context"

	"github.com/sitehub/sitehub-backend-go/internal/domain/client"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
)

type ClientServiceImpl struct {
	client.ClientRepository
}

func NewClientService(clientRepository client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{ClientRepository: clientRepository}
}

// List implements client.ClientService.
func (s *ClientServiceImpl) List(ctx context.Context, filter client.ListClientsFilter) ([]client.ClientResponse, int64, error) {
	filter.Normalize()

	clients, total, err := s.ClientRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, client.ToResponse(c))
	}

	return responses, total, nil
}

// Get implements client.ClientService.
func (s *ClientServiceImpl) Get(ctx context.Context, id string) (client.ClientResponse, error) {
	c, err := s.ClientRepository.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}

	return client.ToResponse(c), nil
}

// Create implements client.ClientService.
func (s *ClientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.ClientRepository.Create(ctx, client.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Notes:     req.Notes,
		CreatedBy: &actor.UserID,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return client.ToResponse(created), nil
}

// Update implements client.ClientService.
func (s *ClientServiceImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	existing, err := s.ClientRepository.GetByID(ctx, req.ID)
	if err != nil {
		return client.ClientResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = req.Email
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.City != nil {
		existing.City = req.City
	}
	if req.State != nil {
		existing.State = req.State
	}
	if req.Zip != nil {
		existing.Zip = req.Zip
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	existing.UpdatedBy = &actor.UserID

	if err := s.ClientRepository.Update(ctx, existing); err != nil {
		return client.ClientResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements client.ClientService.
func (s *ClientServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.ClientRepository.SoftDelete(ctx, id, actor.UserID)
}

// ListContacts implements client.ClientService.
func (s *ClientServiceImpl) ListContacts(ctx context.Context, clientID string) ([]client.ContactResponse, error) {
	// Confirm the client exists so a bad ID 404s instead of listing empty.
	if _, err := s.ClientRepository.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	contacts, err := s.ClientRepository.ListContacts(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]client.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, client.ToContactResponse(c))
	}

	return responses, nil
}

// CreateContact implements client.ClientService.
func (s *ClientServiceImpl) CreateContact(ctx context.Context, req client.CreateContactRequest) (client.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ContactResponse{}, err
	}

	if _, err := s.ClientRepository.GetByID(ctx, req.ClientID); err != nil {
		return client.ContactResponse{}, err
	}

	created, err := s.ClientRepository.CreateContact(ctx, client.Contact{
		ClientID:  req.ClientID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Email:     req.Email,
		Phone:     req.Phone,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		return client.ContactResponse{}, err
	}

	return client.ToContactResponse(created), nil
}

// DeleteContact implements client.ClientService.
func (s *ClientServiceImpl) DeleteContact(ctx context.Context, clientID, contactID string) error {
	contact, err := s.ClientRepository.GetContactByID(ctx, contactID)
	if err != nil {
		return err
	}

	if contact.ClientID != clientID {
		return client.ErrContactNotFound
	}

	return s.ClientRepository.SoftDeleteContact(ctx, contactID)
}
