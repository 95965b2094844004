package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context, filter ListClientsFilter) ([]Client, int64, error)
	Update(ctx context.Context, c Client) error
	SoftDelete(ctx context.Context, id string, deletedBy string) error

	CreateContact(ctx context.Context, c Contact) (Contact, error)
	GetContactByID(ctx context.Context, id string) (Contact, error)
	ListContacts(ctx context.Context, clientID string) ([]Contact, error)
	UpdateContact(ctx context.Context, c Contact) error
	SoftDeleteContact(ctx context.Context, id string) error
}

type ClientService interface {
	List(ctx context.Context, filter ListClientsFilter) ([]ClientResponse, int64, error)
	Get(ctx context.Context, id string) (ClientResponse, error)
	Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	Update(ctx context.Context, req UpdateClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, id string) error

	ListContacts(ctx context.Context, clientID string) ([]ContactResponse, error)
	CreateContact(ctx context.Context, req CreateContactRequest) (ContactResponse, error)
	DeleteContact(ctx context.Context, clientID, contactID string) error
}
