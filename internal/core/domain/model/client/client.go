// Package client contains the Client entity of the customer directory.
// Orders reference clients by id; the directory owns the record itself.
package client

import (
	"errors"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is a customer record: name, contact phone and delivery address.
type Client struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	isConstructed bool
}

// NewClient creates a validated Client. Name and phone are required;
// address may be empty for pickup-only customers.
func NewClient(id kernel.UUID, name, phone, address string) (*Client, error) {
	c := &Client{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	c.address = address
	return c, nil
}

// RestoreClient reconstructs a Client from persistence.
func RestoreClient(id kernel.UUID, name, phone, address string) (*Client, error) {
	return NewClient(id, name, phone, address)
}

// Validate ensures the Client was created through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's name.
func (c *Client) Name() string {
	return c.name
}

// Phone returns the client's contact phone.
func (c *Client) Phone() string {
	return c.phone
}

// Address returns the client's delivery address.
func (c *Client) Address() string {
	return c.address
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
