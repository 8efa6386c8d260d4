package commands

import (
	"errors"

	"galeteria/internal/pkg/errs"
	"galeteria/internal/pkg/guard"
)

var ErrAddClientCommandIsNotConstructed = errors.New(
	"AddClientCommand must be created via NewAddClientCommand constructor",
)

// AddClientCommand represents a request to register a client in the
// directory. Address is optional; pickup and tab clients often have none.
type AddClientCommand struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewAddClientCommand creates a command to register a client.
// Name and phone are required.
func NewAddClientCommand(name, phone, address string) (AddClientCommand, error) {
	clientCommand := AddClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setName(name),
		clientCommand.setPhone(phone),
	); err != nil {
		return AddClientCommand{}, err
	}

	clientCommand.address = address
	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddClientCommand) Validate() error {
	return c.guard.Validate(ErrAddClientCommandIsNotConstructed)
}

// Name returns the client's name.
func (c AddClientCommand) Name() string {
	return c.name
}

// Phone returns the client's contact phone.
func (c AddClientCommand) Phone() string {
	return c.phone
}

// Address returns the client's delivery address, possibly empty.
func (c AddClientCommand) Address() string {
	return c.address
}

func (c *AddClientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddClientCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
