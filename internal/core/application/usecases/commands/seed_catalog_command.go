package commands

import (
	"errors"

	"helpii/internal/pkg/guard"
)

var ErrSeedCatalogCommandIsNotConstructed = errors.New(
	"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
)

// SeedCatalogCommand represents a request to install the default pricing
// catalog: the standard delivery types with their rule sets. The operation
// is idempotent per delivery type; types whose code already exists are left
// untouched so operator edits survive restarts.
//
// Example:
//
//	cmd := NewSeedCatalogCommand()
//	handler := NewSeedCatalogCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("catalog seeding failed: %w", err)
//	}
type SeedCatalogCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedCatalogCommand creates a command to install the default catalog.
// The command carries no payload; the seed data is owned by the handler.
func NewSeedCatalogCommand() SeedCatalogCommand {
	return SeedCatalogCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSeedCatalogCommandIsNotConstructed if validation fails.
func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}
