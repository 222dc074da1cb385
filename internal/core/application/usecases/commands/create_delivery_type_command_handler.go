package commands

import (
	"context"
	"errors"

	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/pkg/errs"
)

// ErrDeliveryTypeCodeAlreadyExists is returned when another delivery type
// already carries the requested code. Codes are immutable identifiers once
// rules reference them, so duplicates are rejected up front.
var ErrDeliveryTypeCodeAlreadyExists = errors.New("delivery type code already exists")

// CreateDeliveryTypeCommandHandler handles the business logic for registering
// a new delivery service tier.
//
// Example:
//
//	handler := NewCreateDeliveryTypeCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryTypeCommand("OVERNIGHT", "Overnight", "", base,
//	    nil, false, false, true, 3)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery type creation failed: %w", err)
//	}
type CreateDeliveryTypeCommandHandler struct {
	uowFactory DeliveryTypeUoWFactory
}

// NewCreateDeliveryTypeCommandHandler creates a handler for delivery type creation.
// Requires a DeliveryTypeUoWFactory for transactional persistence.
func NewCreateDeliveryTypeCommandHandler(uowFactory DeliveryTypeUoWFactory) CreateDeliveryTypeCommandHandler {
	return CreateDeliveryTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery type creation command.
// Rejects duplicate codes, constructs the aggregate, and persists it within
// a transaction that is rolled back on any error.
func (h *CreateDeliveryTypeCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryTypeRepository()

	if _, err := repo.GetByCode(ctx, cmd.Code()); err == nil {
		return ErrDeliveryTypeCodeAlreadyExists
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	dt, err := deliverytype.NewDeliveryType(
		cmd.DeliveryTypeID(),
		cmd.Code(),
		cmd.Name(),
		cmd.Description(),
		cmd.BasePrice(),
		cmd.MaxCoverageKm(),
		cmd.OversizeHandledBySurcharge(),
		cmd.RequiresAdminApproval(),
		cmd.IsActive(),
		cmd.DisplayOrder(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, dt); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
