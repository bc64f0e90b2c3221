package commands

import "context"

// ReleaseDriversCommandHandler frees busy drivers that have no order in an
// active status. Run periodically so drivers whose orders finished or were
// cancelled become available for new assignments again.
type ReleaseDriversCommandHandler struct {
	uowFactory UoWFactory
}

// NewReleaseDriversCommandHandler creates a handler for the release sweep.
func NewReleaseDriversCommandHandler(uowFactory UoWFactory) ReleaseDriversCommandHandler {
	return ReleaseDriversCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle releases every busy driver without active work and reports how many
// drivers were freed.
func (h ReleaseDriversCommandHandler) Handle(ctx context.Context, cmd ReleaseDriversCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	busyDrivers, err := driverRepo.GetAllBusy(ctx)
	if err != nil {
		return 0, err
	}
	if len(busyDrivers) == 0 {
		return 0, nil
	}

	activeDriverIDs, err := uow.OrderRepository().GetDriverIDsWithActiveOrders(ctx)
	if err != nil {
		return 0, err
	}

	active := make(map[int64]struct{}, len(activeDriverIDs))
	for _, id := range activeDriverIDs {
		active[id] = struct{}{}
	}

	released := 0
	for _, busyDriver := range busyDrivers {
		if _, stillWorking := active[busyDriver.ID()]; stillWorking {
			continue
		}

		busyDriver.Release()
		if err = driverRepo.Update(ctx, busyDriver); err != nil {
			return 0, err
		}
		released++
	}

	if released == 0 {
		return 0, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
