package screens

import (
	"context"
	"fmt"

	"driverapp/internal/api"
	"driverapp/internal/domain/models"
	"driverapp/internal/utils"
)

// TripCard renders one trip's summary and owns its status transition
// control. A selected target first becomes a pending preview behind a
// confirmation popup; only the confirm commits it. A failed commit must
// leave the previously committed status displayed, never a stranded
// preview.
type TripCard struct {
	API      *api.Client
	Notifier Notifier

	Trip models.Trip

	Pending        *models.TripStatus
	ConfirmVisible bool
}

// Title shows the route as districts, e.g. "Western -> Southern".
func (c *TripCard) Title() string {
	return fmt.Sprintf("%s -> %s",
		utils.ExtractDistrict(c.Trip.StartLocation.Address),
		utils.ExtractDistrict(c.Trip.Destination.Address))
}

// FormattedDate renders the trip date for display.
func (c *TripCard) FormattedDate() string {
	return utils.FormatTripDate(c.Trip.Date)
}

// PriceLabel renders the per-seat price for display.
func (c *TripCard) PriceLabel() string {
	return utils.FormatRupees(c.Trip.PricePerSeat)
}

// Displayed is the status the card currently shows: the pending preview
// while the confirmation popup is open, the committed status otherwise.
func (c *TripCard) Displayed() models.TripStatus {
	if c.Pending != nil {
		return *c.Pending
	}
	return c.Trip.Status
}

// SelectStatus handles the enumerated status control. Picking the
// current status does nothing: no popup opens and no request is sent.
// Moves the lifecycle graph does not allow are ignored the same way.
// A valid target becomes the pending preview and opens the popup.
func (c *TripCard) SelectStatus(target models.TripStatus) {
	if target == c.Trip.Status {
		return
	}
	if !c.Trip.Status.CanTransition(target) {
		return
	}
	t := target
	c.Pending = &t
	c.ConfirmVisible = true
}

// ConfirmMessage interpolates the pending target into the prompt.
func (c *TripCard) ConfirmMessage() string {
	if c.Pending == nil {
		return ""
	}
	return fmt.Sprintf("Change trip status to %q?", string(*c.Pending))
}

// Confirm commits the pending transition. On success the displayed
// status becomes the target; on failure the preview reverts to the last
// committed status and the driver has to re-initiate. No retry.
func (c *TripCard) Confirm(ctx context.Context) error {
	if c.Pending == nil {
		return nil
	}
	target := *c.Pending
	c.Pending = nil
	c.ConfirmVisible = false

	updated, err := c.API.UpdateTripStatus(ctx, c.Trip.ID, target)
	if err != nil {
		utils.LogError("", "tripcard", "update_status", err)
		c.Notifier.Notify("Error", "Failed to update trip status")
		return err
	}

	if updated.Status != "" {
		c.Trip.Status = updated.Status
	} else {
		c.Trip.Status = target
	}
	return nil
}

// Cancel discards the pending target and reverts the control.
func (c *TripCard) Cancel() {
	c.Pending = nil
	c.ConfirmVisible = false
}
