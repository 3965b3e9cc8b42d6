package commands

import (
	"errors"
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var ErrAddOrderImagesCommandIsNotConstructed = errors.New(
	"AddOrderImagesCommand must be created via NewAddOrderImagesCommand constructor",
)

// AddOrderImagesCommand uploads the before or after photos of an order.
// Stage is AddBeforeImages or AddAfterImages.
type AddOrderImagesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	stage   order.Action
	images  []ports.File

	guard guard.ConstructorGuard
}

func NewAddOrderImagesCommand(orderID kernel.ID, stage order.Action, images []ports.File) (AddOrderImagesCommand, error) {
	c := AddOrderImagesCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		c.setOrderID(orderID),
		c.setStage(stage),
		c.setImages(images),
	); err != nil {
		return AddOrderImagesCommand{}, err
	}
	return c, nil
}

func (c AddOrderImagesCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderImagesCommandIsNotConstructed)
}

func (c AddOrderImagesCommand) OrderID() kernel.ID   { return c.orderID }
func (c AddOrderImagesCommand) Stage() order.Action  { return c.stage }
func (c AddOrderImagesCommand) Images() []ports.File { return c.images }

func (c *AddOrderImagesCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderImagesCommand) setStage(stage order.Action) error {
	if stage != order.AddBeforeImages && stage != order.AddAfterImages {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%s does not take images", stage))
	}
	c.stage = stage
	return nil
}

func (c *AddOrderImagesCommand) setImages(images []ports.File) error {
	if len(images) == 0 {
		return order.ErrNoImageChosen
	}
	c.images = images
	return nil
}
