package figure

import "errors"

var (
	// ErrInvalidSpawn is returned when a window origin lies in no arrival band
	// and no travel direction was supplied.
	ErrInvalidSpawn = errors.New("window origin is outside every arrival band")

	// ErrNoRotation is returned when rotating a shape without rotational variants.
	ErrNoRotation = errors.New("shape has no rotational variants")

	// ErrRotateDirection is returned for a rotation direction other than Left or Right.
	ErrRotateDirection = errors.New("rotation direction must be Left or Right")
)
