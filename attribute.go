package inkresample

import (
	"fmt"
	"math"
	"strings"

	"github.com/strokekit/go-ink-resampler/internal/engine"
)

// Attribute identifies one channel of a stroke's sample data. The catalogue
// is fixed: position and styling channels plus the sensor channels a digital
// pen reports. PositionX and PositionY are the curve attributes; they drive
// the Catmull-Rom shape. Every other attribute is payload, interpolated per
// point but never part of the curvature metric.
type Attribute int

const (
	// PositionX is the horizontal position, in source units.
	PositionX Attribute = iota

	// PositionY is the vertical position, in source units.
	PositionY

	// Size is the brush size.
	Size

	// Rotation is the brush rotation angle, in radians.
	Rotation

	// Red, Green, Blue and Alpha are per-point color channels.
	Red
	Green
	Blue
	Alpha

	// ScaleX and ScaleY scale the brush shape.
	ScaleX
	ScaleY

	// OffsetX and OffsetY offset the brush shape.
	OffsetX
	OffsetY

	// Timestamp is the capture time in integer milliseconds.
	Timestamp

	// Pressure is the normalized pen pressure in [0, 1].
	Pressure

	// RadiusX and RadiusY are the touch contact radii.
	RadiusX
	RadiusY

	// Azimuth is the pen azimuth angle in [0, 2π) radians.
	Azimuth

	// Altitude is the pen altitude angle in [0, π/2] radians.
	Altitude

	// RotationSensor is the pen barrel rotation in [0, 2π) radians.
	RotationSensor

	numAttributes
)

// Angle channel bounds, in radians.
const (
	fullTurn    = 2 * math.Pi
	quarterTurn = math.Pi / 2
)

var attributeNames = map[Attribute]string{
	PositionX:      "x",
	PositionY:      "y",
	Size:           "size",
	Rotation:       "rotation",
	Red:            "red",
	Green:          "green",
	Blue:           "blue",
	Alpha:          "alpha",
	ScaleX:         "scaleX",
	ScaleY:         "scaleY",
	OffsetX:        "offsetX",
	OffsetY:        "offsetY",
	Timestamp:      "timestamp",
	Pressure:       "pressure",
	RadiusX:        "radiusX",
	RadiusY:        "radiusY",
	Azimuth:        "azimuth",
	Altitude:       "altitude",
	RotationSensor: "rotationSensor",
}

func (a Attribute) String() string {
	if n, ok := attributeNames[a]; ok {
		return n
	}
	return fmt.Sprintf("attribute(%d)", int(a))
}

// ParseAttribute resolves an attribute name as used in stroke CSV headers.
// Matching is case-insensitive.
func ParseAttribute(name string) (Attribute, error) {
	for a, n := range attributeNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// attributePolicies maps every catalogued attribute to its interpolation
// policy. An attribute absent from this table is outside the catalogue and
// must be rejected, never guessed.
var attributePolicies = map[Attribute]engine.Policy{
	PositionX: {Kind: engine.PolicyCurve},
	PositionY: {Kind: engine.PolicyCurve},

	Size:      {Kind: engine.PolicyLinear},
	Red:       {Kind: engine.PolicyLinear},
	Green:     {Kind: engine.PolicyLinear},
	Blue:      {Kind: engine.PolicyLinear},
	Alpha:     {Kind: engine.PolicyLinear},
	ScaleX:    {Kind: engine.PolicyLinear},
	ScaleY:    {Kind: engine.PolicyLinear},
	OffsetX:   {Kind: engine.PolicyLinear},
	OffsetY:   {Kind: engine.PolicyLinear},
	RadiusX:   {Kind: engine.PolicyLinear},
	RadiusY:   {Kind: engine.PolicyLinear},
	Timestamp: {Kind: engine.PolicyLinear, Integral: true},

	Pressure: {Kind: engine.PolicyCubic, Lower: 0, Upper: 1},

	Rotation:       {Kind: engine.PolicyAngle, Lower: 0, Upper: fullTurn},
	Azimuth:        {Kind: engine.PolicyAngle, Lower: 0, Upper: fullTurn},
	Altitude:       {Kind: engine.PolicyAngle, Lower: 0, Upper: quarterTurn},
	RotationSensor: {Kind: engine.PolicyAngle, Lower: 0, Upper: fullTurn},
}

// policy returns the engine interpolation policy of an attribute.
func (a Attribute) policy() (engine.Policy, bool) {
	p, ok := attributePolicies[a]
	return p, ok
}
