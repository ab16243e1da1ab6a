package input

import "math"

// ButtonMapping maps a raw joystick button index onto the pad vocabulary.
type ButtonMapping struct {
	Index  int32
	Target Button
}

// AxisMapping maps a raw joystick axis index onto a stick axis or, for
// trigger axes, onto a digital trigger button. Trigger axes carry their raw
// range: some devices report -32768..32767, others 0..32767.
type AxisMapping struct {
	Index     int32
	Target    Axis
	Invert    bool
	IsTrigger bool
	Trigger   Button
	RawMin    int16
	RawMax    int16
}

// DeviceMapping is the complete raw-index layout for one device family.
type DeviceMapping struct {
	Name    string
	Buttons []ButtonMapping
	Axes    []AxisMapping
	HasHat  bool
}

func (m *DeviceMapping) button(index int32) (Button, bool) {
	for _, bm := range m.Buttons {
		if bm.Index == index {
			return bm.Target, true
		}
	}
	return 0, false
}

func (m *DeviceMapping) axis(index int32) (AxisMapping, bool) {
	for _, am := range m.Axes {
		if am.Index == index {
			return am, true
		}
	}
	return AxisMapping{}, false
}

// NormalizeAxis converts a raw SDL axis value (-32768..32767) to [-1, 1].
func NormalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1 {
		v = -1
	}
	return v
}

// NormalizeTrigger converts a raw trigger value to [0, 1].
func NormalizeTrigger(raw, rawMin, rawMax int16) float64 {
	if rawMax == rawMin {
		return 0
	}
	v := (float64(raw) - float64(rawMin)) / (float64(rawMax) - float64(rawMin))
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

var xboxMapping = &DeviceMapping{
	Name: "xbox",
	Buttons: []ButtonMapping{
		{Index: 0, Target: ButtonSouth},
		{Index: 1, Target: ButtonEast},
		{Index: 2, Target: ButtonWest},
		{Index: 3, Target: ButtonNorth},
		{Index: 4, Target: ButtonLeftBumper},
		{Index: 5, Target: ButtonRightBumper},
		{Index: 6, Target: ButtonSelect},
		{Index: 7, Target: ButtonStart},
		{Index: 8, Target: ButtonLeftThumb},
		{Index: 9, Target: ButtonRightThumb},
		{Index: 10, Target: ButtonMode},
	},
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
		{Index: 4, IsTrigger: true, Trigger: ButtonLeftTrigger, RawMin: -32768, RawMax: 32767},
		{Index: 5, IsTrigger: true, Trigger: ButtonRightTrigger, RawMin: -32768, RawMax: 32767},
	},
	HasHat: true,
}

var playstationMapping = &DeviceMapping{
	Name: "playstation",
	Buttons: []ButtonMapping{
		{Index: 0, Target: ButtonSouth},  // Cross
		{Index: 1, Target: ButtonEast},   // Circle
		{Index: 2, Target: ButtonWest},   // Square
		{Index: 3, Target: ButtonNorth},  // Triangle
		{Index: 4, Target: ButtonSelect}, // Share / Create
		{Index: 5, Target: ButtonMode},   // PS button
		{Index: 6, Target: ButtonStart},  // Options
		{Index: 7, Target: ButtonLeftThumb},
		{Index: 8, Target: ButtonRightThumb},
		{Index: 9, Target: ButtonLeftBumper},
		{Index: 10, Target: ButtonRightBumper},
	},
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
		{Index: 4, IsTrigger: true, Trigger: ButtonLeftTrigger, RawMin: -32768, RawMax: 32767},
		{Index: 5, IsTrigger: true, Trigger: ButtonRightTrigger, RawMin: -32768, RawMax: 32767},
	},
	HasHat: true,
}

var switchProMapping = &DeviceMapping{
	Name: "switch_pro",
	Buttons: []ButtonMapping{
		{Index: 0, Target: ButtonSouth},
		{Index: 1, Target: ButtonEast},
		{Index: 2, Target: ButtonWest},
		{Index: 3, Target: ButtonNorth},
		{Index: 4, Target: ButtonLeftBumper},
		{Index: 5, Target: ButtonRightBumper},
		{Index: 6, Target: ButtonLeftTrigger},
		{Index: 7, Target: ButtonRightTrigger},
		{Index: 8, Target: ButtonSelect},
		{Index: 9, Target: ButtonStart},
		{Index: 10, Target: ButtonLeftThumb},
		{Index: 11, Target: ButtonRightThumb},
		{Index: 12, Target: ButtonMode},
		{Index: 13, Target: ButtonExtra}, // Capture
	},
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
	},
	HasHat: true,
}

var genericMapping = &DeviceMapping{
	Name: "generic",
	Buttons: []ButtonMapping{
		{Index: 0, Target: ButtonSouth},
		{Index: 1, Target: ButtonEast},
		{Index: 2, Target: ButtonWest},
		{Index: 3, Target: ButtonNorth},
		{Index: 4, Target: ButtonLeftBumper},
		{Index: 5, Target: ButtonRightBumper},
		{Index: 6, Target: ButtonSelect},
		{Index: 7, Target: ButtonStart},
		{Index: 8, Target: ButtonLeftThumb},
		{Index: 9, Target: ButtonRightThumb},
		{Index: 10, Target: ButtonMode},
	},
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
		{Index: 4, IsTrigger: true, Trigger: ButtonLeftTrigger, RawMin: -32768, RawMax: 32767},
		{Index: 5, IsTrigger: true, Trigger: ButtonRightTrigger, RawMin: -32768, RawMax: 32767},
	},
	HasHat: true,
}

type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]*DeviceMapping{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: xboxMapping, // Xbox 360
	{0x045E, 0x02FF}: xboxMapping, // Xbox One
	{0x045E, 0x0B12}: xboxMapping, // Xbox Series X|S
	{0x045E, 0x0B13}: xboxMapping, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{0x054C, 0x05C4}: playstationMapping, // DualShock 4 v1
	{0x054C, 0x09CC}: playstationMapping, // DualShock 4 v2
	{0x054C, 0x0CE6}: playstationMapping, // DualSense
	// Nintendo Switch Pro Controller
	{0x057E, 0x2009}: switchProMapping,
}

// MappingFor returns the layout for a device by vendor/product ID, falling
// back to the generic layout for unknown devices.
func MappingFor(vendorID, productID uint16) *DeviceMapping {
	if m, ok := knownDevices[deviceKey{VendorID: vendorID, ProductID: productID}]; ok {
		return m
	}
	return genericMapping
}
