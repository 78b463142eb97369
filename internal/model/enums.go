package model

// Region identifies which regional guild a user or event belongs to.
type Region string

const (
	RegionVN Region = "vn"
	RegionNA Region = "na"
)

// Regions lists all regions in the order scheduled jobs process them.
var Regions = []Region{RegionVN, RegionNA}

// Valid reports whether the region is a known value.
func (r Region) Valid() bool {
	return r == RegionVN || r == RegionNA
}

// ParseRegion converts a raw string into a Region.
func ParseRegion(s string) (Region, bool) {
	r := Region(s)
	return r, r.Valid()
}

// Role is a combat role preference.
type Role string

const (
	RoleDPS    Role = "dps"
	RoleHealer Role = "healer"
	RoleTank   Role = "tank"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleDPS || r == RoleHealer || r == RoleTank
}

// Day is an event day a team plays on.
type Day string

const (
	DaySaturday Day = "saturday"
	DaySunday   Day = "sunday"
)

// Valid reports whether the day is a known value.
func (d Day) Valid() bool {
	return d == DaySaturday || d == DaySunday
}

// Class is a playable character class tag.
type Class string

const (
	ClassStrategicSword    Class = "strategicSword"
	ClassHeavenquakerSpear Class = "heavenquakerSpear"
	ClassNamelessSword     Class = "namelessSword"
	ClassNamelessSpear     Class = "namelessSpear"
	ClassVernalUmbrella    Class = "vernalUmbrella"
	ClassInkwellFan        Class = "inkwellFan"
	ClassSoulshadeUmbrella Class = "soulshadeUmbrella"
	ClassPanaceaFan        Class = "panaceaFan"
	ClassThundercryBlade   Class = "thundercryBlade"
	ClassStormreakerSpear  Class = "stormreakerSpear"
	ClassInfernalTwinblades Class = "infernalTwinblades"
	ClassMortalRopeDart    Class = "mortalRopeDart"
)

// Classes lists every playable class tag.
var Classes = []Class{
	ClassStrategicSword,
	ClassHeavenquakerSpear,
	ClassNamelessSword,
	ClassNamelessSpear,
	ClassVernalUmbrella,
	ClassInkwellFan,
	ClassSoulshadeUmbrella,
	ClassPanaceaFan,
	ClassThundercryBlade,
	ClassStormreakerSpear,
	ClassInfernalTwinblades,
	ClassMortalRopeDart,
}

// Valid reports whether the class is a known tag.
func (c Class) Valid() bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

// TimeSlot is one of the fixed availability windows players sign up for.
type TimeSlot string

const (
	SlotAfternoon     TimeSlot = "14:00-16:00"
	SlotLateAfternoon TimeSlot = "16:00-18:00"
	SlotEvening       TimeSlot = "19:00-21:00"
	SlotLateEvening   TimeSlot = "21:00-23:00"
)

// TimeSlots lists every signup window.
var TimeSlots = []TimeSlot{SlotAfternoon, SlotLateAfternoon, SlotEvening, SlotLateEvening}

// Valid reports whether the slot is a known window.
func (s TimeSlot) Valid() bool {
	for _, known := range TimeSlots {
		if s == known {
			return true
		}
	}
	return false
}
