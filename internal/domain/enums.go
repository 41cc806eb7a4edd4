package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role is admin.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// Capability names a permission resolved from the caller's role.
type Capability string

const (
	CapabilityManageTrails Capability = "trails:manage"
)

func (c Capability) String() string { return string(c) }

// Capabilities returns the capabilities granted to the role.
func (r UserRole) Capabilities() []Capability {
	switch r {
	case UserRoleAdmin:
		return []Capability{CapabilityManageTrails}
	}
	return nil
}

// CreatureType is one of the 18 elemental creature types. Trails may list
// buffed types; the list is stored and returned but not applied to rewards.
type CreatureType string

const (
	CreatureTypeNormal   CreatureType = "Normal"
	CreatureTypeFire     CreatureType = "Fire"
	CreatureTypeWater    CreatureType = "Water"
	CreatureTypeElectric CreatureType = "Electric"
	CreatureTypeGrass    CreatureType = "Grass"
	CreatureTypeIce      CreatureType = "Ice"
	CreatureTypeFighting CreatureType = "Fighting"
	CreatureTypePoison   CreatureType = "Poison"
	CreatureTypeGround   CreatureType = "Ground"
	CreatureTypeFlying   CreatureType = "Flying"
	CreatureTypePsychic  CreatureType = "Psychic"
	CreatureTypeBug      CreatureType = "Bug"
	CreatureTypeRock     CreatureType = "Rock"
	CreatureTypeGhost    CreatureType = "Ghost"
	CreatureTypeDragon   CreatureType = "Dragon"
	CreatureTypeDark     CreatureType = "Dark"
	CreatureTypeSteel    CreatureType = "Steel"
	CreatureTypeFairy    CreatureType = "Fairy"
)

func (t CreatureType) String() string { return string(t) }

func (t CreatureType) IsValid() bool {
	switch t {
	case CreatureTypeNormal, CreatureTypeFire, CreatureTypeWater, CreatureTypeElectric,
		CreatureTypeGrass, CreatureTypeIce, CreatureTypeFighting, CreatureTypePoison,
		CreatureTypeGround, CreatureTypeFlying, CreatureTypePsychic, CreatureTypeBug,
		CreatureTypeRock, CreatureTypeGhost, CreatureTypeDragon, CreatureTypeDark,
		CreatureTypeSteel, CreatureTypeFairy:
		return true
	}
	return false
}
