// internal/defs/cards.go
package defs

// CardDefinition is the static catalog entry a playable card is built from.
type CardDefinition struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Cost           int       `json:"cost"`
	TowerType      TowerType `json:"tower_type"`
	SpecialAbility string    `json:"special_ability,omitempty"`
}

// DefaultCardSet returns the built-in catalog. Thirty cards so a fresh hand
// of eight can always be dealt with room to spare.
func DefaultCardSet() []CardDefinition {
	return []CardDefinition{
		{ID: "CARD_ARCHER_RECRUIT", Name: "Archer Recruit", Description: "A lone archer takes the field.", Cost: 2, TowerType: TowerArcher},
		{ID: "CARD_ARCHER_VETERAN", Name: "Archer Veteran", Description: "Steady hands, long watch.", Cost: 2, TowerType: TowerArcher},
		{ID: "CARD_ARCHER_SENTRY", Name: "Sentry Post", Description: "Eyes on the road at all hours.", Cost: 2, TowerType: TowerArcher},
		{ID: "CARD_ARCHER_WARDEN", Name: "Path Warden", Description: "Nothing passes unnoticed.", Cost: 2, TowerType: TowerArcher},
		{ID: "CARD_CANNON_MORTAR", Name: "Mortar Crew", Description: "Shells that crater the road.", Cost: 4, TowerType: TowerCannon, SpecialAbility: "splash"},
		{ID: "CARD_CANNON_SIEGE", Name: "Siege Cannon", Description: "Slow to load, loud to land.", Cost: 4, TowerType: TowerCannon, SpecialAbility: "splash"},
		{ID: "CARD_CANNON_HOWITZER", Name: "Howitzer", Description: "Arcs over everything.", Cost: 4, TowerType: TowerCannon, SpecialAbility: "splash"},
		{ID: "CARD_MAGIC_APPRENTICE", Name: "Apprentice Mage", Description: "Bolts of raw study.", Cost: 3, TowerType: TowerMagic},
		{ID: "CARD_MAGIC_SCHOLAR", Name: "Scholar of Sparks", Description: "Theory, applied at range.", Cost: 3, TowerType: TowerMagic},
		{ID: "CARD_MAGIC_ORACLE", Name: "Tower Oracle", Description: "Sees the shot before it lands.", Cost: 3, TowerType: TowerMagic},
		{ID: "CARD_MAGIC_RUNESTONE", Name: "Runestone", Description: "Old words, fresh burns.", Cost: 3, TowerType: TowerMagic},
		{ID: "CARD_ICE_SHARD", Name: "Ice Shard", Description: "Cold that clings.", Cost: 3, TowerType: TowerIce, SpecialAbility: "chill"},
		{ID: "CARD_ICE_GLACIER", Name: "Glacier Heart", Description: "The road remembers winter.", Cost: 3, TowerType: TowerIce, SpecialAbility: "chill"},
		{ID: "CARD_ICE_FROSTSPIRE", Name: "Frostspire", Description: "A spire of standing frost.", Cost: 3, TowerType: TowerIce, SpecialAbility: "chill"},
		{ID: "CARD_FIRE_BRAZIER", Name: "Brazier", Description: "Keeps the road warm. Too warm.", Cost: 4, TowerType: TowerFire, SpecialAbility: "splash"},
		{ID: "CARD_FIRE_KILN", Name: "War Kiln", Description: "Fired clay, fired foes.", Cost: 4, TowerType: TowerFire, SpecialAbility: "splash"},
		{ID: "CARD_FIRE_PYRE", Name: "Signal Pyre", Description: "A warning the enemy reads too late.", Cost: 4, TowerType: TowerFire, SpecialAbility: "splash"},
		{ID: "CARD_LIGHTNING_ROD", Name: "Storm Rod", Description: "The sky picks a side.", Cost: 5, TowerType: TowerLightning},
		{ID: "CARD_LIGHTNING_COIL", Name: "Arc Coil", Description: "Hums before it bites.", Cost: 5, TowerType: TowerLightning},
		{ID: "CARD_LIGHTNING_SPIRE", Name: "Thunder Spire", Description: "One flash, one fewer enemy.", Cost: 5, TowerType: TowerLightning},
		{ID: "CARD_POISON_BOG", Name: "Bog Stiller", Description: "The air goes green.", Cost: 3, TowerType: TowerPoison, SpecialAbility: "toxin"},
		{ID: "CARD_POISON_THORN", Name: "Thorn Hollow", Description: "Scratches that fester.", Cost: 3, TowerType: TowerPoison, SpecialAbility: "toxin"},
		{ID: "CARD_POISON_WELL", Name: "Tainted Well", Description: "Do not drink.", Cost: 3, TowerType: TowerPoison, SpecialAbility: "toxin"},
		{ID: "CARD_SUPPORT_BANNER", Name: "Rally Banner", Description: "Holds the line by standing still.", Cost: 2, TowerType: TowerSupport, SpecialAbility: "rally"},
		{ID: "CARD_SUPPORT_BEACON", Name: "Watch Beacon", Description: "Light for the towers nearby.", Cost: 2, TowerType: TowerSupport, SpecialAbility: "rally"},
		{ID: "CARD_SUPPORT_SHRINE", Name: "Wayside Shrine", Description: "A quiet word for the defenders.", Cost: 2, TowerType: TowerSupport, SpecialAbility: "rally"},
		{ID: "CARD_ARCHER_LONGBOW", Name: "Longbow Post", Description: "Farther than it looks.", Cost: 2, TowerType: TowerArcher},
		{ID: "CARD_CANNON_BOMBARD", Name: "Bombard", Description: "An argument of iron.", Cost: 4, TowerType: TowerCannon, SpecialAbility: "splash"},
		{ID: "CARD_MAGIC_PRISM", Name: "Focusing Prism", Description: "Light, concentrated.", Cost: 3, TowerType: TowerMagic},
		{ID: "CARD_ICE_NEEDLE", Name: "Needle of Rime", Description: "Thin, cold, precise.", Cost: 3, TowerType: TowerIce, SpecialAbility: "chill"},
	}
}
