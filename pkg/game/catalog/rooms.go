package catalog

import (
	"image/color"

	"templewatch/pkg/engine/palette"
)

// RoomDef is one row of the room table.
type RoomDef struct {
	Name string
	// Type is the room category shared by every tier of the same room line.
	Type string
	// Label is the short reward text shown on tiles and cards; empty for filler rooms.
	Label     string
	Color     color.NRGBA
	IsMaxTier bool
}

// GenericColor marks filler rooms. Tiles in this color with no label and no upgrade
// status are not annotated.
var GenericColor = palette.LightGray

func room(name, typ, label string, c color.NRGBA) RoomDef {
	return RoomDef{Name: name, Type: typ, Label: label, Color: c}
}

func maxTier(name, typ, label string, c color.NRGBA) RoomDef {
	return RoomDef{Name: name, Type: typ, Label: label, Color: c, IsMaxTier: true}
}

// DefaultRooms is the room table. Order matters: tooltip matching takes the first name
// found in the text.
var DefaultRooms = []RoomDef{
	room("Crimson Hall", "Corruption Chamber", "Corrupt", palette.Red),
	room("Catalyst of Corruption", "Corruption Chamber", "Corrupt", palette.Red),
	maxTier("Locus of Corruption", "Corruption Chamber", "Corrupt", palette.Red),

	room("Thaumaturge's Laboratory", "Thaumaturge", "3-Link Gem", palette.Red),
	room("Thaumaturge's Cuttery", "Thaumaturge", "Gem Quality", palette.Red),
	maxTier("Thaumaturge's Cathedral", "Thaumaturge", "Gem Corrupt", palette.Red),

	room("Chamber of Souls", "Alchemy Lab", "Rarity + Medallion", palette.Red),
	room("Core Machinarium", "Alchemy Lab", "Rarity + Medallion", palette.Red),
	maxTier("Grand Phylactory", "Alchemy Lab", "Corrupt Soul Core", palette.Red),

	room("Tablet Research Vault", "Tablets Vault", "Tablet Corrupt", palette.Red),

	room("Altar of Sacrifice", "Sacrificial Chamber", "Unique Item", palette.Orange),
	room("Hall of Offerings", "Sacrificial Chamber", "Unique Item", palette.Orange),
	maxTier("Apex of Oblation", "Sacrificial Chamber", "Unique Item", palette.Orange),
	room("Ancient Reliquary Vault", "Uniques Vault", "Unique Item", palette.Orange),

	room("Kishara's Vault", "Currency Vault", "Currency", palette.Gold),
	room("Jiquani's Vault", "Augments Vault", "High Lvl Rune", palette.Cyan),
	room("Vault of Reverence", "Lineage Gems Vault", "Lineage Gem", palette.Cyan),

	room("Commander's Chamber", "Commander", "Uromoti", palette.Wheat),
	room("Commander's Hall", "Commander", "Uromoti", palette.Wheat),
	maxTier("Commander's Headquarters", "Commander", "Uromoti", palette.Wheat),

	room("Spymaster's Study", "Spymaster", "Juatalotli", palette.Wheat),
	room("Hall of Shadows", "Spymaster", "Juatalotli", palette.Wheat),
	maxTier("Omnipresent Panopticon", "Spymaster", "Juatalotli", palette.Wheat),

	room("Workshop", "Golem Works", "Quipolatl", palette.Wheat),
	room("Automaton Lab", "Golem Works", "Quipolatl", palette.Wheat),
	maxTier("Stone Legion", "Golem Works", "Quipolatl", palette.Wheat),

	room("Architect's Chamber", "Architect's Chamber", "Xopec/Azcapa", palette.Wheat),

	room("Bronzeworks", "Smithy", "Quality Bench", palette.LightGray),
	room("Chamber of Iron", "Smithy", "Socket Bench", palette.LightGray),
	maxTier("Golden Forge", "Smithy", "Quality >20%", palette.LightGray),

	room("Dynamo", "Generator", "Power/Bench", palette.LightGray),
	room("Shrine of Empowerment", "Generator", "Power/Bench", palette.LightGray),
	maxTier("Solar Nexus", "Generator", "Power/Bench", palette.LightGray),

	room("Surgeon's Ward", "Flesh Surgeon", "Limb Mod", palette.LightGray),
	room("Surgeon's Theatre", "Flesh Surgeon", "Limb Mod", palette.LightGray),
	maxTier("Surgeon's Symphony", "Flesh Surgeon", "Limb Mod", palette.LightGray),

	room("Extraction Chamber", "Extraction Chamber", "Extract Augments", palette.LightGray),

	room("Royal Access Chamber", "Royal Access Chamber", "Access Atziri", palette.Magenta),
	room("Atziri's Chamber", "Atziri's Chamber", "Atziri", palette.Magenta),
	room("Sacrifice Room", "Sacrifice Room", "Sacrifice Room", palette.Magenta),

	room("Path", "Path", "", palette.LightGray),
	room("Guardhouse", "Garrison", "Equip Mod", palette.LightGray),
	room("Barracks", "Garrison", "Equip Mod", palette.LightGray),
	maxTier("Hall of War", "Garrison", "Equip Mod", palette.LightGray),

	room("Depot", "Armoury", "Equipment", palette.LightGray),
	room("Arsenal", "Armoury", "Equipment", palette.LightGray),
	maxTier("Gallery", "Armoury", "Equipment", palette.LightGray),

	room("Prosthetic Research", "Synthflesh Lab", "Experience", palette.LightGray),
	room("Synthflesh Sanctum", "Synthflesh Lab", "Experience", palette.LightGray),
	maxTier("Crucible of Transcendence", "Synthflesh Lab", "Experience", palette.LightGray),

	room("Viper's Loyals", "Legion Barracks", "Rare Monsters", palette.LightGray),
	maxTier("Elite Legion", "Legion Barracks", "Rare Monsters", palette.LightGray),

	room("Steelflesh Quarters", "Transcendent Barracks", "Magic Monsters", palette.LightGray),
	maxTier("Collective Legion", "Transcendent Barracks", "Magic Monsters", palette.LightGray),

	room("Foyer", "Entrance", "", palette.LightGray),
	room("Sealed Vault", "Treasure Vault", "Chests", palette.LightGray),
}
