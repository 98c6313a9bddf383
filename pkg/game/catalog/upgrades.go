package catalog

// Chain lists the rooms that a room type upgrades when both are present.
type Chain struct {
	Type    string
	Targets []string
}

// DefaultUpgrades is the upgrade-chain table. Several types claim the same targets
// (Sacrificial Chamber and Thaumaturge both upgrade the Generator and Corruption lines);
// callers resolve such overlaps first-come.
var DefaultUpgrades = []Chain{
	{"Commander", []string{"Guardhouse", "Barracks", "Hall of War"}},
	{"Armoury", []string{"Guardhouse", "Barracks", "Hall of War", "Viper's Loyals", "Elite Legion"}},
	{"Garrison", []string{"Commander's Chamber", "Commander's Hall", "Commander's Headquarters"}},
	{"Transcendent Barracks", []string{"Commander's Chamber", "Commander's Hall", "Commander's Headquarters"}},
	{"Smithy", []string{"Depot", "Arsenal", "Gallery"}},
	{"Golem Works", []string{"Bronzeworks", "Chamber of Iron", "Golden Forge"}},
	{"Thaumaturge", []string{
		"Dynamo", "Shrine of Empowerment", "Solar Nexus",
		"Chamber of Souls", "Core Machinarium", "Grand Phylactory",
		"Crimson Hall", "Catalyst of Corruption", "Locus of Corruption",
	}},
	{"Sacrificial Chamber", []string{
		"Dynamo", "Shrine of Empowerment", "Solar Nexus",
		"Thaumaturge's Laboratory", "Thaumaturge's Cuttery", "Thaumaturge's Cathedral",
		"Crimson Hall", "Catalyst of Corruption", "Locus of Corruption",
	}},
	{"Spymaster", []string{"Viper's Loyals", "Elite Legion"}},
	{"Flesh Surgeon", []string{"Prosthetic Research", "Synthflesh Sanctum", "Crucible of Transcendence"}},
	{"Synthflesh Lab", []string{"Surgeon's Ward", "Surgeon's Theatre", "Surgeon's Symphony", "Steelflesh Quarters", "Collective Legion"}},
	{"Sacrifice Room", []string{"Altar of Sacrifice"}},
}
