package catalog

import (
	"image/color"
	"strings"

	"templewatch/pkg/engine/palette"
)

// Reward describes what a reward bench does.
type Reward struct {
	Title       string
	Description string
}

// DefaultRewards maps a reward bench's metadata suffix to its description.
var DefaultRewards = map[string]Reward{
	"ExtractAllSocketables":             {"Extraction", "Return Augments (Destroy Item)"},
	"WeaponOrArmourQualityLow":          {"Forging Bench", "Improve Quality"},
	"WeaponOrArmourQualityMid":          {"Forging Bench", "Greatly Improve Quality"},
	"WeaponOrArmourQualityHigh":         {"Masterwork Forge", "Quality >20% (Risk Corrupt)"},
	"WeaponOrArmourQualityHighMultiple": {"Triumphant Forge", "Quality >20% (Risk Corrupt)"},
	"GemQualityLow":                     {"Gemcutter", "Improve Gem Quality"},
	"GemQualityMid":                     {"Gemcutter", "Greatly Improve Gem Quality"},
	"DoubleCorruptGem":                  {"Gem Corrupter", "Modify/Destroy Corrupted Gem"},
	"CorruptTablet":                     {"Precursor Machine", "Modify Tablet (Chance Destroy)"},
	"MutateUnique":                      {"Morphology", "Reroll Corrupted Unique Mods"},
	"ModifySoulcore":                    {"Soul Core Infuser", "Modify Soul Core (Chance Destroy)"},
	"ModifySoulcoreAlchemyLab":          {"Alchemy Bench", "Normal/Magic -> Rare"},
	"Doctor":                            {"Corruption Altar", "Corrupt Item (Unpredictable)"},
	"CampaignCurrency":                  {"Exalted Bench", "Augment Rare Item"},
	"Regal":                             {"Regal Bench", "Magic -> Rare"},
}

// Medallion is a currency medallion that can drop on the ground or be offered as a card.
type Medallion struct {
	Name        string
	Color       color.NRGBA
	Description string
}

// DefaultMedallions lists the medallions in match order.
var DefaultMedallions = []Medallion{
	{"Juatalotli", palette.LightGreen, "Prevent next Destabilisation"},
	{"Hayoxi", palette.Yellow, "Reroll Reward Vault reward"},
	{"Quipolatl", palette.Magenta, "Improve Room Tier"},
	{"Uromoti", palette.Orange, "Add Room"},
	{"Xopec", palette.Blue, "Increase Max Crystal Capacity"},
	{"Azcapa", palette.Cyan, "Increase Max Medallion Capacity"},
	{"Estazunti", palette.Gold, "Extra Reward Vault"},
}

// MedallionIn returns the first medallion whose name appears in text.
func MedallionIn(medallions []Medallion, text string) (Medallion, bool) {
	for _, m := range medallions {
		if strings.Contains(text, m.Name) {
			return m, true
		}
	}
	return Medallion{}, false
}
