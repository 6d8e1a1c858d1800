package entities

// CompRole is one named position in the fixed raid composition.
type CompRole struct {
	Label       string
	Description string
}

// RaidComp is the fixed Roads F2B composition posted by /raid, in
// announcement display order. Labels carry their emoji and double as slot
// keys and button labels.
var RaidComp = []CompRole{
	{Label: "🛡️ Tank", Description: "Frontline Defender"},
	{Label: "🪓 Carrioncaller", Description: "Axe DPS Specialist"},
	{Label: "💀 Curseskull", Description: "Curse Caster"},
	{Label: "🐻 Bear", Description: "Damage Absorber"},
	{Label: "🌳 Ent", Description: "Nature Support"},
	{Label: "🔥 Dawnsong", Description: "Fire Magic DPS"},
	{Label: "💚 Hallowfall", Description: "Healing Support"},
}

// RaidCompLabels returns the fixed comp's role labels in display order.
func RaidCompLabels() []string {
	labels := make([]string, len(RaidComp))
	for i, r := range RaidComp {
		labels[i] = r.Label
	}
	return labels
}

// EventTemplates are the selectable compositions for /event, keyed by title.
var EventTemplates = map[string][]string{
	"Roads-Pve": {
		"🛡️ Incubus", "🔥 Blazing", "💀 Shadowcaller", "🌳 Ironroot",
		"❄️ Frost", "🕊️ Holy Staff", "🏹 Longbow", "⚔️ Spirit-Hunter", "⚡ Realm-Breaker",
	},
	"Static Run": {
		"🛡️ 1hand-Mace", "🛡️ Incubus", "⚖️ HoJ", "🌿 EarthRune", "🕊️ Holy Staff",
		"💀 Shadowcaller", "⚡ Realm-Breaker", "🔥 Blazing", "⭐ Astral-staff",
	},
	"Ava-Raid": {
		"🌟 Lightcaller1", "🌟 Lightcaller2", "🏹 Xbow1", "🏹 Xbow2", "🏹 Xbow3",
		"🏹 Xbow4", "🔥 Blazing", "🔆 Dawnsong", "❄️ Chillhowl1", "❄️ Chillhowl2",
		"❄️ Chillhowl3", "👻 Specterjacket", "💀 Curse", "⚔️ Carving", "⚔️ Spirit-Hunter",
		"⚡ Realm-Breaker", "💀 Curse'supp", "🌳 Iron-root", "✨ 1hand-arcane",
		"✨ Great-arcane", "🕊️ Mainheal", "🛡️ Offtank",
	},
	"Ganking": {
		"🏃 Doubble-bladed1", "🏃 Doubble-bladed2", "🏃 Doubble-bladed3",
		"💥 Oneshot-Xbow1", "💥 Oneshot-Xbow2", "💥 Oneshot-Xbow3",
		"👹 Claws Fiend-robe Swap1", "👹 Claws Fiend-robe Swap2",
		"👹 Claws Fiend-robe Swap3", "💀 1hand Curse Fiend-Robe Swap1",
		"💀 1hand Curse Fiend-Robe Swap2", "💀 1hand Curse Fiend-Robe Swap3",
		"✨ Staff of Balance", "🐾 Bearpaws Fiend-Robe Swap1",
		"🐾 Bearpaws Fiend-Robe Swap2", "🐾 Bearpaws Fiend-Robe Swap3",
	},
}

// EventTemplateTitles lists the /event template titles in a stable order for
// slash-command choices.
var EventTemplateTitles = []string{"Roads-Pve", "Static Run", "Ava-Raid", "Ganking"}
