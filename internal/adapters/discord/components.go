package discord

import (
	"fmt"
	"strconv"
	"strings"

	"raidbot/internal/ports/input"

	"github.com/bwmarrin/discordgo"
)

// Component custom IDs. Sign-up buttons carry the event ID and role label so
// a single handler can route any press without per-button state.
const (
	signupPrefix     = "signup:"
	cancelPrefix     = "cancelevent:"
	roleSelectPrefix = "roleselect:"
	splitConfirmID   = "split_confirm"
	splitCancelID    = "split_cancel"
)

func signupCustomID(eventID int, roleLabel string) string {
	return fmt.Sprintf("%s%d:%s", signupPrefix, eventID, roleLabel)
}

func parseSignupCustomID(customID string) (eventID int, roleLabel string, ok bool) {
	parts := strings.SplitN(strings.TrimPrefix(customID, signupPrefix), ":", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	return id, parts[1], true
}

func cancelCustomID(eventID int) string {
	return fmt.Sprintf("%s%d", cancelPrefix, eventID)
}

func parseEventID(customID, prefix string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(customID, prefix))
	if err != nil {
		return 0, false
	}
	return id, true
}

// buildSignupComponents lays out one primary button per role (five per row)
// plus the cancel button.
func buildSignupComponents(eventID int, roleLabels []string) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent
	for _, label := range roleLabels {
		row = append(row, discordgo.Button{
			Label:    label,
			Style:    discordgo.PrimaryButton,
			CustomID: signupCustomID(eventID, label),
		})
		if len(row) == 5 {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}

	cancel := discordgo.Button{
		Label:    "🚫 Cancel Event",
		Style:    discordgo.DangerButton,
		CustomID: cancelCustomID(eventID),
	}
	if len(row) > 0 && len(row) < 5 {
		row = append(row, cancel)
		rows = append(rows, discordgo.ActionsRow{Components: row})
	} else {
		if len(row) > 0 {
			rows = append(rows, discordgo.ActionsRow{Components: row})
		}
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{cancel}})
	}
	return rows
}

// buildRoleSelect builds the role picker shown on a fresh custom event.
func buildRoleSelect(eventID int, roleLabels []string) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, len(roleLabels))
	for i, label := range roleLabels {
		options[i] = discordgo.SelectMenuOption{
			Label:       label,
			Value:       label,
			Description: "Select " + label,
		}
	}
	minValues := 1
	maxValues := len(roleLabels)
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    fmt.Sprintf("%s%d", roleSelectPrefix, eventID),
				Placeholder: "Select roles",
				MinValues:   &minValues,
				MaxValues:   maxValues,
				Options:     options,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "🚫 Cancel Event",
				Style:    discordgo.DangerButton,
				CustomID: cancelCustomID(eventID),
			},
		}},
	}
}

// signupLabelsFromMessage recovers the role labels listed on an announcement
// from its own sign-up buttons, preserving display order. This keeps the
// render path stateless: a custom event only shows the roles its creator
// picked, and those live in the posted components.
func signupLabelsFromMessage(msg *discordgo.Message) []string {
	if msg == nil {
		return nil
	}
	var labels []string
	for _, component := range msg.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			button, ok := inner.(*discordgo.Button)
			if !ok || !strings.HasPrefix(button.CustomID, signupPrefix) {
				continue
			}
			if _, label, ok := parseSignupCustomID(button.CustomID); ok {
				labels = append(labels, label)
			}
		}
	}
	return labels
}

// filterSlots narrows a slot snapshot to the given labels, in label order.
func filterSlots(slots []input.RoleSlotView, labels []string) []input.RoleSlotView {
	byLabel := make(map[string]input.RoleSlotView, len(slots))
	for _, slot := range slots {
		byLabel[slot.Label] = slot
	}
	out := make([]input.RoleSlotView, 0, len(labels))
	for _, label := range labels {
		if slot, ok := byLabel[label]; ok {
			out = append(out, slot)
		}
	}
	return out
}

func buildSplitVerificationComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "✅ Confirm Split", Style: discordgo.SuccessButton, CustomID: splitConfirmID},
			discordgo.Button{Label: "❌ Cancel Split", Style: discordgo.DangerButton, CustomID: splitCancelID},
		}},
	}
}
