package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/theme"
)

var reactionGlyphs = map[model.ReactionKind]string{
	model.ReactionCare:       "💚",
	model.ReactionSolidarity: "✊",
	model.ReactionRespect:    "🙌",
	model.ReactionGratitude:  "🙏",
}

func renderFeedItem(item model.FeedItem, colors theme.ColorTokens) {
	header := fmt.Sprintf("[%s %d]", item.Type, item.ID)
	accent := colors.SunYellow
	if item.Type == model.TargetEvent {
		accent = colors.SolidarityRed
	}
	fmt.Printf("%s %s %s\n", paint(accent, header), item.Creator.Name,
		paint(colors.Text.Secondary, item.CreatedAt.Local().Format("Jan 2 15:04")))

	switch item.Type {
	case model.TargetEvent:
		fmt.Printf("  %s\n", paint(colors.Text.Primary, item.Title))
		if item.EventDate != nil {
			fmt.Printf("  %s · %s\n", item.EventDate.Local().Format("Mon Jan 2 15:04"), item.Location)
		}
		if item.Description != "" {
			fmt.Printf("  %s\n", item.Description)
		}
	case model.TargetPost:
		fmt.Printf("  %s\n", paint(colors.Text.Primary, item.Text))
	}

	if len(item.Reactions) > 0 {
		parts := make([]string, 0, len(item.Reactions))
		for _, r := range item.Reactions {
			label := fmt.Sprintf("%s %d", reactionGlyphs[r.ReactionType], r.Count)
			if r.UserReacted {
				label = paint(colors.EarthGreen, label)
			}
			parts = append(parts, label)
		}
		fmt.Printf("  %s\n", strings.Join(parts, "  "))
	}
	fmt.Println()
}

// paint wraps text in a 24-bit ANSI color escape. Hex values outside the
// #RRGGBB form (the rgba() text shades) pass through unpainted.
func paint(hex, text string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), true
}

// terminalModeProbe guesses the terminal background from COLORFGBG, which
// several terminal emulators export as "fg;bg" with bg 0-6 meaning dark.
func terminalModeProbe() (theme.Mode, bool) {
	val := os.Getenv("COLORFGBG")
	if val == "" {
		return theme.Light, false
	}
	parts := strings.Split(val, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return theme.Light, false
	}
	if bg <= 6 {
		return theme.Dark, true
	}
	return theme.Light, true
}
