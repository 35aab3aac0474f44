package command

import "fmt"

// Prefix starts every generated command.
const Prefix = "/announcerplus "

// playerPlaceholder stands in for an empty player name in send commands.
const playerPlaceholder = "<player>"

// Generate maps a draft to its command line. Field values are interpolated
// verbatim with no validation; an unknown kind yields the bare Prefix.
func Generate(s State) string {
	var rest string
	switch s.Type {
	case KindBroadcast:
		rest = fmt.Sprintf("broadcast %s %s", s.Config, s.Text)
	case KindSend:
		player := s.Player
		if player == "" {
			player = playerPlaceholder
		}
		rest = fmt.Sprintf("send %s %s", player, s.Config)
	case KindParse:
		rest = fmt.Sprintf("parse %s", s.Text)
	case KindParseAnimation:
		rest = fmt.Sprintf("parseanimation %d %s", s.Seconds, s.Text)
	case KindBroadcastTitle:
		rest = fmt.Sprintf("broadcasttitle %s %d %d %d \"%s\" \"%s\"",
			s.World, s.FadeIn, s.Stay, s.FadeOut, s.Title, s.Subtitle)
	case KindBroadcastToast:
		rest = fmt.Sprintf("broadcasttoast %s %s %s \"%s\" \"%s\"",
			s.World, s.Icon, s.Frame, s.Title, s.Description)
	case KindBroadcastActionBar:
		rest = fmt.Sprintf("broadcastactionbar %s %d %s", s.World, s.Seconds, s.Text)
	case KindBroadcastBossBar:
		rest = fmt.Sprintf("broadcastbossbar %s %d %s %s %s %s",
			s.World, s.Seconds, s.BossBarOverlay, s.BossBarFillMode, s.BossBarColor, s.Text)
	case KindReload:
		rest = "reload"
	case KindList:
		rest = fmt.Sprintf("list %s", s.Config)
	}
	return Prefix + rest
}
