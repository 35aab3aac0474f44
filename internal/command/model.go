// Package command provides the AnnouncerPlus command draft model, the
// generator that turns a draft into an /announcerplus command line, and the
// editing helpers used by the draft subcommands.
package command

// Kind selects which AnnouncerPlus subcommand a draft builds. It controls
// which other State fields the generator reads.
type Kind string

// Supported kinds.
const (
	KindBroadcast          Kind = "broadcast"
	KindSend               Kind = "send"
	KindParse              Kind = "parse"
	KindParseAnimation     Kind = "parseanimation"
	KindBroadcastTitle     Kind = "broadcasttitle"
	KindBroadcastToast     Kind = "broadcasttoast"
	KindBroadcastActionBar Kind = "broadcastactionbar"
	KindBroadcastBossBar   Kind = "broadcastbossbar"
	KindReload             Kind = "reload"
	KindList               Kind = "list"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{
	KindBroadcast,
	KindSend,
	KindParse,
	KindParseAnimation,
	KindBroadcastTitle,
	KindBroadcastToast,
	KindBroadcastActionBar,
	KindBroadcastBossBar,
	KindReload,
	KindList,
}

// Known reports whether k is one of the supported kinds.
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// State is the flat draft record for one command. Fields that the active
// Kind does not read are kept as-is; switching kinds never clears them.
//
// Field names match the JSON layout used by the AnnouncerPlus web editor,
// so history files can be exchanged between the two.
type State struct {
	Type            Kind    `json:"type" yaml:"type"`
	Player          string  `json:"player" yaml:"player"`
	Config          string  `json:"config" yaml:"config"`
	World           string  `json:"world" yaml:"world"`
	Text            string  `json:"text" yaml:"text"`
	Title           string  `json:"title" yaml:"title"`
	Subtitle        string  `json:"subtitle" yaml:"subtitle"`
	Description     string  `json:"description" yaml:"description"`
	Icon            string  `json:"icon" yaml:"icon"`
	Frame           string  `json:"frame" yaml:"frame"`
	FadeIn          int     `json:"fadein" yaml:"fadein"`
	Stay            int     `json:"stay" yaml:"stay"`
	FadeOut         int     `json:"fadeout" yaml:"fadeout"`
	Seconds         int     `json:"seconds" yaml:"seconds"`
	BossBarColor    string  `json:"bossbarColor" yaml:"bossbarColor"`
	BossBarStyle    string  `json:"bossbarStyle" yaml:"bossbarStyle"`
	BossBarOverlay  string  `json:"bossbarOverlay" yaml:"bossbarOverlay"`
	BossBarFillMode string  `json:"bossbarFillMode" yaml:"bossbarFillMode"`
	BossBarProgress float64 `json:"bossbarProgress" yaml:"bossbarProgress"`
}

// Default returns the draft a fresh editor starts with.
func Default() State {
	return State{
		Type:            KindBroadcast,
		Player:          "",
		Config:          "all",
		World:           "*",
		Text:            "<green>你好，世界！",
		Title:           "<gold>欢迎",
		Subtitle:        "<yellow>来到我们的服务器",
		Description:     "这是一条提示消息",
		Icon:            "minecraft:diamond",
		Frame:           "task",
		FadeIn:          10,
		Stay:            70,
		FadeOut:         20,
		Seconds:         5,
		BossBarColor:    "BLUE",
		BossBarStyle:    "PROGRESS",
		BossBarOverlay:  "PROGRESS",
		BossBarFillMode: "NATURAL",
		BossBarProgress: 1.0,
	}
}

// Fields returns the JSON names of the fields the generator reads for k,
// in the order they appear in the generated command. Unknown kinds read
// nothing.
func Fields(k Kind) []string {
	switch k {
	case KindBroadcast:
		return []string{"config", "text"}
	case KindSend:
		return []string{"player", "config"}
	case KindParse:
		return []string{"text"}
	case KindParseAnimation:
		return []string{"seconds", "text"}
	case KindBroadcastTitle:
		return []string{"world", "fadein", "stay", "fadeout", "title", "subtitle"}
	case KindBroadcastToast:
		return []string{"world", "icon", "frame", "title", "description"}
	case KindBroadcastActionBar:
		return []string{"world", "seconds", "text"}
	case KindBroadcastBossBar:
		return []string{"world", "seconds", "bossbarOverlay", "bossbarFillMode", "bossbarColor", "text"}
	case KindList:
		return []string{"config"}
	default:
		return nil
	}
}
