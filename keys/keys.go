package keys

import (
	"strings"

	"codeslides/config"
	"codeslides/log"

	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyPrev KeyName = iota
	KeyNext
	KeyFirst
	KeyLast
	KeyScrollUp
	KeyScrollDown

	KeyToggleSplit
	KeyPrimaryTab
	KeySecondaryTab
	KeyTab // Tab flips between the primary and secondary snippet in tabbed view.
	KeyTheme

	KeyCopy
	KeyCopySecondary
	KeySelectDeck
	KeyPrevDeck
	KeyNextDeck
	KeyHelp
	KeyQuit

	// Keys used inside the deck selector overlay.
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"left":   KeyPrev,
	"right":  KeyNext,
	"home":   KeyFirst,
	"end":    KeyLast,
	"up":     KeyScrollUp,
	"k":      KeyScrollUp,
	"down":   KeyScrollDown,
	"j":      KeyScrollDown,
	"s":      KeyToggleSplit,
	"1":      KeyPrimaryTab,
	"2":      KeySecondaryTab,
	"tab":    KeyTab,
	"t":      KeyTheme,
	"c":      KeyCopy,
	"C":      KeyCopySecondary,
	"d":      KeySelectDeck,
	"[":      KeyPrevDeck,
	"]":      KeyNextDeck,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global map of KeyName to keybinding. Custom
// keybindings replace entries during InitializeCustomKeyBindings.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyPrev: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous slide"),
	),
	KeyNext: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next slide"),
	),
	KeyFirst: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first slide"),
	),
	KeyLast: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last slide"),
	),
	KeyScrollUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	KeyScrollDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	KeyToggleSplit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "split view"),
	),
	KeyPrimaryTab: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "primary"),
	),
	KeySecondaryTab: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "secondary"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch tab"),
	),
	KeyTheme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	KeyCopySecondary: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "copy secondary"),
	),
	KeySelectDeck: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "select deck"),
	),
	KeyPrevDeck: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous deck"),
	),
	KeyNextDeck: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next deck"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),

	// -- Selector keybindings --

	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "select"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// commandToKeyName maps the command names of the keybindings file to KeyName
// constants. Selector keys are not configurable.
var commandToKeyName = map[string]KeyName{
	"prev":           KeyPrev,
	"next":           KeyNext,
	"first":          KeyFirst,
	"last":           KeyLast,
	"scroll_up":      KeyScrollUp,
	"scroll_down":    KeyScrollDown,
	"toggle_split":   KeyToggleSplit,
	"primary_tab":    KeyPrimaryTab,
	"secondary_tab":  KeySecondaryTab,
	"tab":            KeyTab,
	"theme":          KeyTheme,
	"copy":           KeyCopy,
	"copy_secondary": KeyCopySecondary,
	"select_deck":    KeySelectDeck,
	"prev_deck":      KeyPrevDeck,
	"next_deck":      KeyNextDeck,
	"help":           KeyHelp,
	"quit":           KeyQuit,
}

// CustomKeyStringsMap is a mutable map that can be updated with custom keybindings
var CustomKeyStringsMap map[string]KeyName

// InitializeCustomKeyBindings loads custom keybindings from config
func InitializeCustomKeyBindings() error {
	kbConfig, err := config.LoadKeyBindings()
	if err != nil {
		return err
	}
	for keyStr, commands := range kbConfig.ValidateBindings() {
		log.WarningLog.Printf("key %q is bound to several commands: %s", keyStr, strings.Join(commands, ", "))
	}
	ApplyKeyBindings(kbConfig)
	return nil
}

// ApplyKeyBindings installs kbConfig on top of the default bindings.
func ApplyKeyBindings(kbConfig *config.KeyBindingsConfig) {
	CustomKeyStringsMap = make(map[string]KeyName)
	for keyStr, command := range kbConfig.ToKeyMap() {
		if name, ok := commandToKeyName[command]; ok {
			CustomKeyStringsMap[keyStr] = name
		}
	}

	for _, binding := range kbConfig.Bindings {
		name, ok := commandToKeyName[binding.Command]
		if !ok {
			continue
		}
		GlobalkeyBindings[name] = key.NewBinding(
			key.WithKeys(binding.Keys...),
			key.WithHelp(binding.Help, GlobalkeyBindings[name].Help().Desc),
		)
	}
}

// GetKeyName returns the KeyName for a given key string, checking custom bindings first
func GetKeyName(keyStr string) (KeyName, bool) {
	if CustomKeyStringsMap != nil {
		if keyName, ok := CustomKeyStringsMap[keyStr]; ok {
			return keyName, true
		}
	}

	keyName, ok := GlobalKeyStringsMap[keyStr]
	return keyName, ok
}
