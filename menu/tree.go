package menu

import "splitkb/proto"

// ItemKind says what selecting an item does.
type ItemKind uint8

const (
	// ItemAction closes the menu and emits the item's message.
	ItemAction ItemKind = iota
	// ItemSubmenu descends into another menu.
	ItemSubmenu
	// ItemSecondary descends and mirrors a page on the peer while inside.
	ItemSecondary
	// ItemDial emits Dec or Inc on Left or Right and ignores Select.
	ItemDial
)

// Item is one entry of a menu.
type Item struct {
	Name string
	Kind ItemKind
	Msg  proto.Message
	Sub  int
	Page proto.DisplayedState
	Dec  proto.Message
	Inc  proto.Message
}

// Node is a named list of items. Item 0 of every menu is the implicit back
// entry and is not stored.
type Node struct {
	Name  string
	Items []Item
}

// Menu indices in Tree.
const (
	MainMenu = iota
	LEDsMenu
	LayersMenu
	DisplayMenu
)

func action(name string, m proto.Message) Item { return Item{Name: name, Kind: ItemAction, Msg: m} }

func dial(name string, dec, inc proto.LEDActionKind) Item {
	return Item{
		Name: name,
		Kind: ItemDial,
		Dec:  proto.LED(proto.Step(dec)),
		Inc:  proto.LED(proto.Step(inc)),
	}
}

// Tree returns the keyboard's menus.
func Tree() []Node {
	return []Node{
		MainMenu: {Name: "Menu", Items: []Item{
			{Name: "LEDs", Kind: ItemSecondary, Sub: LEDsMenu, Page: proto.DisplayLeds},
			{Name: "Layers", Kind: ItemSubmenu, Sub: LayersMenu},
			{Name: "Display", Kind: ItemSubmenu, Sub: DisplayMenu},
			action("Ping", proto.Of(proto.MsgPing)),
		}},
		LEDsMenu: {Name: "LEDs", Items: []Item{
			action("Off", proto.LED(proto.SetMode(proto.LEDOff))),
			action("Solid", proto.LED(proto.SetMode(proto.LEDSolid))),
			action("Wheel", proto.LED(proto.SetMode(proto.LEDWheel))),
			action("Fade", proto.LED(proto.SetMode(proto.LEDFade))),
			dial("Red", proto.LEDDecRed, proto.LEDIncRed),
			dial("Green", proto.LEDDecGreen, proto.LEDIncGreen),
			dial("Blue", proto.LEDDecBlue, proto.LEDIncBlue),
		}},
		LayersMenu: {Name: "Layers", Items: []Item{
			action("Default", proto.SetDefaultLayer(proto.LayerDefault.Index())),
			action("CS", proto.SetDefaultLayer(proto.LayerCS.Index())),
		}},
		DisplayMenu: {Name: "Display", Items: []Item{
			action("Info", proto.DisplaySelect(proto.DisplayInfo)),
			action("Bongo", proto.DisplaySelect(proto.DisplayBongo)),
			action("Peer info", proto.SecondaryDisplaySelect(proto.DisplayInfo)),
			action("Peer bongo", proto.SecondaryDisplaySelect(proto.DisplayBongo)),
			action("Peer leds", proto.SecondaryDisplaySelect(proto.DisplayLeds)),
		}},
	}
}
