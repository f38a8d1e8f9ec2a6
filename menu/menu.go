// Package menu is the on-screen menu of the primary half: a small tree of
// menus navigated with Up, Down, Select, Left and Right, and the page the
// peer shows while a mirrored menu is open.
package menu

import (
	"splitkb/display"
	"splitkb/multi"
	"splitkb/proto"
)

// MaxDepth bounds how many menus can be entered below the root.
const MaxDepth = multi.Capacity

type position struct {
	menu     int
	item     int
	mirrored bool
}

// Menu is the menu state machine of one half.
type Menu struct {
	tree  []Node
	open  bool
	cur   int
	item  int
	stack multi.Multi[position]

	// last is the most recent page other than the menu, shown on close.
	last  proto.DisplayedState
	shown proto.DisplayedState

	peerOpen    bool
	peerRestore proto.DisplayedState
}

// New returns a closed menu over Tree.
func New() *Menu { return NewWithTree(Tree()) }

// NewWithTree returns a closed menu over tree. tree[0] is the root.
func NewWithTree(tree []Node) *Menu { return &Menu{tree: tree} }

func (m *Menu) IsOpen() bool { return m.open }
func (m *Menu) Depth() int   { return m.stack.Len() }
func (m *Menu) Item() int    { return m.item }

// Current returns the menu being shown.
func (m *Menu) Current() *Node { return &m.tree[m.cur] }

// HandleEvent applies msg and returns the messages it produces.
func (m *Menu) HandleEvent(msg proto.Message) multi.Multi[proto.Message] {
	switch msg.Kind {
	case proto.MsgDisplaySelect, proto.MsgSecondaryDisplaySelect:
		m.shown = msg.Page
		if msg.Page != proto.DisplayMenu {
			m.last = msg.Page
		}
	case proto.MsgMenu:
		return m.step(msg.Menu.Kind)
	case proto.MsgSecondaryMenu:
		return m.peer(msg.Menu)
	}
	return multi.None[proto.Message]()
}

func (m *Menu) step(k proto.MenuActionKind) multi.Multi[proto.Message] {
	if k == proto.MenuOpen {
		m.open = true
		m.cur, m.item = 0, 0
		m.stack.Reset()
		return multi.None[proto.Message]()
	}
	if !m.open {
		return multi.None[proto.Message]()
	}
	switch k {
	case proto.MenuClose:
		return m.close()
	case proto.MenuUp:
		if m.item > 0 {
			m.item--
		}
	case proto.MenuDown:
		if m.item < len(m.Current().Items) {
			m.item++
		}
	case proto.MenuSelect:
		return m.selectItem()
	case proto.MenuLeft, proto.MenuRight:
		if m.item == 0 {
			break
		}
		it := m.Current().Items[m.item-1]
		if it.Kind != ItemDial {
			break
		}
		if k == proto.MenuLeft {
			return multi.Of(it.Dec)
		}
		return multi.Of(it.Inc)
	}
	return multi.None[proto.Message]()
}

func (m *Menu) selectItem() multi.Multi[proto.Message] {
	if m.item == 0 {
		if m.stack.Empty() {
			return m.close()
		}
		return m.pop()
	}
	it := m.Current().Items[m.item-1]
	switch it.Kind {
	case ItemAction:
		out := m.close()
		out.Append(it.Msg)
		return out
	case ItemSubmenu:
		if m.stack.Push(position{menu: m.cur, item: m.item}) {
			m.cur, m.item = it.Sub, 0
		}
	case ItemSecondary:
		if m.stack.Push(position{menu: m.cur, item: m.item, mirrored: true}) {
			m.cur, m.item = it.Sub, 0
			return multi.Of(proto.SecondaryMenuOpen(it.Page))
		}
	}
	return multi.None[proto.Message]()
}

func (m *Menu) pop() multi.Multi[proto.Message] {
	p, _ := m.stack.Take()
	m.cur, m.item = p.menu, p.item
	if p.mirrored {
		return multi.Of(proto.SecondaryMenuClose())
	}
	return multi.None[proto.Message]()
}

func (m *Menu) close() multi.Multi[proto.Message] {
	m.open = false
	m.cur, m.item = 0, 0
	m.stack.Reset()
	return multi.Of(
		proto.DisplaySelect(m.last),
		proto.SecondaryMenuClose(),
		proto.SetDefaultLayer(proto.LayerDefault.Index()),
	)
}

// peer handles the menu of the other half asking this half to mirror a page.
func (m *Menu) peer(a proto.MenuAction) multi.Multi[proto.Message] {
	switch a.Kind {
	case proto.MenuOpen:
		if !m.peerOpen {
			m.peerOpen = true
			m.peerRestore = m.shown
		}
		return multi.Of(proto.DisplaySelect(a.Page))
	case proto.MenuClose:
		if m.peerOpen {
			m.peerOpen = false
			return multi.Of(proto.DisplaySelect(m.peerRestore))
		}
	}
	return multi.None[proto.Message]()
}

// Render draws the current menu. The selected entry is marked with '>'.
func (m *Menu) Render(s display.Screen) error {
	s.Clear()
	node := m.Current()
	s.DrawText(node.Name, 0, 0)
	back := "back"
	if m.stack.Empty() {
		back = "close"
	}
	y := int16(display.LineHeight)
	for i := 0; i <= len(node.Items); i++ {
		name := back
		if i > 0 {
			name = node.Items[i-1].Name
		}
		if i == m.item {
			s.DrawText(">", 0, y)
		}
		s.DrawText(name, display.CharWidth, y)
		y += display.LineHeight
	}
	return s.Flush()
}
