package menu

// ExternalFunc opens an off-site destination in a new context.
type ExternalFunc func(item Item)

// Navigator routes activated items: internal destinations become the
// current route, external ones are handed to the external opener and leave
// the route untouched.
type Navigator struct {
	route    string
	external ExternalFunc
}

func NewNavigator(external ExternalFunc) *Navigator {
	return &Navigator{external: external}
}

// Navigate activates item.
func (n *Navigator) Navigate(item Item) {
	if item.External() {
		if n.external != nil {
			n.external(item)
		}
		return
	}
	n.route = item.Href
}

// Route is the current internal route; "" is the title screen.
func (n *Navigator) Route() string {
	return n.route
}

// Back returns to the title screen.
func (n *Navigator) Back() {
	n.route = ""
}
