package remind

import "github.com/gen2brain/beeep"

// SystemNotifier delivers fire-and-forget desktop notifications.
type SystemNotifier struct {
	AppName string
}

func (n SystemNotifier) Notify(note Notification) error {
	name := n.AppName
	if name == "" {
		name = "harucal"
	}
	return beeep.Notify(name+": "+note.Title, note.Message, "")
}
