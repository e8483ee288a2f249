package notify

// Notifier presents a transient, non-blocking outcome message to the
// operator. Implementations must never block the caller and never panic
// outward; a notification that fails to render is dropped.
type Notifier interface {
	Notify(message string, ok bool)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string, ok bool)

func (f Func) Notify(message string, ok bool) { f(message, ok) }

type multi []Notifier

// Multi fans a notification out to every given notifier. Nil entries are
// skipped so optional sinks can be passed unconditionally.
func Multi(notifiers ...Notifier) Notifier {
	ns := make(multi, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			ns = append(ns, n)
		}
	}
	return ns
}

func (m multi) Notify(message string, ok bool) {
	for _, n := range m {
		n.Notify(message, ok)
	}
}
