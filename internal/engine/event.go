package engine

// ListenerID identifies a subscription so it can be removed later.
type ListenerID int

// Event is a Unity-style multi-cast event with one argument.
type Event[T any] struct {
	nextID    ListenerID
	listeners []listener[T]
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener subscribes callback and returns its ID. Nil callbacks are ignored
// and yield ID 0.
func (e *Event[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *Event[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls listeners in subscription order.
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *Event[T]) GetListenerCount() int {
	return len(e.listeners)
}
