package utils

// Latest is a one-slot mailbox. Offer never blocks; an unread value is
// replaced by the newer one.
type Latest[T any] struct {
	ch chan T
}

func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{ch: make(chan T, 1)}
}

func (l *Latest[T]) Offer(v T) {
	for {
		select {
		case l.ch <- v:
			return
		default:
		}
		select {
		case <-l.ch:
		default:
		}
	}
}

// C is the receive side.
func (l *Latest[T]) C() <-chan T {
	return l.ch
}
