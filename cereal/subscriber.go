package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"pfeifer.dev/carcontrol/cereal/log"
)

type Reader[T any] func(log.Event) (T, error)

// Receiver is the raw side of a msgq subscriber. An empty slice means no
// message is pending.
type Receiver interface {
	Read() []byte
}

type Subscriber[T any] struct {
	Sub    Receiver
	reader Reader[T]
	close  func()
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	return Decode(data, s.reader)
}

// Decode unmarshals one event and extracts the member read by reader.
func Decode[T any](data []byte, reader Reader[T]) (obj T, success bool) {
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, false
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	event, err := log.ReadRootEvent(msg)
	if err != nil {
		return obj, false
	}

	obj, err = reader(event)
	if err != nil {
		return obj, false
	}
	return obj, true
}

// Drain reads every pending message. Stops at max to bound one cycle.
func (s *Subscriber[T]) Drain(max int) []T {
	var out []T
	for range max {
		data := s.Sub.Read()
		if len(data) == 0 {
			break
		}
		obj, ok := Decode(data, s.reader)
		if ok {
			out = append(out, obj)
		}
	}
	return out
}

func (s *Subscriber[T]) Close() {
	if s.close != nil {
		s.close()
		s.close = nil
	}
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) Subscriber[T] {
	subscriber, err := OpenSubscriber(name, reader, conflate)
	if err != nil {
		panic(err)
	}
	return subscriber
}

func OpenSubscriber[T any](name string, reader Reader[T], conflate bool) (subscriber Subscriber[T], err error) {
	msgq, err := openMsgq(name)
	if err != nil {
		return subscriber, err
	}
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	subscriber.Sub = msgqReceiver{sub: &sub}
	subscriber.reader = reader
	subscriber.close = func() {
		closeMsgq(&sub.Msgq, name)
	}
	return subscriber, nil
}

func NewSubscriberWith[T any](receiver Receiver, reader Reader[T]) Subscriber[T] {
	return Subscriber[T]{Sub: receiver, reader: reader}
}
