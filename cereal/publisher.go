package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"pfeifer.dev/carcontrol/cereal/log"
)

type MessageCreator[T any] func(log.Event) (T, error)

// Sender is the raw side of a msgq publisher.
type Sender interface {
	Send([]byte)
}

type Publisher[T any] struct {
	Pub     Sender
	creator MessageCreator[T]
	close   func()
}

// Close releases the underlying queue. Publishers built on another sender
// have nothing to release.
func (p *Publisher[T]) Close() {
	if p.close != nil {
		p.close()
		p.close = nil
	}
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return err
	}
	p.Pub.Send(b)
	return nil
}

func (p *Publisher[T]) NewMessage(valid bool) (msg *capnp.Message, obj T) {
	msg, obj, err := NewEvent(valid, p.creator)
	if err != nil {
		panic(err)
	}
	return msg, obj
}

// NewEvent allocates a single segment message with an Event root and lets
// creator fill in the union member.
func NewEvent[T any](valid bool, creator MessageCreator[T]) (msg *capnp.Message, obj T, err error) {
	arena := capnp.SingleSegment(nil)

	msg, seg, err := capnp.NewMessage(arena)
	if err != nil {
		return nil, obj, err
	}

	event, err := log.NewRootEvent(seg)
	if err != nil {
		return nil, obj, err
	}

	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)

	obj, err = creator(event)
	if err != nil {
		return nil, obj, err
	}

	return msg, obj, nil
}

func NewPublisher[T any](name string, creator MessageCreator[T]) Publisher[T] {
	publisher, err := OpenPublisher(name, creator)
	if err != nil {
		panic(err)
	}
	return publisher
}

// OpenPublisher is NewPublisher for callers that can carry on without the
// topic.
func OpenPublisher[T any](name string, creator MessageCreator[T]) (publisher Publisher[T], err error) {
	msgq, err := openMsgq(name)
	if err != nil {
		return publisher, err
	}
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	publisher.Pub = msgqSender{pub: &pub}
	publisher.creator = creator
	publisher.close = func() {
		closeMsgq(&pub.Msgq, name)
	}
	return publisher, nil
}

// NewPublisherWith builds a publisher on an existing sender. Used by tests and
// by tools that bridge to another transport.
func NewPublisherWith[T any](sender Sender, creator MessageCreator[T]) Publisher[T] {
	return Publisher[T]{Pub: sender, creator: creator}
}
