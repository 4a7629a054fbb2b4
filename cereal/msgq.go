package cereal

import (
	"log/slog"

	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/carcontrol/settings"
)

func openMsgq(name string) (msgq gomsgq.Msgq, err error) {
	if settings.IsSmallSegment(name) {
		err = msgq.Init(name, settings.SMALL_SEGMENT_SIZE)
	} else {
		err = msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	}
	return msgq, errors.Wrapf(err, "could not open msgq %s", name)
}

func closeMsgq(msgq *gomsgq.Msgq, name string) {
	memErr, fileErr := msgq.Close()
	if memErr != nil {
		slog.Warn("could not unmap msgq", "name", name, "error", memErr)
	}
	if fileErr != nil {
		slog.Warn("could not close msgq", "name", name, "error", fileErr)
	}
}

type msgqSender struct {
	pub *gomsgq.MsgqPublisher
}

func (s msgqSender) Send(data []byte) {
	s.pub.Send(data)
}

type msgqReceiver struct {
	sub *gomsgq.MsgqSubscriber
}

func (r msgqReceiver) Read() []byte {
	return r.sub.Read()
}
