package task

import (
	"sync"
	"testing"
	"time"

	"github.com/qiniu/x/xlog"
	"github.com/stretchr/testify/assert"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/service/cloud"
)

type recordingSender struct {
	mu    sync.Mutex
	sent  []*cloud.Mail
	delay time.Duration
}

func (s *recordingSender) SendMail(xl *xlog.Logger, mail *cloud.Mail) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, mail)
	return nil
}

func (s *recordingSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func notifyTestConf(queueSize, workerCount int) utils.Config {
	return utils.Config{
		Mail: &utils.MailConfig{
			Provider:    "mock",
			QueueSize:   queueSize,
			WorkerCount: workerCount,
			SendTimeout: 5,
		},
	}
}

func TestNotifyDeliversEnqueuedMail(t *testing.T) {
	sender := &recordingSender{}
	task := NewNotifyTask(notifyTestConf(4, 2), sender)
	task.Start()

	xl := xlog.New("notify-test")
	task.Enqueue(xl, &cloud.Mail{To: "a@example.com", Subject: "one"})
	task.Enqueue(xl, &cloud.Mail{To: "b@example.com", Subject: "two"})
	task.Stop()

	assert.Equal(t, 2, sender.sentCount())
}

func TestEnqueueNeverBlocksWhenFull(t *testing.T) {
	sender := &recordingSender{}
	// worker未启动，队列长度1，第二封只能被丢弃
	task := NewNotifyTask(notifyTestConf(1, 1), sender)

	xl := xlog.New("notify-test")
	done := make(chan struct{})
	go func() {
		task.Enqueue(xl, &cloud.Mail{To: "a@example.com", Subject: "kept"})
		task.Enqueue(xl, &cloud.Mail{To: "b@example.com", Subject: "dropped"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}

	task.Start()
	task.Stop()
	assert.Equal(t, 1, sender.sentCount())
	assert.Equal(t, "kept", sender.sent[0].Subject)
}

func TestEnqueueSkipsMissingRecipient(t *testing.T) {
	sender := &recordingSender{}
	task := NewNotifyTask(notifyTestConf(4, 1), sender)
	task.Start()

	task.Enqueue(nil, &cloud.Mail{Subject: "no recipient"})
	task.Stop()

	assert.Equal(t, 0, sender.sentCount())
}
