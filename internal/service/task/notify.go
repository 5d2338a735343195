package task

import (
	"sync"
	"time"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/service/cloud"
)

const (
	defaultQueueSize   = 64
	defaultWorkerCount = 2
	defaultSendTimeout = 30 * time.Second
)

// NotifyTask 出站邮件队列。请求处理只负责入队立即返回，
// 实际投递由固定数量的worker完成，慢SMTP不会拖垮请求也不会
// 积累无上界的并发发送。
type NotifyTask struct {
	sender      cloud.MailSender
	queue       chan *cloud.Mail
	workerCount int
	sendTimeout time.Duration
	wg          sync.WaitGroup
	xl          *xlog.Logger
}

func NewNotifyTask(conf utils.Config, sender cloud.MailSender) *NotifyTask {
	queueSize := conf.Mail.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	workerCount := conf.Mail.WorkerCount
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	sendTimeout := defaultSendTimeout
	if conf.Mail.SendTimeout > 0 {
		sendTimeout = time.Duration(conf.Mail.SendTimeout) * time.Second
	}
	return &NotifyTask{
		sender:      sender,
		queue:       make(chan *cloud.Mail, queueSize),
		workerCount: workerCount,
		sendTimeout: sendTimeout,
		xl:          xlog.New("notify-task"),
	}
}

func (t *NotifyTask) Start() {
	for i := 0; i < t.workerCount; i++ {
		t.wg.Add(1)
		go t.worker()
	}
}

// Stop 关闭队列并等待已入队邮件发完。
func (t *NotifyTask) Stop() {
	close(t.queue)
	t.wg.Wait()
}

// Enqueue 非阻塞入队。队列满时丢弃并打日志，绝不阻塞调用方。
func (t *NotifyTask) Enqueue(xl *xlog.Logger, mail *cloud.Mail) {
	if xl == nil {
		xl = t.xl
	}
	if mail.To == "" {
		xl.Warnf("no recipient for mail %q, skipped", mail.Subject)
		return
	}
	select {
	case t.queue <- mail:
		xl.Debugf("mail %q to %s enqueued", mail.Subject, mail.To)
	default:
		xl.Errorf("notify queue full, mail %q to %s dropped", mail.Subject, mail.To)
	}
}

func (t *NotifyTask) worker() {
	defer t.wg.Done()
	for mail := range t.queue {
		t.send(mail)
	}
}

func (t *NotifyTask) send(mail *cloud.Mail) {
	done := make(chan error, 1)
	go func() {
		done <- t.sender.SendMail(t.xl, mail)
	}()
	select {
	case err := <-done:
		if err != nil {
			t.xl.Errorf("failed to send mail %q to %s, error %v", mail.Subject, mail.To, err)
		}
	case <-time.After(t.sendTimeout):
		t.xl.Errorf("sending mail %q to %s timed out after %v", mail.Subject, mail.To, t.sendTimeout)
	}
}
