package task

import (
	"fmt"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/protodef/model"
	"github.com/solutions/afroverseas/internal/service/cloud"
	"github.com/solutions/afroverseas/internal/service/db"
)

// DigestTask 每日给管理员汇总仍在待审核状态的线索数量，由gocron调度。
type DigestTask struct {
	lead       db.LeadInterface
	notify     *NotifyTask
	adminEmail string
	xl         *xlog.Logger
}

func NewDigestTask(lead db.LeadInterface, notify *NotifyTask, adminEmail string) *DigestTask {
	return &DigestTask{
		lead:       lead,
		notify:     notify,
		adminEmail: adminEmail,
		xl:         xlog.New("digest-task"),
	}
}

func (t *DigestTask) Start() {
	if t.adminEmail == "" {
		return
	}
	count, err := t.lead.CountLeadsByStatus(t.xl, model.LeadStatusPending)
	if err != nil {
		t.xl.Errorf("failed to count pending leads, error %v", err)
		return
	}
	if count == 0 {
		t.xl.Debug("no pending leads, digest skipped")
		return
	}
	body := fmt.Sprintf(`<html><body>
<p>There are <b>%d</b> leads pending verification on the admin dashboard.</p>
</body></html>`, count)
	t.notify.Enqueue(t.xl, &cloud.Mail{
		To:       t.adminEmail,
		Subject:  fmt.Sprintf("Daily digest: %d leads pending verification", count),
		HTMLBody: body,
	})
}
