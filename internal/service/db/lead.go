package db

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/qiniu/x/xlog"
	"github.com/tidwall/gjson"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/protodef/errors"
	"github.com/solutions/afroverseas/internal/protodef/model"
	"github.com/solutions/afroverseas/internal/service/cloud"
)

// createLeadMaxRetry 线索编号撞唯一索引时的重试上限。
const createLeadMaxRetry = 3

// Notifier 出站邮件入队。投递与请求生命周期解耦，失败只打日志。
type Notifier interface {
	Enqueue(xl *xlog.Logger, mail *cloud.Mail)
}

// TicketGenerator 票据二维码生成。
type TicketGenerator interface {
	Generate(xl *xlog.Logger, refNumber string) (data []byte, fileName string, url string, err error)
}

// LeadInterface 线索相关数据库操作与审核流程。
type LeadInterface interface {
	CreateLead(xl *xlog.Logger, lead *model.LeadDo) (*model.LeadDo, error)

	GetLeadByID(xl *xlog.Logger, id int64) (*model.LeadDo, error)

	ListLeads(xl *xlog.Logger, status string, pageNum, pageSize int) ([]model.LeadDo, error)

	CountLeadsByStatus(xl *xlog.Logger, status model.LeadStatus) (int, error)

	Verify(xl *xlog.Logger, id int64, action model.VerifyAction, newDate string) (*model.LeadDo, error)

	AcknowledgeLead(xl *xlog.Logger, lead *model.LeadDo)
}

type LeadService struct {
	db     *sql.DB
	refTag string
	ticket TicketGenerator
	notify Notifier
	xl     *xlog.Logger
}

func NewLeadService(db *sql.DB, refTag string, ticket TicketGenerator, notify Notifier, xl *xlog.Logger) *LeadService {
	if xl == nil {
		xl = xlog.New("lead-service")
	}
	return &LeadService{
		db:     db,
		refTag: refTag,
		ticket: ticket,
		notify: notify,
		xl:     xl,
	}
}

const leadColumns = `id, ref_number, type, email, whatsapp, service_type, country, sub_type,
appointment_date, arrival_time, address, payment_method, receipt_url, status, candidate_ids, message, created_at`

func scanLead(row interface{ Scan(...interface{}) error }) (*model.LeadDo, error) {
	var lead model.LeadDo
	err := row.Scan(&lead.ID, &lead.RefNumber, &lead.Type, &lead.Email, &lead.Whatsapp,
		&lead.ServiceType, &lead.Country, &lead.SubType, &lead.AppointmentDate,
		&lead.ArrivalTime, &lead.Address, &lead.PaymentMethod, &lead.ReceiptURL,
		&lead.Status, &lead.CandidateIDs, &lead.Message, &lead.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// CreateLead 持久化一条新线索，初始状态固定为待审核。
// 编号唯一索引冲突时换新编号重试，不把冲突暴露给调用方。
func (s *LeadService) CreateLead(xl *xlog.Logger, lead *model.LeadDo) (*model.LeadDo, error) {
	if xl == nil {
		xl = s.xl
	}
	if lead.ArrivalTime == "" {
		lead.ArrivalTime = model.DefaultArrivalTime
	}
	if lead.Address == "" {
		lead.Address = model.DefaultAddress
	}
	lead.Status = string(model.LeadStatusPending)
	lead.CreatedAt = time.Now()

	for attempt := 0; ; attempt++ {
		err := s.db.QueryRow(`INSERT INTO leads
			(ref_number, type, email, whatsapp, service_type, country, sub_type,
			appointment_date, arrival_time, address, payment_method, receipt_url,
			status, candidate_ids, message, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			RETURNING id`,
			lead.RefNumber, lead.Type, lead.Email, lead.Whatsapp, lead.ServiceType,
			lead.Country, lead.SubType, lead.AppointmentDate, lead.ArrivalTime,
			lead.Address, lead.PaymentMethod, lead.ReceiptURL, lead.Status,
			lead.CandidateIDs, lead.Message, lead.CreatedAt,
		).Scan(&lead.ID)
		if err == nil {
			return lead, nil
		}
		if isUniqueViolation(err) && attempt < createLeadMaxRetry {
			old := lead.RefNumber
			lead.RefNumber = utils.NewRefNumber(s.refTag)
			xl.Infof("ref number %s collided, retrying with %s", old, lead.RefNumber)
			continue
		}
		xl.Errorf("failed to insert lead, error %v", err)
		return nil, err
	}
}

func (s *LeadService) GetLeadByID(xl *xlog.Logger, id int64) (*model.LeadDo, error) {
	if xl == nil {
		xl = s.xl
	}
	lead, err := scanLead(s.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrLeadNotFound
	}
	if err != nil {
		xl.Errorf("failed to select lead %d, error %v", id, err)
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) ListLeads(xl *xlog.Logger, status string, pageNum, pageSize int) ([]model.LeadDo, error) {
	if xl == nil {
		xl = s.xl
	}
	query := `SELECT ` + leadColumns + ` FROM leads`
	args := make([]interface{}, 0, 3)
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	if pageSize > 0 {
		query += ` LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
		args = append(args, pageSize, (pageNum-1)*pageSize)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		xl.Errorf("failed to list leads, error %v", err)
		return nil, err
	}
	defer rows.Close()
	leads := make([]model.LeadDo, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func (s *LeadService) CountLeadsByStatus(xl *xlog.Logger, status model.LeadStatus) (int, error) {
	if xl == nil {
		xl = s.xl
	}
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM leads WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		xl.Errorf("failed to count leads, error %v", err)
		return 0, err
	}
	return count, nil
}

// Verify 审核流程核心：按管理员动作推进线索状态。
// 状态变更与候选人预订数自增在同一个事务里提交；票据生成与邮件
// 投递只在事务提交之后发生，失败不回滚已提交的状态。
func (s *LeadService) Verify(xl *xlog.Logger, id int64, action model.VerifyAction, newDate string) (*model.LeadDo, error) {
	if xl == nil {
		xl = s.xl
	}
	lead, err := s.GetLeadByID(xl, id)
	if err != nil {
		return nil, err
	}

	switch action {
	case model.VerifyActionApprove:
		if err := s.approve(xl, lead); err != nil {
			return nil, err
		}
		lead.Status = string(model.LeadStatusApproved)
		s.afterApprove(xl, lead)
	case model.VerifyActionDeny:
		if _, err := s.db.Exec(`UPDATE leads SET status = $1 WHERE id = $2`,
			string(model.LeadStatusRejected), lead.ID); err != nil {
			xl.Errorf("failed to update lead %d status, error %v", lead.ID, err)
			return nil, err
		}
		lead.Status = string(model.LeadStatusRejected)
		s.afterDeny(xl, lead)
	case model.VerifyActionPostpone:
		if newDate == "" {
			return nil, errors.ErrInvalidArgument
		}
		oldDate := lead.AppointmentDate
		if _, err := s.db.Exec(`UPDATE leads SET status = $1, appointment_date = $2 WHERE id = $3`,
			string(model.LeadStatusRescheduled), newDate, lead.ID); err != nil {
			xl.Errorf("failed to update lead %d status, error %v", lead.ID, err)
			return nil, err
		}
		lead.Status = string(model.LeadStatusRescheduled)
		lead.AppointmentDate = newDate
		s.afterPostpone(xl, lead, oldDate)
	default:
		// 未知动作不做静默成功，一律报参数错误
		return nil, errors.ErrInvalidArgument
	}
	return lead, nil
}

// approve 状态置为通过并原子自增被引用候选人的预订数，单事务提交。
func (s *LeadService) approve(xl *xlog.Logger, lead *model.LeadDo) error {
	tx, err := s.db.Begin()
	if err != nil {
		xl.Errorf("failed to begin tx, error %v", err)
		return err
	}
	if _, err := tx.Exec(`UPDATE leads SET status = $1 WHERE id = $2`,
		string(model.LeadStatusApproved), lead.ID); err != nil {
		tx.Rollback()
		xl.Errorf("failed to update lead %d status, error %v", lead.ID, err)
		return err
	}
	// 无法解析或为空的候选人列表直接忽略，不影响审核通过
	if ids := parseCandidateIDs(lead.CandidateIDs); len(ids) > 0 {
		if _, err := tx.Exec(`UPDATE candidates SET booking_count = booking_count + 1 WHERE id = ANY($1)`,
			pq.Array(ids)); err != nil {
			tx.Rollback()
			xl.Errorf("failed to boost candidates for lead %d, error %v", lead.ID, err)
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		xl.Errorf("failed to commit verify tx for lead %d, error %v", lead.ID, err)
		return err
	}
	return nil
}

// afterApprove 生成票据并给客户投递确认邮件，均为尽力而为。
func (s *LeadService) afterApprove(xl *xlog.Logger, lead *model.LeadDo) {
	var ticketData []byte
	var ticketName string
	if s.ticket != nil {
		data, fileName, url, err := s.ticket.Generate(xl, lead.RefNumber)
		if err != nil {
			xl.Errorf("failed to generate ticket for lead %s, error %v", lead.RefNumber, err)
		} else {
			ticketData, ticketName = data, fileName
			xl.Infof("ticket for lead %s stored at %s", lead.RefNumber, url)
		}
	}
	if lead.Email == "" || s.notify == nil {
		return
	}
	mail := approvalMail(lead)
	mail.Attachment = ticketData
	mail.AttachmentName = ticketName
	s.notify.Enqueue(xl, mail)
}

func (s *LeadService) afterDeny(xl *xlog.Logger, lead *model.LeadDo) {
	if lead.Email == "" || s.notify == nil {
		return
	}
	s.notify.Enqueue(xl, rejectionMail(lead))
}

func (s *LeadService) afterPostpone(xl *xlog.Logger, lead *model.LeadDo, oldDate string) {
	if lead.Email == "" || s.notify == nil {
		return
	}
	s.notify.Enqueue(xl, rescheduleMail(lead, oldDate))
}

// parseCandidateIDs 宽松解析候选人ID列表，非法输入一律当作空列表。
func parseCandidateIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}
	result := gjson.Parse(raw)
	if !result.IsArray() {
		return nil
	}
	ids := make([]int64, 0, 4)
	for _, item := range result.Array() {
		if id := item.Int(); id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
