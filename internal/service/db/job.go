package db

import (
	"database/sql"
	"time"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/protodef/errors"
	"github.com/solutions/afroverseas/internal/protodef/model"
)

// JobInterface 职位相关数据库操作。
type JobInterface interface {
	CreateJob(xl *xlog.Logger, job *model.JobDo) (*model.JobDo, error)

	ListJobs(xl *xlog.Logger, filter model.JobFilter, pageNum, pageSize int) ([]model.JobDo, error)
}

type JobService struct {
	db *sql.DB
	xl *xlog.Logger
}

func NewJobService(db *sql.DB, xl *xlog.Logger) *JobService {
	if xl == nil {
		xl = xlog.New("job-service")
	}
	return &JobService{db: db, xl: xl}
}

func (s *JobService) CreateJob(xl *xlog.Logger, job *model.JobDo) (*model.JobDo, error) {
	if xl == nil {
		xl = s.xl
	}
	if job.ProjectDuration == "" {
		job.ProjectDuration = model.DefaultProjectDuration
	}
	if job.PassportReq == "" {
		job.PassportReq = model.DefaultPassportReq
	}
	if job.Benefits == "" {
		job.Benefits = model.DefaultBenefits
	}
	if job.InterviewInfo == "" {
		job.InterviewInfo = model.DefaultInterviewInfo
	}
	job.PostedOn = time.Now()
	job.IsActive = true

	err := s.db.QueryRow(`INSERT INTO jobs
		(job_code, title, company, location, country, job_type, salary_range,
		experience, qualification, description, project_duration, passport_req,
		benefits, interview_info, posted_on, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id`,
		job.JobCode, job.Title, job.Company, job.Location, job.Country, job.JobType,
		job.SalaryRange, job.Experience, job.Qualification, job.Description,
		job.ProjectDuration, job.PassportReq, job.Benefits, job.InterviewInfo,
		job.PostedOn, job.IsActive,
	).Scan(&job.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrJobCodeUsed
		}
		xl.Errorf("failed to insert job, error %v", err)
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(xl *xlog.Logger, filter model.JobFilter, pageNum, pageSize int) ([]model.JobDo, error) {
	if xl == nil {
		xl = s.xl
	}
	query := `SELECT id, job_code, title, company, location, country, job_type, salary_range,
		experience, qualification, description, project_duration, passport_req,
		benefits, interview_info, posted_on, is_active FROM jobs WHERE 1=1`
	args := make([]interface{}, 0, 5)
	if filter.ActiveOnly {
		query += ` AND is_active = TRUE`
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		placeholder := `$` + itoa(len(args))
		query += ` AND (title ILIKE ` + placeholder + ` OR company ILIKE ` + placeholder + `)`
	}
	if filter.Country != "" {
		args = append(args, filter.Country)
		query += ` AND country = $` + itoa(len(args))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		query += ` AND job_type = $` + itoa(len(args))
	}
	query += ` ORDER BY posted_on DESC`
	if pageSize > 0 {
		query += ` LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
		args = append(args, pageSize, (pageNum-1)*pageSize)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		xl.Errorf("failed to list jobs, error %v", err)
		return nil, err
	}
	defer rows.Close()
	jobs := make([]model.JobDo, 0)
	for rows.Next() {
		var job model.JobDo
		if err := rows.Scan(&job.ID, &job.JobCode, &job.Title, &job.Company, &job.Location,
			&job.Country, &job.JobType, &job.SalaryRange, &job.Experience, &job.Qualification,
			&job.Description, &job.ProjectDuration, &job.PassportReq, &job.Benefits,
			&job.InterviewInfo, &job.PostedOn, &job.IsActive); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
