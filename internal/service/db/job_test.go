package db

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/qiniu/x/xlog"
	"github.com/stretchr/testify/assert"

	"github.com/solutions/afroverseas/internal/protodef/errors"
	"github.com/solutions/afroverseas/internal/protodef/model"
)

func newJobTestService(t *testing.T) (*JobService, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewJobService(mockDB, xlog.New("job-test")), mock
}

func TestCreateJobFillsBoilerplate(t *testing.T) {
	service, mock := newJobTestService(t)

	mock.ExpectQuery(`INSERT INTO jobs`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	created, err := service.CreateJob(nil, &model.JobDo{
		JobCode:       "QTR-001",
		Title:         "Welder",
		Company:       "Gulf Construction",
		Location:      "Doha",
		Country:       "Qatar",
		JobType:       "Full-time",
		Experience:    "2 years",
		Qualification: "Certificate",
		Description:   "Structural welding on site",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, model.DefaultProjectDuration, created.ProjectDuration)
	assert.Equal(t, model.DefaultPassportReq, created.PassportReq)
	assert.Equal(t, model.DefaultBenefits, created.Benefits)
	assert.Equal(t, model.DefaultInterviewInfo, created.InterviewInfo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJobDuplicateCode(t *testing.T) {
	service, mock := newJobTestService(t)

	mock.ExpectQuery(`INSERT INTO jobs`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := service.CreateJob(nil, &model.JobDo{JobCode: "QTR-001"})
	assert.Equal(t, errors.ErrJobCodeUsed, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobsWithFilters(t *testing.T) {
	service, mock := newJobTestService(t)

	rows := sqlmock.NewRows([]string{
		"id", "job_code", "title", "company", "location", "country", "job_type",
		"salary_range", "experience", "qualification", "description", "project_duration",
		"passport_req", "benefits", "interview_info", "posted_on", "is_active",
	}).AddRow(
		int64(1), "QTR-001", "Welder", "Gulf Construction", "Doha", "Qatar", "Full-time",
		"QAR 2500-3500", "2 years", "Certificate", "Structural welding on site",
		model.DefaultProjectDuration, model.DefaultPassportReq, model.DefaultBenefits,
		model.DefaultInterviewInfo, time.Now(), true,
	)
	mock.ExpectQuery(`FROM jobs WHERE 1=1 AND is_active = TRUE AND \(title ILIKE \$1 OR company ILIKE \$1\) AND country = \$2 ORDER BY posted_on DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("%weld%", "Qatar", 20, 0).
		WillReturnRows(rows)

	jobs, err := service.ListJobs(nil, model.JobFilter{
		ActiveOnly: true,
		Query:      "weld",
		Country:    "Qatar",
	}, 1, 20)
	assert.NoError(t, err)
	if assert.Len(t, jobs, 1) {
		assert.Equal(t, "QTR-001", jobs[0].JobCode)
		assert.Equal(t, "Welder", jobs[0].Title)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobsEmpty(t *testing.T) {
	service, mock := newJobTestService(t)

	mock.ExpectQuery(`FROM jobs WHERE 1=1 ORDER BY posted_on DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "job_code", "title", "company", "location", "country", "job_type",
			"salary_range", "experience", "qualification", "description", "project_duration",
			"passport_req", "benefits", "interview_info", "posted_on", "is_active",
		}))

	jobs, err := service.ListJobs(nil, model.JobFilter{}, 0, 0)
	assert.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
