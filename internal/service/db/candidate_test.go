package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/qiniu/x/xlog"
	"github.com/stretchr/testify/assert"

	"github.com/solutions/afroverseas/internal/protodef/model"
)

var candidateTestColumns = []string{
	"id", "name", "skills", "experience_years", "whatsapp", "cv_url", "video_url",
	"booking_count", "is_featured",
}

func newCandidateTestService(t *testing.T) (*CandidateService, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewCandidateService(mockDB, xlog.New("candidate-test")), mock
}

func TestCreateCandidateStartsUnbooked(t *testing.T) {
	service, mock := newCandidateTestService(t)

	mock.ExpectQuery(`INSERT INTO candidates`).
		WithArgs("Jean Doe", "Welding, plumbing", 4, "+25761234567",
			"/static/uploads/cv_abc.pdf", "/static/uploads/vid_abc.mp4", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	created, err := service.CreateCandidate(nil, &model.CandidateDo{
		Name:            "Jean Doe",
		Skills:          "Welding, plumbing",
		ExperienceYears: 4,
		Whatsapp:        "+25761234567",
		CvURL:           "/static/uploads/cv_abc.pdf",
		VideoURL:        "/static/uploads/vid_abc.mp4",
		IsFeatured:      true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, 0, created.BookingCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCandidatesOrderedByBookings(t *testing.T) {
	service, mock := newCandidateTestService(t)

	rows := sqlmock.NewRows(candidateTestColumns).
		AddRow(int64(5), "Amina K", "Housekeeping", 6, "+25762000000", "/static/uploads/cv_a.pdf", "/static/uploads/vid_a.mp4", 9, true).
		AddRow(int64(2), "Jean Doe", "Welding", 4, "+25761234567", "/static/uploads/cv_b.pdf", "/static/uploads/vid_b.mp4", 3, false)
	mock.ExpectQuery(`FROM candidates ORDER BY booking_count DESC, id ASC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	candidates, err := service.ListCandidates(nil, 1, 10)
	assert.NoError(t, err)
	if assert.Len(t, candidates, 2) {
		assert.Equal(t, "Amina K", candidates[0].Name)
		assert.Equal(t, 9, candidates[0].BookingCount)
		assert.Equal(t, "Jean Doe", candidates[1].Name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCandidateByID(t *testing.T) {
	service, mock := newCandidateTestService(t)

	mock.ExpectQuery(`FROM candidates WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(candidateTestColumns).
			AddRow(int64(5), "Amina K", "Housekeeping", 6, "+25762000000", "/static/uploads/cv_a.pdf", "/static/uploads/vid_a.mp4", 9, true))

	candidate, err := service.GetCandidateByID(nil, 5)
	assert.NoError(t, err)
	assert.Equal(t, "Amina K", candidate.Name)
	assert.True(t, candidate.IsFeatured)
	assert.NoError(t, mock.ExpectationsWereMet())
}
