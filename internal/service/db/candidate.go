package db

import (
	"database/sql"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/protodef/model"
)

// CandidateInterface 候选人相关数据库操作。
// 预订数自增不在这里：它属于审核事务，见 LeadService.approve。
type CandidateInterface interface {
	CreateCandidate(xl *xlog.Logger, candidate *model.CandidateDo) (*model.CandidateDo, error)

	ListCandidates(xl *xlog.Logger, pageNum, pageSize int) ([]model.CandidateDo, error)

	GetCandidateByID(xl *xlog.Logger, id int64) (*model.CandidateDo, error)
}

type CandidateService struct {
	db *sql.DB
	xl *xlog.Logger
}

func NewCandidateService(db *sql.DB, xl *xlog.Logger) *CandidateService {
	if xl == nil {
		xl = xlog.New("candidate-service")
	}
	return &CandidateService{db: db, xl: xl}
}

func (s *CandidateService) CreateCandidate(xl *xlog.Logger, candidate *model.CandidateDo) (*model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	err := s.db.QueryRow(`INSERT INTO candidates
		(name, skills, experience_years, whatsapp, cv_url, video_url, booking_count, is_featured)
		VALUES ($1,$2,$3,$4,$5,$6,0,$7)
		RETURNING id`,
		candidate.Name, candidate.Skills, candidate.ExperienceYears, candidate.Whatsapp,
		candidate.CvURL, candidate.VideoURL, candidate.IsFeatured,
	).Scan(&candidate.ID)
	if err != nil {
		xl.Errorf("failed to insert candidate, error %v", err)
		return nil, err
	}
	return candidate, nil
}

// ListCandidates 按热度（预订数）倒序返回候选人。
func (s *CandidateService) ListCandidates(xl *xlog.Logger, pageNum, pageSize int) ([]model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	query := `SELECT id, name, skills, experience_years, whatsapp, cv_url, video_url,
		booking_count, is_featured FROM candidates ORDER BY booking_count DESC, id ASC`
	args := make([]interface{}, 0, 2)
	if pageSize > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, pageSize, (pageNum-1)*pageSize)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		xl.Errorf("failed to list candidates, error %v", err)
		return nil, err
	}
	defer rows.Close()
	candidates := make([]model.CandidateDo, 0)
	for rows.Next() {
		var candidate model.CandidateDo
		if err := rows.Scan(&candidate.ID, &candidate.Name, &candidate.Skills,
			&candidate.ExperienceYears, &candidate.Whatsapp, &candidate.CvURL,
			&candidate.VideoURL, &candidate.BookingCount, &candidate.IsFeatured); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (s *CandidateService) GetCandidateByID(xl *xlog.Logger, id int64) (*model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	var candidate model.CandidateDo
	err := s.db.QueryRow(`SELECT id, name, skills, experience_years, whatsapp, cv_url, video_url,
		booking_count, is_featured FROM candidates WHERE id = $1`, id).
		Scan(&candidate.ID, &candidate.Name, &candidate.Skills, &candidate.ExperienceYears,
			&candidate.Whatsapp, &candidate.CvURL, &candidate.VideoURL,
			&candidate.BookingCount, &candidate.IsFeatured)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		xl.Errorf("failed to select candidate %d, error %v", id, err)
		return nil, err
	}
	return &candidate, nil
}
