package model

// CandidateDo 已审核的候选人档案。
// BookingCount 在线索审核通过时自增，是唯一会在创建后变化的字段，
// 自增必须在存储层原子完成。
type CandidateDo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experienceYears"`
	Whatsapp        string `json:"whatsapp"`
	CvURL           string `json:"cvUrl"`
	VideoURL        string `json:"videoUrl"`
	BookingCount    int    `json:"bookingCount"`
	IsFeatured      bool   `json:"isFeatured"`
}
