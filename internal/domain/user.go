package domain

import "time"

type User struct {
	ID                    string          `json:"user_id"`
	Email                 string          `json:"email"`
	FullName              string          `json:"full_name,omitempty"`
	CompanyName           string          `json:"company_name,omitempty"`
	SuperAdmin            bool            `json:"is_superadmin"`
	AssessmentCompleted   bool            `json:"dna_assessment_completed"`
	AssessmentCompletedAt *time.Time      `json:"assessment_completed_at,omitempty"`
	HubAlignments         map[Hub]float64 `json:"hub_alignments"`
	CreatedAt             time.Time       `json:"created_at"`
}

// AccessSubject proyecta el usuario sobre lo que consume el control de acceso.
func (u User) AccessSubject() AccessSubject {
	return AccessSubject{
		UserID:                u.ID,
		SuperAdmin:            u.SuperAdmin,
		AssessmentCompleted:   u.AssessmentCompleted,
		AssessmentCompletedAt: u.AssessmentCompletedAt,
		HubAlignments:         u.HubAlignments,
	}
}
