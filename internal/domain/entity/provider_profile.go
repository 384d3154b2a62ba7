package entity

import "time"

// VerificationStatus tracks admin review of a provider account.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}

// ProviderProfile is the one-to-one extension of a provider User.
type ProviderProfile struct {
	ID                 int64              `json:"id"`
	UserID             string             `json:"user"`
	DOB                *time.Time         `json:"dob"`
	ExperienceYears    int                `json:"experience_years"`
	ServicesOffered    []string           `json:"services_offered"`
	ExpectedSalary     *float64           `json:"expected_salary"`
	IDProofType        string             `json:"id_proof_type"`
	IDProofNumber      string             `json:"id_proof_number"`
	IDProofImage       string             `json:"id_proof_image"`
	LanguagesSpoken    []string           `json:"languages_spoken"`
	Bio                string             `json:"bio"`
	ReferenceContact   string             `json:"reference_contact"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Locality           string             `json:"locality"`
}

// NewProviderProfile returns the empty pending profile created at registration.
func NewProviderProfile(userID string) *ProviderProfile {
	return &ProviderProfile{
		UserID:             userID,
		ServicesOffered:    []string{},
		LanguagesSpoken:    []string{},
		VerificationStatus: VerificationPending,
	}
}
