package models

import "time"

// Opinion is the single logical opinion aggregate of a case, with its
// ordered version history. The latest version is the one with the highest
// version number.
type Opinion struct {
	Id        string
	CaseId    string
	Status    OpinionStatus
	CreatedAt time.Time
	Versions  []OpinionVersion
}

type OpinionStatus string

const (
	OpinionDraft     OpinionStatus = "draft"
	OpinionReview    OpinionStatus = "review"
	OpinionPublished OpinionStatus = "published"
)

type OpinionVersion struct {
	Id            string
	OpinionId     string
	VersionNumber int
	Content       string
	PdfUrl        *string
	IsDraft       bool
	SubmittedAt   *time.Time
	CreatedAt     time.Time
}

// LatestVersion returns the version with the highest version number, or nil
// when no version exists yet.
func (o *Opinion) LatestVersion() *OpinionVersion {
	if o == nil || len(o.Versions) == 0 {
		return nil
	}
	latest := &o.Versions[0]
	for i := range o.Versions[1:] {
		if o.Versions[i+1].VersionNumber > latest.VersionNumber {
			latest = &o.Versions[i+1]
		}
	}
	return latest
}
