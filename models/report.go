package models

// Report is one Occurrence Variance Report submission. It is never
// persisted: it lives only long enough to be serialized into the
// notification email. Every field is optional; absent form fields bind
// to the empty string.
type Report struct {
	ReporterName              string `form:"reporter_name"`
	JobNumber                 string `form:"job_number"`
	Department                string `form:"department"`
	Position                  string `form:"position"`
	Description               string `form:"description"`
	DateTime                  string `form:"date_time"`
	AffectedPersonName        string `form:"affected_person_name"`
	AffectedPersonAge         string `form:"affected_person_age"`
	AffectedPersonSex         string `form:"affected_person_sex"`
	AffectedPersonNationality string `form:"affected_person_nationality"`
	SeverityCode              string `form:"severity_code"`
	ActionsTakenInitiating    string `form:"actions_taken_initiating"`
	ActionsTakenResponding    string `form:"actions_taken_responding"`
}
