package dto

// FileReportRequest files an abuse report against a lesson. Title is the
// caller's snapshot of the lesson title at reporting time.
type FileReportRequest struct {
	LessonID      string `json:"lessonId" binding:"required,objectid"`
	ReporterEmail string `json:"reporterEmail" binding:"required,email"`
	Reason        string `json:"reason" binding:"required"`
	Title         string `json:"title"`
}
