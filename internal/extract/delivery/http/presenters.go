package http

import (
	"uni-deadline-tracker/internal/export"
	"uni-deadline-tracker/internal/extract"
	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/response"
)

// --- Request DTOs ---

type extractReq struct {
	Unit           string `json:"unit"            binding:"required"`
	Semester       int    `json:"semester"        binding:"required,min=1,max=2"`
	Year           int    `json:"year"            binding:"required,min=2000,max=2100"`
	AssessmentList string `json:"assessment_list"`
	CalendarHTML   string `json:"calendar_html"`
}

func (r extractReq) toInput() extract.OutlineInput {
	return extract.OutlineInput{
		Unit:           r.Unit,
		Semester:       r.Semester,
		Year:           r.Year,
		AssessmentList: r.AssessmentList,
		CalendarHTML:   r.CalendarHTML,
	}
}

type extractPDFReq struct {
	Unit     string `json:"unit"     binding:"required"`
	Semester int    `json:"semester" binding:"required,min=1,max=2"`
	Year     int    `json:"year"     binding:"required,min=2000,max=2100"`
	Text     string `json:"text"     binding:"required"`
}

func (r extractPDFReq) toInput() extract.PDFInput {
	return extract.PDFInput{
		Unit:     r.Unit,
		Semester: r.Semester,
		Year:     r.Year,
		Text:     r.Text,
	}
}

type exportReq struct {
	CalendarID string         `json:"calendar_id"`
	Timezone   string         `json:"timezone"`
	Deadlines  []deadlineResp `json:"deadlines" binding:"required"`
}

func (r exportReq) toInput() export.ExportInput {
	deadlines := make([]model.Deadline, len(r.Deadlines))
	for i, d := range r.Deadlines {
		deadlines[i] = d.toModel()
	}
	return export.ExportInput{
		CalendarID: r.CalendarID,
		Timezone:   r.Timezone,
		Deadlines:  deadlines,
	}
}

// --- Response DTOs ---

type deadlineResp struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Unit            string         `json:"unit"`
	Week            int            `json:"week,omitempty"`
	Date            *response.Date `json:"date,omitempty"` // YYYY-MM-DD, absent for TBA
	ExactTime       string         `json:"exact_time,omitempty"`
	IsTBA           bool           `json:"is_tba"`
	Weight          int            `json:"weight,omitempty"`
	CalendarSourced bool           `json:"calendar_sourced"`
}

func newDeadlineResp(d model.Deadline) deadlineResp {
	r := deadlineResp{
		ID:              d.ID,
		Title:           d.Title,
		Unit:            d.Unit,
		Week:            d.Week,
		ExactTime:       d.ExactTime,
		IsTBA:           d.IsTBA,
		Weight:          d.Weight,
		CalendarSourced: d.CalendarSourced,
	}
	if !d.Date.IsZero() {
		date := response.Date(d.Date)
		r.Date = &date
	}
	return r
}

func (r deadlineResp) toModel() model.Deadline {
	d := model.Deadline{
		ID:              r.ID,
		Title:           r.Title,
		Unit:            r.Unit,
		Week:            r.Week,
		ExactTime:       r.ExactTime,
		IsTBA:           r.IsTBA,
		Weight:          r.Weight,
		CalendarSourced: r.CalendarSourced,
	}
	if r.Date != nil {
		d.Date = r.Date.Time()
	}
	return d
}

type extractResp struct {
	Deadlines []deadlineResp `json:"deadlines"`
	Count     int            `json:"count"`
}

func (h *handler) newExtractResp(out extract.Output) extractResp {
	deadlines := make([]deadlineResp, len(out.Deadlines))
	for i, d := range out.Deadlines {
		deadlines[i] = newDeadlineResp(d)
	}
	return extractResp{Deadlines: deadlines, Count: out.Count}
}

type exportResp struct {
	Events  []export.ExportedEvent `json:"events"`
	Skipped int                    `json:"skipped"`
}

func (h *handler) newExportResp(out export.ExportOutput) exportResp {
	return exportResp{Events: out.Events, Skipped: out.Skipped}
}
