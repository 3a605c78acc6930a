package http

import (
	"github.com/gin-gonic/gin"

	"uni-deadline-tracker/pkg/response"
)

// Extract godoc
// @Summary     Extract deadlines from an outline payload
// @Description Reconciles a pipe-delimited assessment listing and an HTML program calendar into dated or TBA deadlines.
// @Tags        Deadlines
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Outline payload"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/deadlines/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExtractFromOutline(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractFromOutline: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// ExtractPDF godoc
// @Summary     Extract deadlines from extracted PDF text
// @Description Parses the labeled schedule blocks and the program calendar section of a PDF unit outline's extracted text. Unrecoverable digit glyphs arrive as "#".
// @Tags        Deadlines
// @Accept      json
// @Produce     json
// @Param       body body extractPDFReq true "Extracted PDF text"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/deadlines/extract/pdf [POST]
func (h *handler) ExtractPDF(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractPDFReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExtractFromPDF(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractFromPDF: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// UnitDeadlines godoc
// @Summary     Fetch and extract a unit's deadlines
// @Description Fetches the unit outline from the university API (cached) and runs the extraction pipeline.
// @Tags        Deadlines
// @Accept      json
// @Produce     json
// @Param       code     path  string true  "Unit code"
// @Param       semester query int    true  "Semester (1 or 2)"
// @Param       year     query int    true  "Year"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/units/{code}/deadlines [GET]
func (h *handler) UnitDeadlines(c *gin.Context) {
	ctx := c.Request.Context()

	if h.outlines == nil {
		response.Error(c, errOutlineUnavailable, nil)
		return
	}

	unit := c.Param("code")
	semester, year, err := h.processOffering(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	doc, err := h.outlines.FetchOutline(ctx, unit, semester, year)
	if err != nil {
		h.l.Errorf(ctx, "outlines.FetchOutline: %v", err)
		response.InternalError(c, err)
		return
	}

	output, err := h.uc.ExtractFromOutline(ctx, extractReq{
		Unit:           unit,
		Semester:       semester,
		Year:           year,
		AssessmentList: doc.AssessmentList,
		CalendarHTML:   doc.CalendarHTML,
	}.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractFromOutline: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Export godoc
// @Summary     Export deadlines to Google Calendar
// @Description Creates one calendar event per dated deadline; TBA entries are skipped.
// @Tags        Deadlines
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Deadlines to export"
// @Success     200  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	if h.exporter == nil {
		response.Error(c, errExportUnavailable, nil)
		return
	}

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.exporter.ExportDeadlines(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "exporter.ExportDeadlines: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newExportResp(output))
}
