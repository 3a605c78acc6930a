package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "http.processExtractReq: %v", err)
		return extractReq{}, errInvalidBody
	}
	return req, nil
}

func (h *handler) processExtractPDFReq(c *gin.Context) (extractPDFReq, error) {
	var req extractPDFReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "http.processExtractPDFReq: %v", err)
		return extractPDFReq{}, errInvalidBody
	}
	return req, nil
}

func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "http.processExportReq: %v", err)
		return exportReq{}, errInvalidBody
	}
	return req, nil
}

// processOffering reads semester and year query params for unit routes.
func (h *handler) processOffering(c *gin.Context) (semester, year int, err error) {
	semester, err = strconv.Atoi(c.Query("semester"))
	if err != nil || semester < 1 || semester > 2 {
		return 0, 0, errInvalidOffering
	}
	year, err = strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, errInvalidOffering
	}
	return semester, year, nil
}
