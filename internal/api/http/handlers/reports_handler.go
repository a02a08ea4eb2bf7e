package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/safevoice/report-service/internal/api/dto"
	"github.com/safevoice/report-service/internal/auth"
	"github.com/safevoice/report-service/internal/domain"
	"github.com/safevoice/report-service/internal/service"
	"github.com/safevoice/report-service/pkg/util/errorutil"
)

// ReportsHandler manages report and reply endpoints.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// CreateReport POST /reports.
func (h *ReportsHandler) CreateReport(c *fiber.Ctx) error {
	principal := auth.PrincipalFromContext(c)
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("body", "invalid payload")
	}

	report, err := h.service.CreateReport(c.UserContext(), principal, service.ReportCreateInput{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Anonymous: req.Anonymous,
	})
	if err != nil {
		return err
	}
	author, _ := auth.UserFromContext(c)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewReportResponse(report, author, principal),
	})
}

// ListReports GET /reports.
func (h *ReportsHandler) ListReports(c *fiber.Ctx) error {
	viewer := auth.PrincipalFromContext(c)
	filter := parseReportQuery(c)
	reports, err := h.service.ListReports(c.UserContext(), filter)
	if err != nil {
		return err
	}

	authors := map[string]*domain.User{}
	items := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		report := &reports[i]
		author, ok := authors[report.AuthorID]
		if !ok {
			author, err = h.service.ResolveAuthor(c.UserContext(), report.AuthorID)
			if err != nil {
				return err
			}
			authors[report.AuthorID] = author
		}
		items = append(items, dto.NewReportResponse(report, author, viewer))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetReport GET /reports/:id.
func (h *ReportsHandler) GetReport(c *fiber.Ctx) error {
	viewer := auth.PrincipalFromContext(c)
	report, err := h.service.GetReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	author, err := h.service.ResolveAuthor(c.UserContext(), report.AuthorID)
	if err != nil {
		return err
	}
	thread, err := h.service.ListReplies(c.UserContext(), report.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ReportDetailResponse{
		Report:  dto.NewReportResponse(report, author, viewer),
		Replies: replyResponses(thread, report, viewer),
	}})
}

// ListReplies GET /reports/:id/replies.
func (h *ReportsHandler) ListReplies(c *fiber.Ctx) error {
	viewer := auth.PrincipalFromContext(c)
	report, err := h.service.GetReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	thread, err := h.service.ListReplies(c.UserContext(), report.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": replyResponses(thread, report, viewer)})
}

// CreateReply POST /reports/:id/replies.
func (h *ReportsHandler) CreateReply(c *fiber.Ctx) error {
	principal := auth.PrincipalFromContext(c)
	var req dto.CreateReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("body", "invalid payload")
	}

	reply, err := h.service.CreateReply(c.UserContext(), principal, c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	report, err := h.service.GetReport(c.UserContext(), reply.ReportID)
	if err != nil {
		return err
	}
	author, _ := auth.UserFromContext(c)
	isHelper := author != nil && author.Role == domain.RoleHelper
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewReplyResponse(reply, author, domain.IsOriginalPoster(reply, report), isHelper, report, principal),
	})
}

// EndorseReply POST /reports/:id/replies/:replyId/upvote.
func (h *ReportsHandler) EndorseReply(c *fiber.Ctx) error {
	principal := auth.PrincipalFromContext(c)
	reply, err := h.service.EndorseReply(c.UserContext(), principal, c.Params("id"), c.Params("replyId"))
	if err != nil {
		return err
	}
	report, err := h.service.GetReport(c.UserContext(), reply.ReportID)
	if err != nil {
		return err
	}
	author, err := h.service.ResolveAuthor(c.UserContext(), reply.AuthorID)
	if err != nil {
		return err
	}
	isHelper := author != nil && author.Role == domain.RoleHelper
	return c.JSON(fiber.Map{
		"data": dto.NewReplyResponse(reply, author, domain.IsOriginalPoster(reply, report), isHelper, report, principal),
	})
}

// TransitionStatus PATCH /reports/:id/status.
func (h *ReportsHandler) TransitionStatus(c *fiber.Ctx) error {
	principal := auth.PrincipalFromContext(c)
	var req dto.TransitionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("body", "invalid payload")
	}
	if !domain.IsValidStatus(req.Status) {
		return errorutil.NewValidationError("status", "unknown status")
	}

	report, err := h.service.TransitionStatus(c.UserContext(), principal, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	author, err := h.service.ResolveAuthor(c.UserContext(), report.AuthorID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportResponse(report, author, principal)})
}

func parseReportQuery(c *fiber.Ctx) service.ReportListFilter {
	filter := service.ReportListFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ReportStatus(statusStr)
		filter.Status = &status
	}
	if category := c.Query("category"); category != "" && category != "all" {
		filter.Category = &category
	}
	if text := c.Query("q"); text != "" {
		filter.Text = &text
	}
	return filter
}

func replyResponses(thread []service.ReplyThreadEntry, report *domain.Report, viewer *domain.Principal) []dto.ReplyResponse {
	items := make([]dto.ReplyResponse, 0, len(thread))
	for i := range thread {
		entry := thread[i]
		items = append(items, dto.NewReplyResponse(
			&entry.Reply,
			entry.Author,
			entry.IsOriginalPoster,
			entry.IsHelper,
			report,
			viewer,
		))
	}
	return items
}
